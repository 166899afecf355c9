package middleware

import (
	"strconv"
	"time"

	"compliance-service/prometheus"

	prom "github.com/prometheus/client_golang/prometheus"

	"github.com/labstack/echo/v4"
)

// MetricsMiddleware captures request count and duration for each request
func MetricsMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		// Execute the request handler
		err := next(c)

		// Record request duration
		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Response().Status)
		endpoint := c.Path()
		method := c.Request().Method

		prometheus.RequestDuration.With(prom.Labels{
			"endpoint": endpoint,
			"method":   method,
			"status":   status,
		}).Observe(duration)

		prometheus.HTTPRequestCounter.With(prom.Labels{
			"endpoint": endpoint,
			"method":   method,
			"status":   status,
		}).Inc()

		return err
	}
}
