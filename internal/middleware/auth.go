package middleware

import (
	"strings"

	"compliance-service/internal/apperr"
	"compliance-service/pkg/jwtutil"
	"compliance-service/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// Auth validates bearer tokens with the injected JWT utility.
type Auth struct {
	jwt *jwtutil.JWT
}

func NewAuth(jwt *jwtutil.JWT) *Auth {
	return &Auth{jwt: jwt}
}

// Middleware validates the JWT token and stores the caller identity in the
// request context.
func (a *Auth) Middleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		log := logger.FromEcho(c)

		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			log.Warn("Missing Authorization header")
			return apperr.Unauthorized("Vui lòng đăng nhập")
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			log.Warn("Invalid Authorization header format")
			return apperr.Unauthorized("Token không đúng định dạng")
		}

		claims, err := a.jwt.ValidateToken(parts[1])
		if err != nil {
			log.Error("Invalid JWT token", zap.Error(err))
			return apperr.Unauthorized("Token không hợp lệ hoặc đã hết hạn")
		}

		c.Set("user_id", claims.UserID)
		c.Set("email", claims.Email)
		c.Set("user_role", claims.Role)

		return next(c)
	}
}

// RequireAdmin rejects callers whose token does not carry the admin role.
// Must run after Middleware.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		role, _ := c.Get("user_role").(string)
		if role != "admin" {
			logger.FromEcho(c).Warn("Admin access denied", zap.String("role", role))
			return apperr.Unauthorized("Bạn không có quyền thực hiện thao tác này")
		}
		return next(c)
	}
}

// UserIDFromContext retrieves the authenticated user ID from the context.
func UserIDFromContext(c echo.Context) (uint, bool) {
	id, ok := c.Get("user_id").(uint)
	return id, ok
}
