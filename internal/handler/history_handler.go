package handler

import (
	"math"
	"net/http"
	"strconv"
	"time"

	"compliance-service/internal/apperr"
	"compliance-service/internal/middleware"
	"compliance-service/internal/model"
	"compliance-service/pkg/logger"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// HistoryHandler serves the per-user product lookup history.
type HistoryHandler struct {
	db *gorm.DB
}

func NewHistoryHandler(db *gorm.DB) *HistoryHandler {
	return &HistoryHandler{db: db}
}

// List returns the caller's history, newest first
func (h *HistoryHandler) List(c echo.Context) error {
	log := logger.FromEcho(c)

	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return apperr.Unauthorized("Vui lòng đăng nhập")
	}

	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if limit < 1 {
		limit = 20
	}

	var total int64
	if err := h.db.Model(&model.SearchHistory{}).Where("user_id = ?", userID).Count(&total).Error; err != nil {
		log.Error("Failed to count history", zap.Error(err))
		return apperr.Internal("Lỗi máy chủ", err)
	}

	var history []model.SearchHistory
	result := h.db.Where("user_id = ?", userID).
		Order("searched_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&history)
	if result.Error != nil {
		log.Error("Failed to list history", zap.Error(result.Error))
		return apperr.Internal("Lỗi máy chủ", result.Error)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"count":   len(history),
		"total":   total,
		"page":    page,
		"pages":   int(math.Ceil(float64(total) / float64(limit))),
		"data":    history,
	})
}

// Save records a product lookup. A repeat lookup of the same product within
// the dedup window only refreshes the existing row's timestamp.
func (h *HistoryHandler) Save(c echo.Context) error {
	log := logger.FromEcho(c)

	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return apperr.Unauthorized("Vui lòng đăng nhập")
	}

	var req struct {
		ProductID   uint   `json:"product_id"`
		ProductName string `json:"product_name"`
	}
	if err := c.Bind(&req); err != nil || req.ProductID == 0 {
		return apperr.Validation("Dữ liệu lịch sử không hợp lệ")
	}

	now := time.Now()
	windowStart := now.Add(-model.HistoryDedupWindow)

	var existing model.SearchHistory
	result := h.db.Where("user_id = ? AND product_id = ? AND searched_at >= ?",
		userID, req.ProductID, windowStart).First(&existing)
	if result.Error == nil {
		existing.SearchedAt = now
		if err := h.db.Model(&existing).Update("searched_at", now).Error; err != nil {
			log.Error("Failed to refresh history entry", zap.Error(err))
			return apperr.Internal("Lỗi máy chủ", err)
		}
		return c.JSON(http.StatusOK, echo.Map{
			"success": true,
			"message": "Cập nhật lịch sử tìm kiếm",
			"data":    existing,
		})
	}

	entry := model.SearchHistory{
		UserID:      userID,
		ProductID:   req.ProductID,
		ProductName: req.ProductName,
		SearchedAt:  now,
	}
	if err := h.db.Create(&entry).Error; err != nil {
		log.Error("Failed to save history entry", zap.Error(err))
		return apperr.Internal("Lỗi máy chủ", err)
	}

	log.Info("History saved", zap.Uint("user_id", userID), zap.Uint("product_id", req.ProductID))
	return c.JSON(http.StatusCreated, echo.Map{
		"success": true,
		"message": "Lưu lịch sử tìm kiếm thành công",
		"data":    entry,
	})
}

// Delete removes a single history entry owned by the caller
func (h *HistoryHandler) Delete(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return apperr.Unauthorized("Vui lòng đăng nhập")
	}

	var entry model.SearchHistory
	result := h.db.Where("id = ? AND user_id = ?", c.Param("id"), userID).First(&entry)
	if result.Error != nil {
		return apperr.NotFound("Không tìm thấy lịch sử")
	}

	if err := h.db.Delete(&entry).Error; err != nil {
		return apperr.Internal("Lỗi máy chủ", err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Xóa lịch sử thành công",
	})
}

// Clear removes all of the caller's history
func (h *HistoryHandler) Clear(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return apperr.Unauthorized("Vui lòng đăng nhập")
	}

	if err := h.db.Where("user_id = ?", userID).Delete(&model.SearchHistory{}).Error; err != nil {
		return apperr.Internal("Lỗi máy chủ", err)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Xóa toàn bộ lịch sử thành công",
	})
}
