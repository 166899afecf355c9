package handler

import (
	"math"
	"net/http"
	"strconv"

	"compliance-service/internal/apperr"
	"compliance-service/internal/model"
	"compliance-service/pkg/logger"
	"compliance-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Shortest query the catalog search accepts; anything shorter returns an
// empty result set instead of an error.
const minSearchQueryLen = 2

// Largest number of autocomplete matches returned per search.
const searchResultLimit = 10

// ProductHandler serves the product catalog.
type ProductHandler struct {
	db *gorm.DB
}

func NewProductHandler(db *gorm.DB) *ProductHandler {
	return &ProductHandler{db: db}
}

// productSummary is the projection returned by list and search.
type productSummary struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Code     string `json:"code"`
	Category string `json:"category"`
	Path     string `json:"path"`
}

// List returns the catalog with pagination
func (h *ProductHandler) List(c echo.Context) error {
	log := logger.FromEcho(c)

	page, _ := strconv.Atoi(c.QueryParam("page"))
	if page < 1 {
		page = 1
	}
	limit, _ := strconv.Atoi(c.QueryParam("limit"))
	if limit < 1 {
		limit = 10
	}

	var total int64
	if err := h.db.Model(&model.Product{}).Count(&total).Error; err != nil {
		log.Error("Failed to count products", zap.Error(err))
		return apperr.Internal("Lỗi máy chủ", err)
	}

	var products []productSummary
	result := h.db.Model(&model.Product{}).
		Order("created_at DESC").
		Offset((page - 1) * limit).
		Limit(limit).
		Find(&products)
	if result.Error != nil {
		log.Error("Failed to list products", zap.Error(result.Error))
		return apperr.Internal("Lỗi máy chủ", result.Error)
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"count":   len(products),
		"total":   total,
		"page":    page,
		"pages":   int(math.Ceil(float64(total) / float64(limit))),
		"data":    products,
	})
}

// Search returns autocomplete matches over name, category and code
func (h *ProductHandler) Search(c echo.Context) error {
	log := logger.FromEcho(c)

	q := c.QueryParam("q")
	if len([]rune(q)) < minSearchQueryLen {
		return c.JSON(http.StatusOK, echo.Map{
			"success": true,
			"count":   0,
			"data":    []productSummary{},
		})
	}

	prometheus.SearchCounter.Inc()

	pattern := "%" + q + "%"
	var products []productSummary
	result := h.db.Model(&model.Product{}).
		Where("name ILIKE ? OR category ILIKE ? OR code ILIKE ?", pattern, pattern, pattern).
		Limit(searchResultLimit).
		Find(&products)
	if result.Error != nil {
		log.Error("Product search failed", zap.String("query", q), zap.Error(result.Error))
		return apperr.Internal("Lỗi máy chủ", result.Error)
	}

	log.Info("Product search", zap.String("query", q), zap.Int("count", len(products)))
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"count":   len(products),
		"data":    products,
	})
}

// Get returns a single product with all indicator collections
func (h *ProductHandler) Get(c echo.Context) error {
	log := logger.FromEcho(c)
	id := c.Param("id")

	var product model.Product
	if result := h.db.First(&product, "id = ?", id); result.Error != nil {
		log.Warn("Product not found", zap.String("product_id", id))
		return apperr.NotFound("Không tìm thấy sản phẩm")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"data":    product,
	})
}

// Create adds a catalog entry (admin only)
func (h *ProductHandler) Create(c echo.Context) error {
	log := logger.FromEcho(c)

	var product model.Product
	if err := c.Bind(&product); err != nil {
		log.Error("Invalid product data", zap.Error(err))
		return apperr.Validation("Dữ liệu sản phẩm không hợp lệ")
	}
	if product.Name == "" || product.Code == "" || product.Category == "" {
		return apperr.Validation("Tên, mã HS và ngành hàng là bắt buộc")
	}

	if err := h.db.Create(&product).Error; err != nil {
		log.Error("Failed to create product", zap.Error(err))
		return apperr.Internal("Lỗi máy chủ", err)
	}

	log.Info("Product created", zap.Uint("product_id", product.ID), zap.String("name", product.Name))
	return c.JSON(http.StatusCreated, echo.Map{
		"success": true,
		"message": "Tạo sản phẩm thành công",
		"data":    product,
	})
}

// Update replaces a catalog entry (admin only)
func (h *ProductHandler) Update(c echo.Context) error {
	log := logger.FromEcho(c)
	id := c.Param("id")

	var product model.Product
	if result := h.db.First(&product, "id = ?", id); result.Error != nil {
		return apperr.NotFound("Không tìm thấy sản phẩm")
	}

	var update model.Product
	if err := c.Bind(&update); err != nil {
		return apperr.Validation("Dữ liệu sản phẩm không hợp lệ")
	}
	update.ID = product.ID
	update.CreatedAt = product.CreatedAt

	if err := h.db.Save(&update).Error; err != nil {
		log.Error("Failed to update product", zap.Error(err))
		return apperr.Internal("Lỗi máy chủ", err)
	}

	log.Info("Product updated", zap.Uint("product_id", update.ID))
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Cập nhật sản phẩm thành công",
		"data":    update,
	})
}

// Delete removes a catalog entry (admin only)
func (h *ProductHandler) Delete(c echo.Context) error {
	log := logger.FromEcho(c)
	id := c.Param("id")

	var product model.Product
	if result := h.db.First(&product, "id = ?", id); result.Error != nil {
		return apperr.NotFound("Không tìm thấy sản phẩm")
	}

	if err := h.db.Delete(&product).Error; err != nil {
		log.Error("Failed to delete product", zap.Error(err))
		return apperr.Internal("Lỗi máy chủ", err)
	}

	log.Info("Product deleted", zap.Uint("product_id", product.ID))
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Xóa sản phẩm thành công",
	})
}
