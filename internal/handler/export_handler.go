package handler

import (
	"errors"
	"net/http"
	"time"

	"compliance-service/internal/apperr"
	"compliance-service/internal/export"
	"compliance-service/internal/middleware"
	"compliance-service/internal/model"
	"compliance-service/pkg/logger"
	"compliance-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ExportHandler is the export gateway: it resolves the product, merges
// caller overrides, drives the renderers and hands back a download
// reference. No partial artifacts are exposed on failure.
type ExportHandler struct {
	db       *gorm.DB
	exporter *export.Exporter
}

func NewExportHandler(db *gorm.DB, exporter *export.Exporter) *ExportHandler {
	return &ExportHandler{db: db, exporter: exporter}
}

// exportRequest is the wire shape of every export call.
type exportRequest struct {
	ProductID uint              `json:"product_id"`
	Format    string            `json:"format"`
	Overrides map[string]string `json:"overrides"`
}

var exportMessages = map[export.Kind]string{
	export.KindTCCS:        "Tạo file TCCS thành công",
	export.KindTesting:     "Tạo phiếu kiểm nghiệm thành công",
	export.KindDeclaration: "Tạo hồ sơ công bố thành công",
	export.KindLabel:       "Tạo mẫu nhãn thành công",
	export.KindAll:         "Tạo trọn bộ hồ sơ thành công",
}

// Export returns the handler for one document kind.
func (h *ExportHandler) Export(kind export.Kind) echo.HandlerFunc {
	return func(c echo.Context) error {
		log := logger.FromEcho(c)

		userID, ok := middleware.UserIDFromContext(c)
		if !ok {
			return apperr.Unauthorized("Vui lòng đăng nhập")
		}

		var req exportRequest
		if err := c.Bind(&req); err != nil {
			return apperr.Validation("Dữ liệu yêu cầu không hợp lệ")
		}

		format := export.Format(req.Format)
		if req.Format == "" {
			format = export.DefaultFormat(kind)
		}

		var product model.Product
		queryDone := prometheus.TrackDBOperation("query")
		result := h.db.First(&product, req.ProductID)
		queryDone(time.Now())
		if result.Error != nil {
			log.Warn("Export for unknown product",
				zap.Uint("product_id", req.ProductID),
				zap.String("kind", string(kind)))
			return apperr.NotFound("Không tìm thấy sản phẩm")
		}

		var user model.User
		queryDone = prometheus.TrackDBOperation("query")
		result = h.db.First(&user, userID)
		queryDone(time.Now())
		if result.Error != nil {
			return apperr.Unauthorized("Vui lòng đăng nhập")
		}

		overrides := export.ParseOverrides(req.Overrides)

		ctx := logger.WithContext(c.Request().Context(), log)
		stopTimer := prometheus.TrackRender(string(kind))
		artifact, err := h.exporter.Render(ctx, kind, format, &product,
			export.IssuerFromUser(&user), overrides)
		stopTimer()
		if err != nil {
			prometheus.RecordExportError(string(kind))
			if errors.Is(err, export.ErrUnsupportedFormat) {
				return apperr.Validation("Định dạng không được hỗ trợ")
			}
			log.Error("Export failed",
				zap.String("kind", string(kind)),
				zap.Uint("product_id", product.ID),
				zap.Error(err))
			return apperr.Internal("Lỗi máy chủ", err)
		}

		prometheus.RecordExport(string(kind), string(artifact.Format))
		log.Info("Export completed",
			zap.String("kind", string(kind)),
			zap.String("format", string(artifact.Format)),
			zap.Uint("product_id", product.ID),
			zap.String("filename", artifact.Filename))

		return c.JSON(http.StatusOK, echo.Map{
			"success": true,
			"message": exportMessages[kind],
			"data": echo.Map{
				"filename":     artifact.Filename,
				"download_url": "/api/export/download/" + artifact.Filename,
			},
		})
	}
}

// Download streams a previously generated artifact. Retrieval requires an
// authenticated caller; artifacts never expire.
func (h *ExportHandler) Download(c echo.Context) error {
	filename := c.Param("filename")

	path, err := h.exporter.Store().Resolve(filename)
	if err != nil {
		if errors.Is(err, export.ErrBadFilename) {
			return apperr.Validation("Tên tệp không hợp lệ")
		}
		return apperr.NotFound("Không tìm thấy tệp")
	}

	return c.Attachment(path, filename)
}
