package handler

import (
	"net/http"
	"time"

	"compliance-service/internal/apperr"
	"compliance-service/internal/middleware"
	"compliance-service/internal/model"
	"compliance-service/pkg/jwtutil"
	"compliance-service/pkg/logger"
	"compliance-service/prometheus"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// AuthHandler serves registration, login and issuer-profile endpoints.
type AuthHandler struct {
	db  *gorm.DB
	jwt *jwtutil.JWT
}

func NewAuthHandler(db *gorm.DB, jwt *jwtutil.JWT) *AuthHandler {
	return &AuthHandler{db: db, jwt: jwt}
}

func userResponse(u *model.User) echo.Map {
	return echo.Map{
		"id":                  u.ID,
		"name":                u.Name,
		"email":               u.Email,
		"company":             u.Company,
		"tax_code":            u.TaxCode,
		"address":             u.Address,
		"phone":               u.Phone,
		"representative_role": u.RepresentativeRole,
		"logo":                u.Logo,
		"role":                u.Role,
	}
}

// Register creates a new account
func (h *AuthHandler) Register(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.RegisterCounter.Inc()

	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Company  string `json:"company"`
	}
	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse registration request", zap.Error(err))
		return apperr.Validation("Dữ liệu đăng ký không hợp lệ")
	}
	if req.Email == "" || req.Password == "" {
		return apperr.Validation("Vui lòng nhập email và mật khẩu")
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	var existing model.User
	if result := h.db.Where("email = ?", req.Email).First(&existing); result.Error == nil {
		log.Warn("Registration with existing email", zap.String("email", req.Email))
		return apperr.Validation("Email đã được sử dụng")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return apperr.Internal("Lỗi máy chủ", err)
	}

	user := model.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: string(hashed),
		Company:  req.Company,
		Role:     "user",
	}
	if err := h.db.Create(&user).Error; err != nil {
		log.Error("Failed to create user", zap.Error(err))
		return apperr.Internal("Lỗi máy chủ", err)
	}

	token, err := h.jwt.GenerateToken(user.Email, user.ID, user.Role)
	if err != nil {
		log.Error("Failed to generate token", zap.Error(err))
		return apperr.Internal("Lỗi máy chủ", err)
	}

	log.Info("User registered", zap.String("email", user.Email), zap.Uint("user_id", user.ID))
	return c.JSON(http.StatusCreated, echo.Map{
		"success": true,
		"message": "Đăng ký thành công",
		"token":   token,
		"user":    userResponse(&user),
	})
}

// Login authenticates a user and issues a token
func (h *AuthHandler) Login(c echo.Context) error {
	log := logger.FromEcho(c)
	prometheus.LoginCounter.Inc()

	var req struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.Bind(&req); err != nil {
		log.Error("Failed to parse login request", zap.Error(err))
		return apperr.Validation("Dữ liệu đăng nhập không hợp lệ")
	}
	if req.Email == "" || req.Password == "" {
		return apperr.Validation("Vui lòng nhập email và mật khẩu")
	}

	defer prometheus.TrackDBOperation("query")(time.Now())
	var user model.User
	if result := h.db.Where("email = ?", req.Email).First(&user); result.Error != nil {
		log.Warn("User not found", zap.String("email", req.Email))
		return apperr.Unauthorized("Email hoặc mật khẩu không đúng")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		log.Warn("Invalid password", zap.String("email", req.Email))
		return apperr.Unauthorized("Email hoặc mật khẩu không đúng")
	}

	token, err := h.jwt.GenerateToken(user.Email, user.ID, user.Role)
	if err != nil {
		log.Error("Failed to generate token", zap.Error(err))
		return apperr.Internal("Lỗi máy chủ", err)
	}

	log.Info("User logged in", zap.String("email", user.Email), zap.Uint("user_id", user.ID))
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Đăng nhập thành công",
		"token":   token,
		"user":    userResponse(&user),
	})
}

// Me returns the current user's profile
func (h *AuthHandler) Me(c echo.Context) error {
	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return apperr.Unauthorized("Vui lòng đăng nhập")
	}

	var user model.User
	if result := h.db.First(&user, userID); result.Error != nil {
		return apperr.NotFound("Không tìm thấy tài khoản")
	}

	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"user":    userResponse(&user),
	})
}

// UpdateProfile updates the caller's business identity fields used to
// personalize exported documents.
func (h *AuthHandler) UpdateProfile(c echo.Context) error {
	log := logger.FromEcho(c)

	userID, ok := middleware.UserIDFromContext(c)
	if !ok {
		return apperr.Unauthorized("Vui lòng đăng nhập")
	}

	var req struct {
		Name               string `json:"name"`
		Company            string `json:"company"`
		TaxCode            string `json:"tax_code"`
		Address            string `json:"address"`
		Phone              string `json:"phone"`
		RepresentativeRole string `json:"representative_role"`
		Logo               string `json:"logo"`
	}
	if err := c.Bind(&req); err != nil {
		return apperr.Validation("Dữ liệu không hợp lệ")
	}

	var user model.User
	if result := h.db.First(&user, userID); result.Error != nil {
		return apperr.NotFound("Không tìm thấy tài khoản")
	}

	updates := map[string]interface{}{
		"name":                req.Name,
		"company":             req.Company,
		"tax_code":            req.TaxCode,
		"address":             req.Address,
		"phone":               req.Phone,
		"representative_role": req.RepresentativeRole,
		"logo":                req.Logo,
	}
	defer prometheus.TrackDBOperation("update")(time.Now())
	if err := h.db.Model(&user).Updates(updates).Error; err != nil {
		log.Error("Failed to update profile", zap.Error(err))
		return apperr.Internal("Lỗi máy chủ", err)
	}

	log.Info("Profile updated", zap.Uint("user_id", user.ID))
	return c.JSON(http.StatusOK, echo.Map{
		"success": true,
		"message": "Cập nhật thông tin thành công",
		"user":    userResponse(&user),
	})
}
