package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"checkin-backend/internal/directory"
	"checkin-backend/internal/models"
	"checkin-backend/internal/services"
	"checkin-backend/pkg/utils"
)

type AuthHandler struct {
	Service *services.AuthService
}

func NewAuthHandler(s *services.AuthService) *AuthHandler {
	return &AuthHandler{Service: s}
}

// Login handles POST /api/login. User-facing messages stay in
// Vietnamese; the app's audience is the Nam An sales team.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Vui lòng nhập tên đăng nhập và mật khẩu", "")
		return
	}

	user, err := h.Service.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrValidation):
			utils.Error(w, http.StatusBadRequest, "Vui lòng nhập tên đăng nhập và mật khẩu", "")
		case errors.Is(err, services.ErrInvalidCredentials):
			utils.Error(w, http.StatusUnauthorized, "Tên đăng nhập hoặc mật khẩu không đúng", "")
		case errors.Is(err, directory.ErrFetchTimeout):
			utils.Error(w, http.StatusGatewayTimeout, "Có lỗi xảy ra khi đăng nhập", err.Error())
		default:
			log.Printf("[Auth] login failed: %v", err)
			utils.Error(w, http.StatusInternalServerError, "Có lỗi xảy ra khi đăng nhập", err.Error())
		}
		return
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    user,
		"message": "Đăng nhập thành công",
	})
}
