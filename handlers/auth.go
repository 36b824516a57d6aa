// Package handlers, HTTP endpoint'lerini yöneten katmandır.
//
// Handler'lar incedir: request body'yi decode eder, service'i çağırır,
// sonucu APIResponse zarfıyla yazar. İş mantığı BURADA YAŞAMAZ.
package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/burakgns/istakip/models"
	"github.com/burakgns/istakip/pkg"
	"github.com/burakgns/istakip/services"
)

// contextKey, context.Value çakışmalarını önlemek için özel tip.
type contextKey string

// UserContextKey, auth middleware'ın context'e koyduğu *models.User'ın key'i.
const UserContextKey contextKey = "user"

// parseID, path'teki {id} parametresini int64'e çevirir.
// Sayı değilse ErrBadRequest'e sarılı hata döner.
func parseID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, pkg.NewValidationError("id", "id must be a positive integer")
	}
	return id, nil
}

// AuthHandler, kimlik doğrulama endpoint'lerini yöneten struct.
type AuthHandler struct {
	authService services.AuthService
}

// NewAuthHandler, constructor.
func NewAuthHandler(authService services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login godoc
// POST /api/auth/login
// Username + şifre ile giriş yapar, JWT access token döner.
// Bu endpoint auth middleware'ın DIŞINDADIR — token'sız erişilir.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.authService.Login(r.Context(), &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, result)
}
