package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/burakgns/istakip/models"
	"github.com/burakgns/istakip/pkg"
	"github.com/burakgns/istakip/services"
)

// AccountHandler, cari hesap endpoint'lerini yöneten struct.
type AccountHandler struct {
	accountService services.AccountService
}

// NewAccountHandler, constructor.
func NewAccountHandler(accountService services.AccountService) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// List godoc
// GET /api/accounts
func (h *AccountHandler) List(w http.ResponseWriter, r *http.Request) {
	accounts, err := h.accountService.GetAll(r.Context())
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, accounts)
}

// Create godoc
// POST /api/accounts
func (h *AccountHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	account, err := h.accountService.Create(r.Context(), &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusCreated, account)
}

// Get godoc
// GET /api/accounts/{id}
func (h *AccountHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	account, err := h.accountService.GetByID(r.Context(), id)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, account)
}

// Update godoc
// PUT /api/accounts/{id}
// Kısmi güncelleme — gönderilmeyen alanlar korunur.
func (h *AccountHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	var req models.UpdateAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	account, err := h.accountService.Update(r.Context(), id, &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, account)
}

// Delete godoc
// DELETE /api/accounts/{id}
func (h *AccountHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	if err := h.accountService.Delete(r.Context(), id); err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, map[string]string{"message": "account deleted"})
}

// Summary godoc
// GET /api/accounts/{id}/summary
// Hesabın borç/alacak toplamlarını ve net bakiyesini döner.
func (h *AccountHandler) Summary(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	summary, err := h.accountService.Summary(r.Context(), id)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, summary)
}
