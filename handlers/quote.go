package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/burakgns/istakip/models"
	"github.com/burakgns/istakip/pkg"
	"github.com/burakgns/istakip/services"
)

// QuoteHandler, teklif endpoint'lerini yöneten struct.
type QuoteHandler struct {
	quoteService services.QuoteService
}

// NewQuoteHandler, constructor.
func NewQuoteHandler(quoteService services.QuoteService) *QuoteHandler {
	return &QuoteHandler{quoteService: quoteService}
}

// List godoc
// GET /api/quotes
// Teklifler kalemleriyle birlikte döner.
func (h *QuoteHandler) List(w http.ResponseWriter, r *http.Request) {
	quotes, err := h.quoteService.GetAll(r.Context())
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, quotes)
}

// Create godoc
// POST /api/quotes
// Teklif + kalemler tek istekte, atomik olarak oluşturulur.
// Kalem tutarları ve toplam server'da hesaplanır.
func (h *QuoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	quote, err := h.quoteService.Create(r.Context(), &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusCreated, quote)
}

// Get godoc
// GET /api/quotes/{id}
func (h *QuoteHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	quote, err := h.quoteService.GetByID(r.Context(), id)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, quote)
}

// Update godoc
// PUT /api/quotes/{id}
// items gönderilmişse kalemlerin TAMAMI değiştirilir ve toplam
// yeniden hesaplanır; gönderilmemişse kalemler olduğu gibi kalır.
func (h *QuoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	var req models.UpdateQuoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	quote, err := h.quoteService.Update(r.Context(), id, &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, quote)
}

// Delete godoc
// DELETE /api/quotes/{id}
// Kalemler teklif ile birlikte silinir.
func (h *QuoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	if err := h.quoteService.Delete(r.Context(), id); err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, map[string]string{"message": "quote deleted"})
}

// ListByAccount godoc
// GET /api/accounts/{id}/quotes
func (h *QuoteHandler) ListByAccount(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	quotes, err := h.quoteService.ListByAccount(r.Context(), id)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, quotes)
}

// PDF godoc
// GET /api/quotes/{id}/pdf
// Teklifi PDF olarak indirir. Diğer endpoint'lerin aksine APIResponse
// zarfı YOKTUR — raw PDF byte'ları döner.
func (h *QuoteHandler) PDF(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	result, err := h.quoteService.GeneratePDF(r.Context(), id)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s.pdf", result.Number))
	w.Header().Set("Content-Length", fmt.Sprintf("%d", len(result.Data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.Data)
}
