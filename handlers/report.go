package handlers

import (
	"net/http"

	"github.com/burakgns/istakip/pkg"
	"github.com/burakgns/istakip/services"
)

// ReportHandler, rapor endpoint'lerini yöneten struct.
type ReportHandler struct {
	reportService services.ReportService
}

// NewReportHandler, constructor.
func NewReportHandler(reportService services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// Financial godoc
// GET /api/reports/financial
// Son 6 takvim ayının gelir/gider/kâr dökümü.
func (h *ReportHandler) Financial(w http.ResponseWriter, r *http.Request) {
	report, err := h.reportService.Financial(r.Context())
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, report)
}

// Projects godoc
// GET /api/reports/projects
func (h *ReportHandler) Projects(w http.ResponseWriter, r *http.Request) {
	report, err := h.reportService.Projects(r.Context())
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, report)
}

// Quotes godoc
// GET /api/reports/quotes
func (h *ReportHandler) Quotes(w http.ResponseWriter, r *http.Request) {
	report, err := h.reportService.Quotes(r.Context())
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, report)
}
