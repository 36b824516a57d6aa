package handlers

import (
	"net/http"
	"strconv"

	"github.com/burakgns/istakip/pkg"
	"github.com/burakgns/istakip/services"
)

// DashboardHandler, ana ekran endpoint'lerini yöneten struct.
type DashboardHandler struct {
	dashboardService services.DashboardService
}

// NewDashboardHandler, constructor.
func NewDashboardHandler(dashboardService services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Stats godoc
// GET /api/dashboard/stats
func (h *DashboardHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.dashboardService.Stats(r.Context())
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, stats)
}

// Activities godoc
// GET /api/dashboard/activities?limit=10
func (h *DashboardHandler) Activities(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	activities, err := h.dashboardService.Activities(r.Context(), limit)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, activities)
}

// UpcomingTasks godoc
// GET /api/dashboard/upcoming-tasks
func (h *DashboardHandler) UpcomingTasks(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.dashboardService.UpcomingTasks(r.Context())
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, tasks)
}

// ActiveProjects godoc
// GET /api/dashboard/active-projects
func (h *DashboardHandler) ActiveProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := h.dashboardService.ActiveProjects(r.Context())
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, projects)
}

// RecentQuotes godoc
// GET /api/dashboard/recent-quotes?limit=5
func (h *DashboardHandler) RecentQuotes(w http.ResponseWriter, r *http.Request) {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	quotes, err := h.dashboardService.RecentQuotes(r.Context(), limit)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, quotes)
}
