package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/burakgns/istakip/models"
	"github.com/burakgns/istakip/pkg"
	"github.com/burakgns/istakip/services"
)

// TaskHandler, görev endpoint'lerini yöneten struct.
type TaskHandler struct {
	taskService services.TaskService
}

// NewTaskHandler, constructor.
func NewTaskHandler(taskService services.TaskService) *TaskHandler {
	return &TaskHandler{taskService: taskService}
}

// List godoc
// GET /api/tasks
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	tasks, err := h.taskService.GetAll(r.Context())
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, tasks)
}

// Create godoc
// POST /api/tasks
// created_by alanı istekten değil, auth middleware'ın context'e koyduğu
// kullanıcıdan gelir.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	var createdBy *int64
	if user, ok := r.Context().Value(UserContextKey).(*models.User); ok {
		createdBy = &user.ID
	}

	task, err := h.taskService.Create(r.Context(), &req, createdBy)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusCreated, task)
}

// Get godoc
// GET /api/tasks/{id}
func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	task, err := h.taskService.GetByID(r.Context(), id)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, task)
}

// Update godoc
// PUT /api/tasks/{id}
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	var req models.UpdateTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	task, err := h.taskService.Update(r.Context(), id, &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, task)
}

// UpdateStatus godoc
// PUT /api/tasks/{id}/status
// Kanban sürükle-bırak için hafif endpoint — sadece status değişir.
func (h *TaskHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	var req models.UpdateTaskStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pkg.ErrorWithMessage(w, http.StatusBadRequest, "invalid request body")
		return
	}

	task, err := h.taskService.UpdateStatus(r.Context(), id, &req)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, task)
}

// Delete godoc
// DELETE /api/tasks/{id}
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	if err := h.taskService.Delete(r.Context(), id); err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, map[string]string{"message": "task deleted"})
}

// ListByAccount godoc
// GET /api/accounts/{id}/tasks
func (h *TaskHandler) ListByAccount(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	tasks, err := h.taskService.ListByAccount(r.Context(), id)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, tasks)
}

// ListByProject godoc
// GET /api/projects/{id}/tasks
// Kanban ekranı bir projenin görevlerini bu endpoint'ten çeker.
func (h *TaskHandler) ListByProject(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	tasks, err := h.taskService.ListByProject(r.Context(), id)
	if err != nil {
		pkg.Error(w, err)
		return
	}

	pkg.JSON(w, http.StatusOK, tasks)
}
