package models

import (
	"strings"
	"time"

	"github.com/burakgns/istakip/pkg"
)

// TaskStatus, kanban board'daki üç kolonu temsil eder.
// Geçişler serbesttir: herhangi bir durumdan herhangi birine atanabilir,
// "completed" dahil hiçbir durum sonraki değişiklikleri bloklamaz.
type TaskStatus string

const (
	TaskStatusTodo       TaskStatus = "todo"
	TaskStatusInProgress TaskStatus = "in-progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

// Valid, değerin bilinen bir TaskStatus olup olmadığını kontrol eder.
func (s TaskStatus) Valid() bool {
	switch s {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusCompleted:
		return true
	}
	return false
}

// TaskPriority, görev önceliği.
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
)

// Valid, değerin bilinen bir TaskPriority olup olmadığını kontrol eder.
func (p TaskPriority) Valid() bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh:
		return true
	}
	return false
}

// Task, kanban board üzerinde takip edilen bir iş kalemi.
// Cari hesap, proje, atanan kişi ve oluşturan kişi referansları opsiyoneldir.
type Task struct {
	ID          int64        `json:"id"`
	Title       string       `json:"title"`
	Description *string      `json:"description"`
	Status      TaskStatus   `json:"status"`
	Priority    TaskPriority `json:"priority"`
	DueDate     *time.Time   `json:"due_date"`
	AccountID   *int64       `json:"account_id"`
	ProjectID   *int64       `json:"project_id"`
	AssigneeID  *int64       `json:"assignee_id"`
	CreatedBy   *int64       `json:"created_by"`
	CreatedAt   time.Time    `json:"created_at"`
	UpdatedAt   time.Time    `json:"updated_at"`
}

// CreateTaskRequest, yeni görev için frontend'den gelen veri.
type CreateTaskRequest struct {
	Title       string       `json:"title"`
	Description *string      `json:"description"`
	Status      TaskStatus   `json:"status"`
	Priority    TaskPriority `json:"priority"`
	DueDate     *time.Time   `json:"due_date"`
	AccountID   *int64       `json:"account_id"`
	ProjectID   *int64       `json:"project_id"`
	AssigneeID  *int64       `json:"assignee_id"`
}

// Validate, zorunlu alanları ve enum değerlerini kontrol eder.
func (r *CreateTaskRequest) Validate() error {
	vErr := &pkg.ValidationError{}

	r.Title = strings.TrimSpace(r.Title)
	if r.Title == "" {
		vErr.Add("title", "title is required")
	}
	if r.Status == "" {
		r.Status = TaskStatusTodo
	} else if !r.Status.Valid() {
		vErr.Add("status", "status must be one of: todo, in-progress, completed")
	}
	if r.Priority == "" {
		r.Priority = TaskPriorityMedium
	} else if !r.Priority.Valid() {
		vErr.Add("priority", "priority must be one of: low, medium, high")
	}

	if vErr.Empty() {
		return nil
	}
	return vErr
}

// UpdateTaskRequest, kısmi güncelleme için — nil alanlar korunur.
type UpdateTaskRequest struct {
	Title       *string       `json:"title"`
	Description *string       `json:"description"`
	Status      *TaskStatus   `json:"status"`
	Priority    *TaskPriority `json:"priority"`
	DueDate     *time.Time    `json:"due_date"`
	AccountID   *int64        `json:"account_id"`
	ProjectID   *int64        `json:"project_id"`
	AssigneeID  *int64        `json:"assignee_id"`
}

// Validate, gönderilen alanların geçerliliğini kontrol eder.
func (r *UpdateTaskRequest) Validate() error {
	vErr := &pkg.ValidationError{}

	if r.Title != nil {
		*r.Title = strings.TrimSpace(*r.Title)
		if *r.Title == "" {
			vErr.Add("title", "title cannot be empty")
		}
	}
	if r.Status != nil && !r.Status.Valid() {
		vErr.Add("status", "status must be one of: todo, in-progress, completed")
	}
	if r.Priority != nil && !r.Priority.Valid() {
		vErr.Add("priority", "priority must be one of: low, medium, high")
	}

	if vErr.Empty() {
		return nil
	}
	return vErr
}

// ApplyTo, güncelleme isteğindeki dolu alanları mevcut göreve uygular.
func (r *UpdateTaskRequest) ApplyTo(t *Task) {
	if r.Title != nil {
		t.Title = *r.Title
	}
	if r.Description != nil {
		t.Description = r.Description
	}
	if r.Status != nil {
		t.Status = *r.Status
	}
	if r.Priority != nil {
		t.Priority = *r.Priority
	}
	if r.DueDate != nil {
		t.DueDate = r.DueDate
	}
	if r.AccountID != nil {
		t.AccountID = r.AccountID
	}
	if r.ProjectID != nil {
		t.ProjectID = r.ProjectID
	}
	if r.AssigneeID != nil {
		t.AssigneeID = r.AssigneeID
	}
}

// UpdateTaskStatusRequest, kanban sürükle-bırak'ın kullandığı
// PUT /api/tasks/{id}/status endpoint'inin body'si.
type UpdateTaskStatusRequest struct {
	Status TaskStatus `json:"status"`
}

// Validate, hedef durumun geçerli olduğunu kontrol eder.
func (r *UpdateTaskStatusRequest) Validate() error {
	if !r.Status.Valid() {
		return pkg.NewValidationError("status", "status must be one of: todo, in-progress, completed")
	}
	return nil
}
