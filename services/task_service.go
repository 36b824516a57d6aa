package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/burakgns/istakip/models"
	"github.com/burakgns/istakip/pkg"
	"github.com/burakgns/istakip/repository"
	"github.com/burakgns/istakip/ws"
)

// TaskService, görev iş mantığı interface'i.
type TaskService interface {
	Create(ctx context.Context, req *models.CreateTaskRequest, createdBy *int64) (*models.Task, error)
	GetByID(ctx context.Context, id int64) (*models.Task, error)
	GetAll(ctx context.Context) ([]models.Task, error)
	ListByAccount(ctx context.Context, accountID int64) ([]models.Task, error)
	ListByProject(ctx context.Context, projectID int64) ([]models.Task, error)
	Update(ctx context.Context, id int64, req *models.UpdateTaskRequest) (*models.Task, error)
	// UpdateStatus, görevi kanban kolonları arasında taşır.
	// Her yönde geçiş serbesttir — completed'dan todo'ya dönüş dahil.
	UpdateStatus(ctx context.Context, id int64, req *models.UpdateTaskStatusRequest) (*models.Task, error)
	Delete(ctx context.Context, id int64) error
}

type taskService struct {
	taskRepo    repository.TaskRepository
	accountRepo repository.AccountRepository
	projectRepo repository.ProjectRepository
	hub         ws.EventPublisher
}

// NewTaskService, constructor — interface döner.
func NewTaskService(
	taskRepo repository.TaskRepository,
	accountRepo repository.AccountRepository,
	projectRepo repository.ProjectRepository,
	hub ws.EventPublisher,
) TaskService {
	return &taskService{
		taskRepo:    taskRepo,
		accountRepo: accountRepo,
		projectRepo: projectRepo,
		hub:         hub,
	}
}

// Create, yeni görev oluşturur. createdBy, isteği yapan kullanıcının
// id'sidir (auth middleware'den gelir); anonim oluşturma için nil olabilir.
func (s *taskService) Create(ctx context.Context, req *models.CreateTaskRequest, createdBy *int64) (*models.Task, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if req.AccountID != nil {
		if _, err := s.accountRepo.GetByID(ctx, *req.AccountID); err != nil {
			if errors.Is(err, pkg.ErrNotFound) {
				return nil, fmt.Errorf("%w: account %d not found", pkg.ErrBadRequest, *req.AccountID)
			}
			return nil, err
		}
	}
	if req.ProjectID != nil {
		if _, err := s.projectRepo.GetByID(ctx, *req.ProjectID); err != nil {
			if errors.Is(err, pkg.ErrNotFound) {
				return nil, fmt.Errorf("%w: project %d not found", pkg.ErrBadRequest, *req.ProjectID)
			}
			return nil, err
		}
	}

	task := &models.Task{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
		AccountID:   req.AccountID,
		ProjectID:   req.ProjectID,
		AssigneeID:  req.AssigneeID,
		CreatedBy:   createdBy,
	}

	if err := s.taskRepo.Create(ctx, task); err != nil {
		return nil, err
	}

	s.publish(ws.OpCreated, task.ID)
	return task, nil
}

func (s *taskService) GetByID(ctx context.Context, id int64) (*models.Task, error) {
	return s.taskRepo.GetByID(ctx, id)
}

func (s *taskService) GetAll(ctx context.Context) ([]models.Task, error) {
	return s.taskRepo.GetAll(ctx)
}

func (s *taskService) ListByAccount(ctx context.Context, accountID int64) ([]models.Task, error) {
	if _, err := s.accountRepo.GetByID(ctx, accountID); err != nil {
		return nil, err
	}
	return s.taskRepo.ListByAccount(ctx, accountID)
}

func (s *taskService) ListByProject(ctx context.Context, projectID int64) ([]models.Task, error) {
	if _, err := s.projectRepo.GetByID(ctx, projectID); err != nil {
		return nil, err
	}
	return s.taskRepo.ListByProject(ctx, projectID)
}

func (s *taskService) Update(ctx context.Context, id int64, req *models.UpdateTaskRequest) (*models.Task, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	req.ApplyTo(task)

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, err
	}

	s.publish(ws.OpUpdated, task.ID)
	return task, nil
}

// UpdateStatus, kanban sürükle-bırak için hafif endpoint'in arkasındaki
// iş mantığı. Sadece status değişir, diğer alanlar korunur.
func (s *taskService) UpdateStatus(ctx context.Context, id int64, req *models.UpdateTaskStatusRequest) (*models.Task, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	task, err := s.taskRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	task.Status = req.Status

	if err := s.taskRepo.Update(ctx, task); err != nil {
		return nil, err
	}

	s.publish(ws.OpStatusChanged, task.ID)
	return task, nil
}

func (s *taskService) Delete(ctx context.Context, id int64) error {
	if err := s.taskRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.publish(ws.OpDeleted, id)
	return nil
}

func (s *taskService) publish(op ws.Op, id int64) {
	if s.hub != nil {
		s.hub.BroadcastToAll(ws.Event{Op: op, Entity: "task", ID: id})
	}
}
