package repository

import (
	"context"

	"github.com/burakgns/istakip/models"
)

// TaskRepository, görev veritabanı işlemleri için interface.
type TaskRepository interface {
	Create(ctx context.Context, task *models.Task) error
	GetByID(ctx context.Context, id int64) (*models.Task, error)
	GetAll(ctx context.Context) ([]models.Task, error)
	ListByAccount(ctx context.Context, accountID int64) ([]models.Task, error)
	ListByProject(ctx context.Context, projectID int64) ([]models.Task, error)
	Update(ctx context.Context, task *models.Task) error
	Delete(ctx context.Context, id int64) error
}
