package repository

import (
	"context"

	"github.com/burakgns/istakip/models"
)

// ProjectRepository, proje veritabanı işlemleri için interface.
type ProjectRepository interface {
	Create(ctx context.Context, project *models.Project) error
	GetByID(ctx context.Context, id int64) (*models.Project, error)
	GetAll(ctx context.Context) ([]models.Project, error)
	ListByAccount(ctx context.Context, accountID int64) ([]models.Project, error)
	ListByStatus(ctx context.Context, status models.ProjectStatus) ([]models.Project, error)
	Update(ctx context.Context, project *models.Project) error
	Delete(ctx context.Context, id int64) error
	// NextNumber, verilen yıl için sıradaki PRJ- numarasını üretir.
	NextNumber(ctx context.Context, year int) (string, error)
	CountByStatus(ctx context.Context) (map[models.ProjectStatus]int, error)
}
