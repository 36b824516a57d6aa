package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/burakgns/istakip/models"
	"github.com/burakgns/istakip/pkg"
	"github.com/burakgns/istakip/repository"
	"github.com/burakgns/istakip/ws"
)

// ProjectService, proje iş mantığı interface'i.
type ProjectService interface {
	Create(ctx context.Context, req *models.CreateProjectRequest) (*models.Project, error)
	GetByID(ctx context.Context, id int64) (*models.Project, error)
	GetAll(ctx context.Context) ([]models.Project, error)
	ListByAccount(ctx context.Context, accountID int64) ([]models.Project, error)
	Update(ctx context.Context, id int64, req *models.UpdateProjectRequest) (*models.Project, error)
	Delete(ctx context.Context, id int64) error
}

type projectService struct {
	projectRepo repository.ProjectRepository
	accountRepo repository.AccountRepository
	quoteRepo   repository.QuoteRepository
	hub         ws.EventPublisher
}

// NewProjectService, constructor — interface döner.
func NewProjectService(
	projectRepo repository.ProjectRepository,
	accountRepo repository.AccountRepository,
	quoteRepo repository.QuoteRepository,
	hub ws.EventPublisher,
) ProjectService {
	return &projectService{
		projectRepo: projectRepo,
		accountRepo: accountRepo,
		quoteRepo:   quoteRepo,
		hub:         hub,
	}
}

// Create, yeni proje oluşturur. Numara boş bırakılmışsa PRJ-YYYY-NNN
// formatında üretilir. QuoteID verilmişse teklifin varlığı kontrol edilir —
// proje genellikle onaylanan bir tekliften açılır.
func (s *projectService) Create(ctx context.Context, req *models.CreateProjectRequest) (*models.Project, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.accountRepo.GetByID(ctx, req.AccountID); err != nil {
		if errors.Is(err, pkg.ErrNotFound) {
			return nil, fmt.Errorf("%w: account %d not found", pkg.ErrBadRequest, req.AccountID)
		}
		return nil, err
	}

	if req.QuoteID != nil {
		if _, err := s.quoteRepo.GetByID(ctx, *req.QuoteID); err != nil {
			if errors.Is(err, pkg.ErrNotFound) {
				return nil, fmt.Errorf("%w: quote %d not found", pkg.ErrBadRequest, *req.QuoteID)
			}
			return nil, err
		}
	}

	year := time.Now().Year()
	if req.StartDate != nil {
		year = req.StartDate.Year()
	}

	generated := req.Number == ""
	number := req.Number
	if generated {
		var err error
		number, err = s.projectRepo.NextNumber(ctx, year)
		if err != nil {
			return nil, fmt.Errorf("failed to generate project number: %w", err)
		}
	}

	project := &models.Project{
		Number:    number,
		Name:      req.Name,
		AccountID: req.AccountID,
		QuoteID:   req.QuoteID,
		Status:    req.Status,
		StartDate: req.StartDate,
		EndDate:   req.EndDate,
		Amount:    req.Amount,
		Currency:  req.Currency,
		Notes:     req.Notes,
	}

	for attempt := 0; ; attempt++ {
		err := s.projectRepo.Create(ctx, project)
		if err == nil {
			break
		}
		// Elle girilen numara çakıştıysa 409 doğru cevaptır. Otomatik
		// üretilen numarayı eşzamanlı bir create kapmış olabilir —
		// bir sonraki boş numarayla tekrar dene.
		if !generated || !errors.Is(err, pkg.ErrAlreadyExists) || attempt >= numberRetries {
			return nil, err
		}
		project.Number, err = s.projectRepo.NextNumber(ctx, year)
		if err != nil {
			return nil, fmt.Errorf("failed to generate project number: %w", err)
		}
	}

	s.publish(ws.OpCreated, project.ID)
	return project, nil
}

func (s *projectService) GetByID(ctx context.Context, id int64) (*models.Project, error) {
	return s.projectRepo.GetByID(ctx, id)
}

func (s *projectService) GetAll(ctx context.Context) ([]models.Project, error) {
	return s.projectRepo.GetAll(ctx)
}

func (s *projectService) ListByAccount(ctx context.Context, accountID int64) ([]models.Project, error) {
	if _, err := s.accountRepo.GetByID(ctx, accountID); err != nil {
		return nil, err
	}
	return s.projectRepo.ListByAccount(ctx, accountID)
}

func (s *projectService) Update(ctx context.Context, id int64, req *models.UpdateProjectRequest) (*models.Project, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	project, err := s.projectRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	req.ApplyTo(project)

	if err := s.projectRepo.Update(ctx, project); err != nil {
		return nil, err
	}

	s.publish(ws.OpUpdated, project.ID)
	return project, nil
}

func (s *projectService) Delete(ctx context.Context, id int64) error {
	if err := s.projectRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.publish(ws.OpDeleted, id)
	return nil
}

func (s *projectService) publish(op ws.Op, id int64) {
	if s.hub != nil {
		s.hub.BroadcastToAll(ws.Event{Op: op, Entity: "project", ID: id})
	}
}
