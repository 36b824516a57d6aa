package repository

import (
	"context"
	"fmt"
	"sort"

	"github.com/burakgns/istakip/models"
	"github.com/burakgns/istakip/pkg"
)

// memoryProjectRepo, ProjectRepository'nin map tabanlı implementasyonu.
type memoryProjectRepo struct {
	store *MemoryStore
}

// NewMemoryProjectRepo, constructor.
func NewMemoryProjectRepo(store *MemoryStore) ProjectRepository {
	return &memoryProjectRepo{store: store}
}

func (r *memoryProjectRepo) Create(_ context.Context, project *models.Project) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.claimNumber(project.Number) {
		return fmt.Errorf("%w: project number %s already in use", pkg.ErrAlreadyExists, project.Number)
	}

	project.ID = s.next("projects")
	now := s.now()
	project.CreatedAt = now
	project.UpdatedAt = now

	s.projects[project.ID] = *project
	return nil
}

func (r *memoryProjectRepo) GetByID(_ context.Context, id int64) (*models.Project, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	project, ok := s.projects[id]
	if !ok {
		return nil, pkg.ErrNotFound
	}
	return &project, nil
}

func (r *memoryProjectRepo) GetAll(_ context.Context) ([]models.Project, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	projects := make([]models.Project, 0, len(s.projects))
	for _, p := range s.projects {
		projects = append(projects, p)
	}
	sort.Slice(projects, func(i, j int) bool { return projects[i].ID < projects[j].ID })
	return projects, nil
}

func (r *memoryProjectRepo) ListByAccount(_ context.Context, accountID int64) ([]models.Project, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	var projects []models.Project
	for _, p := range s.projects {
		if p.AccountID == accountID {
			projects = append(projects, p)
		}
	}
	sort.Slice(projects, func(i, j int) bool { return projects[i].ID < projects[j].ID })
	return projects, nil
}

func (r *memoryProjectRepo) ListByStatus(_ context.Context, status models.ProjectStatus) ([]models.Project, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	var projects []models.Project
	for _, p := range s.projects {
		if p.Status == status {
			projects = append(projects, p)
		}
	}
	sort.Slice(projects, func(i, j int) bool { return projects[i].ID < projects[j].ID })
	return projects, nil
}

func (r *memoryProjectRepo) Update(_ context.Context, project *models.Project) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.projects[project.ID]
	if !ok {
		return pkg.ErrNotFound
	}

	if project.Number != existing.Number {
		if !s.claimNumber(project.Number) {
			return fmt.Errorf("%w: project number %s already in use", pkg.ErrAlreadyExists, project.Number)
		}
		s.releaseNumber(existing.Number)
	}

	project.CreatedAt = existing.CreatedAt
	project.UpdatedAt = s.now()
	s.projects[project.ID] = *project
	return nil
}

func (r *memoryProjectRepo) Delete(_ context.Context, id int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	project, ok := s.projects[id]
	if !ok {
		return pkg.ErrNotFound
	}
	s.releaseNumber(project.Number)
	delete(s.projects, id)
	return nil
}

func (r *memoryProjectRepo) NextNumber(_ context.Context, year int) (string, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nextNumber(models.ProjectNumberPrefix, year), nil
}

func (r *memoryProjectRepo) CountByStatus(_ context.Context) (map[models.ProjectStatus]int, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[models.ProjectStatus]int)
	for _, p := range s.projects {
		counts[p.Status]++
	}
	return counts, nil
}
