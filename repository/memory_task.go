package repository

import (
	"context"
	"sort"

	"github.com/burakgns/istakip/models"
	"github.com/burakgns/istakip/pkg"
)

// memoryTaskRepo, TaskRepository'nin map tabanlı implementasyonu.
type memoryTaskRepo struct {
	store *MemoryStore
}

// NewMemoryTaskRepo, constructor.
func NewMemoryTaskRepo(store *MemoryStore) TaskRepository {
	return &memoryTaskRepo{store: store}
}

func (r *memoryTaskRepo) Create(_ context.Context, task *models.Task) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	task.ID = s.next("tasks")
	now := s.now()
	task.CreatedAt = now
	task.UpdatedAt = now

	s.tasks[task.ID] = *task
	return nil
}

func (r *memoryTaskRepo) GetByID(_ context.Context, id int64) (*models.Task, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	task, ok := s.tasks[id]
	if !ok {
		return nil, pkg.ErrNotFound
	}
	return &task, nil
}

func (r *memoryTaskRepo) GetAll(_ context.Context) ([]models.Task, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	tasks := make([]models.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		tasks = append(tasks, t)
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].ID < tasks[j].ID })
	return tasks, nil
}

func (r *memoryTaskRepo) ListByAccount(_ context.Context, accountID int64) ([]models.Task, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	var tasks []models.Task
	for _, t := range s.tasks {
		if t.AccountID != nil && *t.AccountID == accountID {
			tasks = append(tasks, t)
		}
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].ID < tasks[j].ID })
	return tasks, nil
}

func (r *memoryTaskRepo) ListByProject(_ context.Context, projectID int64) ([]models.Task, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	var tasks []models.Task
	for _, t := range s.tasks {
		if t.ProjectID != nil && *t.ProjectID == projectID {
			tasks = append(tasks, t)
		}
	}
	sort.Slice(tasks, func(i, j int) bool { return tasks[i].ID < tasks[j].ID })
	return tasks, nil
}

func (r *memoryTaskRepo) Update(_ context.Context, task *models.Task) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.tasks[task.ID]
	if !ok {
		return pkg.ErrNotFound
	}

	task.CreatedAt = existing.CreatedAt
	task.UpdatedAt = s.now()
	s.tasks[task.ID] = *task
	return nil
}

func (r *memoryTaskRepo) Delete(_ context.Context, id int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.tasks[id]; !ok {
		return pkg.ErrNotFound
	}
	delete(s.tasks, id)
	return nil
}
