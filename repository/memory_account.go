package repository

import (
	"context"
	"sort"

	"github.com/burakgns/istakip/models"
	"github.com/burakgns/istakip/pkg"
)

// memoryAccountRepo, AccountRepository'nin map tabanlı implementasyonu.
// Map'ler value tipinde Account tutar — okuma yolunda kopya dönmek,
// çağıranın store'un iç state'ini mutate etmesini engeller.
type memoryAccountRepo struct {
	store *MemoryStore
}

// NewMemoryAccountRepo, constructor.
func NewMemoryAccountRepo(store *MemoryStore) AccountRepository {
	return &memoryAccountRepo{store: store}
}

func (r *memoryAccountRepo) Create(_ context.Context, account *models.Account) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	account.ID = s.next("accounts")
	now := s.now()
	account.CreatedAt = now
	account.UpdatedAt = now

	s.accounts[account.ID] = *account
	return nil
}

func (r *memoryAccountRepo) GetByID(_ context.Context, id int64) (*models.Account, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	account, ok := s.accounts[id]
	if !ok {
		return nil, pkg.ErrNotFound
	}
	return &account, nil
}

func (r *memoryAccountRepo) GetAll(_ context.Context) ([]models.Account, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	accounts := make([]models.Account, 0, len(s.accounts))
	for _, a := range s.accounts {
		accounts = append(accounts, a)
	}
	// Map iterasyonu her çağrıda farklı sırada gelir — id'ye göre sabitle
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].ID < accounts[j].ID })
	return accounts, nil
}

func (r *memoryAccountRepo) Update(_ context.Context, account *models.Account) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.accounts[account.ID]
	if !ok {
		return pkg.ErrNotFound
	}

	account.CreatedAt = existing.CreatedAt
	account.UpdatedAt = s.now()
	s.accounts[account.ID] = *account
	return nil
}

func (r *memoryAccountRepo) Delete(_ context.Context, id int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.accounts[id]; !ok {
		return pkg.ErrNotFound
	}
	delete(s.accounts, id)
	return nil
}

func (r *memoryAccountRepo) Count(_ context.Context) (int, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.accounts), nil
}
