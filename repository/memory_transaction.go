package repository

import (
	"context"
	"sort"
	"time"

	"github.com/burakgns/istakip/models"
	"github.com/burakgns/istakip/pkg"
)

// memoryTransactionRepo, TransactionRepository'nin map tabanlı implementasyonu.
type memoryTransactionRepo struct {
	store *MemoryStore
}

// NewMemoryTransactionRepo, constructor.
func NewMemoryTransactionRepo(store *MemoryStore) TransactionRepository {
	return &memoryTransactionRepo{store: store}
}

func (r *memoryTransactionRepo) Create(_ context.Context, txn *models.Transaction) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	txn.ID = s.next("transactions")
	now := s.now()
	txn.CreatedAt = now
	txn.UpdatedAt = now

	s.transactions[txn.ID] = *txn
	return nil
}

func (r *memoryTransactionRepo) GetByID(_ context.Context, id int64) (*models.Transaction, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	txn, ok := s.transactions[id]
	if !ok {
		return nil, pkg.ErrNotFound
	}
	return &txn, nil
}

func (r *memoryTransactionRepo) GetAll(_ context.Context) ([]models.Transaction, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	txns := make([]models.Transaction, 0, len(s.transactions))
	for _, t := range s.transactions {
		txns = append(txns, t)
	}
	sortByDate(txns)
	return txns, nil
}

func (r *memoryTransactionRepo) ListByAccount(_ context.Context, accountID int64) ([]models.Transaction, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	var txns []models.Transaction
	for _, t := range s.transactions {
		if t.AccountID == accountID {
			txns = append(txns, t)
		}
	}
	sortByDate(txns)
	return txns, nil
}

func (r *memoryTransactionRepo) ListSince(_ context.Context, from time.Time) ([]models.Transaction, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	var txns []models.Transaction
	for _, t := range s.transactions {
		if !t.Date.Before(from) {
			txns = append(txns, t)
		}
	}
	sortByDate(txns)
	return txns, nil
}

func (r *memoryTransactionRepo) Update(_ context.Context, txn *models.Transaction) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.transactions[txn.ID]
	if !ok {
		return pkg.ErrNotFound
	}

	txn.CreatedAt = existing.CreatedAt
	txn.UpdatedAt = s.now()
	s.transactions[txn.ID] = *txn
	return nil
}

func (r *memoryTransactionRepo) Delete(_ context.Context, id int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.transactions[id]; !ok {
		return pkg.ErrNotFound
	}
	delete(s.transactions, id)
	return nil
}

// sortByDate, hareketleri tarih artan (eşit tarihte id artan) sıraya koyar.
// Yürüyen bakiye hesabının beklediği kanonik sıra budur.
func sortByDate(txns []models.Transaction) {
	sort.Slice(txns, func(i, j int) bool {
		if txns[i].Date.Equal(txns[j].Date) {
			return txns[i].ID < txns[j].ID
		}
		return txns[i].Date.Before(txns[j].Date)
	})
}
