package repository

import (
	"context"
	"fmt"
	"sort"

	"github.com/burakgns/istakip/models"
	"github.com/burakgns/istakip/pkg"
)

// memoryQuoteRepo, QuoteRepository'nin map tabanlı implementasyonu.
// Teklif ve kalemleri tek value olarak saklanır — map'e yazma tek adım
// olduğu için create/update doğal olarak atomiktir.
type memoryQuoteRepo struct {
	store *MemoryStore
}

// NewMemoryQuoteRepo, constructor.
func NewMemoryQuoteRepo(store *MemoryStore) QuoteRepository {
	return &memoryQuoteRepo{store: store}
}

func (r *memoryQuoteRepo) Create(_ context.Context, quote *models.Quote) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.claimNumber(quote.Number) {
		return fmt.Errorf("%w: quote number %s already in use", pkg.ErrAlreadyExists, quote.Number)
	}

	quote.ID = s.next("quotes")
	now := s.now()
	quote.CreatedAt = now
	quote.UpdatedAt = now

	for i := range quote.Items {
		quote.Items[i].ID = s.next("quote_items")
		quote.Items[i].QuoteID = quote.ID
	}

	s.quotes[quote.ID] = cloneQuote(*quote)
	return nil
}

func (r *memoryQuoteRepo) GetByID(_ context.Context, id int64) (*models.Quote, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	quote, ok := s.quotes[id]
	if !ok {
		return nil, pkg.ErrNotFound
	}
	q := cloneQuote(quote)
	return &q, nil
}

func (r *memoryQuoteRepo) GetAll(_ context.Context) ([]models.Quote, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	quotes := make([]models.Quote, 0, len(s.quotes))
	for _, q := range s.quotes {
		quotes = append(quotes, cloneQuote(q))
	}
	sort.Slice(quotes, func(i, j int) bool { return quotes[i].ID < quotes[j].ID })
	return quotes, nil
}

func (r *memoryQuoteRepo) ListByAccount(_ context.Context, accountID int64) ([]models.Quote, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	var quotes []models.Quote
	for _, q := range s.quotes {
		if q.AccountID == accountID {
			quotes = append(quotes, cloneQuote(q))
		}
	}
	sort.Slice(quotes, func(i, j int) bool { return quotes[i].ID < quotes[j].ID })
	return quotes, nil
}

func (r *memoryQuoteRepo) Update(_ context.Context, quote *models.Quote, replaceItems bool) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.quotes[quote.ID]
	if !ok {
		return pkg.ErrNotFound
	}

	// Numara değiştiyse eski rezervasyonu bırak, yenisini al
	if quote.Number != existing.Number {
		if !s.claimNumber(quote.Number) {
			return fmt.Errorf("%w: quote number %s already in use", pkg.ErrAlreadyExists, quote.Number)
		}
		s.releaseNumber(existing.Number)
	}

	if replaceItems {
		for i := range quote.Items {
			quote.Items[i].ID = s.next("quote_items")
			quote.Items[i].QuoteID = quote.ID
		}
	} else {
		quote.Items = existing.Items
	}

	quote.CreatedAt = existing.CreatedAt
	quote.UpdatedAt = s.now()
	s.quotes[quote.ID] = cloneQuote(*quote)
	return nil
}

func (r *memoryQuoteRepo) Delete(_ context.Context, id int64) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	quote, ok := s.quotes[id]
	if !ok {
		return pkg.ErrNotFound
	}
	s.releaseNumber(quote.Number)
	delete(s.quotes, id)
	return nil
}

func (r *memoryQuoteRepo) NextNumber(_ context.Context, prefix string, year int) (string, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.nextNumber(prefix, year), nil
}

func (r *memoryQuoteRepo) CountByStatus(_ context.Context) (map[models.QuoteStatus]int, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := make(map[models.QuoteStatus]int)
	for _, q := range s.quotes {
		counts[q.Status]++
	}
	return counts, nil
}

// cloneQuote, items slice'ını da kopyalar — value copy slice backing
// array'ini paylaşır, o yüzden derin kopya şarttır.
func cloneQuote(q models.Quote) models.Quote {
	items := make([]models.QuoteItem, len(q.Items))
	copy(items, q.Items)
	q.Items = items
	return q
}
