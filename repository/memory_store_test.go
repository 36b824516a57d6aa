package repository

import (
	"context"
	"strconv"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/burakgns/istakip/models"
	"github.com/burakgns/istakip/pkg"
)

func TestSeededStore(t *testing.T) {
	store, err := NewSeededMemoryStore()
	require.NoError(t, err)
	ctx := context.Background()
	year := time.Now().UTC().Year()

	// Seed kullanıcısı admin / admin123 ile giriş yapılabilmeli
	admin, err := NewMemoryUserRepo(store).GetByUsername(ctx, "admin")
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte("admin123")))

	accounts, err := NewMemoryAccountRepo(store).GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, accounts, 2)

	quotes, err := NewMemoryQuoteRepo(store).GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, quotes, 1)
	assert.Equal(t, "TKF-"+strconv.Itoa(year)+"-001", quotes[0].Number)
	assert.True(t, quotes[0].Total.Equal(decimal.RequireFromString("4366")))
	assert.Len(t, quotes[0].Items, 2)

	projects, err := NewMemoryProjectRepo(store).GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 1)
	assert.Equal(t, models.ProjectStatusActive, projects[0].Status)
	require.NotNil(t, projects[0].QuoteID)
	assert.Equal(t, quotes[0].ID, *projects[0].QuoteID)

	tasks, err := NewMemoryTaskRepo(store).GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, tasks, 3)

	txns, err := NewMemoryTransactionRepo(store).ListByAccount(ctx, accounts[0].ID)
	require.NoError(t, err)
	require.Len(t, txns, 2)
	assert.Equal(t, models.TransactionTypeDebit, txns[0].Type)
	assert.True(t, txns[0].Amount.Equal(decimal.NewFromInt(5000)))
}

func TestSequentialIDsPerFamily(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	accountRepo := NewMemoryAccountRepo(store)
	taskRepo := NewMemoryTaskRepo(store)

	a1 := &models.Account{Name: "Bir", Type: models.AccountTypeCustomer}
	a2 := &models.Account{Name: "İki", Type: models.AccountTypeCustomer}
	require.NoError(t, accountRepo.Create(ctx, a1))
	require.NoError(t, accountRepo.Create(ctx, a2))
	assert.Equal(t, int64(1), a1.ID)
	assert.Equal(t, int64(2), a2.ID)

	// Aileler bağımsız sayar
	task := &models.Task{Title: "İlk görev", Status: models.TaskStatusTodo, Priority: models.TaskPriorityMedium}
	require.NoError(t, taskRepo.Create(ctx, task))
	assert.Equal(t, int64(1), task.ID)

	assert.False(t, a1.CreatedAt.IsZero())
	assert.Equal(t, a1.CreatedAt, a1.UpdatedAt)
}

func TestQuoteNumberLifecycle(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	repo := NewMemoryQuoteRepo(store)

	q1 := &models.Quote{
		Number: "TKF-2026-001", Type: models.QuoteTypeSent,
		Status: models.QuoteStatusPending, AccountID: 1,
		Date: time.Now(), Currency: models.CurrencyTRY,
	}
	require.NoError(t, repo.Create(ctx, q1))

	// Alınmış numara ilk boş slota atlar
	next, err := repo.NextNumber(ctx, "TKF", 2026)
	require.NoError(t, err)
	assert.Equal(t, "TKF-2026-002", next)

	// Aynı numarayla ikinci kayıt reddedilir
	dup := &models.Quote{
		Number: "TKF-2026-001", Type: models.QuoteTypeSent,
		Status: models.QuoteStatusPending, AccountID: 1,
		Date: time.Now(), Currency: models.CurrencyTRY,
	}
	assert.ErrorIs(t, repo.Create(ctx, dup), pkg.ErrAlreadyExists)

	// Silinince numara serbest kalır
	require.NoError(t, repo.Delete(ctx, q1.ID))
	next, err = repo.NextNumber(ctx, "TKF", 2026)
	require.NoError(t, err)
	assert.Equal(t, "TKF-2026-001", next)
}

func TestQuoteCloneIsolation(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	repo := NewMemoryQuoteRepo(store)

	quote := &models.Quote{
		Number: "TKF-2026-001", Type: models.QuoteTypeSent,
		Status: models.QuoteStatusPending, AccountID: 1,
		Date: time.Now(), Currency: models.CurrencyTRY,
		Items: []models.QuoteItem{{
			Description: "Orijinal kalem",
			Quantity:    decimal.NewFromInt(1),
			Unit:        "adet",
			UnitPrice:   decimal.NewFromInt(100),
			LineTotal:   decimal.NewFromInt(100),
		}},
	}
	require.NoError(t, repo.Create(ctx, quote))

	got, err := repo.GetByID(ctx, quote.ID)
	require.NoError(t, err)

	// Dönen kopyayı bozmak store'u etkilememeli
	got.Items[0].Description = "Kurcalanmış"

	fresh, err := repo.GetByID(ctx, quote.ID)
	require.NoError(t, err)
	assert.Equal(t, "Orijinal kalem", fresh.Items[0].Description)
}

func TestMissingRecordsReturnNotFound(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()

	_, err := NewMemoryAccountRepo(store).GetByID(ctx, 42)
	assert.ErrorIs(t, err, pkg.ErrNotFound)

	assert.ErrorIs(t, NewMemoryAccountRepo(store).Delete(ctx, 42), pkg.ErrNotFound)
	assert.ErrorIs(t, NewMemoryTaskRepo(store).Delete(ctx, 42), pkg.ErrNotFound)
	assert.ErrorIs(t, NewMemoryProjectRepo(store).Update(ctx, &models.Project{ID: 42}), pkg.ErrNotFound)
}

func TestUserDuplicateUsername(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	repo := NewMemoryUserRepo(store)

	require.NoError(t, repo.Create(ctx, &models.User{Username: "burak", PasswordHash: "x", Name: "Burak"}))
	err := repo.Create(ctx, &models.User{Username: "burak", PasswordHash: "y", Name: "Diğer Burak"})
	assert.ErrorIs(t, err, pkg.ErrAlreadyExists)
}

func TestTransactionListSinceAndOrder(t *testing.T) {
	store := NewMemoryStore()
	ctx := context.Background()
	repo := NewMemoryTransactionRepo(store)

	day := func(d int) time.Time { return time.Date(2026, 8, d, 0, 0, 0, 0, time.UTC) }

	// Ekleme sırası kasıtlı olarak tarih sırasının tersi
	for _, d := range []int{20, 5, 12} {
		require.NoError(t, repo.Create(ctx, &models.Transaction{
			AccountID: 1, Type: models.TransactionTypeDebit,
			Amount: decimal.NewFromInt(int64(d)), Date: day(d),
		}))
	}

	txns, err := repo.ListSince(ctx, day(10))
	require.NoError(t, err)
	require.Len(t, txns, 2)
	assert.Equal(t, day(12), txns[0].Date)
	assert.Equal(t, day(20), txns[1].Date)
}
