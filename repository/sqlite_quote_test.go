package repository

import (
	"context"
	"io/fs"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/burakgns/istakip/database"
	"github.com/burakgns/istakip/models"
	"github.com/burakgns/istakip/pkg"
)

// newSQLiteTestDB, geçici dosyada migration'ları uygulanmış bir DB açar.
func newSQLiteTestDB(t *testing.T) *database.DB {
	t.Helper()

	migrations, err := fs.Sub(database.EmbeddedMigrations, "migrations")
	require.NoError(t, err)

	db, err := database.New(filepath.Join(t.TempDir(), "istakip.db"), migrations)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func newSQLiteQuoteEnv(t *testing.T) (QuoteRepository, *models.Account) {
	t.Helper()

	db := newSQLiteTestDB(t)
	accountRepo := NewSQLiteAccountRepo(db.Conn)
	quoteRepo := NewSQLiteQuoteRepo(db.Conn)

	account := &models.Account{Name: "Yılmaz İnşaat Ltd. Şti.", Type: models.AccountTypeCustomer}
	require.NoError(t, accountRepo.Create(context.Background(), account))
	return quoteRepo, account
}

func testQuote(accountID int64, number string) *models.Quote {
	return &models.Quote{
		Number:    number,
		Type:      models.QuoteTypeSent,
		Status:    models.QuoteStatusPending,
		AccountID: accountID,
		Date:      time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		Currency:  models.CurrencyTRY,
		Total:     decimal.RequireFromString("212.4"),
		Items: []models.QuoteItem{{
			Description: "Danışmanlık",
			Quantity:    decimal.NewFromInt(3),
			Unit:        "saat",
			UnitPrice:   decimal.NewFromInt(80),
			Discount:    decimal.NewFromInt(25),
			TaxRate:     decimal.NewFromInt(18),
			LineTotal:   decimal.RequireFromString("212.4"),
		}},
	}
}

func TestSQLiteQuoteRoundTrip(t *testing.T) {
	quoteRepo, account := newSQLiteQuoteEnv(t)
	ctx := context.Background()

	quote := testQuote(account.ID, "TKF-2026-001")
	require.NoError(t, quoteRepo.Create(ctx, quote))
	assert.NotZero(t, quote.ID)
	assert.NotZero(t, quote.Items[0].ID)

	got, err := quoteRepo.GetByID(ctx, quote.ID)
	require.NoError(t, err)
	assert.Equal(t, "TKF-2026-001", got.Number)
	assert.True(t, got.Total.Equal(decimal.RequireFromString("212.4")))
	require.Len(t, got.Items, 1)
	assert.Equal(t, quote.ID, got.Items[0].QuoteID)
	assert.True(t, got.Items[0].LineTotal.Equal(decimal.RequireFromString("212.4")))
}

func TestSQLiteQuoteCreate_DuplicateNumber(t *testing.T) {
	quoteRepo, account := newSQLiteQuoteEnv(t)
	ctx := context.Background()

	require.NoError(t, quoteRepo.Create(ctx, testQuote(account.ID, "TKF-2026-001")))

	err := quoteRepo.Create(ctx, testQuote(account.ID, "TKF-2026-001"))
	assert.ErrorIs(t, err, pkg.ErrAlreadyExists)

	// Başarısız create yarım kayıt bırakmamalı
	quotes, err := quoteRepo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, quotes, 1)
}

func TestSQLiteQuoteNextNumber(t *testing.T) {
	quoteRepo, account := newSQLiteQuoteEnv(t)
	ctx := context.Background()

	next, err := quoteRepo.NextNumber(ctx, "TKF", 2026)
	require.NoError(t, err)
	assert.Equal(t, "TKF-2026-001", next)

	require.NoError(t, quoteRepo.Create(ctx, testQuote(account.ID, "TKF-2026-001")))

	next, err = quoteRepo.NextNumber(ctx, "TKF", 2026)
	require.NoError(t, err)
	assert.Equal(t, "TKF-2026-002", next)

	// Alınan teklif serisi bağımsız sayar
	next, err = quoteRepo.NextNumber(ctx, "ATK", 2026)
	require.NoError(t, err)
	assert.Equal(t, "ATK-2026-001", next)
}

func TestSQLiteQuoteNextNumber_FourDigitSuffix(t *testing.T) {
	quoteRepo, account := newSQLiteQuoteEnv(t)
	ctx := context.Background()

	// 999'u aşmış bir seri: suffix artık 4 haneli, sayaç yine ilerlemeli.
	require.NoError(t, quoteRepo.Create(ctx, testQuote(account.ID, "TKF-2026-999")))
	require.NoError(t, quoteRepo.Create(ctx, testQuote(account.ID, "TKF-2026-1000")))

	next, err := quoteRepo.NextNumber(ctx, "TKF", 2026)
	require.NoError(t, err)
	assert.Equal(t, "TKF-2026-1001", next)
}

func TestSQLiteQuoteUpdate_KeepsItemsWhenNotReplacing(t *testing.T) {
	quoteRepo, account := newSQLiteQuoteEnv(t)
	ctx := context.Background()

	quote := testQuote(account.ID, "TKF-2026-001")
	require.NoError(t, quoteRepo.Create(ctx, quote))

	quote.Status = models.QuoteStatusApproved
	quote.Items = nil
	require.NoError(t, quoteRepo.Update(ctx, quote, false))

	got, err := quoteRepo.GetByID(ctx, quote.ID)
	require.NoError(t, err)
	assert.Equal(t, models.QuoteStatusApproved, got.Status)
	assert.Len(t, got.Items, 1)
}

func TestSQLiteQuoteDelete_CascadesItems(t *testing.T) {
	quoteRepo, account := newSQLiteQuoteEnv(t)
	ctx := context.Background()

	quote := testQuote(account.ID, "TKF-2026-001")
	require.NoError(t, quoteRepo.Create(ctx, quote))

	require.NoError(t, quoteRepo.Delete(ctx, quote.ID))

	_, err := quoteRepo.GetByID(ctx, quote.ID)
	assert.ErrorIs(t, err, pkg.ErrNotFound)
	assert.ErrorIs(t, quoteRepo.Delete(ctx, quote.ID), pkg.ErrNotFound)
}
