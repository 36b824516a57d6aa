package services

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/burakgns/istakip/models"
	"github.com/burakgns/istakip/pkg"
	"github.com/burakgns/istakip/repository"
)

func newQuoteTestEnv(t *testing.T) (QuoteService, AccountService, *models.Account) {
	t.Helper()

	store := repository.NewMemoryStore()
	accountRepo := repository.NewMemoryAccountRepo(store)
	quoteRepo := repository.NewMemoryQuoteRepo(store)
	txnRepo := repository.NewMemoryTransactionRepo(store)

	accountSvc := NewAccountService(accountRepo, txnRepo, nil)
	quoteSvc := NewQuoteService(quoteRepo, accountRepo, nil)

	account, err := accountSvc.Create(context.Background(), &models.CreateAccountRequest{
		Name: "Yılmaz İnşaat Ltd. Şti.",
		Type: models.AccountTypeCustomer,
	})
	require.NoError(t, err)

	return quoteSvc, accountSvc, account
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestComputeLineTotal(t *testing.T) {
	// 2 adet × 100, %10 indirim, %18 KDV → 2×100×0.9×1.18 = 212.40
	total := computeLineTotal(dec("2"), dec("100"), dec("10"), dec("18"))
	assert.True(t, total.Equal(dec("212.4")), "got %s", total)
}

func TestComputeLineTotal_NoDiscountNoTax(t *testing.T) {
	total := computeLineTotal(dec("3"), dec("50"), decimal.Zero, decimal.Zero)
	assert.True(t, total.Equal(dec("150")), "got %s", total)
}

func TestComputeLineTotal_Rounding(t *testing.T) {
	// 1 × 10.005 → 10.01 (2 haneye yuvarlama)
	total := computeLineTotal(dec("1"), dec("10.005"), decimal.Zero, decimal.Zero)
	assert.True(t, total.Equal(dec("10.01")), "got %s", total)
}

func TestQuoteCreate_ComputesItemTotals(t *testing.T) {
	quoteSvc, _, account := newQuoteTestEnv(t)
	ctx := context.Background()

	discount := dec("10")
	tax := dec("18")
	quote, err := quoteSvc.Create(ctx, &models.CreateQuoteRequest{
		Type:      models.QuoteTypeSent,
		AccountID: account.ID,
		Date:      time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
		Items: []models.QuoteItemInput{
			{Description: "Danışmanlık", Quantity: dec("2"), UnitPrice: dec("100"), Discount: &discount, TaxRate: &tax},
			{Description: "Kurulum", Quantity: dec("5"), UnitPrice: dec("200"), TaxRate: &tax},
		},
	})
	require.NoError(t, err)

	require.Len(t, quote.Items, 2)
	assert.True(t, quote.Items[0].LineTotal.Equal(dec("212.4")), "got %s", quote.Items[0].LineTotal)
	assert.True(t, quote.Items[1].LineTotal.Equal(dec("1180")), "got %s", quote.Items[1].LineTotal)
	assert.True(t, quote.Total.Equal(dec("1392.4")), "got %s", quote.Total)

	// nil Discount → 0 kabul edilir
	assert.True(t, quote.Items[1].Discount.IsZero())
}

func TestQuoteCreate_GeneratesSequentialNumbers(t *testing.T) {
	quoteSvc, _, account := newQuoteTestEnv(t)
	ctx := context.Background()
	date := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)

	first, err := quoteSvc.Create(ctx, &models.CreateQuoteRequest{
		Type: models.QuoteTypeSent, AccountID: account.ID, Date: date,
	})
	require.NoError(t, err)
	assert.Equal(t, "TKF-2026-001", first.Number)

	second, err := quoteSvc.Create(ctx, &models.CreateQuoteRequest{
		Type: models.QuoteTypeSent, AccountID: account.ID, Date: date,
	})
	require.NoError(t, err)
	assert.Equal(t, "TKF-2026-002", second.Number)

	// Alınan teklif ayrı seriden numaralanır
	received, err := quoteSvc.Create(ctx, &models.CreateQuoteRequest{
		Type: models.QuoteTypeReceived, AccountID: account.ID, Date: date,
	})
	require.NoError(t, err)
	assert.Equal(t, "ATK-2026-001", received.Number)
}

func TestQuoteCreate_DuplicateManualNumber(t *testing.T) {
	quoteSvc, _, account := newQuoteTestEnv(t)
	ctx := context.Background()
	date := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)

	_, err := quoteSvc.Create(ctx, &models.CreateQuoteRequest{
		Number: "TKF-2026-099", Type: models.QuoteTypeSent, AccountID: account.ID, Date: date,
	})
	require.NoError(t, err)

	_, err = quoteSvc.Create(ctx, &models.CreateQuoteRequest{
		Number: "TKF-2026-099", Type: models.QuoteTypeSent, AccountID: account.ID, Date: date,
	})
	assert.ErrorIs(t, err, pkg.ErrAlreadyExists)
}

// racingQuoteRepo, NextNumber'ın ürettiği ilk aday numarayı rakip bir
// create'e kaptırır — iki eşzamanlı otomatik numaralı create'in yarışını
// deterministik olarak canlandırır.
type racingQuoteRepo struct {
	repository.QuoteRepository
	accountID int64
	raced     bool
}

func (r *racingQuoteRepo) NextNumber(ctx context.Context, prefix string, year int) (string, error) {
	number, err := r.QuoteRepository.NextNumber(ctx, prefix, year)
	if err != nil || r.raced {
		return number, err
	}
	r.raced = true

	rival := &models.Quote{
		Number:    number,
		Type:      models.QuoteTypeSent,
		Status:    models.QuoteStatusPending,
		AccountID: r.accountID,
		Date:      time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
		Currency:  models.CurrencyTRY,
	}
	if err := r.QuoteRepository.Create(ctx, rival); err != nil {
		return "", err
	}
	return number, nil
}

func TestQuoteCreate_RetriesWhenGeneratedNumberTaken(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryStore()
	accountRepo := repository.NewMemoryAccountRepo(store)

	account := &models.Account{Name: "Yılmaz İnşaat Ltd. Şti.", Type: models.AccountTypeCustomer}
	require.NoError(t, accountRepo.Create(ctx, account))

	repo := &racingQuoteRepo{QuoteRepository: repository.NewMemoryQuoteRepo(store), accountID: account.ID}
	quoteSvc := NewQuoteService(repo, accountRepo, nil)

	// Rakip TKF-2026-001'i kapar; kaybeden 409 yemek yerine 002'yi almalı.
	quote, err := quoteSvc.Create(ctx, &models.CreateQuoteRequest{
		Type: models.QuoteTypeSent, AccountID: account.ID,
		Date: time.Date(2026, 5, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, "TKF-2026-002", quote.Number)
}

func TestQuoteCreate_UnknownAccount(t *testing.T) {
	quoteSvc, _, _ := newQuoteTestEnv(t)

	_, err := quoteSvc.Create(context.Background(), &models.CreateQuoteRequest{
		Type: models.QuoteTypeSent, AccountID: 999, Date: time.Now(),
	})
	assert.ErrorIs(t, err, pkg.ErrBadRequest)
}

func TestQuoteUpdate_ReplacesItemsAndRecomputesTotal(t *testing.T) {
	quoteSvc, _, account := newQuoteTestEnv(t)
	ctx := context.Background()

	quote, err := quoteSvc.Create(ctx, &models.CreateQuoteRequest{
		Type: models.QuoteTypeSent, AccountID: account.ID, Date: time.Now(),
		Items: []models.QuoteItemInput{
			{Description: "Eski kalem", Quantity: dec("1"), UnitPrice: dec("100")},
		},
	})
	require.NoError(t, err)
	require.True(t, quote.Total.Equal(dec("100")))

	newItems := []models.QuoteItemInput{
		{Description: "Yeni kalem", Quantity: dec("4"), UnitPrice: dec("25")},
		{Description: "İkinci kalem", Quantity: dec("1"), UnitPrice: dec("50")},
	}
	updated, err := quoteSvc.Update(ctx, quote.ID, &models.UpdateQuoteRequest{Items: &newItems})
	require.NoError(t, err)

	require.Len(t, updated.Items, 2)
	assert.True(t, updated.Total.Equal(dec("150")), "got %s", updated.Total)
	assert.Equal(t, "Yeni kalem", updated.Items[0].Description)
}

func TestQuoteUpdate_NilItemsKeepsExisting(t *testing.T) {
	quoteSvc, _, account := newQuoteTestEnv(t)
	ctx := context.Background()

	quote, err := quoteSvc.Create(ctx, &models.CreateQuoteRequest{
		Type: models.QuoteTypeSent, AccountID: account.ID, Date: time.Now(),
		Items: []models.QuoteItemInput{
			{Description: "Kalem", Quantity: dec("1"), UnitPrice: dec("100")},
		},
	})
	require.NoError(t, err)

	status := models.QuoteStatusApproved
	updated, err := quoteSvc.Update(ctx, quote.ID, &models.UpdateQuoteRequest{Status: &status})
	require.NoError(t, err)

	assert.Equal(t, models.QuoteStatusApproved, updated.Status)
	require.Len(t, updated.Items, 1)
	assert.True(t, updated.Total.Equal(dec("100")))
}

func TestQuoteDelete_ThenGetReturnsNotFound(t *testing.T) {
	quoteSvc, _, account := newQuoteTestEnv(t)
	ctx := context.Background()

	quote, err := quoteSvc.Create(ctx, &models.CreateQuoteRequest{
		Type: models.QuoteTypeSent, AccountID: account.ID, Date: time.Now(),
	})
	require.NoError(t, err)

	require.NoError(t, quoteSvc.Delete(ctx, quote.ID))

	_, err = quoteSvc.GetByID(ctx, quote.ID)
	assert.ErrorIs(t, err, pkg.ErrNotFound)

	// Silinen teklif reddedilmez, tekrar silinirse not found
	assert.ErrorIs(t, quoteSvc.Delete(ctx, quote.ID), pkg.ErrNotFound)
}

func TestQuoteGeneratePDF(t *testing.T) {
	quoteSvc, _, account := newQuoteTestEnv(t)
	ctx := context.Background()

	quote, err := quoteSvc.Create(ctx, &models.CreateQuoteRequest{
		Type: models.QuoteTypeSent, AccountID: account.ID, Date: time.Now(),
		Items: []models.QuoteItemInput{
			{Description: "İş kalemi", Quantity: dec("2"), UnitPrice: dec("1500")},
		},
	})
	require.NoError(t, err)

	result, err := quoteSvc.GeneratePDF(ctx, quote.ID)
	require.NoError(t, err)
	require.NotEmpty(t, result.Data)
	assert.Equal(t, "%PDF", string(result.Data[:4]))

	// Dosya adını handler buradan kurar — numara içerikle birlikte gelir.
	assert.Equal(t, quote.Number, result.Number)
}
