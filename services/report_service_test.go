package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/burakgns/istakip/models"
	"github.com/burakgns/istakip/repository"
)

// newReportTestEnv, rapor testleri için sabit "şimdi" ile kurulum yapar.
func newReportTestEnv(t *testing.T, now time.Time) (ReportService, TransactionService, QuoteService, ProjectService, *models.Account) {
	t.Helper()

	store := repository.NewMemoryStore()
	accountRepo := repository.NewMemoryAccountRepo(store)
	quoteRepo := repository.NewMemoryQuoteRepo(store)
	projectRepo := repository.NewMemoryProjectRepo(store)
	txnRepo := repository.NewMemoryTransactionRepo(store)

	accountSvc := NewAccountService(accountRepo, txnRepo, nil)
	txnSvc := NewTransactionService(txnRepo, accountRepo, nil)
	quoteSvc := NewQuoteService(quoteRepo, accountRepo, nil)
	projectSvc := NewProjectService(projectRepo, accountRepo, quoteRepo, nil)

	svc := NewReportService(quoteRepo, projectRepo, txnRepo).(*reportService)
	svc.now = func() time.Time { return now }

	account, err := accountSvc.Create(context.Background(), &models.CreateAccountRequest{
		Name: "Test Müşteri", Type: models.AccountTypeCustomer,
	})
	require.NoError(t, err)

	return svc, txnSvc, quoteSvc, projectSvc, account
}

func TestFinancialReport_SixMonthWindow(t *testing.T) {
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)
	reportSvc, txnSvc, _, _, account := newReportTestEnv(t, now)
	ctx := context.Background()

	// Mart (pencere içi, ilk ay): gelir 1000
	_, err := txnSvc.Create(ctx, &models.CreateTransactionRequest{
		AccountID: account.ID, Type: models.TransactionTypeDebit,
		Amount: dec("1000"), Date: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	// Ağustos (içinde bulunulan ay): gelir 500, gider 200
	_, err = txnSvc.Create(ctx, &models.CreateTransactionRequest{
		AccountID: account.ID, Type: models.TransactionTypeDebit,
		Amount: dec("500"), Date: time.Date(2026, 8, 3, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	_, err = txnSvc.Create(ctx, &models.CreateTransactionRequest{
		AccountID: account.ID, Type: models.TransactionTypeCredit,
		Amount: dec("200"), Date: time.Date(2026, 8, 7, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	report, err := reportSvc.Financial(ctx)
	require.NoError(t, err)
	require.Len(t, report, 6)

	assert.Equal(t, "2026-03", report[0].Month)
	assert.Equal(t, "2026-08", report[5].Month)

	assert.True(t, report[0].Income.Equal(dec("1000")))
	assert.True(t, report[0].Profit.Equal(dec("1000")))

	// Hareketsiz aylar sıfır satır olarak döner
	assert.True(t, report[1].Income.IsZero())
	assert.True(t, report[1].Expense.IsZero())

	assert.True(t, report[5].Income.Equal(dec("500")))
	assert.True(t, report[5].Expense.Equal(dec("200")))
	assert.True(t, report[5].Profit.Equal(dec("300")))
}

func TestQuoteReport_ApprovalRate(t *testing.T) {
	now := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	reportSvc, _, quoteSvc, _, account := newReportTestEnv(t, now)
	ctx := context.Background()

	mk := func(status models.QuoteStatus) {
		_, err := quoteSvc.Create(ctx, &models.CreateQuoteRequest{
			Type: models.QuoteTypeSent, Status: status,
			AccountID: account.ID, Date: now,
		})
		require.NoError(t, err)
	}
	mk(models.QuoteStatusApproved)
	mk(models.QuoteStatusApproved)
	mk(models.QuoteStatusApproved)
	mk(models.QuoteStatusRejected)
	mk(models.QuoteStatusPending)

	report, err := reportSvc.Quotes(ctx)
	require.NoError(t, err)

	assert.Equal(t, 5, report.Total)
	assert.Equal(t, 3, report.CountByStatus[models.QuoteStatusApproved])
	assert.Equal(t, 1, report.CountByStatus[models.QuoteStatusPending])
	// 3 onay / 4 sonuçlanmış = %75
	assert.True(t, report.ApprovalRate.Equal(dec("75")), "got %s", report.ApprovalRate)
}

func TestQuoteReport_NoDecidedQuotes(t *testing.T) {
	now := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	reportSvc, _, quoteSvc, _, account := newReportTestEnv(t, now)
	ctx := context.Background()

	_, err := quoteSvc.Create(ctx, &models.CreateQuoteRequest{
		Type: models.QuoteTypeSent, AccountID: account.ID, Date: now,
	})
	require.NoError(t, err)

	report, err := reportSvc.Quotes(ctx)
	require.NoError(t, err)
	assert.True(t, report.ApprovalRate.IsZero())
}

func TestProjectReport_AmountsByStatus(t *testing.T) {
	now := time.Date(2026, 8, 15, 0, 0, 0, 0, time.UTC)
	reportSvc, _, _, projectSvc, account := newReportTestEnv(t, now)
	ctx := context.Background()

	_, err := projectSvc.Create(ctx, &models.CreateProjectRequest{
		Name: "Aktif proje", AccountID: account.ID,
		Status: models.ProjectStatusActive, Amount: dec("10000"),
	})
	require.NoError(t, err)

	_, err = projectSvc.Create(ctx, &models.CreateProjectRequest{
		Name: "Biten proje", AccountID: account.ID,
		Status: models.ProjectStatusCompleted, Amount: dec("2500"),
	})
	require.NoError(t, err)

	report, err := reportSvc.Projects(ctx)
	require.NoError(t, err)

	assert.Equal(t, 2, report.Total)
	assert.Equal(t, 1, report.CountByStatus[models.ProjectStatusActive])
	assert.True(t, report.AmountByStatus[models.ProjectStatusActive].Equal(dec("10000")))
	assert.True(t, report.AmountByStatus[models.ProjectStatusCompleted].Equal(dec("2500")))
}
