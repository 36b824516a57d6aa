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

func newDashboardTestEnv(t *testing.T, now time.Time) (DashboardService, *repository.MemoryStore, *models.Account) {
	t.Helper()

	store := repository.NewMemoryStore()
	accountRepo := repository.NewMemoryAccountRepo(store)
	quoteRepo := repository.NewMemoryQuoteRepo(store)
	projectRepo := repository.NewMemoryProjectRepo(store)
	taskRepo := repository.NewMemoryTaskRepo(store)
	txnRepo := repository.NewMemoryTransactionRepo(store)

	svc := NewDashboardService(accountRepo, quoteRepo, projectRepo, taskRepo, txnRepo).(*dashboardService)
	svc.now = func() time.Time { return now }

	account := &models.Account{Name: "Pano Müşterisi", Type: models.AccountTypeCustomer}
	require.NoError(t, accountRepo.Create(context.Background(), account))

	return svc, store, account
}

func TestDashboardStats(t *testing.T) {
	now := time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC)
	svc, store, account := newDashboardTestEnv(t, now)
	ctx := context.Background()

	quoteRepo := repository.NewMemoryQuoteRepo(store)
	projectRepo := repository.NewMemoryProjectRepo(store)
	taskRepo := repository.NewMemoryTaskRepo(store)
	txnRepo := repository.NewMemoryTransactionRepo(store)

	require.NoError(t, quoteRepo.Create(ctx, &models.Quote{
		Number: "TKF-2026-001", Type: models.QuoteTypeSent,
		Status: models.QuoteStatusPending, AccountID: account.ID, Date: now,
	}))
	require.NoError(t, projectRepo.Create(ctx, &models.Project{
		Number: "PRJ-2026-001", Name: "Saha kurulumu",
		AccountID: account.ID, Status: models.ProjectStatusActive,
	}))
	require.NoError(t, taskRepo.Create(ctx, &models.Task{
		Title: "Açık görev", Status: models.TaskStatusTodo, Priority: models.TaskPriorityMedium,
	}))
	require.NoError(t, taskRepo.Create(ctx, &models.Task{
		Title: "Biten görev", Status: models.TaskStatusCompleted, Priority: models.TaskPriorityLow,
	}))

	// Bu ay: gelir 500; geçen ay: gelir 900 (stats'a girmez)
	require.NoError(t, txnRepo.Create(ctx, &models.Transaction{
		AccountID: account.ID, Type: models.TransactionTypeDebit,
		Amount: dec("500"), Date: time.Date(2026, 8, 2, 0, 0, 0, 0, time.UTC),
	}))
	require.NoError(t, txnRepo.Create(ctx, &models.Transaction{
		AccountID: account.ID, Type: models.TransactionTypeDebit,
		Amount: dec("900"), Date: time.Date(2026, 7, 20, 0, 0, 0, 0, time.UTC),
	}))

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)

	assert.Equal(t, 1, stats.TotalAccounts)
	assert.Equal(t, 1, stats.PendingQuotes)
	assert.Equal(t, 1, stats.ActiveProjects)
	assert.Equal(t, 1, stats.OpenTasks)
	assert.True(t, stats.MonthlyIncome.Equal(dec("500")), "got %s", stats.MonthlyIncome)
	assert.True(t, stats.MonthlyExpense.IsZero())
}

func TestDashboardUpcomingTasks(t *testing.T) {
	now := time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC)
	svc, store, _ := newDashboardTestEnv(t, now)
	ctx := context.Background()

	taskRepo := repository.NewMemoryTaskRepo(store)
	mk := func(title string, due time.Time, status models.TaskStatus) {
		require.NoError(t, taskRepo.Create(ctx, &models.Task{
			Title: title, Status: status, Priority: models.TaskPriorityMedium, DueDate: &due,
		}))
	}

	mk("Yarın", now.AddDate(0, 0, 1), models.TaskStatusTodo)
	mk("Gelecek hafta sonrası", now.AddDate(0, 0, 10), models.TaskStatusTodo)
	mk("Bitmiş", now.AddDate(0, 0, 2), models.TaskStatusCompleted)
	mk("Gecikmiş", now.AddDate(0, 0, -3), models.TaskStatusInProgress)

	tasks, err := svc.UpcomingTasks(ctx)
	require.NoError(t, err)

	// 7 günlük pencere + gecikmişler; bitenler ve uzaktakiler hariç
	require.Len(t, tasks, 2)
	assert.Equal(t, "Gecikmiş", tasks[0].Title) // son tarihe göre artan
	assert.Equal(t, "Yarın", tasks[1].Title)
}

func TestDashboardActivities_NewestFirstAndLimited(t *testing.T) {
	now := time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC)
	svc, store, account := newDashboardTestEnv(t, now)
	ctx := context.Background()

	taskRepo := repository.NewMemoryTaskRepo(store)
	quoteRepo := repository.NewMemoryQuoteRepo(store)

	require.NoError(t, taskRepo.Create(ctx, &models.Task{
		Title: "Önce", Status: models.TaskStatusTodo, Priority: models.TaskPriorityLow,
	}))
	time.Sleep(5 * time.Millisecond)
	require.NoError(t, quoteRepo.Create(ctx, &models.Quote{
		Number: "TKF-2026-005", Type: models.QuoteTypeSent,
		Status: models.QuoteStatusPending, AccountID: account.ID, Date: now,
	}))

	activities, err := svc.Activities(ctx, 1)
	require.NoError(t, err)

	require.Len(t, activities, 1)
	assert.Equal(t, "quote", activities[0].Entity)
	assert.Equal(t, "TKF-2026-005", activities[0].Title)
}

func TestDashboardRecentQuotes_Limit(t *testing.T) {
	now := time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC)
	svc, store, account := newDashboardTestEnv(t, now)
	ctx := context.Background()

	quoteRepo := repository.NewMemoryQuoteRepo(store)
	for i := 0; i < 7; i++ {
		require.NoError(t, quoteRepo.Create(ctx, &models.Quote{
			Number: "TKF-2026-" + string(rune('A'+i)), Type: models.QuoteTypeSent,
			Status: models.QuoteStatusPending, AccountID: account.ID, Date: now,
		}))
		time.Sleep(2 * time.Millisecond)
	}

	quotes, err := svc.RecentQuotes(ctx, 0) // 0 → varsayılan 5
	require.NoError(t, err)
	assert.Len(t, quotes, 5)
}
