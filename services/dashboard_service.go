package services

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/burakgns/istakip/models"
	"github.com/burakgns/istakip/repository"
)

// DashboardService, ana ekranın özet verilerini türetir.
// Hiçbir dashboard verisi saklanmaz — her istek canlı kayıtlardan hesaplanır.
type DashboardService interface {
	Stats(ctx context.Context) (*DashboardStats, error)
	// Activities, son değişen kayıtları tek bir akışta döner (en yeni önce).
	Activities(ctx context.Context, limit int) ([]Activity, error)
	// UpcomingTasks, önümüzdeki 7 gün içinde son tarihi dolan,
	// tamamlanmamış görevleri döner (son tarihe göre artan).
	UpcomingTasks(ctx context.Context) ([]models.Task, error)
	ActiveProjects(ctx context.Context) ([]models.Project, error)
	// RecentQuotes, en son oluşturulan teklifleri döner (en yeni önce).
	RecentQuotes(ctx context.Context, limit int) ([]models.Quote, error)
}

// DashboardStats, ana ekrandaki sayaç kartları.
// Aylık gelir/gider içinde bulunulan takvim ayına aittir.
type DashboardStats struct {
	TotalAccounts  int             `json:"total_accounts"`
	PendingQuotes  int             `json:"pending_quotes"`
	ActiveProjects int             `json:"active_projects"`
	OpenTasks      int             `json:"open_tasks"`
	MonthlyIncome  decimal.Decimal `json:"monthly_income"`
	MonthlyExpense decimal.Decimal `json:"monthly_expense"`
}

// Activity, dashboard'daki "son hareketler" akışının tek satırı.
type Activity struct {
	Entity string    `json:"entity"` // "quote", "project", "task", "transaction"
	ID     int64     `json:"id"`
	Title  string    `json:"title"`
	Date   time.Time `json:"date"` // kaydın updated_at değeri
}

type dashboardService struct {
	accountRepo repository.AccountRepository
	quoteRepo   repository.QuoteRepository
	projectRepo repository.ProjectRepository
	taskRepo    repository.TaskRepository
	txnRepo     repository.TransactionRepository
	now         func() time.Time
}

// NewDashboardService, constructor — interface döner.
func NewDashboardService(
	accountRepo repository.AccountRepository,
	quoteRepo repository.QuoteRepository,
	projectRepo repository.ProjectRepository,
	taskRepo repository.TaskRepository,
	txnRepo repository.TransactionRepository,
) DashboardService {
	return &dashboardService{
		accountRepo: accountRepo,
		quoteRepo:   quoteRepo,
		projectRepo: projectRepo,
		taskRepo:    taskRepo,
		txnRepo:     txnRepo,
		now:         time.Now,
	}
}

// Stats, sayaç kartlarını doldurur.
func (s *dashboardService) Stats(ctx context.Context) (*DashboardStats, error) {
	totalAccounts, err := s.accountRepo.Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count accounts: %w", err)
	}

	quoteCounts, err := s.quoteRepo.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count quotes: %w", err)
	}

	projectCounts, err := s.projectRepo.CountByStatus(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count projects: %w", err)
	}

	tasks, err := s.taskRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	openTasks := 0
	for _, t := range tasks {
		if t.Status != models.TaskStatusCompleted {
			openTasks++
		}
	}

	// İçinde bulunulan takvim ayının gelir/gider toplamı
	now := s.now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	txns, err := s.txnRepo.ListSince(ctx, monthStart)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	income, expense := decimal.Zero, decimal.Zero
	for _, txn := range txns {
		switch txn.Type {
		case models.TransactionTypeDebit:
			income = income.Add(txn.Amount)
		case models.TransactionTypeCredit:
			expense = expense.Add(txn.Amount)
		}
	}

	return &DashboardStats{
		TotalAccounts:  totalAccounts,
		PendingQuotes:  quoteCounts[models.QuoteStatusPending],
		ActiveProjects: projectCounts[models.ProjectStatusActive],
		OpenTasks:      openTasks,
		MonthlyIncome:  income,
		MonthlyExpense: expense,
	}, nil
}

// Activities, teklif/proje/görev/hareket kayıtlarını updated_at'e göre
// tek akışta birleştirir. limit ≤ 0 ise 10 kullanılır.
func (s *dashboardService) Activities(ctx context.Context, limit int) ([]Activity, error) {
	if limit <= 0 {
		limit = 10
	}

	var activities []Activity

	quotes, err := s.quoteRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, q := range quotes {
		activities = append(activities, Activity{Entity: "quote", ID: q.ID, Title: q.Number, Date: q.UpdatedAt})
	}

	projects, err := s.projectRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, p := range projects {
		activities = append(activities, Activity{Entity: "project", ID: p.ID, Title: p.Name, Date: p.UpdatedAt})
	}

	tasks, err := s.taskRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, t := range tasks {
		activities = append(activities, Activity{Entity: "task", ID: t.ID, Title: t.Title, Date: t.UpdatedAt})
	}

	txns, err := s.txnRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, txn := range txns {
		title := string(txn.Type) + " " + txn.Amount.StringFixed(2)
		if txn.Description != nil {
			title = *txn.Description
		}
		activities = append(activities, Activity{Entity: "transaction", ID: txn.ID, Title: title, Date: txn.UpdatedAt})
	}

	sort.Slice(activities, func(i, j int) bool {
		return activities[i].Date.After(activities[j].Date)
	})

	if len(activities) > limit {
		activities = activities[:limit]
	}
	if activities == nil {
		activities = []Activity{} // null yerine boş dizi — frontend parsing kolaylığı
	}
	return activities, nil
}

func (s *dashboardService) UpcomingTasks(ctx context.Context) ([]models.Task, error) {
	tasks, err := s.taskRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	now := s.now()
	horizon := now.AddDate(0, 0, 7)

	upcoming := make([]models.Task, 0)
	for _, t := range tasks {
		if t.Status == models.TaskStatusCompleted || t.DueDate == nil {
			continue
		}
		if t.DueDate.Before(horizon) {
			upcoming = append(upcoming, t)
		}
	}

	sort.Slice(upcoming, func(i, j int) bool {
		return upcoming[i].DueDate.Before(*upcoming[j].DueDate)
	})

	return upcoming, nil
}

func (s *dashboardService) ActiveProjects(ctx context.Context) ([]models.Project, error) {
	return s.projectRepo.ListByStatus(ctx, models.ProjectStatusActive)
}

func (s *dashboardService) RecentQuotes(ctx context.Context, limit int) ([]models.Quote, error) {
	if limit <= 0 {
		limit = 5
	}

	quotes, err := s.quoteRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	sort.Slice(quotes, func(i, j int) bool {
		return quotes[i].CreatedAt.After(quotes[j].CreatedAt)
	})

	if len(quotes) > limit {
		quotes = quotes[:limit]
	}
	return quotes, nil
}
