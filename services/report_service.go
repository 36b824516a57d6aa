package services

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/burakgns/istakip/models"
	"github.com/burakgns/istakip/repository"
)

// ReportService, rapor ekranının verilerini türetir.
type ReportService interface {
	// Financial, içinde bulunulan ay dahil son 6 takvim ayının
	// gelir/gider/kâr dökümünü döner (eski aydan yeniye).
	Financial(ctx context.Context) ([]MonthlyFinancial, error)
	// Projects, proje durum dağılımını ve durum başına toplam tutarı döner.
	Projects(ctx context.Context) (*ProjectReport, error)
	// Quotes, teklif durum dağılımını ve onay oranını döner.
	Quotes(ctx context.Context) (*QuoteReport, error)
}

// MonthlyFinancial, bir takvim ayının finansal özeti.
// Gelir borç (debit) hareketlerinden, gider alacak (credit)
// hareketlerinden toplanır; Profit = Income − Expense.
type MonthlyFinancial struct {
	Month   string          `json:"month"` // "2026-08" formatında
	Income  decimal.Decimal `json:"income"`
	Expense decimal.Decimal `json:"expense"`
	Profit  decimal.Decimal `json:"profit"`
}

// ProjectReport, proje raporunun payload'ı.
type ProjectReport struct {
	CountByStatus  map[models.ProjectStatus]int             `json:"count_by_status"`
	AmountByStatus map[models.ProjectStatus]decimal.Decimal `json:"amount_by_status"`
	Total          int                                      `json:"total"`
}

// QuoteReport, teklif raporunun payload'ı.
// ApprovalRate = approved / (approved + rejected), yüzde olarak 2 hane.
// Hiç sonuçlanmış teklif yoksa 0 döner.
type QuoteReport struct {
	CountByStatus map[models.QuoteStatus]int `json:"count_by_status"`
	Total         int                        `json:"total"`
	ApprovalRate  decimal.Decimal            `json:"approval_rate"`
}

type reportService struct {
	quoteRepo   repository.QuoteRepository
	projectRepo repository.ProjectRepository
	txnRepo     repository.TransactionRepository
	now         func() time.Time
}

// NewReportService, constructor — interface döner.
func NewReportService(
	quoteRepo repository.QuoteRepository,
	projectRepo repository.ProjectRepository,
	txnRepo repository.TransactionRepository,
) ReportService {
	return &reportService{
		quoteRepo:   quoteRepo,
		projectRepo: projectRepo,
		txnRepo:     txnRepo,
		now:         time.Now,
	}
}

// Financial, 6 aylık pencereyi tek sorguyla çekip ay ay kovalara dağıtır.
// Hareketi olmayan aylar sıfır satır olarak yine de döner — grafik eksende
// boşluk istemez.
func (s *reportService) Financial(ctx context.Context) ([]MonthlyFinancial, error) {
	now := s.now()
	// Pencere başlangıcı: 5 ay önceki ayın ilk günü
	windowStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -5, 0)

	txns, err := s.txnRepo.ListSince(ctx, windowStart)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	type bucket struct {
		income  decimal.Decimal
		expense decimal.Decimal
	}
	buckets := make(map[string]*bucket, 6)

	months := make([]string, 0, 6)
	for i := 0; i < 6; i++ {
		m := windowStart.AddDate(0, i, 0)
		key := m.Format("2006-01")
		months = append(months, key)
		buckets[key] = &bucket{income: decimal.Zero, expense: decimal.Zero}
	}

	for _, txn := range txns {
		b, ok := buckets[txn.Date.Format("2006-01")]
		if !ok {
			continue // pencere sınırındaki artık kayıtlar
		}
		switch txn.Type {
		case models.TransactionTypeDebit:
			b.income = b.income.Add(txn.Amount)
		case models.TransactionTypeCredit:
			b.expense = b.expense.Add(txn.Amount)
		}
	}

	result := make([]MonthlyFinancial, 0, 6)
	for _, key := range months {
		b := buckets[key]
		result = append(result, MonthlyFinancial{
			Month:   key,
			Income:  b.income,
			Expense: b.expense,
			Profit:  b.income.Sub(b.expense),
		})
	}
	return result, nil
}

func (s *reportService) Projects(ctx context.Context) (*ProjectReport, error) {
	counts, err := s.projectRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	projects, err := s.projectRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	amounts := make(map[models.ProjectStatus]decimal.Decimal)
	for _, p := range projects {
		amounts[p.Status] = amounts[p.Status].Add(p.Amount)
	}

	return &ProjectReport{
		CountByStatus:  counts,
		AmountByStatus: amounts,
		Total:          len(projects),
	}, nil
}

func (s *reportService) Quotes(ctx context.Context) (*QuoteReport, error) {
	counts, err := s.quoteRepo.CountByStatus(ctx)
	if err != nil {
		return nil, err
	}

	total := 0
	for _, n := range counts {
		total += n
	}

	approved := counts[models.QuoteStatusApproved]
	rejected := counts[models.QuoteStatusRejected]
	rate := decimal.Zero
	if decided := approved + rejected; decided > 0 {
		rate = decimal.NewFromInt(int64(approved * 100)).
			Div(decimal.NewFromInt(int64(decided))).
			Round(2)
	}

	return &QuoteReport{
		CountByStatus: counts,
		Total:         total,
		ApprovalRate:  rate,
	}, nil
}
