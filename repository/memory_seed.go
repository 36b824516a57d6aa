package repository

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/burakgns/istakip/models"
)

// NewSeededMemoryStore, örnek verilerle dolu bir in-memory store oluşturur.
// Memory driver'ın varsayılan kurulumudur — uygulama sıfır konfigürasyonla
// açıldığında dashboard ve listeler boş görünmez.
//
// Seed şifresi: admin / admin123 (sadece memory driver'da, DB kurulumunda
// kullanıcılar normal akışla oluşturulur).
func NewSeededMemoryStore() (*MemoryStore, error) {
	s := NewMemoryStore()
	now := s.now()
	year := now.Year()

	// ─── Kullanıcı ───
	hash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash seed password: %w", err)
	}
	admin := models.User{
		ID:           s.next("users"),
		Username:     "admin",
		PasswordHash: string(hash),
		Name:         "Sistem Yöneticisi",
		Email:        "admin@istakip.local",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	s.users[admin.ID] = admin

	// ─── Cari hesaplar ───
	customer := models.Account{
		ID:        s.next("accounts"),
		Name:      "Yılmaz İnşaat Ltd. Şti.",
		Type:      models.AccountTypeCustomer,
		Email:     ptr("info@yilmazinsaat.example"),
		Phone:     ptr("+90 212 555 01 01"),
		TaxNumber: ptr("1234567890"),
		TaxOffice: ptr("Beşiktaş"),
		CreatedAt: now,
		UpdatedAt: now,
	}
	vendor := models.Account{
		ID:        s.next("accounts"),
		Name:      "Demir Yazılım A.Ş.",
		Type:      models.AccountTypeVendor,
		Email:     ptr("satis@demiryazilim.example"),
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.accounts[customer.ID] = customer
	s.accounts[vendor.ID] = vendor

	// ─── Teklif (2 kalemli) ───
	// Kalem toplamları burada elle hesaplı tutulur; servis katmanındaki
	// formülle birebir aynıdır: qty × price × (1 − disc/100) × (1 + tax/100).
	quoteNumber := fmt.Sprintf("TKF-%d-001", year)
	s.numbers[quoteNumber] = struct{}{}
	quote := models.Quote{
		ID:        s.next("quotes"),
		Number:    quoteNumber,
		Type:      models.QuoteTypeSent,
		Status:    models.QuoteStatusApproved,
		AccountID: customer.ID,
		Date:      now.AddDate(0, 0, -20),
		Currency:  models.CurrencyTRY,
		Total:     decimal.RequireFromString("4366"),
		CreatedAt: now,
		UpdatedAt: now,
	}
	quote.Items = []models.QuoteItem{
		{
			ID:          s.next("quote_items"),
			QuoteID:     quote.ID,
			Description: "Şantiye takip yazılımı kurulumu",
			Quantity:    decimal.NewFromInt(2),
			Unit:        "adet",
			UnitPrice:   decimal.NewFromInt(1500),
			Discount:    decimal.NewFromInt(10),
			TaxRate:     decimal.NewFromInt(18),
			LineTotal:   decimal.RequireFromString("3186"), // 2×1500×0.9×1.18
		},
		{
			ID:          s.next("quote_items"),
			QuoteID:     quote.ID,
			Description: "Kullanıcı eğitimi",
			Quantity:    decimal.NewFromInt(5),
			Unit:        "saat",
			UnitPrice:   decimal.NewFromInt(200),
			Discount:    decimal.Zero,
			TaxRate:     decimal.NewFromInt(18),
			LineTotal:   decimal.RequireFromString("1180"), // 5×200×1.18
		},
	}
	s.quotes[quote.ID] = quote

	// ─── Proje (onaylanan tekliften) ───
	projectNumber := fmt.Sprintf("PRJ-%d-001", year)
	s.numbers[projectNumber] = struct{}{}
	start := now.AddDate(0, 0, -15)
	project := models.Project{
		ID:        s.next("projects"),
		Number:    projectNumber,
		Name:      "Şantiye Takip Sistemi",
		AccountID: customer.ID,
		QuoteID:   &quote.ID,
		Status:    models.ProjectStatusActive,
		StartDate: &start,
		Amount:    quote.Total,
		Currency:  models.CurrencyTRY,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.projects[project.ID] = project

	// ─── Görevler ───
	due := now.AddDate(0, 0, 3)
	seedTasks := []models.Task{
		{
			Title:      "Sunucu kurulumu",
			Status:     models.TaskStatusCompleted,
			Priority:   models.TaskPriorityHigh,
			AccountID:  &customer.ID,
			ProjectID:  &project.ID,
			AssigneeID: &admin.ID,
		},
		{
			Title:     "Modül konfigürasyonu",
			Status:    models.TaskStatusInProgress,
			Priority:  models.TaskPriorityMedium,
			ProjectID: &project.ID,
			DueDate:   &due,
		},
		{
			Title:    "Eğitim planı hazırla",
			Status:   models.TaskStatusTodo,
			Priority: models.TaskPriorityLow,
			DueDate:  &due,
		},
	}
	for i := range seedTasks {
		t := seedTasks[i]
		t.ID = s.next("tasks")
		t.CreatedAt = now
		t.UpdatedAt = now
		s.tasks[t.ID] = t
	}

	// ─── Hareketler ───
	// Borç 5000 (proje faturası), sonra tahsilat 2000 → bakiye 3000.
	seedTxns := []models.Transaction{
		{
			AccountID:   customer.ID,
			ProjectID:   &project.ID,
			Type:        models.TransactionTypeDebit,
			Amount:      decimal.NewFromInt(5000),
			Date:        now.AddDate(0, 0, -14),
			Description: ptr("Proje faturası"),
		},
		{
			AccountID:   customer.ID,
			ProjectID:   &project.ID,
			Type:        models.TransactionTypeCredit,
			Amount:      decimal.NewFromInt(2000),
			Date:        now.AddDate(0, 0, -5),
			Description: ptr("Kısmi tahsilat"),
		},
	}
	for i := range seedTxns {
		t := seedTxns[i]
		t.ID = s.next("transactions")
		t.CreatedAt = now
		t.UpdatedAt = now
		s.transactions[t.ID] = t
	}

	return s, nil
}

// ptr, string literal'lerden *string üretir (seed verisi için).
func ptr(v string) *string {
	return &v
}
