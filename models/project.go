package models

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/burakgns/istakip/pkg"
)

// ProjectStatus, projenin yaşam döngüsündeki durumu.
// Serbest geçişlidir — hiçbir durum terminal değildir.
type ProjectStatus string

const (
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusCompleted ProjectStatus = "completed"
	ProjectStatusCancelled ProjectStatus = "cancelled"
	ProjectStatusOnHold    ProjectStatus = "on_hold"
)

// Valid, değerin bilinen bir ProjectStatus olup olmadığını kontrol eder.
func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectStatusActive, ProjectStatusCompleted, ProjectStatusCancelled, ProjectStatusOnHold:
		return true
	}
	return false
}

// ProjectNumberPrefix, proje numarası üretiminde kullanılan prefix.
const ProjectNumberPrefix = "PRJ"

// Project, bir iş birimini temsil eder. Onaylanan bir teklif projeye
// dönüştürüldüğünde QuoteID, kaynak teklifi işaret eder.
type Project struct {
	ID        int64           `json:"id"`
	Number    string          `json:"number"`
	Name      string          `json:"name"`
	AccountID int64           `json:"account_id"`
	QuoteID   *int64          `json:"quote_id"`
	Status    ProjectStatus   `json:"status"`
	StartDate *time.Time      `json:"start_date"`
	EndDate   *time.Time      `json:"end_date"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  Currency        `json:"currency"`
	Notes     *string         `json:"notes"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// CreateProjectRequest, yeni proje için frontend'den gelen veri.
// Number boş bırakılırsa server PRJ- prefix'li sıra numarası üretir.
type CreateProjectRequest struct {
	Number    string          `json:"number"`
	Name      string          `json:"name"`
	AccountID int64           `json:"account_id"`
	QuoteID   *int64          `json:"quote_id"`
	Status    ProjectStatus   `json:"status"`
	StartDate *time.Time      `json:"start_date"`
	EndDate   *time.Time      `json:"end_date"`
	Amount    decimal.Decimal `json:"amount"`
	Currency  Currency        `json:"currency"`
	Notes     *string         `json:"notes"`
}

// Validate, zorunlu alanları ve enum değerlerini kontrol eder.
func (r *CreateProjectRequest) Validate() error {
	vErr := &pkg.ValidationError{}

	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		vErr.Add("name", "name is required")
	}
	if r.AccountID <= 0 {
		vErr.Add("account_id", "account_id is required")
	}
	if r.Status == "" {
		r.Status = ProjectStatusActive
	} else if !r.Status.Valid() {
		vErr.Add("status", "status must be one of: active, completed, cancelled, on_hold")
	}
	if r.Currency == "" {
		r.Currency = CurrencyTRY
	} else if !r.Currency.Valid() {
		vErr.Add("currency", "currency must be one of: TRY, USD, EUR")
	}
	if r.Amount.IsNegative() {
		vErr.Add("amount", "amount cannot be negative")
	}

	if vErr.Empty() {
		return nil
	}
	return vErr
}

// UpdateProjectRequest, kısmi güncelleme için — nil alanlar korunur.
type UpdateProjectRequest struct {
	Number    *string          `json:"number"`
	Name      *string          `json:"name"`
	AccountID *int64           `json:"account_id"`
	QuoteID   *int64           `json:"quote_id"`
	Status    *ProjectStatus   `json:"status"`
	StartDate *time.Time       `json:"start_date"`
	EndDate   *time.Time       `json:"end_date"`
	Amount    *decimal.Decimal `json:"amount"`
	Currency  *Currency        `json:"currency"`
	Notes     *string          `json:"notes"`
}

// Validate, gönderilen alanların geçerliliğini kontrol eder.
func (r *UpdateProjectRequest) Validate() error {
	vErr := &pkg.ValidationError{}

	if r.Name != nil {
		*r.Name = strings.TrimSpace(*r.Name)
		if *r.Name == "" {
			vErr.Add("name", "name cannot be empty")
		}
	}
	if r.Number != nil && strings.TrimSpace(*r.Number) == "" {
		vErr.Add("number", "number cannot be empty")
	}
	if r.AccountID != nil && *r.AccountID <= 0 {
		vErr.Add("account_id", "account_id must be a positive id")
	}
	if r.Status != nil && !r.Status.Valid() {
		vErr.Add("status", "status must be one of: active, completed, cancelled, on_hold")
	}
	if r.Currency != nil && !r.Currency.Valid() {
		vErr.Add("currency", "currency must be one of: TRY, USD, EUR")
	}
	if r.Amount != nil && r.Amount.IsNegative() {
		vErr.Add("amount", "amount cannot be negative")
	}

	if vErr.Empty() {
		return nil
	}
	return vErr
}

// ApplyTo, güncelleme isteğindeki dolu alanları mevcut projeye uygular.
func (r *UpdateProjectRequest) ApplyTo(p *Project) {
	if r.Number != nil {
		p.Number = *r.Number
	}
	if r.Name != nil {
		p.Name = *r.Name
	}
	if r.AccountID != nil {
		p.AccountID = *r.AccountID
	}
	if r.QuoteID != nil {
		p.QuoteID = r.QuoteID
	}
	if r.Status != nil {
		p.Status = *r.Status
	}
	if r.StartDate != nil {
		p.StartDate = r.StartDate
	}
	if r.EndDate != nil {
		p.EndDate = r.EndDate
	}
	if r.Amount != nil {
		p.Amount = *r.Amount
	}
	if r.Currency != nil {
		p.Currency = *r.Currency
	}
	if r.Notes != nil {
		p.Notes = r.Notes
	}
}
