package models

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/burakgns/istakip/pkg"
)

// QuoteType, teklifin yönünü belirtir.
// "sent": bizim müşteriye verdiğimiz teklif (TKF- numaralı).
// "received": tedarikçiden aldığımız teklif (ATK- numaralı).
type QuoteType string

const (
	QuoteTypeSent     QuoteType = "sent"
	QuoteTypeReceived QuoteType = "received"
)

// Valid, değerin bilinen bir QuoteType olup olmadığını kontrol eder.
func (t QuoteType) Valid() bool {
	switch t {
	case QuoteTypeSent, QuoteTypeReceived:
		return true
	}
	return false
}

// NumberPrefix, teklif numarası üretiminde kullanılan tip bazlı prefix.
func (t QuoteType) NumberPrefix() string {
	if t == QuoteTypeReceived {
		return "ATK"
	}
	return "TKF"
}

// QuoteStatus, teklifin yaşam döngüsündeki durumu.
type QuoteStatus string

const (
	QuoteStatusPending   QuoteStatus = "pending"
	QuoteStatusApproved  QuoteStatus = "approved"
	QuoteStatusRejected  QuoteStatus = "rejected"
	QuoteStatusCancelled QuoteStatus = "cancelled"
)

// Valid, değerin bilinen bir QuoteStatus olup olmadığını kontrol eder.
func (s QuoteStatus) Valid() bool {
	switch s {
	case QuoteStatusPending, QuoteStatusApproved, QuoteStatusRejected, QuoteStatusCancelled:
		return true
	}
	return false
}

// Currency, desteklenen para birimleri.
type Currency string

const (
	CurrencyTRY Currency = "TRY"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
)

// Valid, değerin desteklenen bir para birimi olup olmadığını kontrol eder.
func (c Currency) Valid() bool {
	switch c {
	case CurrencyTRY, CurrencyUSD, CurrencyEUR:
		return true
	}
	return false
}

// Symbol, para biriminin görüntüleme sembolü (PDF çıktısında kullanılır).
func (c Currency) Symbol() string {
	switch c {
	case CurrencyUSD:
		return "$"
	case CurrencyEUR:
		return "EUR"
	default:
		return "TL"
	}
}

// Quote, bir fiyat teklifini temsil eder. Items her zaman payload'a gömülü
// gelir/gider — teklif kalemleri için ayrı bir endpoint yoktur.
// Total saklanır ama her yazmada kalemlerden yeniden hesaplanır;
// client'tan gelen total değeri DAİMA yok sayılır.
type Quote struct {
	ID         int64           `json:"id"`
	Number     string          `json:"number"`
	Type       QuoteType       `json:"type"`
	Status     QuoteStatus     `json:"status"`
	AccountID  int64           `json:"account_id"`
	Date       time.Time       `json:"date"`
	ValidUntil *time.Time      `json:"valid_until"`
	Currency   Currency        `json:"currency"`
	Total      decimal.Decimal `json:"total"`
	Notes      *string         `json:"notes"`
	Items      []QuoteItem     `json:"items"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// QuoteItem, teklifin tek bir kalemi.
// LineTotal = quantity × unitPrice × (1 − discount/100) × (1 + taxRate/100),
// 2 haneye yuvarlanır. Her yazmada sunucu tarafında yeniden hesaplanır.
type QuoteItem struct {
	ID          int64           `json:"id"`
	QuoteID     int64           `json:"quote_id"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Unit        string          `json:"unit"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
	Discount    decimal.Decimal `json:"discount"` // yüzde, 0-100
	TaxRate     decimal.Decimal `json:"tax_rate"` // yüzde, 0-100
	LineTotal   decimal.Decimal `json:"line_total"`
}

// QuoteItemInput, teklif kalemi için frontend'den gelen veri.
// LineTotal içermez — server hesaplar.
type QuoteItemInput struct {
	Description string           `json:"description"`
	Quantity    decimal.Decimal  `json:"quantity"`
	Unit        string           `json:"unit"`
	UnitPrice   decimal.Decimal  `json:"unit_price"`
	Discount    *decimal.Decimal `json:"discount"` // nil → 0
	TaxRate     *decimal.Decimal `json:"tax_rate"` // nil → 0
}

// CreateQuoteRequest, yeni teklif için frontend'den gelen veri.
// Number boş bırakılırsa server tip prefix'li sıra numarası üretir.
type CreateQuoteRequest struct {
	Number     string           `json:"number"`
	Type       QuoteType        `json:"type"`
	Status     QuoteStatus      `json:"status"`
	AccountID  int64            `json:"account_id"`
	Date       time.Time        `json:"date"`
	ValidUntil *time.Time       `json:"valid_until"`
	Currency   Currency         `json:"currency"`
	Notes      *string          `json:"notes"`
	Items      []QuoteItemInput `json:"items"`
}

// Validate, zorunlu alanları, enum değerlerini ve tüm kalemleri kontrol eder.
// Boş opsiyonel alanlara varsayılanlarını yazar (status=pending, currency=TRY).
func (r *CreateQuoteRequest) Validate() error {
	vErr := &pkg.ValidationError{}

	if !r.Type.Valid() {
		vErr.Add("type", "type must be one of: sent, received")
	}
	if r.Status == "" {
		r.Status = QuoteStatusPending
	} else if !r.Status.Valid() {
		vErr.Add("status", "status must be one of: pending, approved, rejected, cancelled")
	}
	if r.AccountID <= 0 {
		vErr.Add("account_id", "account_id is required")
	}
	if r.Date.IsZero() {
		vErr.Add("date", "date is required")
	}
	if r.Currency == "" {
		r.Currency = CurrencyTRY
	} else if !r.Currency.Valid() {
		vErr.Add("currency", "currency must be one of: TRY, USD, EUR")
	}

	validateQuoteItems(r.Items, vErr)

	if vErr.Empty() {
		return nil
	}
	return vErr
}

// UpdateQuoteRequest, kısmi güncelleme için.
// Items nil ise kalemler olduğu gibi kalır; dolu ise TÜM kalemler
// gönderilenlerle değiştirilir ve total yeniden hesaplanır.
type UpdateQuoteRequest struct {
	Number     *string           `json:"number"`
	Status     *QuoteStatus      `json:"status"`
	AccountID  *int64            `json:"account_id"`
	Date       *time.Time        `json:"date"`
	ValidUntil *time.Time        `json:"valid_until"`
	Currency   *Currency         `json:"currency"`
	Notes      *string           `json:"notes"`
	Items      *[]QuoteItemInput `json:"items"`
}

// Validate, gönderilen alanların geçerliliğini kontrol eder.
func (r *UpdateQuoteRequest) Validate() error {
	vErr := &pkg.ValidationError{}

	if r.Number != nil && strings.TrimSpace(*r.Number) == "" {
		vErr.Add("number", "number cannot be empty")
	}
	if r.Status != nil && !r.Status.Valid() {
		vErr.Add("status", "status must be one of: pending, approved, rejected, cancelled")
	}
	if r.AccountID != nil && *r.AccountID <= 0 {
		vErr.Add("account_id", "account_id must be a positive id")
	}
	if r.Currency != nil && !r.Currency.Valid() {
		vErr.Add("currency", "currency must be one of: TRY, USD, EUR")
	}
	if r.Items != nil {
		validateQuoteItems(*r.Items, vErr)
	}

	if vErr.Empty() {
		return nil
	}
	return vErr
}

// validateQuoteItems, kalem listesini alan bazlı kontrol eder.
// Alan adları "items[i].field" formatındadır — frontend satır bazlı gösterir.
func validateQuoteItems(items []QuoteItemInput, vErr *pkg.ValidationError) {
	hundred := decimal.NewFromInt(100)

	for i := range items {
		item := &items[i]
		prefix := fmt.Sprintf("items[%d].", i)

		item.Description = strings.TrimSpace(item.Description)
		if item.Description == "" {
			vErr.Add(prefix+"description", "description is required")
		}
		if !item.Quantity.IsPositive() {
			vErr.Add(prefix+"quantity", "quantity must be greater than zero")
		}
		if item.UnitPrice.IsNegative() {
			vErr.Add(prefix+"unit_price", "unit_price cannot be negative")
		}
		if item.Discount != nil && (item.Discount.IsNegative() || item.Discount.GreaterThan(hundred)) {
			vErr.Add(prefix+"discount", "discount must be between 0 and 100")
		}
		if item.TaxRate != nil && (item.TaxRate.IsNegative() || item.TaxRate.GreaterThan(hundred)) {
			vErr.Add(prefix+"tax_rate", "tax_rate must be between 0 and 100")
		}
		if item.Unit == "" {
			item.Unit = "adet"
		}
	}
}
