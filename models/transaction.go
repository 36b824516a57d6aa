package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/burakgns/istakip/pkg"
)

// TransactionType, cari hesap hareketinin yönü.
// "debit" bakiyeyi artırır (alacaklandırma — müşteriden beklenen tutar),
// "credit" bakiyeyi azaltır (tahsilat / ödeme).
// Aynı işaret kuralı hem hareket listesinde hem özet bakiyede geçerlidir.
type TransactionType string

const (
	TransactionTypeDebit  TransactionType = "debit"
	TransactionTypeCredit TransactionType = "credit"
)

// Valid, değerin bilinen bir TransactionType olup olmadığını kontrol eder.
func (t TransactionType) Valid() bool {
	switch t {
	case TransactionTypeDebit, TransactionTypeCredit:
		return true
	}
	return false
}

// Transaction, bir cari hesap hareketini temsil eder.
// Bakiye hiçbir yerde saklanmaz — hareketlerden türetilir.
type Transaction struct {
	ID          int64           `json:"id"`
	AccountID   int64           `json:"account_id"`
	ProjectID   *int64          `json:"project_id"`
	QuoteID     *int64          `json:"quote_id"`
	Type        TransactionType `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	Description *string         `json:"description"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// TransactionWithBalance, hareket listesi görünümünde her satırın yanında
// o harekete kadar oluşan yürüyen bakiyeyi taşır.
type TransactionWithBalance struct {
	Transaction
	Balance decimal.Decimal `json:"balance"`
}

// CreateTransactionRequest, yeni hareket için frontend'den gelen veri.
type CreateTransactionRequest struct {
	AccountID   int64           `json:"account_id"`
	ProjectID   *int64          `json:"project_id"`
	QuoteID     *int64          `json:"quote_id"`
	Type        TransactionType `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Date        time.Time       `json:"date"`
	Description *string         `json:"description"`
}

// Validate, zorunlu alanları ve enum değerlerini kontrol eder.
func (r *CreateTransactionRequest) Validate() error {
	vErr := &pkg.ValidationError{}

	if r.AccountID <= 0 {
		vErr.Add("account_id", "account_id is required")
	}
	if !r.Type.Valid() {
		vErr.Add("type", "type must be one of: debit, credit")
	}
	if !r.Amount.IsPositive() {
		vErr.Add("amount", "amount must be greater than zero")
	}
	if r.Date.IsZero() {
		vErr.Add("date", "date is required")
	}

	if vErr.Empty() {
		return nil
	}
	return vErr
}

// UpdateTransactionRequest, kısmi güncelleme için — nil alanlar korunur.
type UpdateTransactionRequest struct {
	AccountID   *int64           `json:"account_id"`
	ProjectID   *int64           `json:"project_id"`
	QuoteID     *int64           `json:"quote_id"`
	Type        *TransactionType `json:"type"`
	Amount      *decimal.Decimal `json:"amount"`
	Date        *time.Time       `json:"date"`
	Description *string          `json:"description"`
}

// Validate, gönderilen alanların geçerliliğini kontrol eder.
func (r *UpdateTransactionRequest) Validate() error {
	vErr := &pkg.ValidationError{}

	if r.AccountID != nil && *r.AccountID <= 0 {
		vErr.Add("account_id", "account_id must be a positive id")
	}
	if r.Type != nil && !r.Type.Valid() {
		vErr.Add("type", "type must be one of: debit, credit")
	}
	if r.Amount != nil && !r.Amount.IsPositive() {
		vErr.Add("amount", "amount must be greater than zero")
	}

	if vErr.Empty() {
		return nil
	}
	return vErr
}

// ApplyTo, güncelleme isteğindeki dolu alanları mevcut harekete uygular.
func (r *UpdateTransactionRequest) ApplyTo(t *Transaction) {
	if r.AccountID != nil {
		t.AccountID = *r.AccountID
	}
	if r.ProjectID != nil {
		t.ProjectID = r.ProjectID
	}
	if r.QuoteID != nil {
		t.QuoteID = r.QuoteID
	}
	if r.Type != nil {
		t.Type = *r.Type
	}
	if r.Amount != nil {
		t.Amount = *r.Amount
	}
	if r.Date != nil {
		t.Date = *r.Date
	}
	if r.Description != nil {
		t.Description = r.Description
	}
}
