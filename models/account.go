// Package models, uygulamanın domain modellerini (veri yapıları) tanımlar.
//
// Model nedir?
// Veritabanındaki bir tablonun Go karşılığıdır.
// Aynı zamanda API'den gelen/giden verilerin şeklini de belirler.
//
// Para alanları float yerine decimal.Decimal'dir — kuruş hassasiyeti
// float'ta kaybolur, decimal'de kaybolmaz. JSON'da string olarak taşınır.
//
// Request struct'ları (Create*/Update*) kendi Validate() metodlarını taşır.
// Validation handler boundary'sinde çalışır — geçersiz input hiçbir zaman
// service/repository katmanına inmez.
package models

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/shopspring/decimal"

	"github.com/burakgns/istakip/pkg"
)

// AccountType, cari hesabın yönünü belirtir: müşteri mi tedarikçi mi.
type AccountType string

// İzin verilen AccountType değerleri.
const (
	AccountTypeCustomer AccountType = "customer" // müşteri
	AccountTypeVendor   AccountType = "vendor"   // tedarikçi
)

// Valid, değerin bilinen bir AccountType olup olmadığını kontrol eder.
func (t AccountType) Valid() bool {
	switch t {
	case AccountTypeCustomer, AccountTypeVendor:
		return true
	}
	return false
}

// Account, bir cari hesabı (müşteri veya tedarikçi) temsil eder.
type Account struct {
	ID        int64       `json:"id"`
	Name      string      `json:"name"`
	Type      AccountType `json:"type"`
	Email     *string     `json:"email"`
	Phone     *string     `json:"phone"`
	Address   *string     `json:"address"`
	TaxNumber *string     `json:"tax_number"`
	TaxOffice *string     `json:"tax_office"`
	Notes     *string     `json:"notes"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// AccountSummary, cari hesabın işlemlerinden türetilen özet rakamlar.
// Hiçbir yerde saklanmaz — her istekte transaction'lardan hesaplanır.
// Balance = TotalDebit − TotalCredit (borç bakiyeyi artırır, alacak azaltır).
type AccountSummary struct {
	AccountID   int64           `json:"account_id"`
	TotalDebit  decimal.Decimal `json:"total_debit"`
	TotalCredit decimal.Decimal `json:"total_credit"`
	Balance     decimal.Decimal `json:"balance"`
}

// CreateAccountRequest, yeni cari hesap için frontend'den gelen veri.
type CreateAccountRequest struct {
	Name      string      `json:"name"`
	Type      AccountType `json:"type"`
	Email     *string     `json:"email"`
	Phone     *string     `json:"phone"`
	Address   *string     `json:"address"`
	TaxNumber *string     `json:"tax_number"`
	TaxOffice *string     `json:"tax_office"`
	Notes     *string     `json:"notes"`
}

// Validate, zorunlu alanları ve enum değerlerini kontrol eder.
// Hatalar alan bazlı toplanır — frontend ilgili input'un altında gösterir.
func (r *CreateAccountRequest) Validate() error {
	vErr := &pkg.ValidationError{}

	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		vErr.Add("name", "name is required")
	} else if utf8.RuneCountInString(r.Name) > 200 {
		vErr.Add("name", "name must be at most 200 characters")
	}

	if !r.Type.Valid() {
		vErr.Add("type", "type must be one of: customer, vendor")
	}

	if vErr.Empty() {
		return nil
	}
	return vErr
}

// UpdateAccountRequest, kısmi güncelleme için.
// nil alan "dokunma" demektir — sadece gönderilen alanlar değişir.
type UpdateAccountRequest struct {
	Name      *string      `json:"name"`
	Type      *AccountType `json:"type"`
	Email     *string      `json:"email"`
	Phone     *string      `json:"phone"`
	Address   *string      `json:"address"`
	TaxNumber *string      `json:"tax_number"`
	TaxOffice *string      `json:"tax_office"`
	Notes     *string      `json:"notes"`
}

// Validate, gönderilen alanların geçerliliğini kontrol eder.
func (r *UpdateAccountRequest) Validate() error {
	vErr := &pkg.ValidationError{}

	if r.Name != nil {
		*r.Name = strings.TrimSpace(*r.Name)
		if *r.Name == "" {
			vErr.Add("name", "name cannot be empty")
		}
	}
	if r.Type != nil && !r.Type.Valid() {
		vErr.Add("type", "type must be one of: customer, vendor")
	}

	if vErr.Empty() {
		return nil
	}
	return vErr
}

// ApplyTo, güncelleme isteğindeki dolu alanları mevcut hesaba uygular.
// Partial-update merge: nil alanlar mevcut değeri korur.
func (r *UpdateAccountRequest) ApplyTo(a *Account) {
	if r.Name != nil {
		a.Name = *r.Name
	}
	if r.Type != nil {
		a.Type = *r.Type
	}
	if r.Email != nil {
		a.Email = r.Email
	}
	if r.Phone != nil {
		a.Phone = r.Phone
	}
	if r.Address != nil {
		a.Address = r.Address
	}
	if r.TaxNumber != nil {
		a.TaxNumber = r.TaxNumber
	}
	if r.TaxOffice != nil {
		a.TaxOffice = r.TaxOffice
	}
	if r.Notes != nil {
		a.Notes = r.Notes
	}
}
