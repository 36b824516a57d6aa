// Package pkg, projede paylaşılan utility'leri barındırır.
// Bu dosya domain-level error tanımlarını içerir.
//
// Go'da error'lar basit değerlerdir. errors.New() ile sabit error
// değişkenleri tanımlarız; karşılaştırma string yerine errors.Is ile yapılır:
//
//	if errors.Is(err, pkg.ErrNotFound) { ... }
package pkg

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Domain-level error'lar.
// Service katmanı bunları döner, handler katmanı HTTP status code'larına map'ler.
var (
	ErrNotFound      = errors.New("not found")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrForbidden     = errors.New("forbidden")
	ErrAlreadyExists = errors.New("already exists")
	ErrBadRequest    = errors.New("bad request")
	ErrInternal      = errors.New("internal error")
)

// ValidationError, alan bazlı detay taşıyan input hatası.
//
// Neden ayrı bir tip?
// "quantity must be greater than zero" gibi hatalar frontend'de ilgili
// form alanının altında gösterilir — tek bir string yetmez, alan adı gerekir.
// errors.Is(err, ErrBadRequest) ile 400'e map olması için Unwrap ErrBadRequest döner.
type ValidationError struct {
	Fields map[string]string
}

// NewValidationError, tek alanlık validation hatası oluşturur.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: message}}
}

// Add, hataya yeni bir alan ekler. Chaining için kendisini döner.
func (e *ValidationError) Add(field, message string) *ValidationError {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	e.Fields[field] = message
	return e
}

// Empty, hiç alan hatası toplanmadıysa true döner.
func (e *ValidationError) Empty() bool {
	return len(e.Fields) == 0
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return "validation failed"
	}
	// Deterministik mesaj için alan adlarını sırala
	fields := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f, e.Fields[f]))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Unwrap, ValidationError'ın errors.Is(err, ErrBadRequest) ile
// yakalanmasını sağlar.
func (e *ValidationError) Unwrap() error {
	return ErrBadRequest
}
