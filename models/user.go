package models

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/golang-jwt/jwt/v5"

	"github.com/burakgns/istakip/pkg"
)

// User, sisteme giriş yapabilen bir kullanıcıyı temsil eder.
// PasswordHash hiçbir API response'una DAHİL EDİLMEZ (json:"-").
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	Phone        *string   `json:"phone"`
	Position     *string   `json:"position"`
	Company      *string   `json:"company"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// CreateUserRequest, yeni kullanıcı için frontend'den gelen veri.
// PasswordHash yerine Password alırız — hash'leme service katmanında yapılır.
type CreateUserRequest struct {
	Username string  `json:"username"`
	Password string  `json:"password"`
	Name     string  `json:"name"`
	Email    string  `json:"email"`
	Phone    *string `json:"phone"`
	Position *string `json:"position"`
	Company  *string `json:"company"`
}

// Validate, kayıt kurallarını kontrol eder:
//   - Username: 3-32 karakter, alfanumerik + alt çizgi
//   - Password: minimum 8 karakter
//   - Name ve Email zorunlu
func (r *CreateUserRequest) Validate() error {
	vErr := &pkg.ValidationError{}

	r.Username = strings.TrimSpace(r.Username)
	usernameLen := utf8.RuneCountInString(r.Username)
	if usernameLen < 3 || usernameLen > 32 {
		vErr.Add("username", "username must be between 3 and 32 characters")
	} else {
		for _, ch := range r.Username {
			if !isValidUsernameChar(ch) {
				vErr.Add("username", "username can only contain letters, numbers, and underscores")
				break
			}
		}
	}

	if utf8.RuneCountInString(r.Password) < 8 {
		vErr.Add("password", "password must be at least 8 characters")
	}

	r.Name = strings.TrimSpace(r.Name)
	if r.Name == "" {
		vErr.Add("name", "name is required")
	}

	r.Email = strings.TrimSpace(r.Email)
	if r.Email == "" || !strings.Contains(r.Email, "@") {
		vErr.Add("email", "a valid email is required")
	}

	if vErr.Empty() {
		return nil
	}
	return vErr
}

// UpdateUserRequest, kısmi güncelleme için — nil alanlar korunur.
// Username değiştirilemez; şifre değişikliği Password alanı ile gelir.
type UpdateUserRequest struct {
	Password *string `json:"password"`
	Name     *string `json:"name"`
	Email    *string `json:"email"`
	Phone    *string `json:"phone"`
	Position *string `json:"position"`
	Company  *string `json:"company"`
}

// Validate, gönderilen alanların geçerliliğini kontrol eder.
func (r *UpdateUserRequest) Validate() error {
	vErr := &pkg.ValidationError{}

	if r.Password != nil && utf8.RuneCountInString(*r.Password) < 8 {
		vErr.Add("password", "password must be at least 8 characters")
	}
	if r.Name != nil {
		*r.Name = strings.TrimSpace(*r.Name)
		if *r.Name == "" {
			vErr.Add("name", "name cannot be empty")
		}
	}
	if r.Email != nil {
		*r.Email = strings.TrimSpace(*r.Email)
		if *r.Email == "" || !strings.Contains(*r.Email, "@") {
			vErr.Add("email", "a valid email is required")
		}
	}

	if vErr.Empty() {
		return nil
	}
	return vErr
}

// ApplyTo, dolu gelen alanları mevcut kullanıcının üzerine yazar.
// Password burada UYGULANMAZ — hash'leme service katmanının işidir.
func (r *UpdateUserRequest) ApplyTo(u *User) {
	if r.Name != nil {
		u.Name = *r.Name
	}
	if r.Email != nil {
		u.Email = *r.Email
	}
	if r.Phone != nil {
		u.Phone = r.Phone
	}
	if r.Position != nil {
		u.Position = r.Position
	}
	if r.Company != nil {
		u.Company = r.Company
	}
}

// LoginRequest, giriş yaparken frontend'den gelen veri.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Validate, LoginRequest'in geçerli olup olmadığını kontrol eder.
func (r *LoginRequest) Validate() error {
	r.Username = strings.TrimSpace(r.Username)
	if r.Username == "" {
		return pkg.NewValidationError("username", "username is required")
	}
	if r.Password == "" {
		return pkg.NewValidationError("password", "password is required")
	}
	return nil
}

// TokenClaims, JWT access token'ın payload'ı.
// jwt.RegisteredClaims gömülüdür — exp/iat/jti standart alanları oradan gelir.
type TokenClaims struct {
	UserID   int64  `json:"user_id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// isValidUsernameChar, username'de izin verilen karakterleri kontrol eder.
func isValidUsernameChar(ch rune) bool {
	return (ch >= 'a' && ch <= 'z') ||
		(ch >= 'A' && ch <= 'Z') ||
		(ch >= '0' && ch <= '9') ||
		ch == '_'
}
