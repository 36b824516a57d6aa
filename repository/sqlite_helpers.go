package repository

import (
	"database/sql"
	"errors"
	"strings"
)

// isUniqueViolation, SQLite UNIQUE constraint hatasını kontrol eder.
// modernc.org/sqlite tiplenmiş hata sabiti vermez — mesaj kontrolü gerekir.
func isUniqueViolation(err error) bool {
	return err != nil && !errors.Is(err, sql.ErrNoRows) &&
		strings.Contains(err.Error(), "UNIQUE constraint failed")
}
