// Package repository, veri erişim katmanını tanımlar.
//
// Her entity ailesi için bir interface + iki implementasyon vardır:
//   - memory_*.go: map tabanlı, seed datalı, process-local store (varsayılan)
//   - sqlite_*.go: modernc.org/sqlite üzerinden ilişkisel store
//
// Service katmanı doğrudan SQL yazmaz veya map'lere dokunmaz —
// sadece bu interface'ler üzerinden çalışır. İki backing de aynı
// kontratı sağlar: Create taze bir id + timestamp'ler atar, Update
// updated_at'i tazeler, olmayan id'ye yapılan her işlem pkg.ErrNotFound döner.
package repository

import (
	"context"

	"github.com/burakgns/istakip/models"
)

// AccountRepository, cari hesap veritabanı işlemleri için interface.
type AccountRepository interface {
	Create(ctx context.Context, account *models.Account) error
	GetByID(ctx context.Context, id int64) (*models.Account, error)
	GetAll(ctx context.Context) ([]models.Account, error)
	Update(ctx context.Context, account *models.Account) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int, error)
}
