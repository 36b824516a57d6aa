package repository

import (
	"context"
	"time"

	"github.com/burakgns/istakip/models"
)

// TransactionRepository, cari hesap hareketi veritabanı işlemleri için interface.
type TransactionRepository interface {
	Create(ctx context.Context, txn *models.Transaction) error
	GetByID(ctx context.Context, id int64) (*models.Transaction, error)
	GetAll(ctx context.Context) ([]models.Transaction, error)
	// ListByAccount, hesabın hareketlerini tarih artan sırada döner
	// (eşit tarihte id artan) — yürüyen bakiye bu sıraya göre hesaplanır.
	ListByAccount(ctx context.Context, accountID int64) ([]models.Transaction, error)
	// ListSince, verilen tarihten (dahil) itibaren tüm hareketleri döner.
	// Aylık gelir/gider raporu 6 aylık pencereyi bununla çeker.
	ListSince(ctx context.Context, from time.Time) ([]models.Transaction, error)
	Update(ctx context.Context, txn *models.Transaction) error
	Delete(ctx context.Context, id int64) error
}
