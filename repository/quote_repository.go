package repository

import (
	"context"

	"github.com/burakgns/istakip/models"
)

// QuoteRepository, teklif veritabanı işlemleri için interface.
// Teklif kalemleri ayrı bir repository değildir — kalemler her zaman
// teklifin parçası olarak okunur/yazılır (payload'a gömülü).
type QuoteRepository interface {
	// Create, teklifi kalemleriyle birlikte atomik olarak yazar.
	// Numara çakışmasında pkg.ErrAlreadyExists döner.
	Create(ctx context.Context, quote *models.Quote) error
	GetByID(ctx context.Context, id int64) (*models.Quote, error)
	GetAll(ctx context.Context) ([]models.Quote, error)
	ListByAccount(ctx context.Context, accountID int64) ([]models.Quote, error)
	// Update, teklif başlığını yazar; replaceItems true ise mevcut kalemlerin
	// TAMAMI silinip quote.Items ile değiştirilir.
	Update(ctx context.Context, quote *models.Quote, replaceItems bool) error
	Delete(ctx context.Context, id int64) error
	// NextNumber, verilen prefix ve yıl için sıradaki numarayı üretir
	// (ör: "TKF-2026-004"). Numara ancak Create ile rezerve edilir;
	// eşzamanlı iki create aynı adayı alabilir, teklik Create'te zorlanır.
	NextNumber(ctx context.Context, prefix string, year int) (string, error)
	// CountByStatus, durum histogramı döner (rapor ekranı için).
	CountByStatus(ctx context.Context) (map[models.QuoteStatus]int, error)
}
