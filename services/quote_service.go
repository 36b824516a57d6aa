package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/burakgns/istakip/models"
	"github.com/burakgns/istakip/pkg"
	"github.com/burakgns/istakip/pkg/pdf"
	"github.com/burakgns/istakip/repository"
	"github.com/burakgns/istakip/ws"
)

// QuoteService, teklif iş mantığı interface'i.
// Kalem tutarları ve teklif toplamı HER yazmada burada yeniden hesaplanır;
// client'tan gelen tutar alanları yok sayılır.
type QuoteService interface {
	Create(ctx context.Context, req *models.CreateQuoteRequest) (*models.Quote, error)
	GetByID(ctx context.Context, id int64) (*models.Quote, error)
	GetAll(ctx context.Context) ([]models.Quote, error)
	ListByAccount(ctx context.Context, accountID int64) ([]models.Quote, error)
	Update(ctx context.Context, id int64, req *models.UpdateQuoteRequest) (*models.Quote, error)
	Delete(ctx context.Context, id int64) error
	// GeneratePDF, teklifi yazdırılabilir PDF olarak render eder.
	GeneratePDF(ctx context.Context, id int64) (*QuotePDF, error)
}

// QuotePDF, render edilmiş teklif çıktısı: indirme dosya adında
// kullanılacak teklif numarası ve PDF içeriği.
type QuotePDF struct {
	Number string
	Data   []byte
}

type quoteService struct {
	quoteRepo   repository.QuoteRepository
	accountRepo repository.AccountRepository
	hub         ws.EventPublisher
}

// NewQuoteService, constructor — interface döner.
func NewQuoteService(
	quoteRepo repository.QuoteRepository,
	accountRepo repository.AccountRepository,
	hub ws.EventPublisher,
) QuoteService {
	return &quoteService{
		quoteRepo:   quoteRepo,
		accountRepo: accountRepo,
		hub:         hub,
	}
}

// moneyPlaces, yuvarlama hassasiyeti: tüm parasal tutarlar 2 hane.
const moneyPlaces = 2

// numberRetries, otomatik numara yarışında kaç kez yeni numara denenir.
// Eşzamanlı create'ler aynı aday numarayı üretebilir; kaybeden taraf
// 409 yerine bir sonraki boş numarayı alır.
const numberRetries = 3

// computeLineTotal, tek kalemin tutarını hesaplar:
//
//	quantity × unitPrice × (1 − discount/100) × (1 + taxRate/100)
//
// Sonuç 2 haneye yuvarlanır. Örn. 2 × 100, %10 indirim, %18 KDV → 212.4
func computeLineTotal(quantity, unitPrice, discount, taxRate decimal.Decimal) decimal.Decimal {
	hundred := decimal.NewFromInt(100)
	one := decimal.NewFromInt(1)

	total := quantity.Mul(unitPrice).
		Mul(one.Sub(discount.Div(hundred))).
		Mul(one.Add(taxRate.Div(hundred)))

	return total.Round(moneyPlaces)
}

// buildItems, input kalemlerini LineTotal hesaplanmış QuoteItem'lara çevirir
// ve teklif toplamını döner. nil Discount/TaxRate 0 kabul edilir.
func buildItems(inputs []models.QuoteItemInput) ([]models.QuoteItem, decimal.Decimal) {
	items := make([]models.QuoteItem, 0, len(inputs))
	total := decimal.Zero

	for _, in := range inputs {
		discount := decimal.Zero
		if in.Discount != nil {
			discount = *in.Discount
		}
		taxRate := decimal.Zero
		if in.TaxRate != nil {
			taxRate = *in.TaxRate
		}

		lineTotal := computeLineTotal(in.Quantity, in.UnitPrice, discount, taxRate)
		total = total.Add(lineTotal)

		items = append(items, models.QuoteItem{
			Description: in.Description,
			Quantity:    in.Quantity,
			Unit:        in.Unit,
			UnitPrice:   in.UnitPrice,
			Discount:    discount,
			TaxRate:     taxRate,
			LineTotal:   lineTotal,
		})
	}

	return items, total
}

// Create, yeni teklif oluşturur. Numara boş bırakılmışsa teklif tipine göre
// üretilir: gönderilen teklifler TKF-YYYY-NNN, alınanlar ATK-YYYY-NNN.
// Teklif ve kalemleri tek atomik yazmadır — kalem yazımı yarıda kalmaz.
func (s *quoteService) Create(ctx context.Context, req *models.CreateQuoteRequest) (*models.Quote, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	if _, err := s.accountRepo.GetByID(ctx, req.AccountID); err != nil {
		if errors.Is(err, pkg.ErrNotFound) {
			return nil, fmt.Errorf("%w: account %d not found", pkg.ErrBadRequest, req.AccountID)
		}
		return nil, err
	}

	generated := req.Number == ""
	number := req.Number
	if generated {
		var err error
		number, err = s.quoteRepo.NextNumber(ctx, req.Type.NumberPrefix(), req.Date.Year())
		if err != nil {
			return nil, fmt.Errorf("failed to generate quote number: %w", err)
		}
	}

	items, total := buildItems(req.Items)

	quote := &models.Quote{
		Number:     number,
		Type:       req.Type,
		Status:     req.Status,
		AccountID:  req.AccountID,
		Date:       req.Date,
		ValidUntil: req.ValidUntil,
		Currency:   req.Currency,
		Total:      total,
		Notes:      req.Notes,
		Items:      items,
	}

	for attempt := 0; ; attempt++ {
		err := s.quoteRepo.Create(ctx, quote)
		if err == nil {
			break
		}
		// Elle girilen numara çakıştıysa 409 doğru cevaptır. Otomatik
		// üretilen numarayı eşzamanlı bir create kapmış olabilir —
		// bir sonraki boş numarayla tekrar dene.
		if !generated || !errors.Is(err, pkg.ErrAlreadyExists) || attempt >= numberRetries {
			return nil, err
		}
		quote.Number, err = s.quoteRepo.NextNumber(ctx, req.Type.NumberPrefix(), req.Date.Year())
		if err != nil {
			return nil, fmt.Errorf("failed to generate quote number: %w", err)
		}
	}

	s.publish(ws.OpCreated, quote.ID)
	return quote, nil
}

func (s *quoteService) GetByID(ctx context.Context, id int64) (*models.Quote, error) {
	return s.quoteRepo.GetByID(ctx, id)
}

func (s *quoteService) GetAll(ctx context.Context) ([]models.Quote, error) {
	return s.quoteRepo.GetAll(ctx)
}

func (s *quoteService) ListByAccount(ctx context.Context, accountID int64) ([]models.Quote, error) {
	if _, err := s.accountRepo.GetByID(ctx, accountID); err != nil {
		return nil, err
	}
	return s.quoteRepo.ListByAccount(ctx, accountID)
}

// Update, teklifi kısmi günceller. Items gönderilmişse TÜM kalemler
// gönderilenlerle değiştirilir ve toplam yeniden hesaplanır; nil ise
// kalemler ve toplam olduğu gibi kalır.
func (s *quoteService) Update(ctx context.Context, id int64, req *models.UpdateQuoteRequest) (*models.Quote, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	quote, err := s.quoteRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Number != nil {
		quote.Number = *req.Number
	}
	if req.Status != nil {
		quote.Status = *req.Status
	}
	if req.AccountID != nil {
		if _, err := s.accountRepo.GetByID(ctx, *req.AccountID); err != nil {
			if errors.Is(err, pkg.ErrNotFound) {
				return nil, fmt.Errorf("%w: account %d not found", pkg.ErrBadRequest, *req.AccountID)
			}
			return nil, err
		}
		quote.AccountID = *req.AccountID
	}
	if req.Date != nil {
		quote.Date = *req.Date
	}
	if req.ValidUntil != nil {
		quote.ValidUntil = req.ValidUntil
	}
	if req.Currency != nil {
		quote.Currency = *req.Currency
	}
	if req.Notes != nil {
		quote.Notes = req.Notes
	}

	replaceItems := req.Items != nil
	if replaceItems {
		items, total := buildItems(*req.Items)
		quote.Items = items
		quote.Total = total
	}

	if err := s.quoteRepo.Update(ctx, quote, replaceItems); err != nil {
		return nil, err
	}

	s.publish(ws.OpUpdated, quote.ID)
	return quote, nil
}

func (s *quoteService) Delete(ctx context.Context, id int64) error {
	if err := s.quoteRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.publish(ws.OpDeleted, id)
	return nil
}

// GeneratePDF, teklifi ve bağlı cari hesabı yükleyip PDF'e render eder.
// Numara dosya adı için içerikle birlikte döner; handler ayrıca teklif
// çekmek zorunda kalmaz.
func (s *quoteService) GeneratePDF(ctx context.Context, id int64) (*QuotePDF, error) {
	quote, err := s.quoteRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	account, err := s.accountRepo.GetByID(ctx, quote.AccountID)
	if err != nil {
		return nil, err
	}

	data, err := pdf.RenderQuote(quote, account, time.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to render quote pdf: %w", err)
	}
	return &QuotePDF{Number: quote.Number, Data: data}, nil
}

func (s *quoteService) publish(op ws.Op, id int64) {
	if s.hub != nil {
		s.hub.BroadcastToAll(ws.Event{Op: op, Entity: "quote", ID: id})
	}
}
