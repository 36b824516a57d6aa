package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/burakgns/istakip/models"
	"github.com/burakgns/istakip/pkg"
	"github.com/burakgns/istakip/repository"
	"github.com/burakgns/istakip/ws"
)

// TransactionService, cari hesap hareketi iş mantığı interface'i.
type TransactionService interface {
	Create(ctx context.Context, req *models.CreateTransactionRequest) (*models.Transaction, error)
	GetByID(ctx context.Context, id int64) (*models.Transaction, error)
	GetAll(ctx context.Context) ([]models.Transaction, error)
	// ListByAccount, hesabın hareketlerini tarih sırasında, her satırın
	// yanında o ana kadarki yürüyen bakiyeyle döner.
	ListByAccount(ctx context.Context, accountID int64) ([]models.TransactionWithBalance, error)
	Update(ctx context.Context, id int64, req *models.UpdateTransactionRequest) (*models.Transaction, error)
	Delete(ctx context.Context, id int64) error
}

type transactionService struct {
	txnRepo     repository.TransactionRepository
	accountRepo repository.AccountRepository
	hub         ws.EventPublisher
}

// NewTransactionService, constructor — interface döner.
func NewTransactionService(
	txnRepo repository.TransactionRepository,
	accountRepo repository.AccountRepository,
	hub ws.EventPublisher,
) TransactionService {
	return &transactionService{
		txnRepo:     txnRepo,
		accountRepo: accountRepo,
		hub:         hub,
	}
}

func (s *transactionService) Create(ctx context.Context, req *models.CreateTransactionRequest) (*models.Transaction, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	// Hareket var olmayan bir hesaba yazılamaz
	if _, err := s.accountRepo.GetByID(ctx, req.AccountID); err != nil {
		if errors.Is(err, pkg.ErrNotFound) {
			return nil, fmt.Errorf("%w: account %d not found", pkg.ErrBadRequest, req.AccountID)
		}
		return nil, err
	}

	txn := &models.Transaction{
		AccountID:   req.AccountID,
		ProjectID:   req.ProjectID,
		QuoteID:     req.QuoteID,
		Type:        req.Type,
		Amount:      req.Amount,
		Date:        req.Date,
		Description: req.Description,
	}

	if err := s.txnRepo.Create(ctx, txn); err != nil {
		return nil, err
	}

	s.publish(ws.OpCreated, txn.ID)
	return txn, nil
}

func (s *transactionService) GetByID(ctx context.Context, id int64) (*models.Transaction, error) {
	return s.txnRepo.GetByID(ctx, id)
}

func (s *transactionService) GetAll(ctx context.Context) ([]models.Transaction, error) {
	return s.txnRepo.GetAll(ctx)
}

// ListByAccount, yürüyen bakiyeyi hesaplar. Repository tarih artan sırada
// döner (eşit tarihte id artan); bakiye bu sıra üzerinden akümüle edilir.
// Örn. [debit 1000, credit 400] → bakiyeler [1000, 600].
func (s *transactionService) ListByAccount(ctx context.Context, accountID int64) ([]models.TransactionWithBalance, error) {
	if _, err := s.accountRepo.GetByID(ctx, accountID); err != nil {
		return nil, err
	}

	txns, err := s.txnRepo.ListByAccount(ctx, accountID)
	if err != nil {
		return nil, err
	}

	result := make([]models.TransactionWithBalance, 0, len(txns))
	balance := decimal.Zero
	for _, txn := range txns {
		switch txn.Type {
		case models.TransactionTypeDebit:
			balance = balance.Add(txn.Amount)
		case models.TransactionTypeCredit:
			balance = balance.Sub(txn.Amount)
		}
		result = append(result, models.TransactionWithBalance{
			Transaction: txn,
			Balance:     balance,
		})
	}

	return result, nil
}

func (s *transactionService) Update(ctx context.Context, id int64, req *models.UpdateTransactionRequest) (*models.Transaction, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	txn, err := s.txnRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	req.ApplyTo(txn)

	if err := s.txnRepo.Update(ctx, txn); err != nil {
		return nil, err
	}

	s.publish(ws.OpUpdated, txn.ID)
	return txn, nil
}

func (s *transactionService) Delete(ctx context.Context, id int64) error {
	if err := s.txnRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.publish(ws.OpDeleted, id)
	return nil
}

func (s *transactionService) publish(op ws.Op, id int64) {
	if s.hub != nil {
		s.hub.BroadcastToAll(ws.Event{Op: op, Entity: "transaction", ID: id})
	}
}
