package services

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/burakgns/istakip/models"
	"github.com/burakgns/istakip/repository"
	"github.com/burakgns/istakip/ws"
)

// AccountService, cari hesap iş mantığı interface'i.
type AccountService interface {
	Create(ctx context.Context, req *models.CreateAccountRequest) (*models.Account, error)
	GetByID(ctx context.Context, id int64) (*models.Account, error)
	GetAll(ctx context.Context) ([]models.Account, error)
	Update(ctx context.Context, id int64, req *models.UpdateAccountRequest) (*models.Account, error)
	Delete(ctx context.Context, id int64) error
	// Summary, hesabın borç/alacak toplamlarını ve net bakiyesini
	// hareketlerden türetir. Hiçbir yerde saklanmaz.
	Summary(ctx context.Context, id int64) (*models.AccountSummary, error)
}

// accountService, AccountService'in implementasyonu.
// Tüm dependency'ler interface olarak tutulur (Dependency Inversion).
type accountService struct {
	accountRepo repository.AccountRepository
	txnRepo     repository.TransactionRepository
	hub         ws.EventPublisher
}

// NewAccountService, constructor — interface döner.
func NewAccountService(
	accountRepo repository.AccountRepository,
	txnRepo repository.TransactionRepository,
	hub ws.EventPublisher,
) AccountService {
	return &accountService{
		accountRepo: accountRepo,
		txnRepo:     txnRepo,
		hub:         hub,
	}
}

func (s *accountService) Create(ctx context.Context, req *models.CreateAccountRequest) (*models.Account, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	account := &models.Account{
		Name:      req.Name,
		Type:      req.Type,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   req.Address,
		TaxNumber: req.TaxNumber,
		TaxOffice: req.TaxOffice,
		Notes:     req.Notes,
	}

	if err := s.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	s.publish(ws.OpCreated, account.ID)
	return account, nil
}

func (s *accountService) GetByID(ctx context.Context, id int64) (*models.Account, error) {
	return s.accountRepo.GetByID(ctx, id)
}

func (s *accountService) GetAll(ctx context.Context) ([]models.Account, error) {
	return s.accountRepo.GetAll(ctx)
}

func (s *accountService) Update(ctx context.Context, id int64, req *models.UpdateAccountRequest) (*models.Account, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	account, err := s.accountRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	req.ApplyTo(account)

	if err := s.accountRepo.Update(ctx, account); err != nil {
		return nil, err
	}

	s.publish(ws.OpUpdated, account.ID)
	return account, nil
}

func (s *accountService) Delete(ctx context.Context, id int64) error {
	if err := s.accountRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.publish(ws.OpDeleted, id)
	return nil
}

// Summary, hesabın tüm hareketlerini toplar.
// Borç (debit) bakiyeyi artırır, alacak (credit) azaltır;
// Balance = TotalDebit − TotalCredit.
func (s *accountService) Summary(ctx context.Context, id int64) (*models.AccountSummary, error) {
	if _, err := s.accountRepo.GetByID(ctx, id); err != nil {
		return nil, err
	}

	txns, err := s.txnRepo.ListByAccount(ctx, id)
	if err != nil {
		return nil, err
	}

	summary := &models.AccountSummary{
		AccountID:   id,
		TotalDebit:  decimal.Zero,
		TotalCredit: decimal.Zero,
	}
	for _, txn := range txns {
		switch txn.Type {
		case models.TransactionTypeDebit:
			summary.TotalDebit = summary.TotalDebit.Add(txn.Amount)
		case models.TransactionTypeCredit:
			summary.TotalCredit = summary.TotalCredit.Add(txn.Amount)
		}
	}
	summary.Balance = summary.TotalDebit.Sub(summary.TotalCredit)

	return summary, nil
}

func (s *accountService) publish(op ws.Op, id int64) {
	if s.hub != nil {
		s.hub.BroadcastToAll(ws.Event{Op: op, Entity: "account", ID: id})
	}
}
