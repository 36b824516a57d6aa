package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/burakgns/istakip/database"
	"github.com/burakgns/istakip/models"
	"github.com/burakgns/istakip/pkg"
)

// sqliteAccountRepo, AccountRepository'nin SQLite implementasyonu.
type sqliteAccountRepo struct {
	db database.TxQuerier
}

// NewSQLiteAccountRepo, constructor.
// AccountRepository interface'i döner (concrete struct değil) — Dependency Inversion.
func NewSQLiteAccountRepo(db database.TxQuerier) AccountRepository {
	return &sqliteAccountRepo{db: db}
}

const accountColumns = `id, name, type, email, phone, address, tax_number, tax_office, notes, created_at, updated_at`

func (r *sqliteAccountRepo) Create(ctx context.Context, account *models.Account) error {
	now := time.Now().UTC()
	account.CreatedAt = now
	account.UpdatedAt = now

	query := `
		INSERT INTO accounts (name, type, email, phone, address, tax_number, tax_office, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		account.Name, account.Type, account.Email, account.Phone, account.Address,
		account.TaxNumber, account.TaxOffice, account.Notes,
		account.CreatedAt, account.UpdatedAt,
	).Scan(&account.ID)
	if err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}

	return nil
}

func (r *sqliteAccountRepo) GetByID(ctx context.Context, id int64) (*models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = ?`

	account := &models.Account{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&account.ID, &account.Name, &account.Type, &account.Email, &account.Phone,
		&account.Address, &account.TaxNumber, &account.TaxOffice, &account.Notes,
		&account.CreatedAt, &account.UpdatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account by id: %w", err)
	}

	return account, nil
}

func (r *sqliteAccountRepo) GetAll(ctx context.Context) ([]models.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get all accounts: %w", err)
	}
	defer rows.Close()

	var accounts []models.Account
	for rows.Next() {
		var a models.Account
		if err := rows.Scan(
			&a.ID, &a.Name, &a.Type, &a.Email, &a.Phone,
			&a.Address, &a.TaxNumber, &a.TaxOffice, &a.Notes,
			&a.CreatedAt, &a.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", err)
	}

	return accounts, nil
}

func (r *sqliteAccountRepo) Update(ctx context.Context, account *models.Account) error {
	account.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE accounts
		SET name = ?, type = ?, email = ?, phone = ?, address = ?,
		    tax_number = ?, tax_office = ?, notes = ?, updated_at = ?
		WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query,
		account.Name, account.Type, account.Email, account.Phone, account.Address,
		account.TaxNumber, account.TaxOffice, account.Notes,
		account.UpdatedAt, account.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if affected == 0 {
		return pkg.ErrNotFound
	}

	return nil
}

func (r *sqliteAccountRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM accounts WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if affected == 0 {
		return pkg.ErrNotFound
	}

	return nil
}

func (r *sqliteAccountRepo) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM accounts`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count accounts: %w", err)
	}
	return count, nil
}
