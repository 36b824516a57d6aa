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

// sqliteTransactionRepo, TransactionRepository'nin SQLite implementasyonu.
type sqliteTransactionRepo struct {
	db database.TxQuerier
}

// NewSQLiteTransactionRepo, constructor.
func NewSQLiteTransactionRepo(db database.TxQuerier) TransactionRepository {
	return &sqliteTransactionRepo{db: db}
}

const transactionColumns = `id, account_id, project_id, quote_id, type, amount, date, description, created_at, updated_at`

func (r *sqliteTransactionRepo) Create(ctx context.Context, txn *models.Transaction) error {
	now := time.Now().UTC()
	txn.CreatedAt = now
	txn.UpdatedAt = now

	query := `
		INSERT INTO transactions (account_id, project_id, quote_id, type, amount, date, description, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		txn.AccountID, txn.ProjectID, txn.QuoteID, txn.Type, txn.Amount,
		txn.Date, txn.Description, txn.CreatedAt, txn.UpdatedAt,
	).Scan(&txn.ID)
	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}

	return nil
}

func (r *sqliteTransactionRepo) GetByID(ctx context.Context, id int64) (*models.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = ?`

	txn := &models.Transaction{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&txn.ID, &txn.AccountID, &txn.ProjectID, &txn.QuoteID, &txn.Type,
		&txn.Amount, &txn.Date, &txn.Description, &txn.CreatedAt, &txn.UpdatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get transaction by id: %w", err)
	}

	return txn, nil
}

func (r *sqliteTransactionRepo) GetAll(ctx context.Context) ([]models.Transaction, error) {
	return r.list(ctx, `SELECT `+transactionColumns+` FROM transactions ORDER BY date, id`)
}

// ListByAccount, yürüyen bakiye hesabının beklediği kanonik sırada döner:
// tarih artan, eşit tarihte id artan. Sıralama storage'a itilmiştir —
// uygulama kodunda ikinci bir sort yoktur.
func (r *sqliteTransactionRepo) ListByAccount(ctx context.Context, accountID int64) ([]models.Transaction, error) {
	return r.list(ctx,
		`SELECT `+transactionColumns+` FROM transactions WHERE account_id = ? ORDER BY date, id`,
		accountID)
}

func (r *sqliteTransactionRepo) ListSince(ctx context.Context, from time.Time) ([]models.Transaction, error) {
	return r.list(ctx,
		`SELECT `+transactionColumns+` FROM transactions WHERE date >= ? ORDER BY date, id`,
		from)
}

func (r *sqliteTransactionRepo) list(ctx context.Context, query string, args ...any) ([]models.Transaction, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	var txns []models.Transaction
	for rows.Next() {
		var t models.Transaction
		if err := rows.Scan(
			&t.ID, &t.AccountID, &t.ProjectID, &t.QuoteID, &t.Type,
			&t.Amount, &t.Date, &t.Description, &t.CreatedAt, &t.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan transaction row: %w", err)
		}
		txns = append(txns, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}

	return txns, nil
}

func (r *sqliteTransactionRepo) Update(ctx context.Context, txn *models.Transaction) error {
	txn.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE transactions
		SET account_id = ?, project_id = ?, quote_id = ?, type = ?, amount = ?,
		    date = ?, description = ?, updated_at = ?
		WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query,
		txn.AccountID, txn.ProjectID, txn.QuoteID, txn.Type, txn.Amount,
		txn.Date, txn.Description, txn.UpdatedAt, txn.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction: %w", err)
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

func (r *sqliteTransactionRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
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
