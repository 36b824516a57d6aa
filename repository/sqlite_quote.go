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

// sqliteQuoteRepo, QuoteRepository'nin SQLite implementasyonu.
//
// Diğer repo'lardan farklı olarak TxQuerier değil *sql.DB alır:
// teklif + kalemleri çok satırlı yazıldığı için Create/Update/Delete
// database.WithTx ile transaction içinde çalışır. Bir kalem insert'i
// başarısız olursa teklif başlığı da geri alınır — yarım teklif kalmaz.
type sqliteQuoteRepo struct {
	db *sql.DB
}

// NewSQLiteQuoteRepo, constructor.
func NewSQLiteQuoteRepo(db *sql.DB) QuoteRepository {
	return &sqliteQuoteRepo{db: db}
}

const quoteColumns = `id, number, type, status, account_id, date, valid_until, currency, total, notes, created_at, updated_at`

func (r *sqliteQuoteRepo) Create(ctx context.Context, quote *models.Quote) error {
	now := time.Now().UTC()
	quote.CreatedAt = now
	quote.UpdatedAt = now

	err := database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		query := `
			INSERT INTO quotes (number, type, status, account_id, date, valid_until, currency, total, notes, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
			RETURNING id`

		err := tx.QueryRowContext(ctx, query,
			quote.Number, quote.Type, quote.Status, quote.AccountID,
			quote.Date, quote.ValidUntil, quote.Currency, quote.Total, quote.Notes,
			quote.CreatedAt, quote.UpdatedAt,
		).Scan(&quote.ID)
		if err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("%w: quote number %s already in use", pkg.ErrAlreadyExists, quote.Number)
			}
			return fmt.Errorf("failed to create quote: %w", err)
		}

		return insertQuoteItems(ctx, tx, quote)
	})

	return err
}

// insertQuoteItems, kalemleri yazar ve üretilen id'leri quote.Items'a geri doldurur.
func insertQuoteItems(ctx context.Context, tx *sql.Tx, quote *models.Quote) error {
	query := `
		INSERT INTO quote_items (quote_id, description, quantity, unit, unit_price, discount, tax_rate, line_total)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id`

	for i := range quote.Items {
		item := &quote.Items[i]
		item.QuoteID = quote.ID

		err := tx.QueryRowContext(ctx, query,
			item.QuoteID, item.Description, item.Quantity, item.Unit,
			item.UnitPrice, item.Discount, item.TaxRate, item.LineTotal,
		).Scan(&item.ID)
		if err != nil {
			return fmt.Errorf("failed to create quote item: %w", err)
		}
	}
	return nil
}

func (r *sqliteQuoteRepo) GetByID(ctx context.Context, id int64) (*models.Quote, error) {
	query := `SELECT ` + quoteColumns + ` FROM quotes WHERE id = ?`

	quote := &models.Quote{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&quote.ID, &quote.Number, &quote.Type, &quote.Status, &quote.AccountID,
		&quote.Date, &quote.ValidUntil, &quote.Currency, &quote.Total, &quote.Notes,
		&quote.CreatedAt, &quote.UpdatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get quote by id: %w", err)
	}

	items, err := r.loadItems(ctx, quote.ID)
	if err != nil {
		return nil, err
	}
	quote.Items = items

	return quote, nil
}

func (r *sqliteQuoteRepo) GetAll(ctx context.Context) ([]models.Quote, error) {
	return r.list(ctx, `SELECT `+quoteColumns+` FROM quotes ORDER BY id`)
}

func (r *sqliteQuoteRepo) ListByAccount(ctx context.Context, accountID int64) ([]models.Quote, error) {
	return r.list(ctx, `SELECT `+quoteColumns+` FROM quotes WHERE account_id = ? ORDER BY id`, accountID)
}

func (r *sqliteQuoteRepo) list(ctx context.Context, query string, args ...any) ([]models.Quote, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list quotes: %w", err)
	}
	defer rows.Close()

	var quotes []models.Quote
	for rows.Next() {
		var q models.Quote
		if err := rows.Scan(
			&q.ID, &q.Number, &q.Type, &q.Status, &q.AccountID,
			&q.Date, &q.ValidUntil, &q.Currency, &q.Total, &q.Notes,
			&q.CreatedAt, &q.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan quote row: %w", err)
		}
		quotes = append(quotes, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating quote rows: %w", err)
	}

	// N+1 yerine tüm kalemleri tek sorguda çekip eşle
	if len(quotes) > 0 {
		itemsByQuote, err := r.loadAllItems(ctx)
		if err != nil {
			return nil, err
		}
		for i := range quotes {
			quotes[i].Items = itemsByQuote[quotes[i].ID]
		}
	}

	return quotes, nil
}

func (r *sqliteQuoteRepo) loadItems(ctx context.Context, quoteID int64) ([]models.QuoteItem, error) {
	query := `
		SELECT id, quote_id, description, quantity, unit, unit_price, discount, tax_rate, line_total
		FROM quote_items WHERE quote_id = ? ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, quoteID)
	if err != nil {
		return nil, fmt.Errorf("failed to load quote items: %w", err)
	}
	defer rows.Close()

	return scanQuoteItems(rows)
}

func (r *sqliteQuoteRepo) loadAllItems(ctx context.Context) (map[int64][]models.QuoteItem, error) {
	query := `
		SELECT id, quote_id, description, quantity, unit, unit_price, discount, tax_rate, line_total
		FROM quote_items ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to load quote items: %w", err)
	}
	defer rows.Close()

	items, err := scanQuoteItems(rows)
	if err != nil {
		return nil, err
	}

	byQuote := make(map[int64][]models.QuoteItem)
	for _, item := range items {
		byQuote[item.QuoteID] = append(byQuote[item.QuoteID], item)
	}
	return byQuote, nil
}

func scanQuoteItems(rows *sql.Rows) ([]models.QuoteItem, error) {
	var items []models.QuoteItem
	for rows.Next() {
		var item models.QuoteItem
		if err := rows.Scan(
			&item.ID, &item.QuoteID, &item.Description, &item.Quantity, &item.Unit,
			&item.UnitPrice, &item.Discount, &item.TaxRate, &item.LineTotal,
		); err != nil {
			return nil, fmt.Errorf("failed to scan quote item row: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating quote item rows: %w", err)
	}
	return items, nil
}

func (r *sqliteQuoteRepo) Update(ctx context.Context, quote *models.Quote, replaceItems bool) error {
	quote.UpdatedAt = time.Now().UTC()

	return database.WithTx(ctx, r.db, func(tx *sql.Tx) error {
		query := `
			UPDATE quotes
			SET number = ?, status = ?, account_id = ?, date = ?, valid_until = ?,
			    currency = ?, total = ?, notes = ?, updated_at = ?
			WHERE id = ?`

		result, err := tx.ExecContext(ctx, query,
			quote.Number, quote.Status, quote.AccountID, quote.Date, quote.ValidUntil,
			quote.Currency, quote.Total, quote.Notes, quote.UpdatedAt, quote.ID,
		)
		if err != nil {
			if isUniqueViolation(err) {
				return fmt.Errorf("%w: quote number %s already in use", pkg.ErrAlreadyExists, quote.Number)
			}
			return fmt.Errorf("failed to update quote: %w", err)
		}

		affected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to check rows affected: %w", err)
		}
		if affected == 0 {
			return pkg.ErrNotFound
		}

		if !replaceItems {
			return nil
		}

		if _, err := tx.ExecContext(ctx, `DELETE FROM quote_items WHERE quote_id = ?`, quote.ID); err != nil {
			return fmt.Errorf("failed to delete old quote items: %w", err)
		}
		return insertQuoteItems(ctx, tx, quote)
	})
}

func (r *sqliteQuoteRepo) Delete(ctx context.Context, id int64) error {
	// quote_items ON DELETE CASCADE ile birlikte silinir
	result, err := r.db.ExecContext(ctx, `DELETE FROM quotes WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete quote: %w", err)
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

func (r *sqliteQuoteRepo) NextNumber(ctx context.Context, prefix string, year int) (string, error) {
	// Prefix+yıl kapsamındaki en büyük suffix'i bul, bir artır.
	// Suffix "PREFIX-YYYY-" sonrasının tamamıdır; 999'u aşan serilerde
	// 4+ haneli numaralar da doğru parse edilir.
	// Eşzamanlı iki create aynı numarayı üretirse UNIQUE index yakalar
	// ve Create ErrAlreadyExists döner.
	query := `
		SELECT COALESCE(MAX(CAST(substr(number, ?) AS INTEGER)), 0)
		FROM quotes WHERE number LIKE ?`

	var max int
	scope := fmt.Sprintf("%s-%d-", prefix, year)
	if err := r.db.QueryRowContext(ctx, query, len(scope)+1, scope+"%").Scan(&max); err != nil {
		return "", fmt.Errorf("failed to get next quote number: %w", err)
	}

	return fmt.Sprintf("%s-%d-%03d", prefix, year, max+1), nil
}

func (r *sqliteQuoteRepo) CountByStatus(ctx context.Context) (map[models.QuoteStatus]int, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT status, COUNT(*) FROM quotes GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("failed to count quotes by status: %w", err)
	}
	defer rows.Close()

	counts := make(map[models.QuoteStatus]int)
	for rows.Next() {
		var status models.QuoteStatus
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan quote status count: %w", err)
		}
		counts[status] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating quote status counts: %w", err)
	}

	return counts, nil
}
