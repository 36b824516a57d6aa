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

// sqliteProjectRepo, ProjectRepository'nin SQLite implementasyonu.
type sqliteProjectRepo struct {
	db database.TxQuerier
}

// NewSQLiteProjectRepo, constructor.
func NewSQLiteProjectRepo(db database.TxQuerier) ProjectRepository {
	return &sqliteProjectRepo{db: db}
}

const projectColumns = `id, number, name, account_id, quote_id, status, start_date, end_date, amount, currency, notes, created_at, updated_at`

func (r *sqliteProjectRepo) Create(ctx context.Context, project *models.Project) error {
	now := time.Now().UTC()
	project.CreatedAt = now
	project.UpdatedAt = now

	query := `
		INSERT INTO projects (number, name, account_id, quote_id, status, start_date, end_date, amount, currency, notes, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		RETURNING id`

	err := r.db.QueryRowContext(ctx, query,
		project.Number, project.Name, project.AccountID, project.QuoteID, project.Status,
		project.StartDate, project.EndDate, project.Amount, project.Currency, project.Notes,
		project.CreatedAt, project.UpdatedAt,
	).Scan(&project.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: project number %s already in use", pkg.ErrAlreadyExists, project.Number)
		}
		return fmt.Errorf("failed to create project: %w", err)
	}

	return nil
}

func (r *sqliteProjectRepo) GetByID(ctx context.Context, id int64) (*models.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = ?`

	project := &models.Project{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&project.ID, &project.Number, &project.Name, &project.AccountID, &project.QuoteID,
		&project.Status, &project.StartDate, &project.EndDate, &project.Amount,
		&project.Currency, &project.Notes, &project.CreatedAt, &project.UpdatedAt,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, pkg.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get project by id: %w", err)
	}

	return project, nil
}

func (r *sqliteProjectRepo) GetAll(ctx context.Context) ([]models.Project, error) {
	return r.list(ctx, `SELECT `+projectColumns+` FROM projects ORDER BY id`)
}

func (r *sqliteProjectRepo) ListByAccount(ctx context.Context, accountID int64) ([]models.Project, error) {
	return r.list(ctx, `SELECT `+projectColumns+` FROM projects WHERE account_id = ? ORDER BY id`, accountID)
}

func (r *sqliteProjectRepo) ListByStatus(ctx context.Context, status models.ProjectStatus) ([]models.Project, error) {
	return r.list(ctx, `SELECT `+projectColumns+` FROM projects WHERE status = ? ORDER BY id`, status)
}

func (r *sqliteProjectRepo) list(ctx context.Context, query string, args ...any) ([]models.Project, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	defer rows.Close()

	var projects []models.Project
	for rows.Next() {
		var p models.Project
		if err := rows.Scan(
			&p.ID, &p.Number, &p.Name, &p.AccountID, &p.QuoteID,
			&p.Status, &p.StartDate, &p.EndDate, &p.Amount,
			&p.Currency, &p.Notes, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan project row: %w", err)
		}
		projects = append(projects, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating project rows: %w", err)
	}

	return projects, nil
}

func (r *sqliteProjectRepo) Update(ctx context.Context, project *models.Project) error {
	project.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE projects
		SET number = ?, name = ?, account_id = ?, quote_id = ?, status = ?,
		    start_date = ?, end_date = ?, amount = ?, currency = ?, notes = ?, updated_at = ?
		WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query,
		project.Number, project.Name, project.AccountID, project.QuoteID, project.Status,
		project.StartDate, project.EndDate, project.Amount, project.Currency, project.Notes,
		project.UpdatedAt, project.ID,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("%w: project number %s already in use", pkg.ErrAlreadyExists, project.Number)
		}
		return fmt.Errorf("failed to update project: %w", err)
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

func (r *sqliteProjectRepo) Delete(ctx context.Context, id int64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
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

func (r *sqliteProjectRepo) NextNumber(ctx context.Context, year int) (string, error) {
	// Suffix "PRJ-YYYY-" sonrasının tamamıdır; 999'u aşan serilerde
	// 4+ haneli numaralar da doğru parse edilir.
	query := `
		SELECT COALESCE(MAX(CAST(substr(number, ?) AS INTEGER)), 0)
		FROM projects WHERE number LIKE ?`

	var max int
	scope := fmt.Sprintf("%s-%d-", models.ProjectNumberPrefix, year)
	if err := r.db.QueryRowContext(ctx, query, len(scope)+1, scope+"%").Scan(&max); err != nil {
		return "", fmt.Errorf("failed to get next project number: %w", err)
	}

	return fmt.Sprintf("%s-%d-%03d", models.ProjectNumberPrefix, year, max+1), nil
}

func (r *sqliteProjectRepo) CountByStatus(ctx context.Context) (map[models.ProjectStatus]int, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT status, COUNT(*) FROM projects GROUP BY status`)
	if err != nil {
		return nil, fmt.Errorf("failed to count projects by status: %w", err)
	}
	defer rows.Close()

	counts := make(map[models.ProjectStatus]int)
	for rows.Next() {
		var status models.ProjectStatus
		var count int
		if err := rows.Scan(&status, &count); err != nil {
			return nil, fmt.Errorf("failed to scan project status count: %w", err)
		}
		counts[status] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating project status counts: %w", err)
	}

	return counts, nil
}
