package tours

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/tourplanner/internal/client/models"
	"github.com/dmitrijs2005/tourplanner/internal/common"
	"github.com/dmitrijs2005/tourplanner/internal/dbx"
)

// SQLiteRepository keeps each tour as a JSON body next to a few searchable
// columns.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func upsert(ctx context.Context, db dbx.DBTX, t *models.Tour) error {
	if t.ID == "" {
		return fmt.Errorf("%w: tour without id", common.ErrorValidation)
	}
	body, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("failed to encode tour %s: %w", t.ID, err)
	}
	_, err = db.ExecContext(ctx, `
		INSERT INTO saved_tours (id, title, start_date, end_date, body, cached_at)
		VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			start_date = excluded.start_date,
			end_date = excluded.end_date,
			body = excluded.body,
			cached_at = excluded.cached_at
	`, t.ID, t.Title, t.StartDate, t.EndDate, body)
	if err != nil {
		return fmt.Errorf("failed to upsert tour %s: %w", t.ID, err)
	}
	return nil
}

func (r *SQLiteRepository) Upsert(ctx context.Context, t *models.Tour) error {
	return upsert(ctx, r.db, t)
}

// ReplaceAll swaps the cached list for ts in one transaction.
func (r *SQLiteRepository) ReplaceAll(ctx context.Context, ts []models.Tour) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM saved_tours`); err != nil {
			return fmt.Errorf("failed to clear tours: %w", err)
		}
		for i := range ts {
			if err := upsert(ctx, tx, &ts[i]); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *SQLiteRepository) GetAll(ctx context.Context) ([]models.Tour, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT body FROM saved_tours ORDER BY start_date, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to select tours: %w", err)
	}
	defer rows.Close()

	var result []models.Tour
	for rows.Next() {
		var body []byte
		if err := rows.Scan(&body); err != nil {
			return nil, err
		}
		var t models.Tour
		if err := json.Unmarshal(body, &t); err != nil {
			return nil, fmt.Errorf("failed to decode cached tour: %w", err)
		}
		result = append(result, t)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) Get(ctx context.Context, id string) (*models.Tour, error) {
	var body []byte
	err := r.db.QueryRowContext(ctx, `SELECT body FROM saved_tours WHERE id = ?`, id).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get tour %s: %w", id, err)
	}
	var t models.Tour
	if err := json.Unmarshal(body, &t); err != nil {
		return nil, fmt.Errorf("failed to decode cached tour %s: %w", id, err)
	}
	return &t, nil
}
