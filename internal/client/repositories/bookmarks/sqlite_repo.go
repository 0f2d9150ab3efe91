package bookmarks

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/tourplanner/internal/client/models"
	"github.com/dmitrijs2005/tourplanner/internal/dbx"
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(db *sql.DB) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

// Replace stores recs as the cached answer for [start, end], keeping their
// order.
func (r *SQLiteRepository) Replace(ctx context.Context, start, end string, recs []models.BookmarkRecord) error {
	return dbx.WithTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM bookmarks WHERE range_start = ? AND range_end = ?`, start, end); err != nil {
			return fmt.Errorf("failed to clear bookmarks: %w", err)
		}
		for i, rec := range recs {
			body := []byte(rec.Item)
			if body == nil {
				body = []byte("null")
			}
			_, err := tx.ExecContext(ctx, `
				INSERT INTO bookmarks (range_start, range_end, position, id, type, body)
				VALUES (?, ?, ?, ?, ?, ?)
			`, start, end, i, rec.ID, string(rec.Type), body)
			if err != nil {
				return fmt.Errorf("failed to insert bookmark %s: %w", rec.ID, err)
			}
		}
		return nil
	})
}

func (r *SQLiteRepository) Get(ctx context.Context, start, end string) ([]models.BookmarkRecord, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, type, body FROM bookmarks
		WHERE range_start = ? AND range_end = ?
		ORDER BY position
	`, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to select bookmarks: %w", err)
	}
	defer rows.Close()

	var result []models.BookmarkRecord
	for rows.Next() {
		var (
			rec  models.BookmarkRecord
			typ  string
			body []byte
		)
		if err := rows.Scan(&rec.ID, &typ, &body); err != nil {
			return nil, err
		}
		rec.Type = models.BookmarkType(typ)
		rec.Item = body
		result = append(result, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *SQLiteRepository) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM bookmarks`); err != nil {
		return fmt.Errorf("failed to clear bookmarks: %w", err)
	}
	return nil
}
