// Package bookmarks caches raw bookmark records per date range so that the
// item list can be rebuilt offline.
package bookmarks

import (
	"context"

	"github.com/dmitrijs2005/tourplanner/internal/client/models"
)

// Repository returns (nil, nil) from Get when the range was never cached.
type Repository interface {
	Replace(ctx context.Context, start, end string, recs []models.BookmarkRecord) error
	Get(ctx context.Context, start, end string) ([]models.BookmarkRecord, error)
	Clear(ctx context.Context) error
}
