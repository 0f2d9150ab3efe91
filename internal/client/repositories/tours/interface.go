// Package tours caches the user's saved tours for offline use.
package tours

import (
	"context"

	"github.com/dmitrijs2005/tourplanner/internal/client/models"
)

// Repository returns common.ErrorNotFound from Get for unknown ids.
type Repository interface {
	Upsert(ctx context.Context, t *models.Tour) error
	ReplaceAll(ctx context.Context, ts []models.Tour) error
	GetAll(ctx context.Context) ([]models.Tour, error)
	Get(ctx context.Context, id string) (*models.Tour, error)
}
