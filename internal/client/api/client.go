package api

import (
	"context"

	"github.com/dmitrijs2005/tourplanner/internal/client/models"
)

// Tokens is an access/refresh token pair as issued by POST /auth/refresh.
type Tokens struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// Client is the backend contract consumed by the services layer.
type Client interface {
	SetTokens(t Tokens)
	Tokens() Tokens
	Refresh(ctx context.Context) error

	Bookmarks(ctx context.Context, startDate, endDate string) ([]models.BookmarkRecord, error)

	Tours(ctx context.Context) ([]models.Tour, error)
	Tour(ctx context.Context, id string) (*models.Tour, error)
	SaveTour(ctx context.Context, tour *models.Tour) (*models.Tour, error)

	Monuments(ctx context.Context, city string) ([]models.Monument, error)
	Restaurants(ctx context.Context, city string) ([]models.Restaurant, error)
	Exchanges(ctx context.Context) ([]models.ExchangeBroker, error)
	ESIMs(ctx context.Context) ([]models.ESIM, error)
	BuyESIM(ctx context.Context, req models.ESIMPurchaseRequest) (*models.ESIMPurchase, error)
}
