package services

import (
	"context"
	"fmt"
	"net/mail"
	"strings"

	"github.com/dmitrijs2005/tourplanner/internal/client/api"
	"github.com/dmitrijs2005/tourplanner/internal/client/models"
	"github.com/dmitrijs2005/tourplanner/internal/common"
)

// CatalogService browses the bookmarkable catalog and buys eSIMs.
type CatalogService interface {
	Monuments(ctx context.Context, city string) ([]models.Monument, error)
	Restaurants(ctx context.Context, city string) ([]models.Restaurant, error)
	Exchanges(ctx context.Context) ([]models.ExchangeBroker, error)
	ESIMs(ctx context.Context) ([]models.ESIM, error)
	BuyESIM(ctx context.Context, esimID, email string) (*models.ESIMPurchase, error)
}

type catalogService struct {
	client api.Client
}

func NewCatalogService(client api.Client) CatalogService {
	return &catalogService{client: client}
}

func (c *catalogService) Monuments(ctx context.Context, city string) ([]models.Monument, error) {
	return c.client.Monuments(ctx, strings.TrimSpace(city))
}

func (c *catalogService) Restaurants(ctx context.Context, city string) ([]models.Restaurant, error) {
	return c.client.Restaurants(ctx, strings.TrimSpace(city))
}

func (c *catalogService) Exchanges(ctx context.Context) ([]models.ExchangeBroker, error) {
	return c.client.Exchanges(ctx)
}

func (c *catalogService) ESIMs(ctx context.Context) ([]models.ESIM, error) {
	return c.client.ESIMs(ctx)
}

// BuyESIM validates the request before posting it.
func (c *catalogService) BuyESIM(ctx context.Context, esimID, email string) (*models.ESIMPurchase, error) {
	esimID = strings.TrimSpace(esimID)
	if esimID == "" {
		return nil, fmt.Errorf("%w: esim id is required", common.ErrorValidation)
	}
	addr, err := mail.ParseAddress(strings.TrimSpace(email))
	if err != nil {
		return nil, fmt.Errorf("%w: invalid email: %v", common.ErrorValidation, err)
	}
	return c.client.BuyESIM(ctx, models.ESIMPurchaseRequest{ESIMID: esimID, Email: addr.Address})
}
