package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/dmitrijs2005/tourplanner/internal/client/models"
)

// Bookmarks lists the user's bookmarks. Empty dates are omitted; the backend
// uses the range to pick relevant match fixtures.
func (c *HTTPClient) Bookmarks(ctx context.Context, startDate, endDate string) ([]models.BookmarkRecord, error) {
	q := url.Values{}
	if startDate != "" {
		q.Set("startDate", startDate)
	}
	if endDate != "" {
		q.Set("endDate", endDate)
	}
	var out []models.BookmarkRecord
	if err := c.do(ctx, http.MethodGet, "/bookmarks", q, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) Tours(ctx context.Context) ([]models.Tour, error) {
	var out []models.Tour
	if err := c.do(ctx, http.MethodGet, "/tours", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) Tour(ctx context.Context, id string) (*models.Tour, error) {
	var out models.Tour
	if err := c.do(ctx, http.MethodGet, "/tours/"+url.PathEscape(id), nil, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SaveTour posts tour and returns the stored version as echoed by the backend.
func (c *HTTPClient) SaveTour(ctx context.Context, tour *models.Tour) (*models.Tour, error) {
	var out models.Tour
	if err := c.do(ctx, http.MethodPost, "/tours", nil, tour, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) Monuments(ctx context.Context, city string) ([]models.Monument, error) {
	var out []models.Monument
	if err := c.do(ctx, http.MethodGet, "/spots/monuments", cityQuery(city), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) Restaurants(ctx context.Context, city string) ([]models.Restaurant, error) {
	var out []models.Restaurant
	if err := c.do(ctx, http.MethodGet, "/spots/restaurants", cityQuery(city), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) Exchanges(ctx context.Context) ([]models.ExchangeBroker, error) {
	var out []models.ExchangeBroker
	if err := c.do(ctx, http.MethodGet, "/exchanges", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) ESIMs(ctx context.Context) ([]models.ESIM, error) {
	var out []models.ESIM
	if err := c.do(ctx, http.MethodGet, "/esims", nil, nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *HTTPClient) BuyESIM(ctx context.Context, req models.ESIMPurchaseRequest) (*models.ESIMPurchase, error) {
	var out models.ESIMPurchase
	if err := c.do(ctx, http.MethodPost, "/esims", nil, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func cityQuery(city string) url.Values {
	if city == "" {
		return nil
	}
	return url.Values{"city": []string{city}}
}
