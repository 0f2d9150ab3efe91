package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/tourplanner/internal/client/api"
	"github.com/dmitrijs2005/tourplanner/internal/client/models"
	"github.com/dmitrijs2005/tourplanner/internal/client/repositories"
)

// fakeClient implements api.Client for service tests.
type fakeClient struct {
	tokens api.Tokens

	RefreshErr  error
	RefreshRet  api.Tokens
	RefreshHook func(api.Tokens)

	BookmarksRet []models.BookmarkRecord
	ToursRet     []models.Tour
	TourRet      *models.Tour
	SaveRet      *models.Tour
	Err          error

	ESIMReq models.ESIMPurchaseRequest
	City    string
}

var _ api.Client = (*fakeClient)(nil)

func (f *fakeClient) SetTokens(t api.Tokens) { f.tokens = t }
func (f *fakeClient) Tokens() api.Tokens     { return f.tokens }

func (f *fakeClient) Refresh(context.Context) error {
	if f.RefreshErr != nil {
		return f.RefreshErr
	}
	f.tokens = f.RefreshRet
	if f.RefreshHook != nil {
		f.RefreshHook(f.tokens)
	}
	return nil
}

func (f *fakeClient) Bookmarks(context.Context, string, string) ([]models.BookmarkRecord, error) {
	return f.BookmarksRet, f.Err
}

func (f *fakeClient) Tours(context.Context) ([]models.Tour, error) { return f.ToursRet, f.Err }

func (f *fakeClient) Tour(context.Context, string) (*models.Tour, error) { return f.TourRet, f.Err }

func (f *fakeClient) SaveTour(_ context.Context, t *models.Tour) (*models.Tour, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	if f.SaveRet != nil {
		return f.SaveRet, nil
	}
	return t, nil
}

func (f *fakeClient) Monuments(_ context.Context, city string) ([]models.Monument, error) {
	f.City = city
	return []models.Monument{{ID: "m1", Name: "Koutoubia", City: city}}, f.Err
}

func (f *fakeClient) Restaurants(_ context.Context, city string) ([]models.Restaurant, error) {
	f.City = city
	return nil, f.Err
}

func (f *fakeClient) Exchanges(context.Context) ([]models.ExchangeBroker, error) { return nil, f.Err }

func (f *fakeClient) ESIMs(context.Context) ([]models.ESIM, error) {
	return []models.ESIM{{ID: "e1", Provider: "Maroc Telecom"}}, f.Err
}

func (f *fakeClient) BuyESIM(_ context.Context, req models.ESIMPurchaseRequest) (*models.ESIMPurchase, error) {
	f.ESIMReq = req
	if f.Err != nil {
		return nil, f.Err
	}
	return &models.ESIMPurchase{ID: "p1", ESIMID: req.ESIMID, Status: "paid"}, nil
}

func openRepos(t *testing.T) *repositories.Repositories {
	t.Helper()
	repos, err := repositories.Open(context.Background(), ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = repos.Close() })
	return repos
}
