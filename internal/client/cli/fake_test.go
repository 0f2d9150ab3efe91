package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/tourplanner/internal/client/api"
	"github.com/dmitrijs2005/tourplanner/internal/client/config"
	"github.com/dmitrijs2005/tourplanner/internal/client/models"
	"github.com/dmitrijs2005/tourplanner/internal/common"
	"github.com/dmitrijs2005/tourplanner/internal/logging"
)

type fakeAuth struct {
	loggedIn bool
	token    string
	err      error
}

func (f *fakeAuth) Login(_ context.Context, token string) error {
	if f.err != nil {
		return f.err
	}
	f.token = token
	f.loggedIn = true
	return nil
}
func (f *fakeAuth) Restore(context.Context) (bool, error) { return f.loggedIn, nil }
func (f *fakeAuth) Logout(context.Context) error {
	f.loggedIn = false
	return nil
}
func (f *fakeAuth) LoggedIn() bool      { return f.loggedIn }
func (f *fakeAuth) OnTokens(api.Tokens) {}

type fakeTours struct {
	records []models.BookmarkRecord
	tours   []models.Tour
	offline bool
	err     error

	saved     *models.Tour
	draft     *models.Tour
	discarded bool
}

func (f *fakeTours) Bookmarks(context.Context, string, string) ([]models.BookmarkRecord, error) {
	return f.records, f.err
}
func (f *fakeTours) Tours(context.Context) ([]models.Tour, error) { return f.tours, f.err }
func (f *fakeTours) Tour(_ context.Context, id string) (*models.Tour, error) {
	for i := range f.tours {
		if f.tours[i].ID == id {
			return f.tours[i].Clone(), nil
		}
	}
	return nil, api.ErrNotFound
}
func (f *fakeTours) SaveTour(_ context.Context, t *models.Tour) (*models.Tour, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.saved = t.Clone()
	out := t.Clone()
	out.ID = "tour-42"
	return out, nil
}
func (f *fakeTours) Offline() bool { return f.offline }
func (f *fakeTours) SaveDraft(_ context.Context, t *models.Tour) error {
	f.draft = t.Clone()
	return nil
}
func (f *fakeTours) LoadDraft(context.Context) (*models.Tour, error) {
	if f.draft == nil {
		return nil, common.ErrorNotFound
	}
	return f.draft.Clone(), nil
}
func (f *fakeTours) DiscardDraft(context.Context) error {
	f.draft = nil
	f.discarded = true
	return nil
}

type fakeCatalog struct {
	monuments []models.Monument
	esims     []models.ESIM
	bought    string
}

func (f *fakeCatalog) Monuments(context.Context, string) ([]models.Monument, error) {
	return f.monuments, nil
}
func (f *fakeCatalog) Restaurants(context.Context, string) ([]models.Restaurant, error) {
	return nil, nil
}
func (f *fakeCatalog) Exchanges(context.Context) ([]models.ExchangeBroker, error) {
	return []models.ExchangeBroker{{ID: "b1", Name: "Change Plus", Address: "Av. Mohammed V", City: "Rabat",
		Rates: map[string]float64{"USD": 10.02, "EUR": 10.85}}}, nil
}
func (f *fakeCatalog) ESIMs(context.Context) ([]models.ESIM, error) { return f.esims, nil }
func (f *fakeCatalog) BuyESIM(_ context.Context, id, _ string) (*models.ESIMPurchase, error) {
	f.bought = id
	return &models.ESIMPurchase{ID: "p1", ESIMID: id, Status: "pending"}, nil
}

func bookmark(t *testing.T, id string, typ models.BookmarkType, v any) models.BookmarkRecord {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return models.BookmarkRecord{ID: id, Type: typ, Item: b}
}

type testApp struct {
	*App
	buf     *bytes.Buffer
	tours   *fakeTours
	catalog *fakeCatalog
}

// newTestApp returns a logged in app whose backend knows three Marrakech
// bookmarks and one in Fes.
func newTestApp(t *testing.T) *testApp {
	t.Helper()
	ft := &fakeTours{records: []models.BookmarkRecord{
		bookmark(t, "jemaa", models.BookmarkMonument, models.MonumentBookmark{ID: "jemaa", Name: "Jemaa el-Fnaa", City: "Marrakech"}),
		bookmark(t, "nomad", models.BookmarkRestaurant, models.RestaurantBookmark{ID: "nomad", Name: "Nomad", City: "Marrakech"}),
		bookmark(t, "bahia", models.BookmarkMonument, models.MonumentBookmark{ID: "bahia", Name: "Bahia Palace", City: "Marrakech"}),
		bookmark(t, "clock", models.BookmarkRestaurant, models.RestaurantBookmark{ID: "clock", Name: "Cafe Clock", City: "Fes"}),
	}}
	fc := &fakeCatalog{}
	buf := &bytes.Buffer{}
	a := newApp(&config.Config{}, logging.Nop(), buf, &fakeAuth{loggedIn: true}, ft, fc)
	return &testApp{App: a, buf: buf, tours: ft, catalog: fc}
}

// run executes a command line against the app and fails the test on error.
func (ta *testApp) run(t *testing.T, line string) string {
	t.Helper()
	ta.buf.Reset()
	parts := parseArgs(line)
	h, ok := handler(ta.App, parts[0])
	require.True(t, ok, "unknown command %s", parts[0])
	require.NoError(t, h(context.Background(), parts[1:]), line)
	return ta.buf.String()
}
