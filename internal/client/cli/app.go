package cli

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/dmitrijs2005/tourplanner/internal/client/api"
	"github.com/dmitrijs2005/tourplanner/internal/client/config"
	"github.com/dmitrijs2005/tourplanner/internal/client/geo"
	"github.com/dmitrijs2005/tourplanner/internal/client/itinerary"
	"github.com/dmitrijs2005/tourplanner/internal/client/repositories"
	"github.com/dmitrijs2005/tourplanner/internal/client/services"
	"github.com/dmitrijs2005/tourplanner/internal/client/timeline"
	"github.com/dmitrijs2005/tourplanner/internal/client/tour"
	"github.com/dmitrijs2005/tourplanner/internal/filex"
	"github.com/dmitrijs2005/tourplanner/internal/logging"
)

type Mode string

const (
	ModeOnline  Mode = "online"
	ModeOffline Mode = "offline"
)

type App struct {
	config *config.Config
	logger logging.Logger
	out    io.Writer
	src    lineSource
	repos  *repositories.Repositories

	authService    services.AuthService
	tourService    services.TourService
	catalogService services.CatalogService

	store     *tour.Store
	builder   *itinerary.Builder
	timelines map[int]*timeline.Timeline

	Mode Mode
}

// NewApp opens the local cache and wires the API client, services and
// itinerary state.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger) (*App, error) {
	for _, path := range []string{c.DatabaseDSN, c.HistoryFile} {
		if err := filex.EnsureParentDir(path); err != nil {
			return nil, err
		}
	}
	repos, err := repositories.Open(ctx, c.DatabaseDSN)
	if err != nil {
		return nil, fmt.Errorf("error initializing database: %w", err)
	}

	var auth services.AuthService
	client := api.NewHTTPClient(c.APIBaseURL,
		api.WithLogger(logger.With("component", "api")),
		api.WithRateLimit(c.RequestsPerSecond, c.Burst),
		api.WithDefaultImage(c.DefaultImageURL),
		api.WithHTTPClient(&http.Client{Timeout: c.RequestTimeout}),
		api.WithTokenListener(func(t api.Tokens) { auth.OnTokens(t) }),
	)
	auth = services.NewAuthService(client, repos.DB, logger)
	ts := services.NewTourService(client, repos.Tours, repos.Bookmarks, repos.Metadata, logger)
	cs := services.NewCatalogService(client)

	a := newApp(c, logger, os.Stdout, auth, ts, cs)
	a.repos = repos
	return a, nil
}

func newApp(c *config.Config, logger logging.Logger, out io.Writer, auth services.AuthService,
	ts services.TourService, cs services.CatalogService) *App {
	store := tour.NewStore(ts, tour.WithLogger(logger.With("component", "store")))
	a := &App{
		config:         c,
		logger:         logger,
		out:            out,
		authService:    auth,
		tourService:    ts,
		catalogService: cs,
		store:          store,
		builder:        itinerary.NewBuilder(store, geo.NewResolver()),
		timelines:      map[int]*timeline.Timeline{},
		Mode:           ModeOnline,
	}
	store.Subscribe(a.onStateChange)
	return a
}

// onStateChange drops timelines that no longer belong to an organized draft
// and keeps the others in step with the store.
func (a *App) onStateChange(st tour.State) {
	if st.CurrentTour == nil || len(st.CurrentTour.TourItems) == 0 {
		clear(a.timelines)
		return
	}
	if err := a.syncTimelines(st); err != nil {
		a.logger.Error(context.Background(), "failed to sync timelines", "error", err)
	}
}

func (a *App) setMode(mode Mode) {
	if a.Mode != mode {
		a.Mode = mode
		a.logger.Info(context.Background(), "switched mode", "mode", string(mode))
	}
}

// syncMode follows the tour service after a network call.
func (a *App) syncMode() {
	if a.tourService.Offline() {
		a.setMode(ModeOffline)
	} else {
		a.setMode(ModeOnline)
	}
}

func (a *App) isLoggedIn() bool {
	return a.authService.LoggedIn()
}

// Run restores the session and runs the REPL until the user leaves.
func (a *App) Run(ctx context.Context) error {
	src, err := newLineSource(a.config.HistoryFile, a.out)
	if err != nil {
		return err
	}
	a.src = src
	defer a.Close()

	fmt.Fprintln(a.out, "Welcome to the tour planner (type 'help' for commands)")

	restored, err := a.authService.Restore(ctx)
	if err != nil {
		a.logger.Warn(ctx, "failed to restore session", "error", err)
	}
	if !restored && a.config.RefreshToken != "" {
		if err := a.login(ctx, a.config.RefreshToken); err != nil {
			fmt.Fprintln(a.out, "Login with the configured token failed:", err)
		}
	}

	runREPL(ctx, a, a.status, a.src)
	return nil
}

func (a *App) Close() {
	if a.src != nil {
		if err := a.src.Close(); err != nil {
			a.logger.Warn(context.Background(), "error closing input", "error", err)
		}
	}
	if a.repos != nil {
		if err := a.repos.Close(); err != nil {
			a.logger.Warn(context.Background(), "error closing database", "error", err)
		}
	}
}

// status is shown in the prompt: draft title, selected day, offline flag.
func (a *App) status() string {
	s := ""
	st := a.store.State()
	if st.CurrentTour != nil {
		s = fmt.Sprintf(" [%s d%d/%d]", st.CurrentTour.Title, a.builder.SelectedDay(), st.Days())
	}
	if a.Mode == ModeOffline {
		s += " (offline)"
	}
	return s
}
