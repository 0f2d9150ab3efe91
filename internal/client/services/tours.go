package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/dmitrijs2005/tourplanner/internal/client/api"
	"github.com/dmitrijs2005/tourplanner/internal/client/models"
	"github.com/dmitrijs2005/tourplanner/internal/client/repositories/bookmarks"
	"github.com/dmitrijs2005/tourplanner/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/tourplanner/internal/client/repositories/tours"
	"github.com/dmitrijs2005/tourplanner/internal/client/tour"
	"github.com/dmitrijs2005/tourplanner/internal/common"
	"github.com/dmitrijs2005/tourplanner/internal/logging"
)

// TourService is the tour.Backend used by the CLI. Reads go to the API and
// fall back to the local cache when the server is unavailable; writes go to
// the API only.
type TourService interface {
	tour.Backend

	// Offline reports whether the last read was served from the cache.
	Offline() bool

	SaveDraft(ctx context.Context, t *models.Tour) error
	// LoadDraft returns common.ErrorNotFound when no draft was saved.
	LoadDraft(ctx context.Context) (*models.Tour, error)
	DiscardDraft(ctx context.Context) error
}

var _ tour.Backend = (*tourService)(nil)

type tourService struct {
	client       api.Client
	tourRepo     tours.Repository
	bookmarkRepo bookmarks.Repository
	metadataRepo metadata.Repository
	logger       logging.Logger

	offline atomic.Bool
}

func NewTourService(client api.Client, tourRepo tours.Repository, bookmarkRepo bookmarks.Repository,
	metadataRepo metadata.Repository, logger logging.Logger) TourService {
	if logger == nil {
		logger = logging.Nop()
	}
	return &tourService{
		client:       client,
		tourRepo:     tourRepo,
		bookmarkRepo: bookmarkRepo,
		metadataRepo: metadataRepo,
		logger:       logger,
	}
}

func (s *tourService) Offline() bool {
	return s.offline.Load()
}

func (s *tourService) Bookmarks(ctx context.Context, start, end string) ([]models.BookmarkRecord, error) {
	recs, err := s.client.Bookmarks(ctx, start, end)
	if err == nil {
		s.offline.Store(false)
		if cerr := s.bookmarkRepo.Replace(ctx, start, end, recs); cerr != nil {
			s.logger.Warn(ctx, "failed to cache bookmarks", "error", cerr)
		}
		return recs, nil
	}
	if !errors.Is(err, api.ErrUnavailable) {
		return nil, err
	}

	cached, cerr := s.bookmarkRepo.Get(ctx, start, end)
	if cerr != nil || cached == nil {
		return nil, err
	}
	s.offline.Store(true)
	s.logger.Warn(ctx, "server unavailable, using cached bookmarks", "start", start, "end", end, "count", len(cached))
	return cached, nil
}

func (s *tourService) Tours(ctx context.Context) ([]models.Tour, error) {
	ts, err := s.client.Tours(ctx)
	if err == nil {
		s.offline.Store(false)
		if cerr := s.tourRepo.ReplaceAll(ctx, ts); cerr != nil {
			s.logger.Warn(ctx, "failed to cache tours", "error", cerr)
		}
		return ts, nil
	}
	if !errors.Is(err, api.ErrUnavailable) {
		return nil, err
	}

	cached, cerr := s.tourRepo.GetAll(ctx)
	if cerr != nil || len(cached) == 0 {
		return nil, err
	}
	s.offline.Store(true)
	s.logger.Warn(ctx, "server unavailable, using cached tours", "count", len(cached))
	return cached, nil
}

func (s *tourService) Tour(ctx context.Context, id string) (*models.Tour, error) {
	t, err := s.client.Tour(ctx, id)
	if err == nil {
		s.offline.Store(false)
		if cerr := s.tourRepo.Upsert(ctx, t); cerr != nil {
			s.logger.Warn(ctx, "failed to cache tour", "tour_id", id, "error", cerr)
		}
		return t, nil
	}
	if !errors.Is(err, api.ErrUnavailable) {
		return nil, err
	}

	cached, cerr := s.tourRepo.Get(ctx, id)
	if cerr != nil {
		return nil, err
	}
	s.offline.Store(true)
	s.logger.Warn(ctx, "server unavailable, using cached tour", "tour_id", id)
	return cached, nil
}

func (s *tourService) SaveTour(ctx context.Context, t *models.Tour) (*models.Tour, error) {
	saved, err := s.client.SaveTour(ctx, t)
	if err != nil {
		return nil, err
	}
	s.offline.Store(false)
	if saved != nil && saved.ID != "" {
		if cerr := s.tourRepo.Upsert(ctx, saved); cerr != nil {
			s.logger.Warn(ctx, "failed to cache saved tour", "tour_id", saved.ID, "error", cerr)
		}
	}
	return saved, nil
}

func (s *tourService) SaveDraft(ctx context.Context, t *models.Tour) error {
	if t == nil {
		return tour.ErrNoDraft
	}
	body, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("failed to encode draft: %w", err)
	}
	return s.metadataRepo.Set(ctx, metadata.KeyDraft, body)
}

func (s *tourService) LoadDraft(ctx context.Context) (*models.Tour, error) {
	body, err := s.metadataRepo.Get(ctx, metadata.KeyDraft)
	if err != nil {
		return nil, err
	}
	if len(body) == 0 {
		return nil, common.ErrorNotFound
	}
	var t models.Tour
	if err := json.Unmarshal(body, &t); err != nil {
		return nil, fmt.Errorf("failed to decode draft: %w", err)
	}
	return &t, nil
}

func (s *tourService) DiscardDraft(ctx context.Context) error {
	return s.metadataRepo.Delete(ctx, metadata.KeyDraft)
}
