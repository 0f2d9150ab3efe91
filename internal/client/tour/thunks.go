package tour

import (
	"context"

	"github.com/dmitrijs2005/tourplanner/internal/client/bookmarks"
	"github.com/dmitrijs2005/tourplanner/internal/client/models"
)

func (s *Store) begin() {
	_ = s.update(func(st *State) error {
		st.Loading = true
		st.Error = ""
		return nil
	})
}

func (s *Store) fail(ctx context.Context, op string, err error) error {
	s.logger.Warn(ctx, op+" failed", "error", err)
	_ = s.update(func(st *State) error {
		st.Loading = false
		st.Error = err.Error()
		return nil
	})
	return err
}

// FetchAvailableItems loads the bookmarks of the draft's date range and maps
// them to items. It does nothing when that range was already fetched or a
// fetch for it is in flight. Fetches for different ranges may overlap; the
// last one to finish wins.
func (s *Store) FetchAvailableItems(ctx context.Context) error {
	return s.fetchAvailableItems(ctx, false)
}

// RefreshAvailableItems is FetchAvailableItems ignoring a completed fetch.
func (s *Store) RefreshAvailableItems(ctx context.Context) error {
	return s.fetchAvailableItems(ctx, true)
}

func (s *Store) fetchAvailableItems(ctx context.Context, force bool) error {
	s.mu.Lock()
	if s.state.CurrentTour == nil {
		s.mu.Unlock()
		return ErrNoDraft
	}
	r := DateRange{s.state.CurrentTour.StartDate, s.state.CurrentTour.EndDate}
	if s.inflight[r] || (!force && s.state.HasFetched && s.state.FetchedRange == r) {
		s.mu.Unlock()
		return nil
	}
	s.inflight[r] = true
	s.mu.Unlock()

	defer func() {
		s.mu.Lock()
		delete(s.inflight, r)
		s.mu.Unlock()
	}()

	s.begin()
	recs, err := s.backend.Bookmarks(ctx, r.Start, r.End)
	if err != nil {
		return s.fail(ctx, "fetch bookmarks", err)
	}
	items, mapErr := bookmarks.MapAll(recs)
	if mapErr != nil {
		s.logger.Warn(ctx, "some bookmarks were skipped", "error", mapErr)
	}
	s.logger.Debug(ctx, "bookmarks fetched", "records", len(recs), "items", len(items))

	return s.update(func(st *State) error {
		st.AvailableItems = items
		st.HasFetched = true
		st.FetchedRange = r
		st.Loading = false
		return nil
	})
}

func (s *Store) FetchSavedTours(ctx context.Context) error {
	s.begin()
	tours, err := s.backend.Tours(ctx)
	if err != nil {
		return s.fail(ctx, "fetch tours", err)
	}
	return s.update(func(st *State) error {
		st.SavedTours = tours
		st.Loading = false
		return nil
	})
}

// FetchTour loads one tour and merges it into SavedTours.
func (s *Store) FetchTour(ctx context.Context, id string) (*models.Tour, error) {
	s.begin()
	t, err := s.backend.Tour(ctx, id)
	if err != nil {
		return nil, s.fail(ctx, "fetch tour", err)
	}
	_ = s.update(func(st *State) error {
		st.SavedTours = upsert(st.SavedTours, *t)
		st.Loading = false
		return nil
	})
	return t.Clone(), nil
}

// SaveCurrentTour posts the organized draft and, on success, resets it.
func (s *Store) SaveCurrentTour(ctx context.Context) (*models.Tour, error) {
	s.mu.Lock()
	draft := s.state.CurrentTour.Clone()
	s.mu.Unlock()
	if draft == nil {
		return nil, ErrNoDraft
	}
	if len(draft.TourItems) == 0 {
		return nil, ErrNotOrganized
	}

	s.begin()
	saved, err := s.backend.SaveTour(ctx, draft)
	if err != nil {
		return nil, s.fail(ctx, "save tour", err)
	}
	if saved == nil {
		saved = draft
	}
	s.logger.Info(ctx, "tour saved", "tour_id", saved.ID, "items", len(saved.TourItems))

	// The draft is reset only if it was not replaced while the request ran.
	_ = s.update(func(st *State) error {
		st.SavedTours = upsert(st.SavedTours, *saved)
		if st.CurrentTour != nil && st.CurrentTour.ID == draft.ID {
			st.CurrentTour = nil
		}
		st.Loading = false
		return nil
	})
	return saved.Clone(), nil
}

func upsert(tours []models.Tour, t models.Tour) []models.Tour {
	for i := range tours {
		if tours[i].ID == t.ID {
			tours[i] = t
			return tours
		}
	}
	return append(tours, t)
}
