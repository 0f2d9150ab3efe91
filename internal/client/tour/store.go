package tour

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/tourplanner/internal/client/dates"
	"github.com/dmitrijs2005/tourplanner/internal/client/models"
	"github.com/dmitrijs2005/tourplanner/internal/logging"
)

var (
	ErrNoDraft       = errors.New("no tour draft in progress")
	ErrDayOutOfRange = errors.New("day is outside the tour")
	ErrUnknownItem   = errors.New("unknown item")
	ErrNotOrganized  = errors.New("tour has not been organized")
	ErrEmptyTitle    = errors.New("tour title is empty")
)

// Backend is what the store needs from the remote side. Both api.Client and
// the caching services.TourService satisfy it.
type Backend interface {
	Bookmarks(ctx context.Context, startDate, endDate string) ([]models.BookmarkRecord, error)
	Tours(ctx context.Context) ([]models.Tour, error)
	Tour(ctx context.Context, id string) (*models.Tour, error)
	SaveTour(ctx context.Context, tour *models.Tour) (*models.Tour, error)
}

// Store is safe for concurrent use. Subscribers run synchronously after each
// change, outside the store's lock.
type Store struct {
	backend Backend
	logger  logging.Logger
	newID   func() string

	mu       sync.Mutex
	state    State
	inflight map[DateRange]bool

	subMu  sync.Mutex
	subs   map[int]func(State)
	nextID int
}

type Option func(*Store)

func WithLogger(l logging.Logger) Option {
	return func(s *Store) { s.logger = l }
}

// WithIDGenerator replaces the uuid generator used for draft ids.
func WithIDGenerator(fn func() string) Option {
	return func(s *Store) { s.newID = fn }
}

func NewStore(backend Backend, opts ...Option) *Store {
	s := &Store{
		backend:  backend,
		logger:   logging.Nop(),
		newID:    uuid.NewString,
		inflight: make(map[DateRange]bool),
		subs:     make(map[int]func(State)),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// State returns a snapshot of the current state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.clone()
}

// Subscribe registers fn and returns a function that removes it.
func (s *Store) Subscribe(fn func(State)) (unsubscribe func()) {
	s.subMu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

// update applies fn under the lock and notifies subscribers when fn
// succeeds.
func (s *Store) update(fn func(st *State) error) error {
	s.mu.Lock()
	if err := fn(&s.state); err != nil {
		s.mu.Unlock()
		return err
	}
	snap := s.state.clone()
	s.mu.Unlock()

	s.notify(snap)
	return nil
}

func (s *Store) notify(snap State) {
	s.subMu.Lock()
	ids := make([]int, 0, len(s.subs))
	for id := range s.subs {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	fns := make([]func(State), 0, len(ids))
	for _, id := range ids {
		fns = append(fns, s.subs[id])
	}
	s.subMu.Unlock()

	for _, fn := range fns {
		fn(snap)
	}
}

// StartDraft replaces the draft with an empty tour for the given range. Days
// 1..N get empty selections. The available items are dropped since they
// belong to the previous range.
func (s *Store) StartDraft(title, startDate, endDate string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrEmptyTitle
	}
	n, err := dates.DaysInclusive(startDate, endDate)
	if err != nil {
		return err
	}
	start, _ := dates.Parse(startDate)
	end, _ := dates.Parse(endDate)

	t := &models.Tour{
		ID:                 s.newID(),
		Title:              title,
		StartDate:          dates.Format(start),
		EndDate:            dates.Format(end),
		Destinations:       models.Destinations{},
		SelectedItemsByDay: make(map[int][]string, n),
		Cities:             make(map[int]string, n),
		IsEditable:         true,
	}
	for day := 1; day <= n; day++ {
		t.SelectedItemsByDay[day] = []string{}
	}

	return s.update(func(st *State) error {
		st.CurrentTour = t
		st.AvailableItems = nil
		st.HasFetched = false
		st.FetchedRange = DateRange{}
		st.Error = ""
		return nil
	})
}

// RestoreDraft installs t as the draft.
func (s *Store) RestoreDraft(t *models.Tour) error {
	if t == nil || len(t.SelectedItemsByDay) == 0 {
		return ErrNoDraft
	}
	c := t.Clone()
	if c.Cities == nil {
		c.Cities = map[int]string{}
	}
	return s.update(func(st *State) error {
		if st.CurrentTour == nil || st.FetchedRange != (DateRange{c.StartDate, c.EndDate}) {
			st.AvailableItems = nil
			st.HasFetched = false
			st.FetchedRange = DateRange{}
		}
		st.CurrentTour = c
		return nil
	})
}

func (s *Store) ResetDraft() {
	_ = s.update(func(st *State) error {
		st.CurrentTour = nil
		return nil
	})
}

func (s *Store) SetTitle(title string) error {
	title = strings.TrimSpace(title)
	if title == "" {
		return ErrEmptyTitle
	}
	return s.update(func(st *State) error {
		if st.CurrentTour == nil {
			return ErrNoDraft
		}
		st.CurrentTour.Title = title
		return nil
	})
}

func draftDay(st *State, day int) (*models.Tour, error) {
	t := st.CurrentTour
	if t == nil {
		return nil, ErrNoDraft
	}
	if _, ok := t.SelectedItemsByDay[day]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrDayOutOfRange, day)
	}
	return t, nil
}

// ToggleItem adds itemID to day's selection or removes it if present. The
// first item selected for a day without a city sets the day's city.
// Deselecting also drops the item from the organized tour items. It reports
// whether the item is selected afterwards.
func (s *Store) ToggleItem(day int, itemID string) (selected bool, err error) {
	err = s.update(func(st *State) error {
		t, err := draftDay(st, day)
		if err != nil {
			return err
		}
		ids := t.SelectedItemsByDay[day]
		if i := slices.Index(ids, itemID); i >= 0 {
			t.SelectedItemsByDay[day] = slices.Delete(ids, i, i+1)
			t.TourItems = slices.DeleteFunc(t.TourItems, func(ti models.TourItem) bool {
				return ti.Day == day && ti.ItemID == itemID
			})
			renumber(t, day)
			selected = false
			return nil
		}
		item, ok := st.Item(itemID)
		if !ok {
			return fmt.Errorf("%w: %s", ErrUnknownItem, itemID)
		}
		t.SelectedItemsByDay[day] = append(ids, itemID)
		if t.Cities[day] == "" && item.City != "" {
			t.Cities[day] = item.City
		}
		selected = true
		return nil
	})
	return selected, err
}

// SetDayCity sets day's city without touching its selection.
func (s *Store) SetDayCity(day int, city string) error {
	return s.update(func(st *State) error {
		t, err := draftDay(st, day)
		if err != nil {
			return err
		}
		t.Cities[day] = strings.TrimSpace(city)
		return nil
	})
}

// ChangeDayCity clears day's selection and sets its city in one step.
func (s *Store) ChangeDayCity(day int, city string) error {
	return s.update(func(st *State) error {
		t, err := draftDay(st, day)
		if err != nil {
			return err
		}
		t.SelectedItemsByDay[day] = []string{}
		t.TourItems = slices.DeleteFunc(t.TourItems, func(ti models.TourItem) bool { return ti.Day == day })
		t.Cities[day] = strings.TrimSpace(city)
		return nil
	})
}

// ClearDay empties day's selection and drops its organized items.
func (s *Store) ClearDay(day int) error {
	return s.update(func(st *State) error {
		t, err := draftDay(st, day)
		if err != nil {
			return err
		}
		t.SelectedItemsByDay[day] = []string{}
		t.TourItems = slices.DeleteFunc(t.TourItems, func(ti models.TourItem) bool { return ti.Day == day })
		return nil
	})
}

// CommitOrganize stores the result of the organize step on the draft.
func (s *Store) CommitOrganize(destinations models.Destinations, items []models.TourItem) error {
	return s.update(func(st *State) error {
		t := st.CurrentTour
		if t == nil {
			return ErrNoDraft
		}
		t.Destinations = append(models.Destinations{}, destinations...)
		t.DestinationCount = len(destinations)
		t.TourItems = append([]models.TourItem(nil), items...)
		return nil
	})
}

// MoveItem moves the item at position from of day's list to position to,
// keeping the others in relative order, and renumbers the day's organized
// items to match.
func (s *Store) MoveItem(day, from, to int) error {
	return s.update(func(st *State) error {
		t, err := draftDay(st, day)
		if err != nil {
			return err
		}
		ids := t.SelectedItemsByDay[day]
		if from < 0 || from >= len(ids) || to < 0 || to >= len(ids) {
			return fmt.Errorf("%w: move %d -> %d of %d items", ErrDayOutOfRange, from, to, len(ids))
		}
		v := ids[from]
		ids = slices.Delete(ids, from, from+1)
		t.SelectedItemsByDay[day] = slices.Insert(ids, to, v)
		renumber(t, day)
		return nil
	})
}

// renumber sets Order of day's tour items to their selection position.
func renumber(t *models.Tour, day int) {
	pos := make(map[string]int, len(t.SelectedItemsByDay[day]))
	for i, id := range t.SelectedItemsByDay[day] {
		pos[id] = i
	}
	for i := range t.TourItems {
		if t.TourItems[i].Day != day {
			continue
		}
		if p, ok := pos[t.TourItems[i].ItemID]; ok {
			t.TourItems[i].Order = p
		}
	}
	sort.SliceStable(t.TourItems, func(i, j int) bool {
		a, b := t.TourItems[i], t.TourItems[j]
		if a.Day != b.Day {
			return a.Day < b.Day
		}
		return a.Order < b.Order
	})
}
