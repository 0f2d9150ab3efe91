package itinerary

import (
	"fmt"
	"sort"
	"sync"

	"github.com/dmitrijs2005/tourplanner/internal/client/dates"
	"github.com/dmitrijs2005/tourplanner/internal/client/geo"
	"github.com/dmitrijs2005/tourplanner/internal/client/models"
	"github.com/dmitrijs2005/tourplanner/internal/client/tour"
)

type DayState int

const (
	DayEmpty DayState = iota
	DayCitySelected
	DayLocked
)

func (s DayState) String() string {
	switch s {
	case DayEmpty:
		return "empty"
	case DayCitySelected:
		return "city selected"
	case DayLocked:
		return "locked"
	}
	return fmt.Sprintf("DayState(%d)", int(s))
}

// EmptyDaysChoice answers an EmptyDaysError.
type EmptyDaysChoice int

const (
	// Continue organizes the tour with the empty days left empty.
	Continue EmptyDaysChoice = iota
	// StayAndFill moves the selection to the first empty day.
	StayAndFill
)

// CityChange is a city change on a Locked day awaiting confirmation.
type CityChange struct {
	Day  int
	City string
}

// Handoff is what the ordering step receives.
type Handoff struct {
	TourItems          []models.TourItem
	SelectedItemsByDay map[int][]string
	Cities             map[int]string
	Destinations       models.Destinations
}

// Builder is safe for concurrent use; draft state lives in the store.
type Builder struct {
	store    *tour.Store
	resolver *geo.Resolver

	mu          sync.Mutex
	selectedDay int
	pending     *CityChange
	emptyDays   []int
}

func NewBuilder(store *tour.Store, resolver *geo.Resolver) *Builder {
	if resolver == nil {
		resolver = geo.NewResolver()
	}
	return &Builder{store: store, resolver: resolver, selectedDay: 1}
}

func (b *Builder) draft() (tour.State, error) {
	st := b.store.State()
	if st.CurrentTour == nil {
		return st, tour.ErrNoDraft
	}
	return st, nil
}

func checkDay(st tour.State, day int) error {
	if _, ok := st.CurrentTour.SelectedItemsByDay[day]; !ok {
		return fmt.Errorf("%w: %d of %d", tour.ErrDayOutOfRange, day, st.Days())
	}
	return nil
}

// SelectDay focuses day.
func (b *Builder) SelectDay(day int) error {
	st, err := b.draft()
	if err != nil {
		return err
	}
	if err := checkDay(st, day); err != nil {
		return err
	}
	b.mu.Lock()
	b.selectedDay = day
	b.mu.Unlock()
	return nil
}

func (b *Builder) SelectedDay() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.selectedDay
}

func dayState(t *models.Tour, day int) DayState {
	switch {
	case len(t.SelectedItemsByDay[day]) > 0:
		return DayLocked
	case t.Cities[day] != "":
		return DayCitySelected
	}
	return DayEmpty
}

// DayState reports the state of day. Days outside the draft are Empty.
func (b *Builder) DayState(day int) DayState {
	st, err := b.draft()
	if err != nil {
		return DayEmpty
	}
	return dayState(st.CurrentTour, day)
}

// RequestCityChange sets day's city. On a Locked day with a different city
// the change is held and ErrCityChangeNeedsConfirmation returned.
func (b *Builder) RequestCityChange(day int, city string) error {
	st, err := b.draft()
	if err != nil {
		return err
	}
	if err := checkDay(st, day); err != nil {
		return err
	}
	t := st.CurrentTour
	if dayState(t, day) == DayLocked {
		if geo.SameCity(t.Cities[day], city) {
			return nil
		}
		b.mu.Lock()
		b.pending = &CityChange{Day: day, City: city}
		b.mu.Unlock()
		return ErrCityChangeNeedsConfirmation
	}
	return b.store.SetDayCity(day, city)
}

// PendingCityChange returns the change awaiting confirmation, if any.
func (b *Builder) PendingCityChange() (CityChange, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.pending == nil {
		return CityChange{}, false
	}
	return *b.pending, true
}

// ConfirmCityChange clears the pending day's items and applies the new city.
func (b *Builder) ConfirmCityChange() error {
	b.mu.Lock()
	p := b.pending
	b.pending = nil
	b.mu.Unlock()
	if p == nil {
		return ErrNoPendingCityChange
	}
	return b.store.ChangeDayCity(p.Day, p.City)
}

// CancelCityChange drops the pending change.
func (b *Builder) CancelCityChange() {
	b.mu.Lock()
	b.pending = nil
	b.mu.Unlock()
}

// EligibleItems returns the available items that may be placed on day.
func (b *Builder) EligibleItems(day int) ([]models.TourSavedItem, error) {
	st, err := b.draft()
	if err != nil {
		return nil, err
	}
	if err := checkDay(st, day); err != nil {
		return nil, err
	}
	out := make([]models.TourSavedItem, 0, len(st.AvailableItems))
	for _, it := range st.AvailableItems {
		if eligible(st.CurrentTour, day, it) {
			out = append(out, it)
		}
	}
	return out, nil
}

func eligible(t *models.Tour, day int, it models.TourSavedItem) bool {
	if it.Type == models.ItemTypeMatch && it.Date != "" {
		n, err := dates.DayNumber(t.StartDate, it.Date)
		if err != nil || n != day {
			return false
		}
	}
	city := t.Cities[day]
	return city == "" || geo.SameCity(city, it.City)
}

// ToggleItemSelection selects itemID for day, or deselects it if already
// selected. Only eligible items can be selected. The first item of a day
// without a city sets the city.
func (b *Builder) ToggleItemSelection(itemID string, day int) (bool, error) {
	st, err := b.draft()
	if err != nil {
		return false, err
	}
	if err := checkDay(st, day); err != nil {
		return false, err
	}
	if !containsID(st.CurrentTour.SelectedItemsByDay[day], itemID) {
		it, ok := st.Item(itemID)
		if !ok {
			return false, fmt.Errorf("%w: %s", tour.ErrUnknownItem, itemID)
		}
		if !eligible(st.CurrentTour, day, it) {
			return false, fmt.Errorf("%w: %s on day %d", ErrItemNotEligible, it.Title, day)
		}
	}
	return b.store.ToggleItem(day, itemID)
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// ProceedToOrganize validates the draft and builds the Handoff. Without any
// selected item it returns ErrNoItemsSelected. If some days are empty it
// returns *EmptyDaysError and the caller must answer with ResolveEmptyDays.
func (b *Builder) ProceedToOrganize() (*Handoff, error) {
	st, err := b.draft()
	if err != nil {
		return nil, err
	}
	if st.SelectedCount() == 0 {
		return nil, ErrNoItemsSelected
	}
	var empty []int
	for _, day := range sortedDays(st.CurrentTour) {
		if len(st.CurrentTour.SelectedItemsByDay[day]) == 0 {
			empty = append(empty, day)
		}
	}
	if len(empty) > 0 {
		b.mu.Lock()
		b.emptyDays = empty
		b.mu.Unlock()
		return nil, &EmptyDaysError{Days: append([]int(nil), empty...)}
	}
	return b.organize(st)
}

// ResolveEmptyDays answers the empty-day warning. Continue organizes the
// tour; StayAndFill focuses the first empty day and returns a nil Handoff.
func (b *Builder) ResolveEmptyDays(choice EmptyDaysChoice) (*Handoff, error) {
	b.mu.Lock()
	empty := b.emptyDays
	b.emptyDays = nil
	b.mu.Unlock()
	if len(empty) == 0 {
		return nil, ErrNoEmptyDaysPending
	}

	if choice == StayAndFill {
		b.mu.Lock()
		b.selectedDay = empty[0]
		b.mu.Unlock()
		return nil, nil
	}

	st, err := b.draft()
	if err != nil {
		return nil, err
	}
	if st.SelectedCount() == 0 {
		return nil, ErrNoItemsSelected
	}
	return b.organize(st)
}

func (b *Builder) organize(st tour.State) (*Handoff, error) {
	t := st.CurrentTour
	h := &Handoff{
		SelectedItemsByDay: t.SelectedItemsByDay,
		Cities:             make(map[int]string, len(t.Cities)),
		Destinations:       models.Destinations{},
	}

	// One destination per day with a city, in day order.
	for _, day := range sortedDays(t) {
		city := t.Cities[day]
		if city != "" {
			h.Cities[day] = city
			h.Destinations = append(h.Destinations, b.resolver.Destination(city))
		}
		for order, id := range t.SelectedItemsByDay[day] {
			it, ok := st.Item(id)
			if !ok {
				it = models.TourSavedItem{ID: id, City: city}
			}
			c, _ := b.resolver.Resolve(it)
			itemCity := it.City
			if itemCity == "" {
				itemCity = city
			}
			h.TourItems = append(h.TourItems, models.TourItem{
				ItemID:     id,
				Type:       it.Type,
				Title:      it.Title,
				City:       itemCity,
				Day:        day,
				Order:      order,
				Coordinate: c,
			})
		}
	}

	if err := b.store.CommitOrganize(h.Destinations, h.TourItems); err != nil {
		return nil, err
	}
	return h, nil
}

func sortedDays(t *models.Tour) []int {
	days := make([]int, 0, len(t.SelectedItemsByDay))
	for d := range t.SelectedItemsByDay {
		days = append(days, d)
	}
	sort.Ints(days)
	return days
}
