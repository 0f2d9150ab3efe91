package tour

import "github.com/dmitrijs2005/tourplanner/internal/client/models"

// DateRange identifies a bookmark fetch.
type DateRange struct {
	Start string
	End   string
}

// State is a snapshot of the store. Snapshots are deep copies; mutating one
// does not affect the store.
type State struct {
	CurrentTour    *models.Tour
	SavedTours     []models.Tour
	AvailableItems []models.TourSavedItem
	Loading        bool
	Error          string

	// HasFetched is set once AvailableItems holds the bookmarks of
	// FetchedRange.
	HasFetched   bool
	FetchedRange DateRange
}

func (s State) clone() State {
	c := s
	c.CurrentTour = s.CurrentTour.Clone()
	c.SavedTours = make([]models.Tour, 0, len(s.SavedTours))
	for i := range s.SavedTours {
		c.SavedTours = append(c.SavedTours, *s.SavedTours[i].Clone())
	}
	c.AvailableItems = append([]models.TourSavedItem(nil), s.AvailableItems...)
	return c
}

// Item returns the available item with the given id.
func (s State) Item(id string) (models.TourSavedItem, bool) {
	for _, it := range s.AvailableItems {
		if it.ID == id {
			return it, true
		}
	}
	return models.TourSavedItem{}, false
}

// Days returns the number of days of the draft, or 0 without one.
func (s State) Days() int {
	if s.CurrentTour == nil {
		return 0
	}
	return len(s.CurrentTour.SelectedItemsByDay)
}

// SelectedCount is the number of selected items across all days.
func (s State) SelectedCount() int {
	if s.CurrentTour == nil {
		return 0
	}
	n := 0
	for _, ids := range s.CurrentTour.SelectedItemsByDay {
		n += len(ids)
	}
	return n
}
