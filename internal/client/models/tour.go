package models

import (
	"encoding/json"
	"fmt"
)

// Tour is a multi-day itinerary. The same shape is used for the in-progress
// draft and for tours returned by the backend.
type Tour struct {
	ID           string       `json:"id"`
	Title        string       `json:"title"`
	StartDate    string       `json:"startDate"`
	EndDate      string       `json:"endDate"`
	Destinations Destinations `json:"destinations"`
	TourItems    []TourItem   `json:"tourItems,omitempty"`

	// SelectedItemsByDay maps day number (1-based) to ordered item IDs.
	SelectedItemsByDay map[int][]string `json:"selectedItemsByDay,omitempty"`
	// Cities maps day number to the city chosen for that day.
	Cities map[int]string `json:"cities,omitempty"`

	IsEditable       bool `json:"isEditable"`
	DestinationCount int  `json:"destinationCount"`
}

// Clone returns a deep copy of t, so callers can hand out snapshots of
// store state without sharing maps and slices.
func (t *Tour) Clone() *Tour {
	if t == nil {
		return nil
	}
	c := *t
	c.Destinations = append(Destinations(nil), t.Destinations...)
	c.TourItems = append([]TourItem(nil), t.TourItems...)
	if t.SelectedItemsByDay != nil {
		c.SelectedItemsByDay = make(map[int][]string, len(t.SelectedItemsByDay))
		for day, ids := range t.SelectedItemsByDay {
			c.SelectedItemsByDay[day] = append([]string{}, ids...)
		}
	}
	if t.Cities != nil {
		c.Cities = make(map[int]string, len(t.Cities))
		for day, city := range t.Cities {
			c.Cities[day] = city
		}
	}
	return &c
}

// TourItem is a TourSavedItem placed on a given day at a given position.
type TourItem struct {
	ItemID     string     `json:"itemId"`
	Type       ItemType   `json:"type"`
	Title      string     `json:"title"`
	City       string     `json:"city"`
	Day        int        `json:"day"`
	Order      int        `json:"order"`
	Coordinate Coordinate `json:"coordinate"`
}

// Destination is one city visited by a tour.
type Destination struct {
	Name       string      `json:"name"`
	Coordinate *Coordinate `json:"coordinate,omitempty"`
}

// Destinations decodes from either a list of plain city names or a list of
// destination objects; the backend uses both shapes.
type Destinations []Destination

func (d *Destinations) UnmarshalJSON(b []byte) error {
	var raw []json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	out := make(Destinations, 0, len(raw))
	for i, r := range raw {
		var name string
		if err := json.Unmarshal(r, &name); err == nil {
			out = append(out, Destination{Name: name})
			continue
		}
		var dst Destination
		if err := json.Unmarshal(r, &dst); err != nil {
			return fmt.Errorf("destination %d: %w", i, err)
		}
		out = append(out, dst)
	}
	*d = out
	return nil
}

// Names returns the destination city names in order.
func (d Destinations) Names() []string {
	names := make([]string, 0, len(d))
	for _, dst := range d {
		names = append(names, dst.Name)
	}
	return names
}
