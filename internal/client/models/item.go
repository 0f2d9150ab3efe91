// Package models defines the client-side data shapes of tourplanner: the
// normalized itinerary candidates, tours and catalog records returned by the
// backend.
package models

// ItemType classifies a TourSavedItem.
type ItemType string

const (
	ItemTypeRestaurant    ItemType = "restaurant"
	ItemTypeMonument      ItemType = "monument"
	ItemTypeMoneyExchange ItemType = "money-exchange"
	ItemTypeMatch         ItemType = "match"
	ItemTypeHotel         ItemType = "hotel"
	ItemTypeEntertainment ItemType = "entertainment"
	ItemTypeArtisan       ItemType = "artisan"
)

// Valid reports whether t is one of the known item types.
func (t ItemType) Valid() bool {
	switch t {
	case ItemTypeRestaurant, ItemTypeMonument, ItemTypeMoneyExchange, ItemTypeMatch,
		ItemTypeHotel, ItemTypeEntertainment, ItemTypeArtisan:
		return true
	}
	return false
}

// Coordinate is a WGS84 point.
type Coordinate struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// TourSavedItem is the normalized shape every bookmarkable entity is
// converted into before it can be placed on an itinerary. Items are
// immutable once built and referenced from tours by ID only.
type TourSavedItem struct {
	ID         string      `json:"id"`
	Type       ItemType    `json:"type"`
	Title      string      `json:"title"`
	Subtitle   string      `json:"subtitle,omitempty"`
	Images     []string    `json:"images,omitempty"`
	City       string      `json:"city"`
	Coordinate *Coordinate `json:"coordinate,omitempty"`

	// Date is set for matches only ("YYYY/MM/DD" or RFC 3339).
	Date string `json:"date,omitempty"`
}
