package models

import "encoding/json"

// BookmarkType is the tag carried by a backend bookmark record.
type BookmarkType string

const (
	BookmarkRestaurant    BookmarkType = "restaurant"
	BookmarkMonument      BookmarkType = "monument"
	BookmarkBroker        BookmarkType = "broker"
	BookmarkMatch         BookmarkType = "match"
	BookmarkEntertainment BookmarkType = "entertainment"
	BookmarkArtisan       BookmarkType = "artisan"
	BookmarkHotel         BookmarkType = "hotel"
)

// BookmarkRecord is one element of GET /bookmarks. Item holds the bookmarked
// entity; its shape depends on Type.
type BookmarkRecord struct {
	ID        string          `json:"_id"`
	Type      BookmarkType    `json:"type"`
	Item      json.RawMessage `json:"item"`
	CreatedAt string          `json:"createdAt,omitempty"`
}

type RestaurantBookmark struct {
	ID          string      `json:"_id"`
	Name        string      `json:"name"`
	Cuisine     string      `json:"cuisine"`
	City        string      `json:"city"`
	Images      []string    `json:"images"`
	Coordinates *Coordinate `json:"coordinates"`
}

type MonumentBookmark struct {
	ID          string      `json:"_id"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	City        string      `json:"city"`
	Images      []string    `json:"images"`
	Coordinates *Coordinate `json:"coordinates"`
}

// GeoPoint is a GeoJSON point; Coordinates are [longitude, latitude].
type GeoPoint struct {
	Type        string    `json:"type"`
	Coordinates []float64 `json:"coordinates"`
}

type BrokerBookmark struct {
	ID       string    `json:"_id"`
	Name     string    `json:"name"`
	Address  string    `json:"address"`
	City     string    `json:"city"`
	Images   []string  `json:"images"`
	Location *GeoPoint `json:"location"`
}

type MatchBookmark struct {
	ID       string   `json:"_id"`
	HomeTeam string   `json:"homeTeam"`
	AwayTeam string   `json:"awayTeam"`
	Stadium  string   `json:"stadium"`
	City     string   `json:"city"`
	Date     string   `json:"date"`
	Images   []string `json:"images"`
}

type EntertainmentBookmark struct {
	ID          string      `json:"_id"`
	Name        string      `json:"name"`
	Category    string      `json:"category"`
	City        string      `json:"city"`
	Images      []string    `json:"images"`
	Coordinates *Coordinate `json:"coordinates"`
}

type ArtisanBookmark struct {
	ID        string   `json:"_id"`
	Name      string   `json:"name"`
	Craft     string   `json:"craft"`
	City      string   `json:"city"`
	Images    []string `json:"images"`
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

type HotelBookmark struct {
	ID          string      `json:"_id"`
	Name        string      `json:"name"`
	Address     string      `json:"address"`
	City        string      `json:"city"`
	Stars       int         `json:"stars"`
	Images      []string    `json:"images"`
	Coordinates *Coordinate `json:"coordinates"`
}
