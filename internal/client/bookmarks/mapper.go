// Package bookmarks converts backend bookmark records into TourSavedItem
// values. Each bookmark kind has its own pure mapping function; Map selects
// one by the record's type tag.
package bookmarks

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dmitrijs2005/tourplanner/internal/client/models"
)

// ErrUnknownBookmarkType is returned for records whose type tag has no mapper.
var ErrUnknownBookmarkType = errors.New("unknown bookmark type")

const maxSubtitleRunes = 80

type mapFunc func(raw json.RawMessage) (models.TourSavedItem, error)

func decodeWith[T any](fn func(T) models.TourSavedItem) mapFunc {
	return func(raw json.RawMessage) (models.TourSavedItem, error) {
		var v T
		if err := json.Unmarshal(raw, &v); err != nil {
			return models.TourSavedItem{}, err
		}
		return fn(v), nil
	}
}

var mappers = map[models.BookmarkType]mapFunc{
	models.BookmarkRestaurant:    decodeWith(FromRestaurant),
	models.BookmarkMonument:      decodeWith(FromMonument),
	models.BookmarkBroker:        decodeWith(FromBroker),
	models.BookmarkMatch:         decodeWith(FromMatch),
	models.BookmarkEntertainment: decodeWith(FromEntertainment),
	models.BookmarkArtisan:       decodeWith(FromArtisan),
	models.BookmarkHotel:         decodeWith(FromHotel),
}

// Map converts a single record. The record ID is used when the embedded
// entity carries none.
func Map(rec models.BookmarkRecord) (models.TourSavedItem, error) {
	fn, ok := mappers[rec.Type]
	if !ok {
		return models.TourSavedItem{}, fmt.Errorf("%w: %q", ErrUnknownBookmarkType, rec.Type)
	}
	if len(rec.Item) == 0 {
		return models.TourSavedItem{}, fmt.Errorf("bookmark %s: empty item", rec.ID)
	}
	item, err := fn(rec.Item)
	if err != nil {
		return models.TourSavedItem{}, fmt.Errorf("bookmark %s (%s): %w", rec.ID, rec.Type, err)
	}
	if item.ID == "" {
		item.ID = rec.ID
	}
	return item, nil
}

// MapAll converts every record it can. Records that fail are skipped and
// their errors joined into the returned error; the same entity bookmarked
// twice is kept once, first occurrence wins.
func MapAll(recs []models.BookmarkRecord) ([]models.TourSavedItem, error) {
	items := make([]models.TourSavedItem, 0, len(recs))
	seen := make(map[string]struct{}, len(recs))
	var errs []error

	for _, rec := range recs {
		item, err := Map(rec)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if _, dup := seen[item.ID]; dup {
			continue
		}
		seen[item.ID] = struct{}{}
		items = append(items, item)
	}
	return items, errors.Join(errs...)
}

func FromRestaurant(r models.RestaurantBookmark) models.TourSavedItem {
	return models.TourSavedItem{
		ID:         r.ID,
		Type:       models.ItemTypeRestaurant,
		Title:      r.Name,
		Subtitle:   r.Cuisine,
		Images:     cloneImages(r.Images),
		City:       r.City,
		Coordinate: cloneCoordinate(r.Coordinates),
	}
}

func FromMonument(m models.MonumentBookmark) models.TourSavedItem {
	return models.TourSavedItem{
		ID:         m.ID,
		Type:       models.ItemTypeMonument,
		Title:      m.Name,
		Subtitle:   truncate(m.Description, maxSubtitleRunes),
		Images:     cloneImages(m.Images),
		City:       m.City,
		Coordinate: cloneCoordinate(m.Coordinates),
	}
}

// FromBroker maps an exchange broker; its location is GeoJSON ([lng, lat]).
func FromBroker(b models.BrokerBookmark) models.TourSavedItem {
	item := models.TourSavedItem{
		ID:       b.ID,
		Type:     models.ItemTypeMoneyExchange,
		Title:    b.Name,
		Subtitle: b.Address,
		Images:   cloneImages(b.Images),
		City:     b.City,
	}
	if b.Location != nil && len(b.Location.Coordinates) == 2 {
		item.Coordinate = &models.Coordinate{
			Latitude:  b.Location.Coordinates[1],
			Longitude: b.Location.Coordinates[0],
		}
	}
	return item
}

func FromMatch(m models.MatchBookmark) models.TourSavedItem {
	return models.TourSavedItem{
		ID:       m.ID,
		Type:     models.ItemTypeMatch,
		Title:    fmt.Sprintf("%s vs %s", m.HomeTeam, m.AwayTeam),
		Subtitle: m.Stadium,
		Images:   cloneImages(m.Images),
		City:     m.City,
		Date:     m.Date,
	}
}

func FromEntertainment(e models.EntertainmentBookmark) models.TourSavedItem {
	return models.TourSavedItem{
		ID:         e.ID,
		Type:       models.ItemTypeEntertainment,
		Title:      e.Name,
		Subtitle:   e.Category,
		Images:     cloneImages(e.Images),
		City:       e.City,
		Coordinate: cloneCoordinate(e.Coordinates),
	}
}

// FromArtisan maps an artisan workshop; coordinates are flat and only used
// when both are present.
func FromArtisan(a models.ArtisanBookmark) models.TourSavedItem {
	item := models.TourSavedItem{
		ID:       a.ID,
		Type:     models.ItemTypeArtisan,
		Title:    a.Name,
		Subtitle: a.Craft,
		Images:   cloneImages(a.Images),
		City:     a.City,
	}
	if a.Latitude != nil && a.Longitude != nil {
		item.Coordinate = &models.Coordinate{Latitude: *a.Latitude, Longitude: *a.Longitude}
	}
	return item
}

func FromHotel(h models.HotelBookmark) models.TourSavedItem {
	return models.TourSavedItem{
		ID:         h.ID,
		Type:       models.ItemTypeHotel,
		Title:      h.Name,
		Subtitle:   h.Address,
		Images:     cloneImages(h.Images),
		City:       h.City,
		Coordinate: cloneCoordinate(h.Coordinates),
	}
}

func cloneImages(images []string) []string {
	if len(images) == 0 {
		return nil
	}
	return append([]string(nil), images...)
}

func cloneCoordinate(c *models.Coordinate) *models.Coordinate {
	if c == nil {
		return nil
	}
	cp := *c
	return &cp
}

func truncate(s string, n int) string {
	s = strings.TrimSpace(s)
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	r := []rune(s)
	return strings.TrimSpace(string(r[:n])) + "…"
}
