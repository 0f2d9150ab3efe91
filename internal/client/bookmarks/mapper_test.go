package bookmarks

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/tourplanner/internal/client/models"
)

func record(t *testing.T, id string, typ models.BookmarkType, item any) models.BookmarkRecord {
	t.Helper()
	b, err := json.Marshal(item)
	require.NoError(t, err)
	return models.BookmarkRecord{ID: id, Type: typ, Item: b}
}

func ptr(f float64) *float64 { return &f }

func TestMap_DispatchesByType(t *testing.T) {
	tests := []struct {
		name string
		rec  models.BookmarkRecord
		want models.TourSavedItem
	}{
		{
			name: "restaurant",
			rec: record(t, "b1", models.BookmarkRestaurant, models.RestaurantBookmark{
				ID: "r1", Name: "Dar Yacout", Cuisine: "Moroccan", City: "Marrakech",
				Images:      []string{"a.jpg"},
				Coordinates: &models.Coordinate{Latitude: 31.63, Longitude: -7.98},
			}),
			want: models.TourSavedItem{
				ID: "r1", Type: models.ItemTypeRestaurant, Title: "Dar Yacout", Subtitle: "Moroccan",
				City: "Marrakech", Images: []string{"a.jpg"},
				Coordinate: &models.Coordinate{Latitude: 31.63, Longitude: -7.98},
			},
		},
		{
			name: "broker uses geojson order",
			rec: record(t, "b2", models.BookmarkBroker, models.BrokerBookmark{
				ID: "x1", Name: "Change Atlas", Address: "12 Rue Bab Agnaou", City: "Marrakech",
				Location: &models.GeoPoint{Type: "Point", Coordinates: []float64{-7.99, 31.62}},
			}),
			want: models.TourSavedItem{
				ID: "x1", Type: models.ItemTypeMoneyExchange, Title: "Change Atlas",
				Subtitle: "12 Rue Bab Agnaou", City: "Marrakech",
				Coordinate: &models.Coordinate{Latitude: 31.62, Longitude: -7.99},
			},
		},
		{
			name: "match keeps date",
			rec: record(t, "b3", models.BookmarkMatch, models.MatchBookmark{
				ID: "m1", HomeTeam: "Raja", AwayTeam: "Wydad", Stadium: "Stade Mohammed V",
				City: "Casablanca", Date: "2024/01/03",
			}),
			want: models.TourSavedItem{
				ID: "m1", Type: models.ItemTypeMatch, Title: "Raja vs Wydad",
				Subtitle: "Stade Mohammed V", City: "Casablanca", Date: "2024/01/03",
			},
		},
		{
			name: "artisan with flat coordinates",
			rec: record(t, "b4", models.BookmarkArtisan, models.ArtisanBookmark{
				ID: "a1", Name: "Chouara Tannery", Craft: "Leather", City: "Fes",
				Latitude: ptr(34.066), Longitude: ptr(-4.971),
			}),
			want: models.TourSavedItem{
				ID: "a1", Type: models.ItemTypeArtisan, Title: "Chouara Tannery", Subtitle: "Leather",
				City: "Fes", Coordinate: &models.Coordinate{Latitude: 34.066, Longitude: -4.971},
			},
		},
		{
			name: "artisan with half coordinates drops them",
			rec: record(t, "b5", models.BookmarkArtisan, models.ArtisanBookmark{
				ID: "a2", Name: "Zellige workshop", City: "Fes", Latitude: ptr(34.0),
			}),
			want: models.TourSavedItem{
				ID: "a2", Type: models.ItemTypeArtisan, Title: "Zellige workshop", City: "Fes",
			},
		},
		{
			name: "entertainment",
			rec: record(t, "b6", models.BookmarkEntertainment, models.EntertainmentBookmark{
				ID: "e1", Name: "Quad in Agafay", Category: "Desert", City: "Marrakech",
			}),
			want: models.TourSavedItem{
				ID: "e1", Type: models.ItemTypeEntertainment, Title: "Quad in Agafay",
				Subtitle: "Desert", City: "Marrakech",
			},
		},
		{
			name: "hotel",
			rec: record(t, "b7", models.BookmarkHotel, models.HotelBookmark{
				ID: "h1", Name: "La Mamounia", Address: "Avenue Bab Jdid", City: "Marrakech", Stars: 5,
			}),
			want: models.TourSavedItem{
				ID: "h1", Type: models.ItemTypeHotel, Title: "La Mamounia",
				Subtitle: "Avenue Bab Jdid", City: "Marrakech",
			},
		},
		{
			name: "missing entity id falls back to record id",
			rec: record(t, "b8", models.BookmarkMonument, models.MonumentBookmark{
				Name: "Hassan Tower", City: "Rabat",
			}),
			want: models.TourSavedItem{
				ID: "b8", Type: models.ItemTypeMonument, Title: "Hassan Tower", City: "Rabat",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Map(tt.rec)
			require.NoError(t, err)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("Map() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMap_UnknownType(t *testing.T) {
	_, err := Map(models.BookmarkRecord{ID: "b1", Type: "spaceship", Item: json.RawMessage(`{}`)})
	require.ErrorIs(t, err, ErrUnknownBookmarkType)
}

func TestMap_BadPayload(t *testing.T) {
	_, err := Map(models.BookmarkRecord{ID: "b1", Type: models.BookmarkRestaurant, Item: json.RawMessage(`[1,2]`)})
	require.Error(t, err)

	_, err = Map(models.BookmarkRecord{ID: "b2", Type: models.BookmarkRestaurant})
	require.Error(t, err)
}

func TestFromMonument_TruncatesLongDescription(t *testing.T) {
	item := FromMonument(models.MonumentBookmark{ID: "m", Name: "Koutoubia", Description: strings.Repeat("é", 120)})
	assert.Equal(t, maxSubtitleRunes+1, len([]rune(item.Subtitle)))
	assert.True(t, strings.HasSuffix(item.Subtitle, "…"))
}

func TestFromRestaurant_DoesNotAliasInput(t *testing.T) {
	src := models.RestaurantBookmark{ID: "r", Images: []string{"a"}, Coordinates: &models.Coordinate{Latitude: 1}}
	item := FromRestaurant(src)

	src.Images[0] = "changed"
	src.Coordinates.Latitude = 99

	assert.Equal(t, []string{"a"}, item.Images)
	assert.Equal(t, 1.0, item.Coordinate.Latitude)
}

func TestMapAll_SkipsFailuresAndDuplicates(t *testing.T) {
	recs := []models.BookmarkRecord{
		record(t, "b1", models.BookmarkMonument, models.MonumentBookmark{ID: "m1", Name: "Bahia Palace", City: "Marrakech"}),
		{ID: "b2", Type: "unknown", Item: json.RawMessage(`{}`)},
		record(t, "b3", models.BookmarkMonument, models.MonumentBookmark{ID: "m1", Name: "Bahia Palace (again)", City: "Marrakech"}),
		record(t, "b4", models.BookmarkRestaurant, models.RestaurantBookmark{ID: "r1", Name: "Nomad", City: "Marrakech"}),
	}

	items, err := MapAll(recs)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnknownBookmarkType)

	require.Len(t, items, 2)
	assert.Equal(t, "Bahia Palace", items[0].Title)
	assert.Equal(t, "r1", items[1].ID)
}

func TestMapAll_Empty(t *testing.T) {
	items, err := MapAll(nil)
	require.NoError(t, err)
	assert.Empty(t, items)
}
