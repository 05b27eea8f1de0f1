package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoordinate_String(t *testing.T) {
	assert.Equal(t, "48.8566,2.3522", Coordinate{Lat: 48.8566, Lng: 2.3522}.String())
	assert.Equal(t, "-33.8688,151.2093", Coordinate{Lat: -33.8688, Lng: 151.2093}.String())
}

func TestPlace_View(t *testing.T) {
	rating := 4.4
	tests := []struct {
		name     string
		place    Place
		expected PlaceView
	}{
		{
			name:  "rated place",
			place: Place{ID: "ChIJ123", Name: "Café de Flore", Rating: &rating, ReviewCount: 9000, Category: "cafe"},
			expected: PlaceView{
				Name:        "Café de Flore",
				Rating:      &rating,
				ReviewCount: 9000,
				Category:    "cafe",
				MapsURL:     "https://www.google.com/maps/search/?api=1&query=Caf%C3%A9+de+Flore&query_place_id=ChIJ123",
			},
		},
		{
			name:  "unrated place",
			place: Place{ID: "x", Name: "Bar & Grill", Category: "bar"},
			expected: PlaceView{
				Name:     "Bar & Grill",
				Category: "bar",
				MapsURL:  "https://www.google.com/maps/search/?api=1&query=Bar+%26+Grill&query_place_id=x",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.place.View())
		})
	}
}

func TestViews_KeepsOrder(t *testing.T) {
	views := Views([]Place{{ID: "b", Name: "B"}, {ID: "a", Name: "A"}})

	assert.Equal(t, "B", views[0].Name)
	assert.Equal(t, "A", views[1].Name)
	assert.NotNil(t, Views(nil))
}

func TestSearchRequest_Categories(t *testing.T) {
	tests := []struct {
		name     string
		category string
		expected []string
	}{
		{name: "single category", category: "museum", expected: []string{"museum"}},
		{name: "all", category: AllCategories, expected: []string{"restaurant", "bar", "cafe", "tourist_attraction", "museum"}},
		{name: "empty", category: "", expected: []string{"restaurant", "bar", "cafe", "tourist_attraction", "museum"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SearchRequest{Category: tt.category}.Categories()
			assert.Equal(t, tt.expected, got)
		})
	}

	// callers may not alter the shared list
	got := SearchRequest{}.Categories()
	got[0] = "changed"
	assert.Equal(t, "restaurant", PrincipalCategories[0])
}

func TestIsPlaceType(t *testing.T) {
	assert.True(t, IsPlaceType("night_club"))
	assert.True(t, IsPlaceType("restaurant"))
	assert.False(t, IsPlaceType("casino"))
	assert.False(t, IsPlaceType(""))
}
