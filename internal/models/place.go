package models

import (
	"net/url"
	"strconv"
)

// Coordinate is a latitude/longitude pair in degrees.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// String renders the coordinate the way the places provider expects it: "lat,lng".
func (c Coordinate) String() string {
	return strconv.FormatFloat(c.Lat, 'f', -1, 64) + "," + strconv.FormatFloat(c.Lng, 'f', -1, 64)
}

// Place is a single point of interest returned by the provider. Two places with the
// same ID are the same entity.
type Place struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Rating      *float64   `json:"rating,omitempty"`
	ReviewCount int        `json:"review_count"`
	Location    Coordinate `json:"location"`
	// Category is the category of the query that discovered the place.
	Category string `json:"category"`
}

// Landmark is the best match for a free-text place query, used to re-center a search.
type Landmark struct {
	Name     string     `json:"name"`
	Location Coordinate `json:"location"`
}

const mapsSearchURL = "https://www.google.com/maps/search/?api=1"

// PlaceView is the displayable record of a ranked place.
type PlaceView struct {
	Name        string   `json:"name"`
	Rating      *float64 `json:"rating"`
	ReviewCount int      `json:"review_count"`
	Category    string   `json:"category"`
	MapsURL     string   `json:"maps_url"`
}

// MapsURL returns the Google Maps deep link for the place.
func (p Place) MapsURL() string {
	return mapsSearchURL + "&query=" + url.QueryEscape(p.Name) + "&query_place_id=" + url.QueryEscape(p.ID)
}

// View converts the place into its presentation record.
func (p Place) View() PlaceView {
	return PlaceView{
		Name:        p.Name,
		Rating:      p.Rating,
		ReviewCount: p.ReviewCount,
		Category:    p.Category,
		MapsURL:     p.MapsURL(),
	}
}

// Views converts places into presentation records, keeping their order.
func Views(places []Place) []PlaceView {
	views := make([]PlaceView, 0, len(places))
	for _, p := range places {
		views = append(views, p.View())
	}
	return views
}
