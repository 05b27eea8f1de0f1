package provider

import (
	"context"
	"fmt"
	"math"

	"placefinder-api/internal/models"
	"placefinder-api/internal/search"

	"googlemaps.github.io/maps"
)

// GoogleClient talks to the Google Places web service.
type GoogleClient struct {
	client *maps.Client
}

// NewGoogleClient creates a Places client authenticated with apiKey. Extra
// options are passed through to the maps client, e.g. maps.WithBaseURL in tests.
func NewGoogleClient(apiKey string, opts ...maps.ClientOption) (*GoogleClient, error) {
	options := append([]maps.ClientOption{maps.WithAPIKey(apiKey)}, opts...)

	client, err := maps.NewClient(options...)
	if err != nil {
		return nil, fmt.Errorf("provider: failed to create maps client: %w", err)
	}

	return &GoogleClient{client: client}, nil
}

// NearbySearch returns one page of places of the query category around its location.
func (c *GoogleClient) NearbySearch(ctx context.Context, query search.NearbyQuery) (search.Page, error) {
	req := &maps.NearbySearchRequest{
		Location:  &maps.LatLng{Lat: query.Location.Lat, Lng: query.Location.Lng},
		Radius:    uint(math.Round(query.Radius)),
		Type:      maps.PlaceType(query.Category),
		PageToken: query.PageToken,
	}

	resp, err := c.client.NearbySearch(ctx, req)
	if err != nil {
		return search.Page{}, fmt.Errorf("provider: nearby search failed: %w", err)
	}

	places := make([]models.Place, 0, len(resp.Results))
	for _, r := range resp.Results {
		places = append(places, toPlace(r))
	}

	return search.Page{Places: places, NextPageToken: resp.NextPageToken}, nil
}

// FindPlace returns the best match for a free-text query, or nil when the
// provider has no candidate.
func (c *GoogleClient) FindPlace(ctx context.Context, query string) (*models.Landmark, error) {
	req := &maps.FindPlaceFromTextRequest{
		Input:     query,
		InputType: maps.FindPlaceFromTextInputTypeTextQuery,
		Fields: []maps.PlaceSearchFieldMask{
			maps.PlaceSearchFieldMaskGeometry,
			maps.PlaceSearchFieldMaskName,
		},
	}

	resp, err := c.client.FindPlaceFromText(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("provider: find place failed: %w", err)
	}

	if len(resp.Candidates) == 0 {
		return nil, nil
	}

	candidate := resp.Candidates[0]
	return &models.Landmark{
		Name: candidate.Name,
		Location: models.Coordinate{
			Lat: candidate.Geometry.Location.Lat,
			Lng: candidate.Geometry.Location.Lng,
		},
	}, nil
}

func toPlace(r maps.PlacesSearchResult) models.Place {
	p := models.Place{
		ID:          r.PlaceID,
		Name:        r.Name,
		ReviewCount: r.UserRatingsTotal,
		Location: models.Coordinate{
			Lat: r.Geometry.Location.Lat,
			Lng: r.Geometry.Location.Lng,
		},
	}
	// the provider reports unrated places as 0
	if r.Rating > 0 {
		rating := float64(r.Rating)
		p.Rating = &rating
	}
	return p
}
