package search

import (
	"context"
	"time"

	"placefinder-api/internal/models"
)

// MaxPages is the number of result pages the provider serves for one query.
const MaxPages = 3

// DefaultPageDelay is how long a continuation token needs before the provider
// accepts it.
const DefaultPageDelay = 2 * time.Second

// NearbyQuery is a single request to the places provider.
type NearbyQuery struct {
	Location  models.Coordinate
	Radius    float64
	Category  string
	PageToken string
}

// Page is one page of provider results. Places carry no category.
type Page struct {
	Places        []models.Place
	NextPageToken string
}

// Provider is the places search backend.
type Provider interface {
	NearbySearch(ctx context.Context, query NearbyQuery) (Page, error)
}

// PageFetcher runs one (location, category) query and follows its pagination.
type PageFetcher struct {
	provider     Provider
	pageDelay    time.Duration
	queryTimeout time.Duration
}

// NewPageFetcher creates a fetcher. pageDelay is the wait before each
// continuation request; queryTimeout bounds each provider call, zero disables it.
func NewPageFetcher(provider Provider, pageDelay, queryTimeout time.Duration) *PageFetcher {
	return &PageFetcher{
		provider:     provider,
		pageDelay:    pageDelay,
		queryTimeout: queryTimeout,
	}
}

// Fetch queries the provider for places of category around location.
//
// When the first page fails, Fetch returns a *ProviderError and no places. When
// fetchAllPages is set, up to MaxPages-1 continuation pages are requested. A
// failing continuation stops pagination: the places collected so far are
// returned together with the *ProviderError.
func (f *PageFetcher) Fetch(ctx context.Context, location models.Coordinate, radius float64, category string, fetchAllPages bool) ([]models.Place, error) {
	query := NearbyQuery{Location: location, Radius: radius, Category: category}

	page, err := f.search(ctx, query)
	if err != nil {
		return nil, &ProviderError{Location: location, Category: category, Page: 1, Err: err}
	}

	places := make([]models.Place, 0, len(page.Places))
	places = append(places, page.Places...)
	if !fetchAllPages {
		return places, nil
	}

	for n := 2; n <= MaxPages && page.NextPageToken != ""; n++ {
		if err := f.wait(ctx); err != nil {
			return places, &ProviderError{Location: location, Category: category, Page: n, Err: err}
		}

		query.PageToken = page.NextPageToken
		page, err = f.search(ctx, query)
		if err != nil {
			return places, &ProviderError{Location: location, Category: category, Page: n, Err: err}
		}
		places = append(places, page.Places...)
	}

	return places, nil
}

func (f *PageFetcher) search(ctx context.Context, query NearbyQuery) (Page, error) {
	if f.queryTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.queryTimeout)
		defer cancel()
	}
	return f.provider.NearbySearch(ctx, query)
}

// wait blocks the calling goroutine only.
func (f *PageFetcher) wait(ctx context.Context) error {
	if f.pageDelay <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(f.pageDelay)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
