package search

import (
	"context"
	"sync"

	"placefinder-api/internal/models"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

// DefaultWorkers is the number of provider queries run concurrently.
const DefaultWorkers = 4

// Fetcher runs one (location, category) query. *PageFetcher implements it.
type Fetcher interface {
	Fetch(ctx context.Context, location models.Coordinate, radius float64, category string, fetchAllPages bool) ([]models.Place, error)
}

// ProgressFunc is called after each query completes with the number of
// completed queries and the total.
type ProgressFunc func(done, total int)

// Aggregation is the deduplicated outcome of a fan-out.
type Aggregation struct {
	Places   []models.Place
	Failures []models.QueryFailure
	Queries  int
}

// Aggregator runs a Fetcher over every (sample point, category) pair and merges
// the results.
type Aggregator struct {
	fetcher  Fetcher
	workers  int
	progress ProgressFunc
}

// AggregatorOption configures an Aggregator.
type AggregatorOption func(*Aggregator)

// WithWorkers sets how many queries may run at once. 1 runs them sequentially.
func WithWorkers(n int) AggregatorOption {
	return func(a *Aggregator) {
		if n > 0 {
			a.workers = n
		}
	}
}

// WithProgress registers a callback invoked after every query.
func WithProgress(fn ProgressFunc) AggregatorOption {
	return func(a *Aggregator) {
		a.progress = fn
	}
}

// NewAggregator creates an aggregator on top of fetcher.
func NewAggregator(fetcher Fetcher, opts ...AggregatorOption) *Aggregator {
	a := &Aggregator{fetcher: fetcher, workers: DefaultWorkers}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

type task struct {
	point    models.Coordinate
	category string
}

type outcome struct {
	places []models.Place
	err    error
}

// Aggregate queries every category at every point. Discovery order is point
// first, category second. A place found by several queries keeps the data and
// category of the first query in that order, whatever order the queries
// actually complete in.
//
// A failing query never aborts the aggregation; it is reported in Failures and
// whatever pages it did return are still merged.
func (a *Aggregator) Aggregate(ctx context.Context, points []models.Coordinate, categories []string, radius float64, fetchAllPages bool) Aggregation {
	tasks := make([]task, 0, len(points)*len(categories))
	for _, p := range points {
		for _, c := range categories {
			tasks = append(tasks, task{point: p, category: c})
		}
	}

	outcomes := make([]outcome, len(tasks))

	var (
		mu   sync.Mutex
		done int
	)

	var g errgroup.Group
	g.SetLimit(a.workers)
	for i, t := range tasks {
		g.Go(func() error {
			places, err := a.fetcher.Fetch(ctx, t.point, radius, t.category, fetchAllPages)
			outcomes[i] = outcome{places: places, err: err}

			if a.progress != nil {
				mu.Lock()
				done++
				a.progress(done, len(tasks))
				mu.Unlock()
			}
			return nil
		})
	}
	_ = g.Wait()

	return merge(tasks, outcomes)
}

func merge(tasks []task, outcomes []outcome) Aggregation {
	agg := Aggregation{
		Places:   []models.Place{},
		Failures: []models.QueryFailure{},
		Queries:  len(tasks),
	}
	seen := make(map[string]struct{})

	for i, o := range outcomes {
		t := tasks[i]
		if o.err != nil {
			log.Warn().Err(o.err).
				Str("location", t.point.String()).
				Str("category", t.category).
				Int("partial", len(o.places)).
				Msg("places query failed")
			agg.Failures = append(agg.Failures, models.QueryFailure{
				Location: t.point,
				Category: t.category,
				Error:    o.err.Error(),
			})
		}

		for _, p := range o.places {
			if _, ok := seen[p.ID]; ok {
				continue
			}
			seen[p.ID] = struct{}{}
			p.Category = t.category
			agg.Places = append(agg.Places, p)
		}
	}

	return agg
}
