package search

import (
	"cmp"
	"slices"

	"placefinder-api/internal/models"
)

// Rank returns a copy of places ordered by review count, most reviewed first.
// Places with equal review counts keep their discovery order.
func Rank(places []models.Place) []models.Place {
	ranked := slices.Clone(places)
	slices.SortStableFunc(ranked, func(a, b models.Place) int {
		return cmp.Compare(b.ReviewCount, a.ReviewCount)
	})
	return ranked
}

// TopN returns the first n places of Rank(places). A non-positive n returns
// every place.
func TopN(places []models.Place, n int) []models.Place {
	ranked := Rank(places)
	if n <= 0 || n >= len(ranked) {
		return ranked
	}
	return ranked[:n]
}
