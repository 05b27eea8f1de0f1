package search

import (
	"math"

	"placefinder-api/internal/models"
)

// DefaultGridScale converts a radius in meters into a degree offset between
// neighbouring grid points. 0.00001 deg is roughly 1.1 m of latitude; the 0.75
// factor keeps the query circles overlapping.
const DefaultGridScale = 0.00001 * 0.75

// minCosLat is the smallest longitude scaling factor accepted before a grid is
// considered degenerate.
const minCosLat = 1e-9

// GridPlanner computes the 3x3 set of sample points used by a grid search.
//
// The spacing is a flat-earth approximation: one degree of latitude and one
// degree of longitude scaled by cos(lat). It is only meaningful for radii of a
// few kilometers away from the poles.
type GridPlanner struct {
	scale float64
}

// NewGridPlanner creates a planner with the given meters-to-degrees scale.
// A non-positive scale selects DefaultGridScale.
func NewGridPlanner(scale float64) *GridPlanner {
	if scale <= 0 {
		scale = DefaultGridScale
	}
	return &GridPlanner{scale: scale}
}

// Points returns the 9 sample points around center, row by row from south to
// north and west to east. The fifth point is center itself.
func (g *GridPlanner) Points(center models.Coordinate, radius float64) ([]models.Coordinate, error) {
	cosLat := math.Cos(center.Lat * math.Pi / 180)
	if math.IsNaN(cosLat) || math.Abs(cosLat) < minCosLat {
		return nil, &DegenerateGridError{Latitude: center.Lat}
	}

	latOffset := radius * g.scale
	lngOffset := radius * g.scale / cosLat
	if !isFinite(latOffset) || !isFinite(lngOffset) {
		return nil, &DegenerateGridError{Latitude: center.Lat}
	}

	points := make([]models.Coordinate, 0, 9)
	for i := -1; i <= 1; i++ {
		for j := -1; j <= 1; j++ {
			points = append(points, models.Coordinate{
				Lat: center.Lat + float64(i)*latOffset,
				Lng: center.Lng + float64(j)*lngOffset,
			})
		}
	}
	return points, nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
