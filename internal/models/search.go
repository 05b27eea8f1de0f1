package models

import "time"

// AllCategories selects the principal-category scan.
const AllCategories = "all"

// PrincipalCategories is the fixed list scanned when no single category is requested.
var PrincipalCategories = []string{"restaurant", "bar", "cafe", "tourist_attraction", "museum"}

// PlaceTypes lists the categories a caller may search for.
var PlaceTypes = []string{
	"restaurant", "bar", "cafe", "tourist_attraction",
	"museum", "art_gallery", "church", "park",
	"historical_landmark", "night_club", "tourism",
}

// IsPlaceType reports whether category is one of PlaceTypes.
func IsPlaceType(category string) bool {
	for _, t := range PlaceTypes {
		if t == category {
			return true
		}
	}
	return false
}

// SearchRequest describes one search. It is not modified while the search runs.
type SearchRequest struct {
	Center        Coordinate `json:"center"`
	Radius        float64    `json:"radius"`
	Category      string     `json:"category"`
	GridEnabled   bool       `json:"grid_enabled"`
	FetchAllPages bool       `json:"fetch_all_pages"`
}

// Categories expands the request category into the list of categories to query.
func (r SearchRequest) Categories() []string {
	if r.Category == "" || r.Category == AllCategories {
		out := make([]string, len(PrincipalCategories))
		copy(out, PrincipalCategories)
		return out
	}
	return []string{r.Category}
}

// QueryFailure records a (location, category) query whose provider call failed.
type QueryFailure struct {
	Location Coordinate `json:"location"`
	Category string     `json:"category"`
	Error    string     `json:"error"`
}

// ResultSet is the ranked, deduplicated outcome of a search.
type ResultSet struct {
	SearchID string         `json:"search_id"`
	Request  SearchRequest  `json:"request"`
	Places   []Place        `json:"places"`
	Failures []QueryFailure `json:"failures"`
	Queries  int            `json:"queries"`
}

// SearchLog is the persisted summary of a search. It never holds place results.
type SearchLog struct {
	ID            string        `json:"id"`
	CreatedAt     time.Time     `json:"created_at"`
	Center        Coordinate    `json:"center"`
	Radius        float64       `json:"radius"`
	Categories    []string      `json:"categories"`
	GridEnabled   bool          `json:"grid_enabled"`
	FetchAllPages bool          `json:"fetch_all_pages"`
	QueryCount    int           `json:"query_count"`
	FailedQueries int           `json:"failed_queries"`
	PlaceCount    int           `json:"place_count"`
	Duration      time.Duration `json:"duration"`
}
