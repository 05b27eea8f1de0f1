package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"placefinder-api/internal/config"
	"placefinder-api/internal/logger"
	"placefinder-api/internal/models"
	"placefinder-api/internal/provider"
	"placefinder-api/internal/search"
	"placefinder-api/internal/service"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

func main() {
	lat := flag.Float64("lat", 48.8566, "Latitude of the search center")
	lng := flag.Float64("lng", 2.3522, "Longitude of the search center")
	query := flag.String("q", "", "Place or city to search around, overrides -lat and -lng")
	radius := flag.Float64("radius", 500, "Search radius in meters")
	category := flag.String("category", "restaurant", "Place type, or 'all' for the principal categories")
	grid := flag.Bool("grid", false, "Search a 3x3 grid around the center for better coverage")
	allPages := flag.Bool("all-pages", false, "Follow up to two continuation pages per query")
	limit := flag.Int("limit", 0, "Show only the top N places")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		fmt.Printf("Error loading config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Setup(cfg.LogLevel, true); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	places, err := provider.NewGoogleClient(cfg.GoogleMapsAPIKey)
	if err != nil {
		fmt.Printf("Error creating places client: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	center := models.Coordinate{Lat: *lat, Lng: *lng}

	if *query != "" {
		landmark, err := service.NewLocateService(places).Locate(ctx, *query)
		if err != nil {
			fmt.Printf("Error locating %q: %v\n", *query, err)
			os.Exit(1)
		}
		if landmark == nil {
			fmt.Println("Place not found. Please try a different query.")
			os.Exit(1)
		}
		fmt.Printf("Found: %s\n", landmark.Name)
		center = landmark.Location
	}

	req := models.SearchRequest{
		Center:        center,
		Radius:        *radius,
		Category:      *category,
		GridEnabled:   *grid,
		FetchAllPages: *allPages,
	}

	var bar *progressbar.ProgressBar
	fetcher := search.NewPageFetcher(places, cfg.PageDelay, cfg.QueryTimeout)
	aggregator := search.NewAggregator(fetcher,
		search.WithWorkers(cfg.Workers),
		search.WithProgress(func(done, total int) {
			if bar == nil {
				bar = progressbar.Default(int64(total), "Making API requests...")
			}
			_ = bar.Add(1)
		}),
	)
	svc := service.NewSearchService(search.NewGridPlanner(cfg.GridScale), aggregator, nil, cfg.SearchTimeout)

	fmt.Printf("Selected Coordinates: %s\n", center)
	result, err := svc.Search(ctx, req)
	if err != nil {
		fmt.Printf("Error searching: %v\n", err)
		os.Exit(1)
	}
	if bar != nil {
		_ = bar.Finish()
	}

	printResults(os.Stdout, req, result, *limit)
}

func printResults(w io.Writer, req models.SearchRequest, result *models.ResultSet, limit int) {
	label := "Places"
	if c := req.Category; c != "" && c != models.AllCategories {
		label = cases.Title(language.English).String(strings.ReplaceAll(c, "_", " ")) + "s"
	}

	for _, f := range result.Failures {
		fmt.Fprintf(w, "Warning: %s query at %s failed: %s\n", f.Category, f.Location, f.Error)
	}

	if len(result.Places) == 0 {
		fmt.Fprintf(w, "No %s found nearby.\n", strings.ToLower(label))
		return
	}

	fmt.Fprintf(w, "\nTop %s Nearby (%d found):\n\n", label, len(result.Places))
	for _, view := range models.Views(search.TopN(result.Places, limit)) {
		rating := "N/A"
		if view.Rating != nil {
			rating = fmt.Sprintf("%.1f", *view.Rating)
		}

		fmt.Fprintf(w, "### %s\n", view.Name)
		fmt.Fprintf(w, "Rating: %s stars  |  Reviews: %d  |  %s\n", rating, view.ReviewCount, view.Category)
		fmt.Fprintf(w, "%s\n", view.MapsURL)
		fmt.Fprintln(w, "---")
	}
}
