package main

import (
	"context"
	"net/http"

	_ "placefinder-api/docs"
	"placefinder-api/internal/config"
	"placefinder-api/internal/handler"
	"placefinder-api/internal/logger"
	"placefinder-api/internal/provider"
	"placefinder-api/internal/repository"
	"placefinder-api/internal/search"
	"placefinder-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog/log"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

//	@title			Place Finder API
//	@version		1.0
//	@description	Finds the most reviewed places around a point, optionally over a 3x3 search grid.
//	@BasePath		/
func main() {
	config, err := config.LoadConfig("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}
	if err := config.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}
	if err := logger.Setup(config.LogLevel, false); err != nil {
		log.Fatal().Err(err).Msg("cannot set up logger")
	}

	places, err := provider.NewGoogleClient(config.GoogleMapsAPIKey)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot create places client")
	}

	// Search log is optional
	var (
		searchLogs    service.SearchLogWriter
		searchHistory service.SearchLogReader
	)
	if config.DBSource != "" {
		conn, err := pgxpool.New(context.Background(), config.DBSource)
		if err != nil {
			log.Fatal().Err(err).Msg("cannot connect to db")
		}
		defer conn.Close()

		repo := repository.NewRepository(conn)
		if err := repo.Migrate(context.Background()); err != nil {
			log.Fatal().Err(err).Msg("cannot migrate db")
		}
		searchLogs, searchHistory = repo, repo
	} else {
		log.Warn().Msg("DB_SOURCE not set, search history disabled")
	}

	// Initialize layers
	planner := search.NewGridPlanner(config.GridScale)
	fetcher := search.NewPageFetcher(places, config.PageDelay, config.QueryTimeout)
	aggregator := search.NewAggregator(fetcher, search.WithWorkers(config.Workers))

	searchService := service.NewSearchService(planner, aggregator, searchLogs, config.SearchTimeout)
	locateService := service.NewLocateService(places)
	historyService := service.NewHistoryService(searchHistory)

	searchHandler := handler.NewSearchHandler(searchService)
	locateHandler := handler.NewLocateHandler(locateService)
	historyHandler := handler.NewHistoryHandler(historyService)

	r := gin.New()
	r.Use(gin.Recovery(), handler.RequestLogger())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
		})
	})

	r.GET("/categories", handler.Categories)
	r.GET("/search", searchHandler.Search)
	r.GET("/locate", locateHandler.Locate)
	r.GET("/searches", historyHandler.Recent)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	log.Info().Str("address", config.ServerAddress).Msg("starting server")
	if err := r.Run(config.ServerAddress); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
