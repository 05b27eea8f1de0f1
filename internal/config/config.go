package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds every setting of the application, read from app.env and the environment
type Config struct {
	ServerAddress    string        `mapstructure:"SERVER_ADDRESS"`
	DBSource         string        `mapstructure:"DB_SOURCE"`
	GoogleMapsAPIKey string        `mapstructure:"GOOGLE_MAPS_API_KEY"`
	GridScale        float64       `mapstructure:"GRID_SCALE"`
	PageDelay        time.Duration `mapstructure:"PAGE_DELAY"`
	QueryTimeout     time.Duration `mapstructure:"QUERY_TIMEOUT"`
	SearchTimeout    time.Duration `mapstructure:"SEARCH_TIMEOUT"`
	Workers          int           `mapstructure:"WORKERS"`
	LogLevel         string        `mapstructure:"LOG_LEVEL"`
}

// LoadConfig reads app.env from path. A .env file in the working directory is
// loaded into the environment first; environment variables win over app.env.
func LoadConfig(path string) (config Config, err error) {
	// .env is optional
	_ = godotenv.Load()

	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	v.SetDefault("SERVER_ADDRESS", ":8080")
	v.SetDefault("DB_SOURCE", "")
	v.SetDefault("GOOGLE_MAPS_API_KEY", "")
	v.SetDefault("GRID_SCALE", 0.0000075)
	v.SetDefault("PAGE_DELAY", "2s")
	v.SetDefault("QUERY_TIMEOUT", "10s")
	v.SetDefault("SEARCH_TIMEOUT", "60s")
	v.SetDefault("WORKERS", 4)
	v.SetDefault("LOG_LEVEL", "info")

	v.AutomaticEnv()

	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return config, fmt.Errorf("config: failed to read config: %w", err)
		}
	}

	if err = v.Unmarshal(&config); err != nil {
		return config, fmt.Errorf("config: failed to decode config: %w", err)
	}

	return config, nil
}

// Validate checks the settings every entrypoint needs
func (c Config) Validate() error {
	if c.GoogleMapsAPIKey == "" {
		return errors.New("config: GOOGLE_MAPS_API_KEY is not set")
	}
	if c.Workers <= 0 {
		return fmt.Errorf("config: WORKERS must be positive, got %d", c.Workers)
	}
	if c.GridScale <= 0 {
		return fmt.Errorf("config: GRID_SCALE must be positive, got %g", c.GridScale)
	}
	return nil
}
