package utils

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/viper"
)

type Config struct {
	App      AppConfig
	Database DatabaseConfig
	MovieAPI MovieAPIConfig
}

type AppConfig struct {
	Name    string `validate:"required"`
	Port    string `validate:"required,numeric"`
	Debug   bool
	LogPath string
}

type DatabaseConfig struct {
	Host     string `validate:"required"`
	Port     string `validate:"required,numeric"`
	Name     string `validate:"required"`
	User     string `validate:"required"`
	Password string
	SSLMode  string `validate:"oneof=disable allow prefer require verify-ca verify-full"`
	MaxConns int32  `validate:"min=1"`
}

// MovieAPIConfig holds the TMDB endpoints and the bearer token used to call them.
type MovieAPIConfig struct {
	AccessToken string `validate:"required"`
	SearchURL   string `validate:"required,url"`
	DetailsURL  string `validate:"required,url"`
	ImageURL    string `validate:"required,url"`
}

// LoadConfig reads the given .env file and overlays the process environment.
// A missing file is not an error so the service can run from env vars only.
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("env")

	// Set defaults
	v.SetDefault("APP_NAME", "movie-catalog")
	v.SetDefault("PORT", "8080")
	v.SetDefault("DEBUG", false)
	v.SetDefault("LOG_PATH", "logs/")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_SSLMODE", "disable")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("MOVIE_API_URL", "https://api.themoviedb.org/3/search/movie")
	v.SetDefault("MOVIE_DETAILS_URL", "https://api.themoviedb.org/3/movie")
	v.SetDefault("MOVIE_IMAGE_URL", "https://image.tmdb.org/t/p/w500")

	if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	v.AutomaticEnv()

	config := &Config{
		App: AppConfig{
			Name:    v.GetString("APP_NAME"),
			Port:    v.GetString("PORT"),
			Debug:   v.GetBool("DEBUG"),
			LogPath: v.GetString("LOG_PATH"),
		},
		Database: DatabaseConfig{
			Host:     v.GetString("DB_HOST"),
			Port:     v.GetString("DB_PORT"),
			Name:     v.GetString("DB_NAME"),
			User:     v.GetString("DB_USER"),
			Password: v.GetString("DB_PASS"),
			SSLMode:  v.GetString("DB_SSLMODE"),
			MaxConns: v.GetInt32("DB_MAX_CONNS"),
		},
		MovieAPI: MovieAPIConfig{
			AccessToken: v.GetString("MOVIE_API_ACCESS_TOKEN"),
			SearchURL:   v.GetString("MOVIE_API_URL"),
			DetailsURL:  v.GetString("MOVIE_DETAILS_URL"),
			ImageURL:    v.GetString("MOVIE_IMAGE_URL"),
		},
	}

	if errs := ValidateStruct(config); len(errs) > 0 {
		return nil, fmt.Errorf("invalid config: %s", FormatValidationErrors(errs))
	}

	return config, nil
}
