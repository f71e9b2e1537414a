package config

import (
	"os"

	"matchday/internal/rating"

	"github.com/BurntSushi/toml"
)

type Server struct {
	DBPath string `toml:"db_path"`
	Debug  bool   `toml:"debug_mode"`
}

type Rating struct {
	KFactor       int `toml:"k_factor"`
	DefaultRating int `toml:"default_rating"`
}

type Config struct {
	Server Server
	Rating Rating
}

const defaultKFactor = 32

func New() (Config, error) {
	cfg := Config{
		Server: Server{DBPath: "matchday.sqlite"},
		Rating: Rating{KFactor: defaultKFactor, DefaultRating: 1000},
	}
	_, err := toml.DecodeFile("configs/server.toml", &cfg)
	if err != nil {
		return Config{}, err
	}
	if path := os.Getenv("MATCHDAY_DB"); path != "" {
		cfg.Server.DBPath = path
	}

	// The rating engine only rejects non-positive K; everything else is
	// kept in range here so it never sees bad values.
	if cfg.Rating.KFactor <= 0 {
		cfg.Rating.KFactor = defaultKFactor
	}
	if cfg.Rating.DefaultRating < rating.Min {
		cfg.Rating.DefaultRating = rating.Min
	}
	if cfg.Rating.DefaultRating > rating.Max {
		cfg.Rating.DefaultRating = rating.Max
	}
	return cfg, nil
}
