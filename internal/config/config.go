// Package config resolves service settings from defaults, an optional YAML
// file and the environment, in that order.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

type DepotConfig struct {
	Name string  `yaml:"name" validate:"required"`
	Lat  float64 `yaml:"lat" validate:"gte=-90,lte=90"`
	Lon  float64 `yaml:"lon" validate:"gte=-180,lte=180"`
}

type AppConfig struct {
	Port         string      `yaml:"port" validate:"required,numeric"`
	DBDriver     string      `yaml:"db_driver" validate:"oneof=sqlite pgx"`
	DBPath       string      `yaml:"db_path" validate:"required_if=DBDriver sqlite"`
	DatabaseURL  string      `yaml:"database_url" validate:"required_if=DBDriver pgx"`
	SeedPath     string      `yaml:"seed_path"`
	Depot        DepotConfig `yaml:"depot"`
	RouteCount   int         `yaml:"route_count" validate:"gte=1,lte=50"`
	AvgSpeedKmph float64     `yaml:"avg_speed_kmph" validate:"gt=0"`
}

func Default() AppConfig {
	return AppConfig{
		Port:         "8080",
		DBDriver:     "sqlite",
		DBPath:       "data/app.db",
		SeedPath:     "data/seeds/stops.json",
		Depot:        DepotConfig{Name: "Depot", Lat: 40.4406, Lon: -79.9959},
		RouteCount:   2,
		AvgSpeedKmph: 35,
	}
}

// Load builds the configuration. A missing file at path is not an error;
// an empty path skips the file entirely.
func Load(path string) (AppConfig, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return AppConfig{}, fmt.Errorf("load config: read %q: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return AppConfig{}, fmt.Errorf("load config: parse %q: %w", path, err)
			}
		}
	}

	if err := applyEnv(&cfg); err != nil {
		return AppConfig{}, fmt.Errorf("load config: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return AppConfig{}, fmt.Errorf("load config: validate: %w", err)
	}

	return cfg, nil
}

func applyEnv(cfg *AppConfig) error {
	cfg.Port = Get("PORT", cfg.Port)
	cfg.DBDriver = Get("DB_DRIVER", cfg.DBDriver)
	cfg.DBPath = Get("DB_PATH", cfg.DBPath)
	cfg.DatabaseURL = Get("DATABASE_URL", cfg.DatabaseURL)
	cfg.SeedPath = Get("SEED_PATH", cfg.SeedPath)
	cfg.Depot.Name = Get("DEPOT_NAME", cfg.Depot.Name)

	var err error
	if cfg.Depot.Lat, err = GetFloat("DEPOT_LAT", cfg.Depot.Lat); err != nil {
		return err
	}
	if cfg.Depot.Lon, err = GetFloat("DEPOT_LON", cfg.Depot.Lon); err != nil {
		return err
	}
	if cfg.RouteCount, err = GetInt("ROUTE_COUNT", cfg.RouteCount); err != nil {
		return err
	}
	if cfg.AvgSpeedKmph, err = GetFloat("AVG_SPEED_KMPH", cfg.AvgSpeedKmph); err != nil {
		return err
	}

	return nil
}

// Get returns the trimmed value of key, or fallback when unset or blank.
func Get(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func GetInt(key string, fallback int) (int, error) {
	v := Get(key, "")
	if v == "" {
		return fallback, nil
	}

	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("env %s=%q: %w", key, v, err)
	}
	return n, nil
}

func GetFloat(key string, fallback float64) (float64, error) {
	v := Get(key, "")
	if v == "" {
		return fallback, nil
	}

	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("env %s=%q: %w", key, v, err)
	}
	return f, nil
}
