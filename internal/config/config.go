// Package config holds the viper-backed settings for smarterboxd.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config keys. Nested keys map to sections of config.yaml.
const (
	KeyTMDBAPIKey          = "TMDBAPIKey"
	KeyTMDBBaseURL         = "tmdb.base_url"
	KeySmallImageBase      = "tmdb.small_image_base"
	KeyLargeImageBase      = "tmdb.large_image_base"
	KeyPrimaryLanguage     = "tmdb.primary_language"
	KeySecondaryLanguage   = "tmdb.secondary_language"
	KeySearchLanguage      = "tmdb.search_language"
	KeyTimeout             = "tmdb.timeout"
	KeyRetryAttempts       = "tmdb.retry_attempts"
	KeyRatePerSecond       = "tmdb.requests_per_second"
	KeyNotFoundTTL         = "enrichment.not_found_ttl" // "0s" turns negative caching off
	KeyConcurrency         = "enrichment.concurrency"
	KeyWatchlistCSV        = "watchlist.csvfile"
	KeyStateDB             = "state.dbfile"
	KeyLogLevel            = "log.level"
	KeyLogFile             = "log.file"
	tmdbAPIKeyEnv          = "TMDB_API_KEY"
	defaultConcurrency     = 8
	defaultRequestsPerSec  = 4.0
	defaultRetryAttempts   = 3
	defaultNotFoundTTL     = 15 * time.Minute
	defaultRequestTimeout  = 10 * time.Second
	defaultWatchlistCSV    = "./watchlist.csv"
	defaultStateDB         = "./smarterboxd.db"
	defaultPrimaryLanguage = "it-IT"
)

// Config is a snapshot of the effective configuration.
type Config struct {
	TMDBAPIKey        string
	TMDBBaseURL       string
	SmallImageBase    string
	LargeImageBase    string
	PrimaryLanguage   string
	SecondaryLanguage string
	SearchLanguage    string
	Timeout           time.Duration
	RetryAttempts     int
	RatePerSecond     float64
	NotFoundTTL       time.Duration
	Concurrency       int
	WatchlistCSV      string
	StateDB           string
	LogLevel          string
	// LogFile enables a rotated log file next to console logging when set.
	LogFile string
}

// SetDefaults registers default values and the API key environment binding on v.
func SetDefaults(v *viper.Viper) error {
	setFileDefaults(v)

	v.AutomaticEnv()
	if err := v.BindEnv(KeyTMDBAPIKey, tmdbAPIKeyEnv); err != nil {
		return fmt.Errorf("failed to bind %s: %w", tmdbAPIKeyEnv, err)
	}
	return nil
}

// setFileDefaults registers the settings that belong in config.yaml.
func setFileDefaults(v *viper.Viper) {
	v.SetDefault(KeyTMDBBaseURL, "https://api.themoviedb.org/3")
	v.SetDefault(KeySmallImageBase, "https://image.tmdb.org/t/p/w200")
	v.SetDefault(KeyLargeImageBase, "https://image.tmdb.org/t/p/w500")
	v.SetDefault(KeyPrimaryLanguage, defaultPrimaryLanguage)
	v.SetDefault(KeySecondaryLanguage, "en-US")
	v.SetDefault(KeySearchLanguage, "it")
	v.SetDefault(KeyTimeout, defaultRequestTimeout.String())
	v.SetDefault(KeyRetryAttempts, defaultRetryAttempts)
	v.SetDefault(KeyRatePerSecond, defaultRequestsPerSec)
	v.SetDefault(KeyNotFoundTTL, defaultNotFoundTTL.String())
	v.SetDefault(KeyConcurrency, defaultConcurrency)
	v.SetDefault(KeyWatchlistCSV, defaultWatchlistCSV)
	v.SetDefault(KeyStateDB, defaultStateDB)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFile, "")
}

// WriteDefaultConfig writes the default settings to path unless a file is already there.
// The instance it writes from has no environment bindings, so the API key stays off disk.
func WriteDefaultConfig(path string) error {
	v := viper.New()
	setFileDefaults(v)
	if err := v.SafeWriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write default config %s: %w", path, err)
	}
	return nil
}

// Load reads the effective configuration from the global viper instance.
func Load() (Config, error) {
	return FromViper(viper.GetViper())
}

// FromViper reads the effective configuration from v.
func FromViper(v *viper.Viper) (Config, error) {
	cfg := Config{
		TMDBAPIKey:        v.GetString(KeyTMDBAPIKey),
		TMDBBaseURL:       v.GetString(KeyTMDBBaseURL),
		SmallImageBase:    v.GetString(KeySmallImageBase),
		LargeImageBase:    v.GetString(KeyLargeImageBase),
		PrimaryLanguage:   v.GetString(KeyPrimaryLanguage),
		SecondaryLanguage: v.GetString(KeySecondaryLanguage),
		SearchLanguage:    v.GetString(KeySearchLanguage),
		Timeout:           v.GetDuration(KeyTimeout),
		RetryAttempts:     v.GetInt(KeyRetryAttempts),
		RatePerSecond:     v.GetFloat64(KeyRatePerSecond),
		NotFoundTTL:       v.GetDuration(KeyNotFoundTTL),
		Concurrency:       v.GetInt(KeyConcurrency),
		WatchlistCSV:      v.GetString(KeyWatchlistCSV),
		StateDB:           v.GetString(KeyStateDB),
		LogLevel:          v.GetString(KeyLogLevel),
		LogFile:           v.GetString(KeyLogFile),
	}

	if cfg.Timeout <= 0 {
		return Config{}, fmt.Errorf("%s must be a positive duration, got %q", KeyTimeout, v.GetString(KeyTimeout))
	}
	if cfg.RetryAttempts < 1 {
		return Config{}, fmt.Errorf("%s must be at least 1, got %d", KeyRetryAttempts, cfg.RetryAttempts)
	}
	if cfg.Concurrency < 1 {
		cfg.Concurrency = 1
	}
	return cfg, nil
}

// NegativeCacheTTL is how long the enrichment service remembers a "no match".
// A zero or negative not_found_ttl disables negative caching and is reported as -1.
func (c Config) NegativeCacheTTL() time.Duration {
	if c.NotFoundTTL <= 0 {
		return -1
	}
	return c.NotFoundTTL
}

// EnrichmentEnabled reports whether a TMDB API key is configured.
func (c Config) EnrichmentEnabled() bool {
	return c.TMDBAPIKey != ""
}

// LoadDotEnv exports the variables from the given .env files (default ".env") into the
// process environment. Missing files are ignored and existing variables are never overridden.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, path := range paths {
		err := godotenv.Load(path)
		if errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to load %s: %w", path, err)
		}
		slog.Debug("Loaded environment file", "path", path)
	}
	return nil
}
