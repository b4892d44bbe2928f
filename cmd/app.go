package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lepinkainen/smarterboxd/internal/config"
	"github.com/lepinkainen/smarterboxd/internal/enrichment"
	"github.com/lepinkainen/smarterboxd/internal/ratelimit"
	"github.com/lepinkainen/smarterboxd/internal/state"
	"github.com/lepinkainen/smarterboxd/internal/tmdb"
	"github.com/lepinkainen/smarterboxd/internal/tui"
	"github.com/lepinkainen/smarterboxd/internal/watchlist"
)

const pickSpinDuration = time.Second

// Enricher resolves a movie into posters, overview and director.
type Enricher interface {
	Lookup(ctx context.Context, title, year string) (*enrichment.Result, enrichment.Status)
}

// PosterDownloader saves a poster image to disk.
type PosterDownloader interface {
	DownloadPoster(ctx context.Context, imageURL, savePath string, maxWidth int) error
}

// App holds everything a command needs. It is built once per invocation.
type App struct {
	Config    config.Config
	Watchlist *watchlist.Watchlist
	Enricher  Enricher
	Posters   PosterDownloader
	Out       io.Writer

	spin   func(label string, d time.Duration) error
	browse func(heading string, movies []watchlist.Movie, actions tui.Actions) (tui.BrowseResult, error)
	intn   func(n int) int
	closer io.Closer
}

// Close releases the state database.
func (a *App) Close() error {
	if a.closer == nil {
		return nil
	}
	return a.closer.Close()
}

func buildApp(cfg config.Config) (*App, error) {
	movies, err := watchlist.Load(cfg.WatchlistCSV)
	if err != nil {
		return nil, err
	}

	store, err := state.Open(cfg.StateDB)
	if err != nil {
		return nil, err
	}

	list, err := watchlist.New(movies, store)
	if err != nil {
		_ = store.Close()
		return nil, err
	}
	slog.Debug("Loaded watchlist", "file", cfg.WatchlistCSV, "state_db", store.Path(), "movies", list.Len(), "ranked", len(list.Ranked()))

	client := newTMDBClient(cfg)
	app := &App{
		Config:    cfg,
		Watchlist: list,
		Posters:   client,
		Out:       os.Stdout,
		spin:      tui.Spin,
		browse:    tui.Browse,
		closer:    store,
	}

	if cfg.EnrichmentEnabled() {
		app.Enricher = enrichment.NewService(client, enrichment.Options{
			PrimaryLanguage:   cfg.PrimaryLanguage,
			SecondaryLanguage: cfg.SecondaryLanguage,
			SearchLanguage:    cfg.SearchLanguage,
			NotFoundTTL:       cfg.NegativeCacheTTL(),
		})
	} else {
		slog.Warn("TMDB API key not configured, posters and plots are disabled", "env", "TMDB_API_KEY")
		app.Enricher = disabledEnricher{}
	}

	return app, nil
}

func newTMDBClient(cfg config.Config) *tmdb.Client {
	return tmdb.NewClient(cfg.TMDBAPIKey,
		tmdb.WithBaseURL(cfg.TMDBBaseURL),
		tmdb.WithImageBaseURLs(cfg.SmallImageBase, cfg.LargeImageBase),
		tmdb.WithTimeout(cfg.Timeout),
		tmdb.WithRetryAttempts(cfg.RetryAttempts),
		tmdb.WithRateLimiter(ratelimit.New("TMDB", cfg.RatePerSecond)),
	)
}

// disabledEnricher is used when no API key is configured.
type disabledEnricher struct{}

func (disabledEnricher) Lookup(context.Context, string, string) (*enrichment.Result, enrichment.Status) {
	return nil, enrichment.StatusFailed
}

func (a *App) extras(ctx context.Context, m watchlist.Movie) *enrichment.Result {
	result, status := a.Enricher.Lookup(ctx, m.Title, m.Year)
	slog.Debug("Enrichment lookup", "title", m.Title, "year", m.Year, "status", status)
	return result
}
