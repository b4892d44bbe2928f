// Package enrichment attaches TMDB posters, overview and director to watchlist entries.
package enrichment

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	apierrors "github.com/lepinkainen/smarterboxd/internal/errors"
	"github.com/lepinkainen/smarterboxd/internal/tmdb"
)

// DefaultSearchLanguage is the language hint sent with catalog searches.
const DefaultSearchLanguage = "it"

type catalogClient interface {
	detailFetcher
	SearchMovie(ctx context.Context, title, year, language string) (*tmdb.Match, error)
	PosterURLs(posterPath string) (small, large string)
}

// Options configures a Service.
type Options struct {
	PrimaryLanguage   string
	SecondaryLanguage string
	SearchLanguage    string
	// NotFoundTTL bounds how long a "no match" is remembered. Zero uses DefaultNotFoundTTL,
	// a negative value disables negative caching.
	NotFoundTTL time.Duration
}

// Service resolves (title, year) pairs into enrichment results.
// A single Service is meant to be shared by every consumer in the process.
type Service struct {
	client         catalogClient
	resolver       *Resolver
	cache          *Cache
	searchLanguage string
}

// NewService creates a Service backed by the given catalog client.
func NewService(client catalogClient, opts Options) *Service {
	ttl := opts.NotFoundTTL
	if ttl == 0 {
		ttl = DefaultNotFoundTTL
	}
	searchLanguage := opts.SearchLanguage
	if searchLanguage == "" {
		searchLanguage = DefaultSearchLanguage
	}

	return &Service{
		client:         client,
		resolver:       NewResolver(client, opts.PrimaryLanguage, opts.SecondaryLanguage),
		cache:          NewCache(ttl),
		searchLanguage: searchLanguage,
	}
}

// FetchExtras returns the enrichment for a movie, or nil when nothing could be found.
// It never fails: transport and decode problems are logged and reported as nil.
func (s *Service) FetchExtras(ctx context.Context, title, year string) *Result {
	result, _ := s.Lookup(ctx, title, year)
	return result
}

// Lookup is FetchExtras with the outcome made explicit.
func (s *Service) Lookup(ctx context.Context, title, year string) (*Result, Status) {
	query := Query{Title: strings.TrimSpace(title), Year: year}
	if query.Title == "" {
		slog.Debug("Skipping enrichment for empty title", "year", year)
		return nil, StatusNotFound
	}

	return s.cache.GetOrCompute(ctx, query.Key(), func(ctx context.Context) (*Result, Status) {
		return s.enrich(ctx, query)
	})
}

func (s *Service) enrich(ctx context.Context, query Query) (*Result, Status) {
	match, status := s.search(ctx, query)
	if match == nil {
		return nil, status
	}

	result := &Result{}
	result.SmallPosterURL, result.LargePosterURL = s.client.PosterURLs(match.PosterPath)
	result.Overview, result.Director = s.resolver.Resolve(ctx, match.ID)

	slog.Debug("Enriched movie", "title", query.Title, "year", query.NormalizedYear(), "tmdb_id", match.ID,
		"has_poster", result.LargePosterURL != "", "has_overview", result.Overview != "", "has_director", result.Director != "")
	return result, StatusFound
}

func (s *Service) search(ctx context.Context, query Query) (*tmdb.Match, Status) {
	match, err := s.client.SearchMovie(ctx, query.Title, query.NormalizedYear(), s.searchLanguage)
	if err != nil {
		slog.Warn(failureMessage(err, "TMDB search failed"), "title", query.Title, "year", query.NormalizedYear(), "error", err)
		return nil, StatusFailed
	}
	if match == nil {
		slog.Info("No TMDB match", "title", query.Title, "year", query.NormalizedYear())
		return nil, StatusNotFound
	}
	slog.Debug("Matched TMDB movie", "title", query.Title, "year", query.NormalizedYear(), "tmdb_id", match.ID,
		"matched_title", match.Title, "release_date", match.ReleaseDate)
	return match, StatusFound
}

// failureMessage picks the log message for a failed TMDB call.
func failureMessage(err error, fallback string) string {
	switch {
	case apierrors.IsDecodeError(err):
		return "Malformed TMDB response"
	case apierrors.IsStatus(err, http.StatusUnauthorized):
		return "TMDB rejected the API key"
	default:
		return fallback
	}
}
