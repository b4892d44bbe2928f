package enrichment

import (
	"context"
	"log/slog"

	"github.com/lepinkainen/smarterboxd/internal/tmdb"
)

// DefaultPrimaryLanguage and DefaultSecondaryLanguage are the locales detail text is requested in.
const (
	DefaultPrimaryLanguage   = "it-IT"
	DefaultSecondaryLanguage = "en-US"
)

type detailFetcher interface {
	MovieDetail(ctx context.Context, movieID int, language string) (*tmdb.Detail, error)
}

// Resolver fetches detail text in a primary language and fills gaps from a secondary one.
type Resolver struct {
	client    detailFetcher
	primary   string
	secondary string
}

// NewResolver creates a Resolver. Empty languages fall back to the defaults.
func NewResolver(client detailFetcher, primary, secondary string) *Resolver {
	if primary == "" {
		primary = DefaultPrimaryLanguage
	}
	if secondary == "" {
		secondary = DefaultSecondaryLanguage
	}
	return &Resolver{client: client, primary: primary, secondary: secondary}
}

// Resolve returns the overview and director for a catalog ID.
//
// The secondary language is only requested when the primary overview is empty
// or the primary director is missing. Each field falls back on its own, so a
// primary overview is kept even when the secondary call was needed for the director.
func (r *Resolver) Resolve(ctx context.Context, movieID int) (overview, director string) {
	primary := r.fetch(ctx, movieID, r.primary)
	overview, director = primary.Overview, primary.Director

	if overview != "" && director != "" {
		return overview, director
	}

	slog.Debug("Falling back to secondary language", "tmdb_id", movieID, "language", r.secondary,
		"missing_overview", overview == "", "missing_director", director == "")
	secondary := r.fetch(ctx, movieID, r.secondary)

	if overview == "" {
		overview = secondary.Overview
	}
	if director == "" {
		director = secondary.Director
	}
	return overview, director
}

// fetch never fails: errors are logged and reported as an empty detail.
func (r *Resolver) fetch(ctx context.Context, movieID int, language string) tmdb.Detail {
	detail, err := r.client.MovieDetail(ctx, movieID, language)
	if err != nil {
		slog.Warn(failureMessage(err, "Failed to fetch TMDB movie detail"), "tmdb_id", movieID, "language", language, "error", err)
		return tmdb.Detail{}
	}
	if detail == nil {
		return tmdb.Detail{}
	}
	return *detail
}
