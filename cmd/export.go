package cmd

import (
	"context"
	"fmt"

	"github.com/lepinkainen/smarterboxd/internal/enrichment"
	"github.com/lepinkainen/smarterboxd/internal/fileutil"
	"github.com/lepinkainen/smarterboxd/internal/watchlist"
)

// ExportCmd represents the export command
type ExportCmd struct {
	Format    string `help:"Output format: json or yaml" enum:"json,yaml" default:"json"`
	Output    string `short:"o" help:"Output file (defaults to stdout)"`
	Overwrite bool   `help:"Replace an existing output file"`
	Ranked    bool   `help:"Only export ranked movies, in rank order"`
	NoExtras  bool   `help:"Skip TMDB enrichment"`
}

type exportEntry struct {
	watchlist.Movie `yaml:",inline"`
	Rank            int                `json:"rank,omitempty" yaml:"rank,omitempty"`
	Extras          *enrichment.Result `json:"extras,omitempty" yaml:"extras,omitempty"`
}

func (e *ExportCmd) Run(ctx context.Context, app *App) error {
	format, err := fileutil.ParseFormat(e.Format)
	if err != nil {
		return err
	}

	movies, err := selectMovies(app.Watchlist, e.Ranked, "date")
	if err != nil {
		return err
	}

	var extras []*enrichment.Result
	if !e.NoExtras {
		extras = enrichAll(ctx, app, movies)
	}

	entries := make([]exportEntry, len(movies))
	for i, m := range movies {
		entries[i] = exportEntry{Movie: m}
		if rank, ok := app.Watchlist.Rank(m.ID); ok {
			entries[i].Rank = rank + 1
		}
		if extras != nil {
			entries[i].Extras = extras[i]
		}
	}

	if e.Output == "" {
		return fileutil.Encode(app.Out, entries, format)
	}

	written, err := fileutil.WriteEncodedFile(entries, e.Output, format, e.Overwrite)
	if err != nil {
		return err
	}
	if !written {
		return fmt.Errorf("%s already exists, use --overwrite to replace it", e.Output)
	}
	return nil
}
