package cmd

import (
	"context"
	"fmt"

	"github.com/sourcegraph/conc/pool"

	"github.com/lepinkainen/smarterboxd/internal/enrichment"
	"github.com/lepinkainen/smarterboxd/internal/tui"
	"github.com/lepinkainen/smarterboxd/internal/watchlist"
)

// ListCmd represents the list command
type ListCmd struct {
	Sort   string `help:"Sort order for the full list: date (recently added first) or year" enum:"date,year" default:"date"`
	Ranked bool   `help:"Only show ranked movies, in rank order"`
	Extras bool   `help:"Fetch director for every movie from TMDB"`
}

func (l *ListCmd) Run(ctx context.Context, app *App) error {
	movies, err := selectMovies(app.Watchlist, l.Ranked, l.Sort)
	if err != nil {
		return err
	}
	if len(movies) == 0 {
		_, err := fmt.Fprintln(app.Out, "No movies to show.")
		return err
	}

	var extras []*enrichment.Result
	if l.Extras {
		extras = enrichAll(ctx, app, movies)
	}

	for i, m := range movies {
		rank, ok := app.Watchlist.Rank(m.ID)
		if !ok {
			rank = -1
		}
		var result *enrichment.Result
		if extras != nil {
			result = extras[i]
		}
		if _, err := fmt.Fprintln(app.Out, tui.Row(m, rank, result)); err != nil {
			return err
		}
	}
	return nil
}

func selectMovies(list *watchlist.Watchlist, ranked bool, sort string) ([]watchlist.Movie, error) {
	if ranked {
		return list.Ranked(), nil
	}
	order, err := watchlist.ParseSortOrder(sort)
	if err != nil {
		return nil, err
	}
	return list.All(order), nil
}

// enrichAll looks up every movie with bounded concurrency. Results keep the order of movies.
func enrichAll(ctx context.Context, app *App, movies []watchlist.Movie) []*enrichment.Result {
	results := make([]*enrichment.Result, len(movies))

	p := pool.New().WithMaxGoroutines(max(1, app.Config.Concurrency))
	for i, m := range movies {
		p.Go(func() {
			if ctx.Err() != nil {
				return
			}
			results[i] = app.extras(ctx, m)
		})
	}
	p.Wait()

	return results
}
