package cmd

import (
	"context"
	"fmt"

	"github.com/lepinkainen/smarterboxd/internal/tui"
)

// BrowseCmd represents the browse command
type BrowseCmd struct {
	Sort   string `help:"Sort order for the full list: date or year" enum:"date,year" default:"date"`
	Ranked bool   `help:"Browse the ranked movies only"`
	Width  int    `help:"Width of the detail card" default:"72"`
}

func (b *BrowseCmd) Run(ctx context.Context, app *App) error {
	movies, err := selectMovies(app.Watchlist, b.Ranked, b.Sort)
	if err != nil {
		return err
	}

	heading := fmt.Sprintf("Watchlist (%d movies)", len(movies))
	if b.Ranked {
		heading = fmt.Sprintf("Ranked (%d movies)", len(movies))
	}

	result, err := app.browse(heading, movies, app.Watchlist)
	if err != nil {
		return err
	}
	if result.Action != tui.BrowseSelected {
		return nil
	}

	_, err = fmt.Fprintln(app.Out, tui.Card(result.Movie, app.extras(ctx, result.Movie), b.Width))
	return err
}
