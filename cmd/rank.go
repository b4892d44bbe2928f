package cmd

import (
	"context"
	"fmt"
)

// RankCmd groups the ranking subcommands
type RankCmd struct {
	Toggle RankToggleCmd `cmd:"" help:"Add a movie to the ranking, or remove it if already ranked"`
	Move   RankMoveCmd   `cmd:"" help:"Move a ranked movie to another position"`
}

// RankToggleCmd represents the rank toggle command
type RankToggleCmd struct {
	Movie string `arg:"" help:"Letterboxd URI or exact title of the movie"`
}

func (r *RankToggleCmd) Run(_ context.Context, app *App) error {
	movie, err := app.Watchlist.Find(r.Movie)
	if err != nil {
		return err
	}

	ranked, err := app.Watchlist.TogglePriority(movie.ID)
	if err != nil {
		return err
	}

	if ranked {
		rank, _ := app.Watchlist.Rank(movie.ID)
		_, err = fmt.Fprintf(app.Out, "Ranked %s at #%d\n", movie.Title, rank+1)
	} else {
		_, err = fmt.Fprintf(app.Out, "Removed %s from the ranking\n", movie.Title)
	}
	return err
}

// RankMoveCmd represents the rank move command. Positions are 1-based as shown by list --ranked.
type RankMoveCmd struct {
	From int `arg:"" help:"Current position"`
	To   int `arg:"" help:"New position"`
}

func (r *RankMoveCmd) Run(_ context.Context, app *App) error {
	if err := app.Watchlist.Move(r.From-1, r.To-1); err != nil {
		return err
	}
	_, err := fmt.Fprintf(app.Out, "Moved #%d to #%d\n", r.From, r.To)
	return err
}
