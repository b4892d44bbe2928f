package cmd

import (
	"context"
	"fmt"

	"github.com/sourcegraph/conc"

	"github.com/lepinkainen/smarterboxd/internal/enrichment"
	"github.com/lepinkainen/smarterboxd/internal/tui"
	"github.com/lepinkainen/smarterboxd/internal/watchlist"
)

// PickCmd represents the pick command
type PickCmd struct {
	Ranked bool `help:"Pick from the ranked movies only"`
	NoSpin bool `help:"Reveal the pick immediately"`
	Width  int  `help:"Width of the detail card" default:"72"`
}

func (p *PickCmd) Run(ctx context.Context, app *App) error {
	source := watchlist.FromAll
	if p.Ranked {
		source = watchlist.FromRanked
	}

	movie, ok := app.Watchlist.Pick(source, app.intn)
	if !ok {
		_, err := fmt.Fprintln(app.Out, "Nothing to pick.")
		return err
	}

	// Enrichment runs while the spinner is shown.
	var extras *enrichment.Result
	var wg conc.WaitGroup
	wg.Go(func() {
		extras = app.extras(ctx, movie)
	})

	spinDuration := pickSpinDuration
	if p.NoSpin {
		spinDuration = 0
	}
	spinErr := app.spin("Picking a movie...", spinDuration)
	wg.Wait()
	if spinErr != nil {
		return spinErr
	}

	_, err := fmt.Fprintln(app.Out, tui.Card(movie, extras, p.Width))
	return err
}
