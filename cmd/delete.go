package cmd

import (
	"context"
	"fmt"
)

// DeleteCmd represents the delete command
type DeleteCmd struct {
	Movies []string `arg:"" help:"Letterboxd URIs or exact titles of the movies"`
}

func (d *DeleteCmd) Run(_ context.Context, app *App) error {
	ids := make([]string, 0, len(d.Movies))
	titles := make([]string, 0, len(d.Movies))
	for _, ref := range d.Movies {
		movie, err := app.Watchlist.Find(ref)
		if err != nil {
			return err
		}
		ids = append(ids, movie.ID)
		titles = append(titles, movie.Title)
	}

	if err := app.Watchlist.Delete(ids...); err != nil {
		return err
	}
	for _, title := range titles {
		if _, err := fmt.Fprintf(app.Out, "Deleted %s\n", title); err != nil {
			return err
		}
	}
	return nil
}

// RestoreCmd represents the restore command
type RestoreCmd struct {
	Movie string `arg:"" optional:"" help:"Letterboxd URI of the deleted movie; omit to list deleted movies"`
}

func (r *RestoreCmd) Run(_ context.Context, app *App) error {
	if r.Movie == "" {
		deleted := app.Watchlist.DeletedIDs()
		if len(deleted) == 0 {
			_, err := fmt.Fprintln(app.Out, "No deleted movies.")
			return err
		}
		for _, id := range deleted {
			if _, err := fmt.Fprintln(app.Out, id); err != nil {
				return err
			}
		}
		return nil
	}

	if err := app.Watchlist.Restore(r.Movie); err != nil {
		return err
	}
	_, err := fmt.Fprintf(app.Out, "Restored %s\n", r.Movie)
	return err
}
