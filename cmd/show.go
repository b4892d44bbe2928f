package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/lepinkainen/smarterboxd/internal/fileutil"
	"github.com/lepinkainen/smarterboxd/internal/tui"
	"github.com/lepinkainen/smarterboxd/internal/watchlist"
)

// ShowCmd represents the show command
type ShowCmd struct {
	Movie      string `arg:"" help:"Letterboxd URI or exact title of the movie"`
	SavePoster string `help:"Directory to save the large poster into"`
	Overwrite  bool   `help:"Replace an already saved poster"`
	Width      int    `help:"Width of the detail card" default:"72"`
}

func (s *ShowCmd) Run(ctx context.Context, app *App) error {
	movie, err := app.Watchlist.Find(s.Movie)
	if err != nil {
		return err
	}

	extras := app.extras(ctx, movie)
	if _, err := fmt.Fprintln(app.Out, tui.Card(movie, extras, s.Width)); err != nil {
		return err
	}

	if s.SavePoster == "" {
		return nil
	}
	if extras == nil || extras.LargePosterURL == "" {
		slog.Warn("No poster to save", "title", movie.Title)
		return nil
	}
	return savePoster(ctx, app, movie, extras.LargePosterURL, s.SavePoster, s.Overwrite)
}

func savePoster(ctx context.Context, app *App, movie watchlist.Movie, posterURL, dir string, overwrite bool) error {
	path := filepath.Join(dir, fileutil.PosterFilename(movie.Title, movie.Year))
	if fileutil.FileExists(path) && !overwrite {
		slog.Info("Poster already exists, skipping", "path", path)
		return nil
	}

	if err := app.Posters.DownloadPoster(ctx, posterURL, path, 0); err != nil {
		return fmt.Errorf("failed to save poster for %s: %w", movie.Title, err)
	}
	slog.Info("Saved poster", "title", movie.Title, "path", path)
	return nil
}
