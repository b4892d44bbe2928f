package enrichment

import (
	"bytes"
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/lepinkainen/smarterboxd/internal/tmdb"
)

const (
	testSmallBase = "https://img.test/w200"
	testLargeBase = "https://img.test/w500"
)

type fakeCatalog struct {
	onSearch func(ctx context.Context, title, year, language string) (*tmdb.Match, error)
	onDetail func(ctx context.Context, movieID int, language string) (*tmdb.Detail, error)

	searchCalls atomic.Int32
	detailCalls atomic.Int32

	mu        sync.Mutex
	languages []string
}

func (f *fakeCatalog) SearchMovie(ctx context.Context, title, year, language string) (*tmdb.Match, error) {
	f.searchCalls.Add(1)
	if f.onSearch != nil {
		return f.onSearch(ctx, title, year, language)
	}
	return nil, nil
}

func (f *fakeCatalog) MovieDetail(ctx context.Context, movieID int, language string) (*tmdb.Detail, error) {
	f.detailCalls.Add(1)
	f.mu.Lock()
	f.languages = append(f.languages, language)
	f.mu.Unlock()
	if f.onDetail != nil {
		return f.onDetail(ctx, movieID, language)
	}
	return nil, nil
}

func (f *fakeCatalog) PosterURLs(posterPath string) (string, string) {
	if posterPath == "" {
		return "", ""
	}
	return testSmallBase + posterPath, testLargeBase + posterPath
}

func (f *fakeCatalog) detailLanguages() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.languages...)
}

// detailsByLanguage serves fixed details per language.
func detailsByLanguage(details map[string]*tmdb.Detail) func(context.Context, int, string) (*tmdb.Detail, error) {
	return func(_ context.Context, _ int, language string) (*tmdb.Detail, error) {
		detail, ok := details[language]
		if !ok {
			return &tmdb.Detail{}, nil
		}
		return detail, nil
	}
}

// captureLogs routes the default logger into a buffer for the rest of the test.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	original := slog.Default()
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(original) })
	return &buf
}
