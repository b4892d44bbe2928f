package cmd

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/require"

	"github.com/lepinkainen/smarterboxd/internal/config"
	"github.com/lepinkainen/smarterboxd/internal/enrichment"
	"github.com/lepinkainen/smarterboxd/internal/state"
	"github.com/lepinkainen/smarterboxd/internal/testutil"
	"github.com/lepinkainen/smarterboxd/internal/tui"
	"github.com/lepinkainen/smarterboxd/internal/watchlist"
)

const testWatchlistCSV = `Date,Name,Year,Letterboxd URI
2023-01-05,Metropolis,1927,https://boxd.it/metropolis
2023-02-11,"I, Tonya",2017,https://boxd.it/itonya
2023-03-20,Dune,2021,https://boxd.it/dune
`

type fakeEnricher struct {
	mu      sync.Mutex
	results map[string]*enrichment.Result
	calls   []string
}

func (f *fakeEnricher) Lookup(_ context.Context, title, _ string) (*enrichment.Result, enrichment.Status) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, title)
	if r, ok := f.results[title]; ok {
		copied := *r
		return &copied, enrichment.StatusFound
	}
	return nil, enrichment.StatusNotFound
}

type fakePosters struct {
	urls  []string
	paths []string
	err   error
}

func (f *fakePosters) DownloadPoster(_ context.Context, imageURL, savePath string, _ int) error {
	if f.err != nil {
		return f.err
	}
	f.urls = append(f.urls, imageURL)
	f.paths = append(f.paths, savePath)
	if err := os.MkdirAll(filepath.Dir(savePath), 0o755); err != nil {
		return err
	}
	return os.WriteFile(savePath, []byte("jpeg"), 0o644)
}

type testApp struct {
	*App
	env      *testutil.TestEnv
	out      *bytes.Buffer
	enricher *fakeEnricher
	posters  *fakePosters
	spins    []time.Duration
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	env := testutil.NewTestEnv(t)
	env.WriteFileString("watchlist.csv", testWatchlistCSV)

	movies, err := watchlist.Load(env.Path("watchlist.csv"))
	require.NoError(t, err)

	store, err := state.Open(env.Path("state.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	list, err := watchlist.New(movies, store)
	require.NoError(t, err)

	ta := &testApp{
		env: env,
		out: &bytes.Buffer{},
		enricher: &fakeEnricher{results: map[string]*enrichment.Result{
			"Dune": {
				SmallPosterURL: "https://image.tmdb.org/t/p/w200/dune.jpg",
				LargePosterURL: "https://image.tmdb.org/t/p/w500/dune.jpg",
				Overview:       "Paul Atreides arrives on Arrakis.",
				Director:       "Denis Villeneuve",
			},
		}},
		posters: &fakePosters{},
	}
	ta.App = &App{
		Config:    config.Config{WatchlistCSV: env.Path("watchlist.csv"), StateDB: env.Path("state.db"), Concurrency: 2},
		Watchlist: list,
		Enricher:  ta.enricher,
		Posters:   ta.posters,
		Out:       ta.out,
		spin: func(_ string, d time.Duration) error {
			ta.spins = append(ta.spins, d)
			return nil
		},
		browse: func(string, []watchlist.Movie, tui.Actions) (tui.BrowseResult, error) {
			return tui.BrowseResult{}, errors.New("browse not stubbed")
		},
		intn: func(int) int { return 0 },
	}
	return ta
}

func parseCLI(t *testing.T, args ...string) (*CLI, *kong.Context) {
	t.Helper()

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name(appName),
		kong.Description(appDescription),
		kong.Exit(func(code int) {
			t.Fatalf("unexpected Kong exit %d", code)
		}),
	)
	require.NoError(t, err)

	kctx, err := parser.Parse(args)
	require.NoError(t, err)
	return cli, kctx
}

// runCommand parses args and runs the selected command against app.
func runCommand(t *testing.T, app *App, args ...string) error {
	t.Helper()

	_, kctx := parseCLI(t, args...)
	kctx.BindTo(context.Background(), (*context.Context)(nil))
	return kctx.Run(app)
}
