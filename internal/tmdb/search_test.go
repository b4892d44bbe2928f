package tmdb

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	apierrors "github.com/lepinkainen/smarterboxd/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchMovie_ReturnsFirstResult(t *testing.T) {
	var capturedPath string
	var capturedQuery url.Values
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		capturedPath = r.URL.Path
		capturedQuery = r.URL.Query()
		response := map[string]any{
			"results": []map[string]any{
				{"id": 438631, "title": "Dune", "poster_path": "/d5NXSklXo0qyIYkgV94XAgMIckC.jpg", "release_date": "2021-09-15"},
				{"id": 841, "title": "Dune", "poster_path": "/other.jpg"},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(response))
	})

	match, err := client.SearchMovie(context.Background(), "Dune", "2021", "it")
	require.NoError(t, err)
	require.NotNil(t, match)

	assert.Equal(t, 438631, match.ID)
	assert.Equal(t, "/d5NXSklXo0qyIYkgV94XAgMIckC.jpg", match.PosterPath)
	assert.Equal(t, "Dune", match.Title)
	assert.Equal(t, "2021-09-15", match.ReleaseDate)

	assert.Equal(t, "/search/movie", capturedPath)
	assert.Equal(t, "test-api-key", capturedQuery.Get("api_key"))
	assert.Equal(t, "Dune", capturedQuery.Get("query"))
	assert.Equal(t, "2021", capturedQuery.Get("year"))
	assert.Equal(t, "it", capturedQuery.Get("language"))
}

func TestSearchMovie_NoResults(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"page":1,"results":[],"total_results":0}`))
	})

	match, err := client.SearchMovie(context.Background(), "Nonexistent", "1901", "it")
	require.NoError(t, err)
	assert.Nil(t, match)
}

func TestSearchMovie_OmitsEmptyYear(t *testing.T) {
	var capturedQuery url.Values
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		capturedQuery = r.URL.Query()
		_, _ = w.Write([]byte(`{"results":[{"id":1,"poster_path":null}]}`))
	})

	match, err := client.SearchMovie(context.Background(), "Untitled", "", "")
	require.NoError(t, err)
	require.NotNil(t, match)

	assert.False(t, capturedQuery.Has("year"))
	assert.False(t, capturedQuery.Has("language"))
	assert.Empty(t, match.PosterPath)
	assert.Empty(t, match.Title)
}

func TestSearchMovie_DecodeFailure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"results": "nope"`))
	})

	match, err := client.SearchMovie(context.Background(), "Dune", "2021", "it")
	require.Error(t, err)
	assert.Nil(t, match)
	assert.True(t, apierrors.IsDecodeError(err))
}
