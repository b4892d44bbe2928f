package tui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/lepinkainen/smarterboxd/internal/enrichment"
	"github.com/lepinkainen/smarterboxd/internal/watchlist"
)

var dune = watchlist.Movie{ID: "https://boxd.it/nYyk", Title: "Dune", Year: "2021", DateAdded: "2023-03-20"}

func TestRow(t *testing.T) {
	row := Row(dune, 0, &enrichment.Result{Director: "Denis Villeneuve"})

	assert.Contains(t, row, "1.")
	assert.Contains(t, row, "Dune (2021)")
	assert.Contains(t, row, "Denis Villeneuve")
	assert.Contains(t, row, "added 2023-03-20")
}

func TestRow_UnrankedWithoutExtras(t *testing.T) {
	row := Row(watchlist.Movie{Title: "Untitled"}, -1, nil)

	assert.True(t, strings.HasPrefix(row, "    "))
	assert.Contains(t, row, "Untitled")
	assert.NotContains(t, row, "(")
	assert.NotContains(t, row, "added")
}

func TestCard_WithExtras(t *testing.T) {
	card := Card(dune, &enrichment.Result{
		LargePosterURL: "https://image.tmdb.org/t/p/w500/d5NXSklXo0qyIYkgV94XAgMIckC.jpg",
		Overview:       "Paul travels to Arrakis.",
		Director:       "Denis Villeneuve",
	}, 120)

	assert.Contains(t, card, "DUNE (2021)")
	assert.Contains(t, card, "Directed by Denis Villeneuve")
	assert.Contains(t, card, "Paul travels to Arrakis.")
	assert.Contains(t, card, "w500/d5NXSklXo0qyIYkgV94XAgMIckC.jpg")
	assert.NotContains(t, card, NoOverview)
	assert.NotContains(t, card, NoDirector)
}

func TestCard_Placeholders(t *testing.T) {
	testCases := []struct {
		name   string
		extras *enrichment.Result
	}{
		{name: "nil extras", extras: nil},
		{name: "empty extras", extras: &enrichment.Result{}},
		{name: "whitespace overview", extras: &enrichment.Result{Overview: "  \n "}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			card := Card(dune, tc.extras, 0)

			assert.Contains(t, card, NoOverview)
			assert.Contains(t, card, NoDirector)
			assert.Contains(t, card, NoPoster)
		})
	}
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", truncate("short", 10))
	assert.Equal(t, "a long...", truncate("a long title here", 9))
	assert.Equal(t, "ab", truncate("abcdef", 2))
	assert.Equal(t, "a b", truncate("a \n b", 0))
	assert.Equal(t, "Città...", truncate("Città di Dio", 8))
}
