// Package watchlist loads a Letterboxd watchlist export and manages ranking and deletion.
package watchlist

import (
	"fmt"
	"strings"

	"github.com/lepinkainen/smarterboxd/internal/csvutil"
)

// Movie is one row of a Letterboxd watchlist export.
type Movie struct {
	// ID is the Letterboxd URI, unique per film.
	ID        string `json:"id" yaml:"id"`
	Title     string `json:"title" yaml:"title"`
	Year      string `json:"year" yaml:"year"`
	DateAdded string `json:"date_added" yaml:"date_added"`
}

// Letterboxd export columns: Date,Name,Year,Letterboxd URI
const (
	colDate = iota
	colName
	colYear
	colURI
	minColumns
)

// Load parses the watchlist CSV at path in file order.
func Load(path string) ([]Movie, error) {
	movies, err := csvutil.ProcessCSV(path, parseRecord, csvutil.ProcessorOptions{
		MinFields:   minColumns,
		SkipInvalid: true,
		TrimSpace:   true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to load watchlist %s: %w", path, err)
	}
	return movies, nil
}

func parseRecord(record []string) (Movie, error) {
	id := strings.TrimSpace(record[colURI])
	if id == "" {
		return Movie{}, fmt.Errorf("record %q has no Letterboxd URI", record[colName])
	}
	return Movie{
		ID:        id,
		Title:     record[colName],
		Year:      record[colYear],
		DateAdded: record[colDate],
	}, nil
}
