// Package csvutil turns CSV exports into typed records.
package csvutil

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// ErrSkipRecord can be returned by a parser to drop a record without failing the whole file.
var ErrSkipRecord = errors.New("skip record")

// ProcessorOptions configures CSV processing behavior.
type ProcessorOptions struct {
	// MinFields is the minimum number of fields a record must have.
	// Shorter records are skipped with a warning. Records may otherwise vary in length.
	MinFields int

	// SkipInvalid controls whether to skip records the parser rejects or return an error.
	SkipInvalid bool

	// TrimSpace trims surrounding whitespace from every field before parsing.
	TrimSpace bool
}

// ProcessCSV opens filename and parses every record after the header into T.
func ProcessCSV[T any](filename string, parser func([]string) (T, error), opts ProcessorOptions) ([]T, error) {
	csvFile, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer func() { _ = csvFile.Close() }()

	if fi, err := csvFile.Stat(); err != nil || fi.Size() == 0 {
		return nil, fmt.Errorf("CSV file %s is empty or cannot be read", filename)
	}

	return ProcessReader(csvFile, parser, opts)
}

// ProcessReader parses CSV from r. The first record is treated as a header and skipped.
func ProcessReader[T any](r io.Reader, parser func([]string) (T, error), opts ProcessorOptions) ([]T, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	if _, err := reader.Read(); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	var items []T

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			slog.Warn("Error reading record", "error", err)
			continue
		}

		if isBlank(record) {
			continue
		}

		if opts.TrimSpace {
			for i := range record {
				record[i] = strings.TrimSpace(record[i])
			}
		}

		if len(record) < opts.MinFields {
			line, _ := reader.FieldPos(0)
			slog.Warn("Skipping short record", "line", line, "fields", len(record), "want", opts.MinFields)
			continue
		}

		item, err := parser(record)
		if errors.Is(err, ErrSkipRecord) {
			continue
		}
		if err != nil {
			if opts.SkipInvalid {
				slog.Warn("Skipping invalid record", "error", err)
				continue
			}
			return nil, fmt.Errorf("invalid record: %w", err)
		}

		items = append(items, item)
	}

	return items, nil
}

func isBlank(record []string) bool {
	for _, field := range record {
		if strings.TrimSpace(field) != "" {
			return false
		}
	}
	return true
}
