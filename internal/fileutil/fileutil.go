// Package fileutil writes exports and posters to disk.
package fileutil

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Format is an export encoding.
type Format string

const (
	// FormatJSON encodes as indented JSON.
	FormatJSON Format = "json"
	// FormatYAML encodes as YAML.
	FormatYAML Format = "yaml"
)

// ParseFormat maps a user supplied name to a Format.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported format %q (want json or yaml)", name)
	}
}

// Extension returns the file extension for f, including the dot.
func (f Format) Extension() string {
	if f == FormatYAML {
		return ".yaml"
	}
	return ".json"
}

// SanitizeFilename cleans a filename by replacing problematic characters
func SanitizeFilename(name string) string {
	name = strings.ReplaceAll(name, ":", " -")
	name = strings.ReplaceAll(name, "/", "-")
	name = strings.ReplaceAll(name, "\\", "-")
	return strings.TrimSpace(name)
}

// PosterFilename returns the file name used for a saved poster.
func PosterFilename(title, year string) string {
	name := SanitizeFilename(title)
	if year != "" {
		name = fmt.Sprintf("%s (%s)", name, SanitizeFilename(year))
	}
	return name + " - poster.jpg"
}

// FileExists checks if a file exists at the given path
func FileExists(filePath string) bool {
	info, err := os.Stat(filePath)
	if err != nil {
		return false
	}
	return !info.IsDir()
}

// WriteFileWithOverwrite writes data to a file, respecting the overwrite flag
// Returns true if the file was written, false if it was skipped
func WriteFileWithOverwrite(filePath string, data []byte, perm os.FileMode, overwrite bool) (bool, error) {
	if FileExists(filePath) && !overwrite {
		return false, nil
	}

	if err := os.MkdirAll(filepath.Dir(filePath), 0o755); err != nil {
		return false, fmt.Errorf("failed to create directory: %w", err)
	}

	if err := os.WriteFile(filePath, data, perm); err != nil {
		return false, err
	}

	return true, nil
}

// Encode writes data to w in the given format.
func Encode(w io.Writer, data any, format Format) error {
	switch format {
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(data); err != nil {
			return fmt.Errorf("failed to marshal YAML: %w", err)
		}
		return enc.Close()
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(data); err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("unsupported format %q", format)
	}
}

// WriteEncodedFile encodes data into filePath, respecting the overwrite flag.
// Returns true if the file was written, false if it was skipped
func WriteEncodedFile(data any, filePath string, format Format, overwrite bool) (bool, error) {
	if FileExists(filePath) && !overwrite {
		slog.Info("Export file already exists, skipping", "filename", filePath, "overwrite", overwrite)
		return false, nil
	}

	var buf bytes.Buffer
	if err := Encode(&buf, data, format); err != nil {
		return false, err
	}

	slog.Info("Writing export file", "filename", filePath, "format", format)
	written, err := WriteFileWithOverwrite(filePath, buf.Bytes(), 0o644, true)
	if err != nil {
		return false, fmt.Errorf("failed to write %s file: %w", format, err)
	}
	return written, nil
}
