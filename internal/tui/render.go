// Package tui renders watchlist entries and provides the interactive terminal components.
package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lepinkainen/smarterboxd/internal/enrichment"
	"github.com/lepinkainen/smarterboxd/internal/watchlist"
)

// Placeholders shown when enrichment is missing a field.
const (
	NoOverview = "Plot not available."
	NoDirector = "Director unknown."
	NoPoster   = "No poster available."
)

const defaultCardWidth = 72

var (
	asciiBorder = lipgloss.Border{
		Top:         "-",
		Bottom:      "-",
		Left:        "|",
		Right:       "|",
		TopLeft:     "+",
		TopRight:    "+",
		BottomLeft:  "+",
		BottomRight: "+",
	}

	cardStyle = lipgloss.NewStyle().
			Border(asciiBorder).
			BorderForeground(lipgloss.Color("62")).
			Padding(0, 1).
			Foreground(lipgloss.Color("252"))

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("254"))

	rankStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214"))

	metadataStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("247")).
			Faint(true)

	directorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("110"))

	overviewStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("248"))

	placeholderStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("244")).
				Italic(true)
)

// Row renders a one-line list entry. rank is zero-based; a negative rank means unranked.
// extras may be nil.
func Row(m watchlist.Movie, rank int, extras *enrichment.Result) string {
	var b strings.Builder

	if rank >= 0 {
		b.WriteString(rankStyle.Render(fmt.Sprintf("%3d.", rank+1)))
	} else {
		b.WriteString("    ")
	}
	b.WriteString(" ")
	b.WriteString(titleStyle.Render(displayTitle(m)))

	if extras != nil && extras.Director != "" {
		b.WriteString(" ")
		b.WriteString(directorStyle.Render("- " + extras.Director))
	}
	if m.DateAdded != "" {
		b.WriteString(" ")
		b.WriteString(metadataStyle.Render("[added " + m.DateAdded + "]"))
	}
	return b.String()
}

// Card renders the detail view of a movie. extras may be nil, in which case
// every enriched field shows its placeholder.
func Card(m watchlist.Movie, extras *enrichment.Result, width int) string {
	if width <= 0 {
		width = defaultCardWidth
	}
	inner := width - 4

	var result enrichment.Result
	if extras != nil {
		result = *extras
	}

	lines := []string{
		titleStyle.Render(strings.ToUpper(displayTitle(m))),
		metadataStyle.Render(formatMetadata(m)),
		"",
		fieldOrPlaceholder(directorStyle, "Directed by ", result.Director, NoDirector),
		"",
		wrapOrPlaceholder(result.Overview, inner),
		"",
		fieldOrPlaceholder(metadataStyle, "Poster: ", result.LargePosterURL, NoPoster),
	}

	return cardStyle.Copy().Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func displayTitle(m watchlist.Movie) string {
	if m.Year == "" {
		return m.Title
	}
	return fmt.Sprintf("%s (%s)", m.Title, m.Year)
}

func formatMetadata(m watchlist.Movie) string {
	var parts []string
	if m.DateAdded != "" {
		parts = append(parts, "Added "+m.DateAdded)
	}
	if m.ID != "" {
		parts = append(parts, m.ID)
	}
	if len(parts) == 0 {
		return "No metadata available"
	}
	return strings.Join(parts, " | ")
}

func fieldOrPlaceholder(style lipgloss.Style, label, value, placeholder string) string {
	if value == "" {
		return placeholderStyle.Render(placeholder)
	}
	return style.Render(label + value)
}

func wrapOrPlaceholder(overview string, width int) string {
	overview = strings.Join(strings.Fields(overview), " ")
	if overview == "" {
		return placeholderStyle.Render(NoOverview)
	}
	return overviewStyle.Copy().Width(width).Render(overview)
}

func truncate(value string, width int) string {
	value = strings.Join(strings.Fields(value), " ")
	runes := []rune(value)
	if width <= 0 || len(runes) <= width {
		return value
	}
	if width <= 3 {
		return string(runes[:width])
	}
	return string(runes[:width-3]) + "..."
}
