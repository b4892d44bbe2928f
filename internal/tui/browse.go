package tui

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/lepinkainen/smarterboxd/internal/watchlist"
)

const (
	defaultListWidth  = 72
	defaultListHeight = 20
)

// Actions are the watchlist mutations available while browsing.
type Actions interface {
	IsRanked(id string) bool
	TogglePriority(id string) (bool, error)
	Delete(ids ...string) error
}

// BrowseAction represents how the user left the browser.
type BrowseAction int

const (
	// BrowseQuit indicates the user closed the browser.
	BrowseQuit BrowseAction = iota
	// BrowseSelected indicates the user opened a movie.
	BrowseSelected
)

// BrowseResult holds the outcome of a Browse session.
type BrowseResult struct {
	Action BrowseAction
	Movie  watchlist.Movie
}

type movieItem struct {
	movie  watchlist.Movie
	ranked bool
}

func (i movieItem) Title() string       { return displayTitle(i.movie) }
func (i movieItem) Description() string { return formatMetadata(i.movie) }
func (i movieItem) FilterValue() string { return i.movie.Title }

type movieDelegate struct {
	normal   lipgloss.Style
	selected lipgloss.Style
}

func newMovieDelegate() movieDelegate {
	container := lipgloss.NewStyle().
		Border(lipgloss.HiddenBorder(), false, false, false, true).
		PaddingLeft(1)

	return movieDelegate{
		normal: container,
		selected: container.Copy().
			Border(asciiBorder, false, false, false, true).
			BorderForeground(lipgloss.Color("214")),
	}
}

func (d movieDelegate) Height() int                         { return 2 }
func (d movieDelegate) Spacing() int                        { return 1 }
func (d movieDelegate) Update(tea.Msg, *list.Model) tea.Cmd { return nil }

func (d movieDelegate) Render(w io.Writer, m list.Model, idx int, item list.Item) {
	movie, ok := item.(movieItem)
	if !ok {
		return
	}

	marker := "  "
	if movie.ranked {
		marker = rankStyle.Render("* ")
	}
	titleLine := marker + titleStyle.Render(truncate(movie.Title(), m.Width()-6))
	metadataLine := "  " + metadataStyle.Render(truncate(movie.Description(), m.Width()-6))

	container := d.normal
	if idx == m.Index() {
		container = d.selected
	}
	_, _ = fmt.Fprint(w, container.Render(lipgloss.JoinVertical(lipgloss.Left, titleLine, metadataLine)))
}

type browseModel struct {
	list    list.Model
	heading string
	actions Actions
	status  string
	result  BrowseResult
}

func newBrowseModel(heading string, movies []watchlist.Movie, actions Actions) *browseModel {
	items := make([]list.Item, len(movies))
	for i, m := range movies {
		items[i] = movieItem{movie: m, ranked: actions.IsRanked(m.ID)}
	}

	l := list.New(items, newMovieDelegate(), defaultListWidth, defaultListHeight)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.SetShowHelp(false)
	l.SetShowTitle(false)
	l.DisableQuitKeybindings()
	l.Styles.NoItems = placeholderStyle.Copy()

	return &browseModel{
		list:    l,
		heading: heading,
		actions: actions,
	}
}

func (m *browseModel) Init() tea.Cmd { return nil }

func (m *browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			if selected, ok := m.list.SelectedItem().(movieItem); ok {
				m.result = BrowseResult{Action: BrowseSelected, Movie: selected.movie}
				return m, tea.Quit
			}
		case "p":
			m.togglePriority()
			return m, nil
		case "d":
			m.deleteSelected()
			return m, nil
		case "ctrl+c", "q", "esc":
			m.result = BrowseResult{Action: BrowseQuit}
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		width := clamp(defaultListWidth, msg.Width-4, 40)
		height := clamp(defaultListHeight, msg.Height-6, 5)
		m.list.SetSize(width, height)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m *browseModel) togglePriority() {
	selected, ok := m.list.SelectedItem().(movieItem)
	if !ok {
		return
	}
	ranked, err := m.actions.TogglePriority(selected.movie.ID)
	if err != nil {
		slog.Warn("Failed to toggle priority", "id", selected.movie.ID, "error", err)
		m.status = "Could not update ranking"
		return
	}
	selected.ranked = ranked
	m.list.SetItem(m.list.Index(), selected)
	if ranked {
		m.status = "Added to ranking: " + selected.movie.Title
	} else {
		m.status = "Removed from ranking: " + selected.movie.Title
	}
}

func (m *browseModel) deleteSelected() {
	selected, ok := m.list.SelectedItem().(movieItem)
	if !ok {
		return
	}
	if err := m.actions.Delete(selected.movie.ID); err != nil {
		slog.Warn("Failed to delete movie", "id", selected.movie.ID, "error", err)
		m.status = "Could not delete movie"
		return
	}
	m.list.RemoveItem(m.list.Index())
	m.status = "Deleted: " + selected.movie.Title
}

func (m *browseModel) View() string {
	header := headerStyle.Render(m.heading)
	status := statusStyle.Render(m.status)
	help := helpStyle.Render("Up/Down navigate | Enter details | p rank | d delete | q quit")
	return lipgloss.JoinVertical(lipgloss.Left, header, m.list.View(), status, help)
}

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("214")).
			MarginBottom(1)

	statusStyle = lipgloss.NewStyle().
			MarginTop(1).
			Foreground(lipgloss.Color("178"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("244"))
)

// Browse presents the movies in an interactive list where they can be ranked,
// deleted or opened.
func Browse(heading string, movies []watchlist.Movie, actions Actions) (BrowseResult, error) {
	finalModel, err := runProgram(newBrowseModel(heading, movies, actions))
	if err != nil {
		return BrowseResult{}, err
	}

	if typed, ok := finalModel.(*browseModel); ok {
		return typed.result, nil
	}

	return BrowseResult{}, fmt.Errorf("unexpected program result")
}

func clamp(defaultValue, available, minimum int) int {
	width := defaultValue
	if available > 0 && available < defaultValue {
		width = available
	}
	if width < minimum {
		width = minimum
	}
	return width
}
