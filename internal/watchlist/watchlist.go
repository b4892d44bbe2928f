package watchlist

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/lepinkainen/smarterboxd/internal/state"
)

// ListStore persists the ranked and deleted ID lists.
type ListStore interface {
	Strings(key string) ([]string, error)
	SetStrings(key string, values []string) error
}

// SortOrder selects the ordering of the full list.
type SortOrder int

const (
	// ByDateAdded lists the most recently added movies first.
	ByDateAdded SortOrder = iota
	// ByYear lists the most recent releases first.
	ByYear
)

// ParseSortOrder maps "date" and "year" to a SortOrder.
func ParseSortOrder(s string) (SortOrder, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "date", "added":
		return ByDateAdded, nil
	case "year":
		return ByYear, nil
	default:
		return ByDateAdded, fmt.Errorf("unknown sort order %q (want date or year)", s)
	}
}

// Watchlist is the user's movies with their ranking and deletions applied.
// It is not safe for concurrent mutation.
type Watchlist struct {
	movies  []Movie // file order, deleted ones included
	byID    map[string]Movie
	ranked  []string
	deleted map[string]struct{}
	store   ListStore
}

// New builds a Watchlist from loaded movies and the lists saved in store.
func New(movies []Movie, store ListStore) (*Watchlist, error) {
	ranked, err := store.Strings(state.RankedKey)
	if err != nil {
		return nil, err
	}
	deletedIDs, err := store.Strings(state.DeletedKey)
	if err != nil {
		return nil, err
	}

	w := &Watchlist{
		movies:  movies,
		byID:    make(map[string]Movie, len(movies)),
		ranked:  ranked,
		deleted: make(map[string]struct{}, len(deletedIDs)),
		store:   store,
	}
	for _, m := range movies {
		if _, dup := w.byID[m.ID]; dup {
			slog.Warn("Duplicate watchlist entry", "id", m.ID, "title", m.Title)
			continue
		}
		w.byID[m.ID] = m
	}
	for _, id := range deletedIDs {
		w.deleted[id] = struct{}{}
	}
	return w, nil
}

// Len returns the number of visible (not deleted) movies.
func (w *Watchlist) Len() int {
	n := 0
	for _, m := range w.movies {
		if !w.IsDeleted(m.ID) {
			n++
		}
	}
	return n
}

// Lookup returns the visible movie with the given ID.
func (w *Watchlist) Lookup(id string) (Movie, bool) {
	m, ok := w.byID[id]
	if !ok || w.IsDeleted(id) {
		return Movie{}, false
	}
	return m, true
}

// Find resolves a movie by exact ID, or by case-insensitive title when unambiguous.
func (w *Watchlist) Find(ref string) (Movie, error) {
	if m, ok := w.Lookup(ref); ok {
		return m, nil
	}

	var matches []Movie
	for _, m := range w.visible() {
		if strings.EqualFold(m.Title, ref) {
			matches = append(matches, m)
		}
	}
	switch len(matches) {
	case 0:
		return Movie{}, fmt.Errorf("movie %q not found in watchlist", ref)
	case 1:
		return matches[0], nil
	default:
		return Movie{}, fmt.Errorf("title %q matches %d movies, use the Letterboxd URI", ref, len(matches))
	}
}

// All returns the visible movies in the requested order.
func (w *Watchlist) All(order SortOrder) []Movie {
	movies := w.visible()
	switch order {
	case ByYear:
		slices.SortStableFunc(movies, func(a, b Movie) int {
			return strings.Compare(b.Year, a.Year)
		})
	default:
		slices.Reverse(movies)
	}
	return movies
}

// Ranked returns the ranked movies in rank order. IDs without a visible movie are skipped.
func (w *Watchlist) Ranked() []Movie {
	movies := make([]Movie, 0, len(w.ranked))
	for _, id := range w.ranked {
		if m, ok := w.Lookup(id); ok {
			movies = append(movies, m)
		}
	}
	return movies
}

// RankedIDs returns a copy of the stored ranking.
func (w *Watchlist) RankedIDs() []string {
	return slices.Clone(w.ranked)
}

// Rank returns the zero-based position of id in the ranking.
func (w *Watchlist) Rank(id string) (int, bool) {
	i := slices.Index(w.ranked, id)
	return i, i >= 0
}

// IsRanked reports whether id is in the ranking.
func (w *Watchlist) IsRanked(id string) bool {
	return slices.Contains(w.ranked, id)
}

// IsDeleted reports whether id was deleted.
func (w *Watchlist) IsDeleted(id string) bool {
	_, ok := w.deleted[id]
	return ok
}

// TogglePriority appends id to the ranking, or removes it if already ranked.
// It returns whether the movie is ranked afterwards.
func (w *Watchlist) TogglePriority(id string) (bool, error) {
	if _, ok := w.Lookup(id); !ok {
		return false, fmt.Errorf("movie %q not found in watchlist", id)
	}

	if i := slices.Index(w.ranked, id); i >= 0 {
		w.ranked = slices.Delete(w.ranked, i, i+1)
		return false, w.saveRanked()
	}
	w.ranked = append(w.ranked, id)
	return true, w.saveRanked()
}

// Move moves the ranked movie at position from so it ends up at position to.
// Positions are zero-based indexes into the ranked view.
func (w *Watchlist) Move(from, to int) error {
	view := w.Ranked()
	if from < 0 || from >= len(view) || to < 0 || to >= len(view) {
		return fmt.Errorf("rank position out of range (have %d ranked movies)", len(view))
	}
	if from == to {
		return nil
	}

	ids := make([]string, len(view))
	for i, m := range view {
		ids[i] = m.ID
	}
	moved := ids[from]
	ids = slices.Delete(ids, from, from+1)
	ids = slices.Insert(ids, to, moved)

	w.ranked = ids
	return w.saveRanked()
}

// Delete hides the given movies and removes them from the ranking.
func (w *Watchlist) Delete(ids ...string) error {
	changedRanking := false
	for _, id := range ids {
		if _, ok := w.byID[id]; !ok {
			return fmt.Errorf("movie %q not found in watchlist", id)
		}
		w.deleted[id] = struct{}{}
		before := len(w.ranked)
		w.ranked = slices.DeleteFunc(w.ranked, func(r string) bool { return r == id })
		changedRanking = changedRanking || len(w.ranked) != before
	}

	if err := w.saveDeleted(); err != nil {
		return err
	}
	if changedRanking {
		return w.saveRanked()
	}
	return nil
}

// Restore makes a deleted movie visible again. Its previous rank is not restored.
func (w *Watchlist) Restore(id string) error {
	if !w.IsDeleted(id) {
		return fmt.Errorf("movie %q is not deleted", id)
	}
	delete(w.deleted, id)
	return w.saveDeleted()
}

// DeletedIDs returns the deleted IDs in sorted order.
func (w *Watchlist) DeletedIDs() []string {
	ids := make([]string, 0, len(w.deleted))
	for id := range w.deleted {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

func (w *Watchlist) visible() []Movie {
	movies := make([]Movie, 0, len(w.movies))
	seen := make(map[string]struct{}, len(w.movies))
	for _, m := range w.movies {
		if w.IsDeleted(m.ID) {
			continue
		}
		if _, dup := seen[m.ID]; dup {
			continue
		}
		seen[m.ID] = struct{}{}
		movies = append(movies, m)
	}
	return movies
}

func (w *Watchlist) saveRanked() error {
	if err := w.store.SetStrings(state.RankedKey, w.ranked); err != nil {
		return fmt.Errorf("failed to save ranking: %w", err)
	}
	return nil
}

func (w *Watchlist) saveDeleted() error {
	if err := w.store.SetStrings(state.DeletedKey, w.DeletedIDs()); err != nil {
		return fmt.Errorf("failed to save deleted movies: %w", err)
	}
	return nil
}
