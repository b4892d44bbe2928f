package watchlist

import "math/rand/v2"

// PickSource selects which movies a random pick draws from.
type PickSource int

const (
	// FromAll draws from every visible movie.
	FromAll PickSource = iota
	// FromRanked draws from the ranked movies only.
	FromRanked
)

// Pick returns a random movie from source. intn must return a value in [0, n);
// nil uses math/rand/v2. ok is false when the source is empty.
func (w *Watchlist) Pick(source PickSource, intn func(n int) int) (Movie, bool) {
	if intn == nil {
		intn = rand.IntN
	}

	var candidates []Movie
	switch source {
	case FromRanked:
		candidates = w.Ranked()
	default:
		candidates = w.visible()
	}

	if len(candidates) == 0 {
		return Movie{}, false
	}
	return candidates[intn(len(candidates))], true
}
