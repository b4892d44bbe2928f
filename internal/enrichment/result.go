package enrichment

// Result is the enrichment attached to a watchlist entry.
// Empty fields mean the value is not available.
type Result struct {
	SmallPosterURL string `json:"small_poster_url,omitempty" yaml:"small_poster_url,omitempty"`
	LargePosterURL string `json:"large_poster_url,omitempty" yaml:"large_poster_url,omitempty"`
	Overview       string `json:"overview,omitempty" yaml:"overview,omitempty"`
	Director       string `json:"director,omitempty" yaml:"director,omitempty"`
}

// Status is the outcome of a lookup.
type Status int

const (
	// StatusFailed means the catalog could not be reached or answered garbage.
	StatusFailed Status = iota
	// StatusNotFound means the catalog answered but had no match.
	StatusNotFound
	// StatusFound means a Result is available.
	StatusFound
)

func (s Status) String() string {
	switch s {
	case StatusFound:
		return "found"
	case StatusNotFound:
		return "not_found"
	default:
		return "failed"
	}
}
