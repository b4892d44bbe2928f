package tmdb

// DirectorJob is the crew job that identifies a film's director.
const DirectorJob = "Director"

// Match is the first catalog entry returned by a movie search.
type Match struct {
	ID          int
	Title       string
	PosterPath  string
	ReleaseDate string
}

// Detail holds the localized text of a movie in one language.
type Detail struct {
	Overview string
	Director string
}

// crewMember is one entry of credits.crew.
type crewMember struct {
	Job  string `json:"job"`
	Name string `json:"name"`
}

func firstDirector(crew []crewMember) string {
	for _, member := range crew {
		if member.Job == DirectorJob {
			return member.Name
		}
	}
	return ""
}
