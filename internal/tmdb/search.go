package tmdb

import (
	"context"
	"fmt"
	"net/url"
)

// SearchMovie performs a movie search on TMDB and returns the first result.
// year must already be digits only; it is omitted from the query when empty.
// Returns (nil, nil) when TMDB has no match.
func (c *Client) SearchMovie(ctx context.Context, title, year, language string) (*Match, error) {
	params := url.Values{}
	params.Set("api_key", c.apiKey)
	params.Set("query", title)
	if year != "" {
		params.Set("year", year)
	}
	if language != "" {
		params.Set("language", language)
	}

	endpoint := fmt.Sprintf("%s/search/movie?%s", c.baseURL, params.Encode())

	var response struct {
		Results []struct {
			ID          int    `json:"id"`
			Title       string `json:"title"`
			PosterPath  string `json:"poster_path"`
			ReleaseDate string `json:"release_date"`
		} `json:"results"`
	}

	if err := c.getJSON(ctx, endpoint, &response); err != nil {
		return nil, fmt.Errorf("search %q: %w", title, err)
	}

	if len(response.Results) == 0 {
		return nil, nil
	}

	first := response.Results[0]
	return &Match{
		ID:          first.ID,
		Title:       first.Title,
		PosterPath:  first.PosterPath,
		ReleaseDate: first.ReleaseDate,
	}, nil
}
