package tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/url"
)

// MovieDetail fetches the overview and director of a movie in the given language.
// Credits are embedded in the same call via append_to_response.
//
// A malformed credits block does not discard the overview: the director is
// left empty and the problem is logged.
func (c *Client) MovieDetail(ctx context.Context, movieID int, language string) (*Detail, error) {
	params := url.Values{}
	params.Set("api_key", c.apiKey)
	if language != "" {
		params.Set("language", language)
	}
	params.Set("append_to_response", "credits")

	endpoint := fmt.Sprintf("%s/movie/%d?%s", c.baseURL, movieID, params.Encode())

	var response struct {
		Overview *string         `json:"overview"`
		Credits  json.RawMessage `json:"credits"`
	}
	if err := c.getJSON(ctx, endpoint, &response); err != nil {
		return nil, fmt.Errorf("movie %d (%s): %w", movieID, language, err)
	}

	detail := &Detail{}
	if response.Overview != nil {
		detail.Overview = *response.Overview
	}

	if len(response.Credits) > 0 && string(response.Credits) != "null" {
		var credits struct {
			Crew []crewMember `json:"crew"`
		}
		if err := json.Unmarshal(response.Credits, &credits); err != nil {
			slog.Warn("Ignoring malformed TMDB credits", "tmdb_id", movieID, "language", language, "error", err)
		} else {
			detail.Director = firstDirector(credits.Crew)
		}
	}

	return detail, nil
}
