package tmdb

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
)

// PosterURLs builds the small and large poster URLs for a poster path.
// Both are empty when posterPath is empty or the result is not a valid URL.
func (c *Client) PosterURLs(posterPath string) (small, large string) {
	if posterPath == "" {
		return "", ""
	}
	return joinImageURL(c.smallImageBaseURL, posterPath), joinImageURL(c.largeImageBaseURL, posterPath)
}

func joinImageURL(base, posterPath string) string {
	raw := base + posterPath
	if _, err := url.ParseRequestURI(raw); err != nil {
		return ""
	}
	return raw
}

// DownloadPoster downloads an image and resizes it to maxWidth before saving it as JPEG.
func (c *Client) DownloadPoster(ctx context.Context, imageURL, savePath string, maxWidth int) error {
	if maxWidth <= 0 {
		maxWidth = defaultMaxWidth
	}

	reqCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, imageURL, nil)
	if err != nil {
		return err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status %d downloading image", resp.StatusCode)
	}

	img, err := imaging.Decode(resp.Body, imaging.AutoOrientation(true))
	if err != nil {
		return err
	}

	if img.Bounds().Dx() > maxWidth {
		img = imaging.Resize(img, maxWidth, 0, imaging.Lanczos)
	}

	if err := os.MkdirAll(filepath.Dir(savePath), 0o755); err != nil {
		return err
	}

	return imaging.Save(img, savePath, imaging.JPEGQuality(85))
}
