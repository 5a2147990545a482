package openlibrary

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
)

// CoverURL returns the large cover image URL for an ISBN.
func (c *Client) CoverURL(isbn string) string {
	return fmt.Sprintf("%s/b/isbn/%s-L.jpg", c.coversBaseURL, url.PathEscape(isbn))
}

// FetchCover downloads the large cover for an ISBN. A missing cover is an
// expected outcome: it is logged and reported as false, never as an error.
func (c *Client) FetchCover(ctx context.Context, isbn string) ([]byte, bool) {
	coverURL := c.CoverURL(isbn)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, coverURL, nil)
	if err != nil {
		slog.Warn("Failed to create cover request", "isbn", isbn, "error", err)
		return nil, false
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		slog.Warn("Failed to download cover", "isbn", isbn, "error", err)
		return nil, false
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		slog.Warn("Cover request failed", "isbn", isbn, "status", resp.StatusCode)
		return nil, false
	}

	contentType := resp.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		slog.Warn("Cover response is not an image", "isbn", isbn, "content_type", contentType)
		return nil, false
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		slog.Warn("Failed to read cover", "isbn", isbn, "error", err)
		return nil, false
	}
	if len(data) == 0 {
		slog.Warn("Cover response is empty", "isbn", isbn)
		return nil, false
	}

	slog.Debug("Downloaded cover", "isbn", isbn, "bytes", len(data), "content_type", contentType)
	return data, true
}
