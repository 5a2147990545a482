package openlibrary

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/lepinkainen/bookcover/internal/errors"
)

// Search queries the Open Library search API and returns normalized records
// in the order the API returned them. A limit <= 0 uses DefaultLimit.
func (c *Client) Search(ctx context.Context, query string, limit int) ([]Record, error) {
	return SearchAs(ctx, c, query, limit, func(r Record) Record { return r })
}

// SearchAs runs Search and builds each result with build, so callers can
// collect their own record type without converting afterwards.
func SearchAs[T any](ctx context.Context, c *Client, query string, limit int, build func(Record) T) ([]T, error) {
	docs, err := c.searchDocs(ctx, query, limit)
	if err != nil {
		return nil, err
	}

	results := make([]T, 0, len(docs))
	for _, doc := range docs {
		record := newRecord(doc)
		slog.Info(record.String())
		results = append(results, build(record))
	}
	return results, nil
}

func (c *Client) searchDocs(ctx context.Context, query string, limit int) ([]searchDoc, error) {
	if limit <= 0 {
		limit = DefaultLimit
	}

	params := url.Values{}
	params.Set("q", query)
	params.Set("limit", strconv.Itoa(limit))
	endpoint := c.baseURL + "/search.json?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.NewTransportError("search", endpoint, err)
	}

	slog.Debug("Searching Open Library", "query", query, "limit", limit)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.NewTransportError("search", endpoint, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errors.NewStatusError("search", endpoint, resp.StatusCode)
	}

	var result searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, errors.NewParseError("search", err)
	}

	return result.Docs, nil
}

func newRecord(doc searchDoc) Record {
	isbns := doc.ISBN
	if len(isbns) == 0 {
		isbns = isbnsFromIA(doc.IA)
	}

	joined := strings.Join(isbns, ", ")
	if len(isbns) == 0 {
		joined = NoISBN
	}

	return Record{
		Title:  doc.Title,
		Author: strings.Join(doc.AuthorName, ", "),
		Year:   doc.FirstPublishYear,
		ISBNs:  joined,
	}
}

// isbnsFromIA recovers ISBNs from "isbn_"-prefixed archive identifiers.
func isbnsFromIA(ia []string) []string {
	var isbns []string
	for _, id := range ia {
		if isbn, ok := strings.CutPrefix(id, iaISBNPrefix); ok {
			isbns = append(isbns, isbn)
		}
	}
	return isbns
}
