package openlibrary

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lepinkainen/bookcover/internal/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSearchServer(t *testing.T, response any) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search.json" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(response))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestSearchNormalizesDocs(t *testing.T) {
	server := newSearchServer(t, map[string]any{
		"numFound": 3,
		"docs": []map[string]any{
			{
				"title":              "Along Came a Spider",
				"author_name":        []string{"James Patterson"},
				"first_publish_year": 1993,
				"isbn":               []string{"9780316346627"},
			},
			{
				"title":       "The Quickie",
				"author_name": []string{"James Patterson", "Michael Ledwidge"},
				"ia":          []string{"quickie00patt", "isbn_9780316117371", "isbn_0316117374"},
			},
			{},
		},
	})

	client := NewClient(WithBaseURL(server.URL), WithHTTPClient(server.Client()))
	records, err := client.Search(context.Background(), "books written by James Patterson", 3)
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, Record{
		Title:  "Along Came a Spider",
		Author: "James Patterson",
		Year:   1993,
		ISBNs:  "9780316346627",
	}, records[0])

	assert.Equal(t, "James Patterson, Michael Ledwidge", records[1].Author)
	assert.Equal(t, "9780316117371, 0316117374", records[1].ISBNs)
	assert.Equal(t, 0, records[1].Year)

	assert.Equal(t, Record{ISBNs: NoISBN}, records[2])
}

func TestSearchSendsQueryAndLimit(t *testing.T) {
	var gotQuery, gotLimit string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		gotLimit = r.URL.Query().Get("limit")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"docs":[]}`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL), WithHTTPClient(server.Client()))

	records, err := client.Search(context.Background(), "dune herbert", 0)
	require.NoError(t, err)
	assert.Empty(t, records)
	assert.Equal(t, "dune herbert", gotQuery)
	assert.Equal(t, "3", gotLimit)

	_, err = client.Search(context.Background(), "dune", 10)
	require.NoError(t, err)
	assert.Equal(t, "10", gotLimit)
}

func TestSearchStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("oops"))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL), WithHTTPClient(server.Client()))

	records, err := client.Search(context.Background(), "anything", 3)
	require.Error(t, err)
	assert.Nil(t, records)
	assert.True(t, errors.IsTransportError(err))
	assert.Contains(t, err.Error(), "unexpected status 500")
}

func TestSearchTransportError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := server.URL
	server.Close()

	client := NewClient(WithBaseURL(baseURL))

	_, err := client.Search(context.Background(), "anything", 3)
	require.Error(t, err)
	assert.True(t, errors.IsTransportError(err))
}

func TestSearchMalformedJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"docs": [`))
	}))
	defer server.Close()

	client := NewClient(WithBaseURL(server.URL), WithHTTPClient(server.Client()))

	_, err := client.Search(context.Background(), "anything", 3)
	require.Error(t, err)
	assert.True(t, errors.IsParseError(err))
	assert.False(t, errors.IsTransportError(err))
}

type shelfBook struct {
	Label string
}

func TestSearchAsBuildsCallerType(t *testing.T) {
	server := newSearchServer(t, map[string]any{
		"docs": []map[string]any{
			{"title": "Kiss the Girls", "first_publish_year": 1995},
			{"title": "Jack & Jill", "first_publish_year": 1996},
		},
	})

	client := NewClient(WithBaseURL(server.URL), WithHTTPClient(server.Client()))

	books, err := SearchAs(context.Background(), client, "patterson", 2, func(r Record) shelfBook {
		return shelfBook{Label: r.Title}
	})
	require.NoError(t, err)
	assert.Equal(t, []shelfBook{{Label: "Kiss the Girls"}, {Label: "Jack & Jill"}}, books)
}

func TestNewRecordPrefersISBNField(t *testing.T) {
	record := newRecord(searchDoc{
		ISBN: []string{"9780316346627"},
		IA:   []string{"isbn_1111111111"},
	})
	assert.Equal(t, "9780316346627", record.ISBNs)
}

func TestIsbnsFromIA(t *testing.T) {
	assert.Equal(t, []string{"123456789X"}, isbnsFromIA([]string{"foo", "isbn_123456789X", "isbnx"}))
	assert.Nil(t, isbnsFromIA(nil))
}

func TestRecordString(t *testing.T) {
	record := Record{Title: "Cross", Author: "James Patterson", Year: 2006, ISBNs: "0316159794"}
	assert.Equal(t, "Cross — James Patterson (2006) ISBN: 0316159794", record.String())
}
