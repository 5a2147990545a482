// Package openlibrary provides a client for the Open Library search and covers APIs.
package openlibrary

import (
	"net/http"
	"strings"
	"time"
)

const (
	defaultBaseURL       = "https://openlibrary.org"
	defaultCoversBaseURL = "https://covers.openlibrary.org"
	// DefaultLimit is the number of search results requested when the caller gives none.
	DefaultLimit = 3
)

// HTTPDoer is an interface for making HTTP requests.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client is an Open Library API client.
type Client struct {
	baseURL       string
	coversBaseURL string
	httpClient    HTTPDoer
}

// NewClient creates a new Open Library API client.
func NewClient(opts ...Option) *Client {
	client := &Client{
		baseURL:       defaultBaseURL,
		coversBaseURL: defaultCoversBaseURL,
		httpClient:    &http.Client{Timeout: 30 * time.Second},
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Option is a functional option for configuring the Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c HTTPDoer) Option {
	return func(client *Client) {
		if c != nil {
			client.httpClient = c
		}
	}
}

// WithBaseURL sets a custom base URL for the search API.
func WithBaseURL(base string) Option {
	return func(client *Client) {
		if base != "" {
			client.baseURL = strings.TrimSuffix(base, "/")
		}
	}
}

// WithCoversBaseURL sets a custom base URL for cover images.
func WithCoversBaseURL(base string) Option {
	return func(client *Client) {
		if base != "" {
			client.coversBaseURL = strings.TrimSuffix(base, "/")
		}
	}
}
