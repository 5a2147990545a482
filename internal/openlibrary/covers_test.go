package openlibrary

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoverURL(t *testing.T) {
	client := NewClient()
	assert.Equal(t, "https://covers.openlibrary.org/b/isbn/9780316346627-L.jpg", client.CoverURL("9780316346627"))

	custom := NewClient(WithCoversBaseURL("http://covers.test/"))
	assert.Equal(t, "http://covers.test/b/isbn/123-L.jpg", custom.CoverURL("123"))
}

func TestFetchCover(t *testing.T) {
	imageBytes := []byte{0xff, 0xd8, 0xff, 0xe0, 0x00, 0x10, 'J', 'F', 'I', 'F'}

	testCases := []struct {
		name        string
		status      int
		contentType string
		body        []byte
		expected    []byte
		found       bool
	}{
		{
			name:        "image response",
			status:      http.StatusOK,
			contentType: "image/jpeg",
			body:        imageBytes,
			expected:    imageBytes,
			found:       true,
		},
		{
			name:        "not found",
			status:      http.StatusNotFound,
			contentType: "text/html",
			body:        []byte("not found"),
		},
		{
			name:        "empty body",
			status:      http.StatusOK,
			contentType: "image/jpeg",
		},
		{
			name:        "html body",
			status:      http.StatusOK,
			contentType: "text/html",
			body:        []byte("<html></html>"),
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var gotPath string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotPath = r.URL.Path
				w.Header().Set("Content-Type", tc.contentType)
				w.WriteHeader(tc.status)
				_, _ = w.Write(tc.body)
			}))
			defer server.Close()

			client := NewClient(WithCoversBaseURL(server.URL), WithHTTPClient(server.Client()))

			data, ok := client.FetchCover(context.Background(), "9780316346627")
			assert.Equal(t, tc.found, ok)
			assert.Equal(t, tc.expected, data)
			assert.Equal(t, "/b/isbn/9780316346627-L.jpg", gotPath)
		})
	}
}

func TestFetchCoverTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := server.URL
	server.Close()

	client := NewClient(WithCoversBaseURL(baseURL))

	data, ok := client.FetchCover(context.Background(), "9780316346627")
	require.False(t, ok)
	assert.Nil(t, data)
}
