// Package notify sends best-effort push notifications through Pushover.
package notify

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/lepinkainen/bookcover/internal/config"
)

// HTTPDoer is an interface for making HTTP requests.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Pushover posts messages to the Pushover messages endpoint.
type Pushover struct {
	url         string
	credentials config.Credentials
	httpClient  HTTPDoer
}

// NewPushover creates a notifier for the given endpoint. An empty endpoint
// uses config.DefaultPushoverURL and a nil client uses a 10 second timeout.
func NewPushover(endpoint string, creds config.Credentials, client HTTPDoer) *Pushover {
	if endpoint == "" {
		endpoint = config.DefaultPushoverURL
	}
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	return &Pushover{
		url:         endpoint,
		credentials: creds,
		httpClient:  client,
	}
}

// Notify sends message as a push notification. The response is not
// inspected and failures are only logged at debug level.
func (p *Pushover) Notify(ctx context.Context, message string) {
	form := url.Values{}
	form.Set("user", p.credentials.User)
	form.Set("token", p.credentials.Token)
	form.Set("message", message)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.url, strings.NewReader(form.Encode()))
	if err != nil {
		slog.Debug("Failed to create notification request", "error", err)
		return
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		slog.Debug("Notification request failed", "error", err)
		return
	}
	_ = resp.Body.Close()
}
