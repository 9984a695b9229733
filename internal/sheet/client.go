// Package sheet talks to the spreadsheet-backed submission webhook.
//
// The remote store is treated as unreliable. FetchAll and Append never return
// errors; failures are logged and collapse to an empty list or false.
package sheet

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/julianstephens/culturepulse/internal/logger"
	"github.com/julianstephens/culturepulse/internal/models"
)

// ContentType is sent on POST. A plain text body keeps browsers and Apps Script
// from requiring a CORS preflight.
const ContentType = "text/plain;charset=utf-8"

var ErrNotConfigured = errors.New("sheet endpoint not configured")

type Client struct {
	endpoint   string
	httpClient *http.Client
}

type Option func(*Client)

// WithHTTPClient replaces the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

func New(endpoint string, opts ...Option) *Client {
	c := &Client{
		endpoint:   strings.TrimSpace(endpoint),
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Configured reports whether an endpoint is set.
func (c *Client) Configured() bool {
	return c.endpoint != ""
}

func (c *Client) Endpoint() string {
	return c.endpoint
}

// FetchAll returns every submission held by the remote store, in the order the
// store returned them. Any failure yields an empty, non-nil slice.
func (c *Client) FetchAll(ctx context.Context) []models.Submission {
	if !c.Configured() {
		logger.Warn("Sheet endpoint is not set, skipping fetch")
		return []models.Submission{}
	}

	subs, err := c.fetch(ctx)
	if err != nil {
		logger.Error("Error fetching submissions", "err", err)
		return []models.Submission{}
	}
	logger.Debug("Fetched submissions", "count", len(subs))
	return subs
}

// Append posts one submission. The response status alone decides success.
// Without an endpoint the write is simulated and reported as successful.
func (c *Client) Append(ctx context.Context, sub models.Submission) bool {
	if !c.Configured() {
		logger.Warn("Sheet endpoint is not set, submission will not be saved", "id", sub.ID)
		return true
	}

	if err := c.post(ctx, sub); err != nil {
		logger.Error("Error posting submission", "id", sub.ID, "err", err)
		return false
	}
	logger.Debug("Posted submission", "id", sub.ID)
	return true
}

// Probe performs a GET and reports the error FetchAll would have swallowed.
func (c *Client) Probe(ctx context.Context) error {
	if !c.Configured() {
		return ErrNotConfigured
	}
	_, err := c.fetch(ctx)
	return err
}

func (c *Client) fetch(ctx context.Context) ([]models.Submission, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if !ok(resp.StatusCode) {
		return nil, fmt.Errorf("unexpected status: %s", resp.Status)
	}

	var subs []models.Submission
	if err := json.NewDecoder(resp.Body).Decode(&subs); err != nil {
		return nil, fmt.Errorf("failed to decode submissions: %w", err)
	}
	if subs == nil {
		subs = []models.Submission{}
	}
	return subs, nil
}

func (c *Client) post(ctx context.Context, sub models.Submission) error {
	body, err := json.Marshal(sub)
	if err != nil {
		return fmt.Errorf("failed to encode submission: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", ContentType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if !ok(resp.StatusCode) {
		return fmt.Errorf("unexpected status: %s", resp.Status)
	}
	return nil
}

func ok(status int) bool {
	return status >= 200 && status < 300
}
