package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// DefaultTimeout bounds every request made by a Client.
const DefaultTimeout = 30 * time.Second

// Client wraps HTTP operations with define-specific configuration.
//
// Client provides:
//   - Configured User-Agent header
//   - Timeout handling
//   - GET requests with query parameters
//   - Raw byte downloads for audio clips
//
// Example usage:
//
//	client := NewClient()
//
//	// Fetch a JSON payload
//	body, err := client.Get(ctx, "https://api.wordnik.com/v4/word.json/cat/definitions",
//	    url.Values{"api_key": {key}, "limit": {"5"}})
//
//	// Download an audio clip
//	clip, err := client.DownloadBytes(ctx, fileURL)
type Client struct {
	httpClient *http.Client
	userAgent  string
}

// NewClient creates a new HTTP client.
//
// The client is configured with:
//   - 30 second timeout
//   - "define" User-Agent header
func NewClient() *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		userAgent: "define",
	}
}

// StatusError is returned when the server answers with a non-200 status.
type StatusError struct {
	Code   int
	Status string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.Code, e.Status)
}

// Get performs a GET request and returns the response body as bytes.
//
// query is merged into any parameters already present in rawURL; pass nil
// to send rawURL unchanged. The request includes the configured
// User-Agent header.
//
// Returns an error if:
//   - rawURL cannot be parsed
//   - The request fails
//   - The response status is not 200 OK (as a *StatusError)
//   - Reading the body fails
//
// Example:
//
//	data, err := client.Get(ctx, base+"/cat/pronunciations", url.Values{"limit": {"1"}})
func (c *Client) Get(ctx context.Context, rawURL string, query url.Values) ([]byte, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return nil, err
	}
	if len(query) > 0 {
		q := u.Query()
		for k, vs := range query {
			for _, v := range vs {
				q.Add(k, v)
			}
		}
		u.RawQuery = q.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{Code: resp.StatusCode, Status: resp.Status}
	}

	return io.ReadAll(resp.Body)
}

// DownloadBytes downloads a file and returns the bytes in memory.
//
// Pronunciation clips are a few kilobytes, so there is no need to stream
// them to disk.
//
// Example:
//
//	clip, err := client.DownloadBytes(ctx, fileURL)
func (c *Client) DownloadBytes(ctx context.Context, rawURL string) ([]byte, error) {
	return c.Get(ctx, rawURL, nil)
}
