// Package http provides the HTTP client used to talk to the dictionary service.
//
// The Client in this package handles:
//   - User-Agent headers
//   - Query parameter encoding
//   - Raw byte downloads for audio clips
//   - Timeout handling
//
// # Basic Usage
//
//	client := http.NewClient()
//
//	// Fetch JSON
//	body, err := client.Get(ctx, endpoint, url.Values{"api_key": {key}})
//
//	// Download a clip
//	clip, err := client.DownloadBytes(ctx, fileURL)
//
// # Errors
//
// A non-200 answer is reported as a *StatusError, so callers can tell an
// unknown word (404) from a network failure with errors.As.
package http
