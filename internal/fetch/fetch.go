// Copyright Geoffrey Challen, 2026. All rights reserved.

// Package fetch downloads a published Gray Book document to a local file so
// the parse stage can run against it offline.
package fetch

import (
	"context"
	"fmt"
	"io"
	"math"
	"net/http"
	"os"
	"path/filepath"
	"time"
)

// RetryBaseDelay controls the base duration for exponential backoff on
// HTTP 429 responses. Tests override this to avoid real sleeps.
var RetryBaseDelay = 10 * time.Second

const defaultMaxRetries = 5

// Options controls a download.
type Options struct {
	// UserAgent identifies the client; university servers reject blank
	// agents.
	UserAgent string

	// MaxRetries bounds the 429 backoff loop (default 5).
	MaxRetries int

	// Force re-downloads even when the destination file already exists.
	Force bool
}

// Document downloads url to destPath, writing per-item status to w. An
// existing destination is kept unless opts.Force is set. The download goes
// through a temporary file and is renamed on success, so a failed transfer
// never leaves a truncated document behind.
func Document(ctx context.Context, client *http.Client, url, destPath string, opts Options, w io.Writer) error {
	if !opts.Force {
		if _, err := os.Stat(destPath); err == nil {
			fmt.Fprintf(w, "skipped: %s (already exists)\n", destPath)
			return nil
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", opts.UserAgent)
	req.Header.Set("Accept",
		"text/html, application/vnd.openxmlformats-officedocument.wordprocessingml.document")

	fmt.Fprintf(w, "downloading: %s\n", url)

	resp, err := doWithRetry(ctx, client, req, opts.MaxRetries)
	if err != nil {
		return fmt.Errorf("HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d from %s", resp.StatusCode, url)
	}

	if err := writeAtomic(destPath, resp.Body); err != nil {
		return err
	}

	fmt.Fprintf(w, "saved: %s\n", destPath)
	return nil
}

// doWithRetry executes the request and retries on HTTP 429 (Too Many
// Requests) with exponential backoff starting at RetryBaseDelay. On each 429
// the response body is drained and closed before sleeping. After exhausting
// retries the last 429 response is returned so the caller can inspect it.
func doWithRetry(ctx context.Context, client *http.Client, req *http.Request, maxRetries int) (*http.Response, error) {
	if maxRetries <= 0 {
		maxRetries = defaultMaxRetries
	}

	for attempt := 0; ; attempt++ {
		resp, err := client.Do(req.Clone(ctx))
		if err != nil {
			return nil, err
		}

		if resp.StatusCode != http.StatusTooManyRequests {
			return resp, nil
		}
		if attempt >= maxRetries {
			return resp, nil
		}

		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()

		backoff := time.Duration(math.Pow(2, float64(attempt))) * RetryBaseDelay
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}
}

// writeAtomic streams r to a temporary file next to destPath and renames it
// into place on success.
func writeAtomic(destPath string, r io.Reader) error {
	if dir := filepath.Dir(destPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}

	tmpFile, err := os.CreateTemp(filepath.Dir(destPath), ".fetch-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	_, copyErr := io.Copy(tmpFile, r)
	closeErr := tmpFile.Close()
	if copyErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing download: %w", copyErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", closeErr)
	}

	if err := os.Rename(tmpPath, destPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
