// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil provides HTTP helpers shared across stages.
package httputil

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// RetryBaseDelay controls the base duration for exponential backoff on
// HTTP 429 responses. Tests override this to avoid real sleeps.
var RetryBaseDelay = 10 * time.Second

// Get issues a GET for rawURL with the given User-Agent. When maxRetries
// is zero exactly one attempt is made; per-DOI failures stay final for the
// run unless the caller opted into retries.
//
// With maxRetries > 0 an HTTP 429 is retried with exponential backoff
// starting at RetryBaseDelay (10 s, 20 s, 40 s, ...). The 429 body is
// drained and closed before sleeping. A cancelled context during a backoff
// wait returns ctx.Err(). After exhausting retries the last 429 response is
// returned so the caller can classify it.
func Get(ctx context.Context, client *http.Client, rawURL, userAgent string, maxRetries int) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if userAgent != "" {
		req.Header.Set("User-Agent", userAgent)
	}

	for attempt := 0; ; attempt++ {
		resp, err := client.Do(req.Clone(ctx))
		if err != nil {
			return nil, err
		}

		if resp.StatusCode != http.StatusTooManyRequests || attempt >= maxRetries {
			return resp, nil
		}

		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()

		backoff := RetryBaseDelay << attempt
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(backoff):
		}
	}
}
