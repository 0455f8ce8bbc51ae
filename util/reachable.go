package util

import (
	"context"
	"net/http"
)

// URLReachable reports whether a HEAD request against the given URL answers
// with a 2xx status. Transport errors and non-success statuses both report
// false; this is a boolean availability check, not an error surface.
//
// If client is nil, a default client from NewHTTPClient is used.
func URLReachable(ctx context.Context, client *http.Client, rawURL string) bool {
	if client == nil {
		client = NewHTTPClient()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodHead, rawURL, nil)
	if err != nil {
		return false
	}
	resp, err := client.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode >= 200 && resp.StatusCode < 300
}
