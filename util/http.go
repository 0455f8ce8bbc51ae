package util

import (
	"net/http"
	"time"

	"github.com/hashicorp/go-cleanhttp"
)

// Generates an HTTP client with decent general-purpose defaults around
// timeouts and connection pooling. The returned client deliberately does
// NOT retry: a failed invite lookup or asset probe is surfaced to the
// caller immediately.
//
// This should be usable for the invite API client and CDN probing alike.
// CLI tools might want shorter timeouts by default.
func NewHTTPClient() *http.Client {
	client := cleanhttp.DefaultPooledClient()
	client.Timeout = 20 * time.Second
	return client
}
