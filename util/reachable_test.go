package util

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestURLReachable(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/missing" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	assert.True(URLReachable(ctx, srv.Client(), srv.URL+"/ok"))
	assert.False(URLReachable(ctx, srv.Client(), srv.URL+"/missing"))

	// connection errors report false, they don't propagate
	srv.Close()
	assert.False(URLReachable(ctx, nil, srv.URL+"/ok"))
}
