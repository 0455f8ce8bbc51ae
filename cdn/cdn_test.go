package cdn

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStaticURL(t *testing.T) {
	assert := assert.New(t)

	ref := NewImageRef(AssetGuildIcon, "1234567890", "a1b2c3")

	assert.Equal("https://cdn.discordapp.com/icons/1234567890/a1b2c3.png", ref.URL(nil))
	assert.Equal("https://cdn.discordapp.com/icons/1234567890/a1b2c3.png", ref.URL(&URLOpts{}))
	assert.Equal("https://cdn.discordapp.com/icons/1234567890/a1b2c3.webp?size=256", ref.URL(&URLOpts{Size: 256, Format: FormatWebP}))
	assert.Equal("https://cdn.discordapp.com/icons/1234567890/a1b2c3.jpg", ref.URL(&URLOpts{Format: FormatJPEG}))

	// identical inputs, identical output
	assert.Equal(ref.URL(&URLOpts{Size: 128}), ref.URL(&URLOpts{Size: 128}))

	avatar := NewImageRef(AssetUserAvatar, "42", "deadbeef")
	assert.Equal("https://cdn.discordapp.com/avatars/42/deadbeef.png", avatar.URL(nil))
}

func TestAnimatedURLProbe(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	var gotMethod string
	animatedExists := false
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		if animatedExists {
			w.WriteHeader(http.StatusOK)
			return
		}
		// the CDN answers a structured error body, not a bare 404
		w.WriteHeader(http.StatusUnsupportedMediaType)
		json.NewEncoder(w).Encode(map[string]any{"code": 10015, "message": "Unknown Resource"})
	}))
	defer srv.Close()

	ref := NewImageRef(AssetUserAvatar, "42", "a_deadbeef")
	ref.Host = srv.URL
	ref.Client = srv.Client()

	// probe failure: backup extension, default png
	u, err := ref.AnimatedURL(ctx, nil)
	assert.NoError(err)
	assert.Equal(srv.URL+"/avatars/42/a_deadbeef.png", u)
	assert.Equal(http.MethodHead, gotMethod)

	u, err = ref.AnimatedURL(ctx, &AnimatedURLOpts{Size: 64, Backup: FormatWebP})
	assert.NoError(err)
	assert.Equal(srv.URL+"/avatars/42/a_deadbeef.webp?size=64", u)

	// probe success: animated extension, GET permitted
	animatedExists = true
	u, err = ref.AnimatedURL(ctx, &AnimatedURLOpts{Size: 64, Method: http.MethodGet})
	assert.NoError(err)
	assert.Equal(srv.URL+"/avatars/42/a_deadbeef.gif?size=64", u)
	assert.Equal(http.MethodGet, gotMethod)
}

func TestAnimatedURLTransportFallback(t *testing.T) {
	assert := assert.New(t)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	ref := NewImageRef(AssetGuildIcon, "1", "h")
	ref.Host = srv.URL

	u, err := ref.AnimatedURL(context.Background(), nil)
	assert.NoError(err)
	assert.Equal(srv.URL+"/icons/1/h.png", u)

	// cancellation propagates instead of falling back
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = ref.AnimatedURL(ctx, nil)
	assert.ErrorIs(err, context.Canceled)
}

func TestImageRefJSON(t *testing.T) {
	assert := assert.New(t)

	b, err := json.Marshal(NewImageRef(AssetGuildSplash, "7", "s0"))
	assert.NoError(err)
	assert.Equal(`"https://cdn.discordapp.com/splashes/7/s0.png"`, string(b))
}
