package invites

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/guildpeek/guildpeek/api/discordv9"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixtureServer(t *testing.T, body []byte, status int) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/v9/invites/gophers", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("with_counts"))
		assert.Equal(t, "true", r.URL.Query().Get("with_expiration"))
		w.WriteHeader(status)
		w.Write(body)
	}))
}

func TestFetchInvite(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	body, err := os.ReadFile("testdata/invite.json")
	require.NoError(t, err)

	srv := fixtureServer(t, body, http.StatusOK)
	defer srv.Close()

	c := &Client{Client: srv.Client(), Host: srv.URL}
	inv, err := c.FetchInvite(ctx, "gophers")
	assert.NoError(err)
	assert.Equal("gophers", inv.Code)
	assert.Equal("Gopher Hideout", inv.Guild.Name)
	assert.GreaterOrEqual(inv.Guild.Members, inv.Guild.Onlines)
}

func TestFetchInviteTransportError(t *testing.T) {
	assert := assert.New(t)
	ctx := context.Background()

	// the body isn't even JSON; the status gate has to fire before decoding
	srv := fixtureServer(t, []byte("<html>not found</html>"), http.StatusNotFound)
	defer srv.Close()

	c := &Client{Client: srv.Client(), Host: srv.URL}
	_, err := c.FetchInvite(ctx, "gophers")
	var te *TransportError
	if assert.ErrorAs(err, &te) {
		assert.Equal(http.StatusNotFound, te.StatusCode)
		assert.Contains(te.Status, "404")
	}
}

func TestFetchInviteConnectionError(t *testing.T) {
	assert := assert.New(t)

	srv := fixtureServer(t, nil, http.StatusOK)
	srv.Close()

	c := &Client{Host: srv.URL}
	_, err := c.FetchInvite(context.Background(), "gophers")
	var te *TransportError
	assert.ErrorAs(err, &te)
}

func TestFetchInviteDecodeError(t *testing.T) {
	assert := assert.New(t)

	srv := fixtureServer(t, []byte("{not json"), http.StatusOK)
	defer srv.Close()

	c := &Client{Client: srv.Client(), Host: srv.URL}
	_, err := c.FetchInvite(context.Background(), "gophers")
	var de *DecodeError
	assert.ErrorAs(err, &de)
}

func TestFetchInviteValidationError(t *testing.T) {
	assert := assert.New(t)

	// decodes fine, but the guild block is missing
	srv := fixtureServer(t, []byte(`{"code": "gophers"}`), http.StatusOK)
	defer srv.Close()

	c := &Client{Client: srv.Client(), Host: srv.URL}
	inv, err := c.FetchInvite(context.Background(), "gophers")
	assert.Nil(inv)
	var ve *discordv9.ValidationError
	if assert.ErrorAs(err, &ve) {
		assert.Equal("guild", ve.Path)
	}
}

func TestFetchInviteVersionSelection(t *testing.T) {
	assert := assert.New(t)

	c := &Client{Version: APIVersion(99)}
	_, err := c.FetchInvite(context.Background(), "gophers")
	assert.Error(err)

	seg, err := VersionLatest.pathSegment()
	assert.NoError(err)
	assert.Equal("v9", seg)
	seg, err = Version9.pathSegment()
	assert.NoError(err)
	assert.Equal("v9", seg)
}
