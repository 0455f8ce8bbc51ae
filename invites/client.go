package invites

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/guildpeek/guildpeek/api/discordv9"
	"github.com/guildpeek/guildpeek/util"

	"github.com/carlmjohnson/versioninfo"
	"github.com/google/go-querystring/query"
)

// DefaultHost is the structured-data API host, separate from the CDN.
const DefaultHost = "https://discord.com/api"

// APIVersion selects which schema/transform pair a Client speaks. The zero
// value always tracks the newest supported version.
type APIVersion int

const (
	VersionLatest APIVersion = iota
	Version9
)

func (v APIVersion) pathSegment() (string, error) {
	switch v {
	case VersionLatest, Version9:
		return discordv9.Version, nil
	default:
		return "", fmt.Errorf("unsupported API version: %d", v)
	}
}

type lookupParams struct {
	WithCounts     bool `url:"with_counts"`
	WithExpiration bool `url:"with_expiration"`
}

// Client fetches invite metadata. The zero value is usable; all fields are
// optional overrides. Clients hold no per-call state, so concurrent
// FetchInvite calls are independent.
type Client struct {
	// Client is the HTTP client to use. If not set, defaults to
	// util.NewHTTPClient(), which does not retry.
	Client    *http.Client
	Host      string
	UserAgent *string
	Version   APIVersion
}

func (c *Client) getClient() *http.Client {
	if c.Client == nil {
		return util.NewHTTPClient()
	}
	return c.Client
}

func (c *Client) getHost() string {
	if c.Host == "" {
		return DefaultHost
	}
	return c.Host
}

// FetchInvite resolves one invite code into a fully-populated snapshot: a
// single GET against the invite-lookup endpoint, the version's validation
// gate, then the transform. Every failure is fatal to the call; there is no
// partial result and no retry. Cancellation and timeouts are the caller's,
// applied through ctx.
func (c *Client) FetchInvite(ctx context.Context, code string) (*Invite, error) {
	seg, err := c.Version.pathSegment()
	if err != nil {
		return nil, err
	}

	params, _ := query.Values(lookupParams{WithCounts: true, WithExpiration: true})
	uri := fmt.Sprintf("%s/%s/invites/%s?%s", c.getHost(), seg, url.PathEscape(code), params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	if c.UserAgent != nil {
		req.Header.Set("User-Agent", *c.UserAgent)
	} else {
		req.Header.Set("User-Agent", "guildpeek/"+versioninfo.Short())
	}

	resp, err := c.getClient().Do(req)
	if err != nil {
		return nil, &TransportError{Wrapped: err}
	}
	defer resp.Body.Close()

	// status gate comes before any decoding
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &TransportError{StatusCode: resp.StatusCode, Status: resp.Status}
	}

	var raw discordv9.InviteResponse
	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return nil, &DecodeError{Wrapped: err}
	}
	if err := raw.Validate(); err != nil {
		return nil, err
	}

	return transformV9(&raw)
}
