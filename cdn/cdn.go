package cdn

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/guildpeek/guildpeek/util"

	"github.com/google/go-querystring/query"
)

// DefaultHost is the public content host serving guild and user imagery.
// It is separate from the API host serving structured invite data.
const DefaultHost = "https://cdn.discordapp.com"

// AssetKind is the CDN path segment for a category of image resource.
type AssetKind string

const (
	AssetUserAvatar AssetKind = "avatars"
	AssetUserBanner AssetKind = "banners"
	AssetGuildIcon  AssetKind = "icons"
	// Guild banners are served from the splash slot.
	AssetGuildSplash AssetKind = "splashes"
)

// Format is a file extension the CDN can serve an asset in.
type Format string

const (
	FormatPNG  Format = "png"
	FormatJPEG Format = "jpg"
	FormatWebP Format = "webp"
	FormatGIF  Format = "gif"
)

// DefaultFormat is used when a caller doesn't request an extension.
const DefaultFormat = FormatPNG

// URLOpts are the per-call knobs for URL. The zero value (or nil) requests
// the default static format with no size parameter.
type URLOpts struct {
	// Size requests a specific pixel size via the ?size= query parameter.
	// Zero means no size parameter.
	Size int `url:"size,omitempty"`
	// Format overrides the file extension. Empty means DefaultFormat.
	Format Format `url:"-"`
}

// AnimatedURLOpts are the per-call knobs for AnimatedURL.
type AnimatedURLOpts struct {
	// Size requests a specific pixel size, as in URLOpts.
	Size int
	// Backup is the extension used when the animated variant does not
	// exist. Empty means DefaultFormat.
	Backup Format
	// Method is the HTTP method for the existence probe. Empty means HEAD;
	// GET is also permitted.
	Method string
}

// ImageRef locates one uploaded image asset: a category, the id of the
// entity that owns it, and the opaque hash identifying the upload. It is a
// capability for building URLs, not a claim that the asset exists
// server-side.
//
// An ImageRef is only ever constructed from a non-empty hash; slots with no
// hash are represented as a nil *ImageRef in the parent struct.
type ImageRef struct {
	Kind    AssetKind
	OwnerID string
	Hash    string

	// Host overrides the CDN base URL. Empty means DefaultHost.
	Host string
	// Client is used for animated-variant probes. Nil means a default
	// client from util.NewHTTPClient.
	Client *http.Client
}

func NewImageRef(kind AssetKind, ownerID string, hash string) *ImageRef {
	return &ImageRef{
		Kind:    kind,
		OwnerID: ownerID,
		Hash:    hash,
	}
}

func (r *ImageRef) host() string {
	if r.Host != "" {
		return r.Host
	}
	return DefaultHost
}

func (r *ImageRef) httpClient() *http.Client {
	if r.Client != nil {
		return r.Client
	}
	return util.NewHTTPClient()
}

// URL builds the canonical URL for this asset. Pure string construction:
// identical inputs always yield identical output, and no check is made that
// the hash actually exists on the CDN.
func (r *ImageRef) URL(opts *URLOpts) string {
	if opts == nil {
		opts = &URLOpts{}
	}
	format := opts.Format
	if format == "" {
		format = DefaultFormat
	}
	u := fmt.Sprintf("%s/%s/%s/%s.%s", r.host(), r.Kind, r.OwnerID, r.Hash, format)
	params, _ := query.Values(opts)
	if enc := params.Encode(); enc != "" {
		u += "?" + enc
	}
	return u
}

// AnimatedURL builds the animated (gif) variant URL, issues a live existence
// probe against it, and returns it if the probe answers 2xx. Any other
// status falls back to the backup-extension URL: the CDN answers a
// structured error body (not always a clean 404) when an asset doesn't
// support a format, so the body is never parsed and the status class alone
// decides.
//
// A transport-level probe failure also falls back silently, the same as
// "variant absent". The exception is cancellation: if ctx was canceled the
// ctx error propagates so caller-side timeout handling composes.
func (r *ImageRef) AnimatedURL(ctx context.Context, opts *AnimatedURLOpts) (string, error) {
	if opts == nil {
		opts = &AnimatedURLOpts{}
	}
	backup := opts.Backup
	if backup == "" {
		backup = DefaultFormat
	}
	method := opts.Method
	if method == "" {
		method = http.MethodHead
	}

	animated := r.URL(&URLOpts{Size: opts.Size, Format: FormatGIF})

	req, err := http.NewRequestWithContext(ctx, method, animated, nil)
	if err != nil {
		return "", err
	}
	resp, err := r.httpClient().Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", ctx.Err()
		}
		return r.URL(&URLOpts{Size: opts.Size, Format: backup}), nil
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return animated, nil
	}
	return r.URL(&URLOpts{Size: opts.Size, Format: backup}), nil
}

func (r *ImageRef) String() string {
	return r.URL(nil)
}

// MarshalJSON renders the default static URL, so domain snapshots serialize
// to something a dashboard can use directly.
func (r *ImageRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.URL(nil))
}
