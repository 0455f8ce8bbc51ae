package invites

import (
	"encoding/json"
	"time"

	"github.com/guildpeek/guildpeek/cdn"
)

// Invite is the fully-resolved lookup result. Everything here is a
// point-in-time snapshot: constructed fresh per call, never mutated or
// cached by this library.
type Invite struct {
	// Code is the invite identifier as supplied by the caller.
	Code string `json:"code"`
	// ExpiresAt is nil when the invite never expires.
	ExpiresAt *time.Time `json:"expiresAt"`
	Guild     Guild      `json:"guild"`
	Channel   Channel    `json:"channel"`
	// Inviter is nil when the invite has no identifiable creator (vanity
	// URLs, for example).
	Inviter *Inviter `json:"inviter"`
}

// Guild is a read-only snapshot of the community behind an invite. Count
// fields are snapshot values with no freshness guarantee beyond the moment
// of the call.
type Guild struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description"`

	Members int64 `json:"members"`
	Onlines int64 `json:"onlines"`

	// Icon is always present on a transformed snapshot; Banner is nil when
	// the guild has no splash configured.
	Icon   *cdn.ImageRef `json:"icon"`
	Banner *cdn.ImageRef `json:"banner"`

	Features                 []string `json:"features"`
	VerificationLevel        int64    `json:"verificationLevel"`
	NSFWLevel                int64    `json:"nsfwLevel"`
	NSFW                     bool     `json:"nsfw"`
	PremiumTier              int64    `json:"premiumTier"`
	PremiumSubscriptionCount int64    `json:"premiumSubscriptionCount"`
	VanityURL                *string  `json:"vanityUrl"`

	Tag                 *string `json:"tag"`
	Badge               int64   `json:"badge"`
	BadgeColorPrimary   string  `json:"badgeColorPrimary"`
	BadgeColorSecondary string  `json:"badgeColorSecondary"`
	BadgeHash           *string `json:"badgeHash"`

	// Traits passes through unvalidated; its shape is owned by upstream.
	Traits []json.RawMessage `json:"traits"`
	// Visibility is a numeric enum whose meaning is owned by upstream.
	Visibility int64 `json:"visibility"`
}

// Channel is the minimal descriptor of the channel an invite targets.
type Channel struct {
	ID   string `json:"id"`
	Type int64  `json:"type"`
	Name string `json:"name"`
}

// Inviter is a snapshot of the user who generated the invite.
type Inviter struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	// GlobalName is normalized to the empty string when upstream sends
	// null, unlike the other nullable string fields. Callers always get a
	// string here.
	GlobalName    string `json:"globalName"`
	Discriminator string `json:"discriminator"`

	Flags       int64   `json:"flags"`
	PublicFlags int64   `json:"publicFlags"`
	AccentColor *int64  `json:"accentColor"`
	BannerColor *string `json:"bannerColor"`

	// Avatar is always present; Banner is nil when the user has no banner.
	Avatar *cdn.ImageRef `json:"avatar"`
	Banner *cdn.ImageRef `json:"banner"`
}
