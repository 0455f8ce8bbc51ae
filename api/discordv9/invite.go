package discordv9

import "encoding/json"

// schema: v9 invite lookup response (with_counts, with_expiration)

// Version is the protocol version this package's schema describes.
const Version = "v9"

// InviteResponse is the raw upstream payload for one invite lookup.
//
// Required fields are still declared as pointers so that Validate can tell
// "absent or null" apart from a zero value; callers should only touch a
// response that Validate has accepted. Unknown extra fields are ignored for
// forward compatibility. Fields whose inner shape isn't documented upstream
// are carried as json.RawMessage and checked for presence only.
type InviteResponse struct {
	Code      *string       `json:"code"`
	ExpiresAt *string       `json:"expires_at"`
	Guild     *Guild        `json:"guild"`
	Channel   *Channel      `json:"channel"`
	Inviter   *User         `json:"inviter"`
	Profile   *GuildProfile `json:"profile"`

	// duplicated from the profile block; kept for shape completeness
	ApproximateMemberCount   *int64 `json:"approximate_member_count"`
	ApproximatePresenceCount *int64 `json:"approximate_presence_count"`
}

type Guild struct {
	ID          *string `json:"id"`
	Name        *string `json:"name"`
	Description *string `json:"description"`

	// Icon is required: any guild reachable through an invite carries an
	// icon hash. Splash and Banner are nullable.
	Icon   *string `json:"icon"`
	Splash *string `json:"splash"`
	Banner *string `json:"banner"`

	Features                 []string `json:"features"`
	VerificationLevel        *int64   `json:"verification_level"`
	VanityURLCode            *string  `json:"vanity_url_code"`
	NSFWLevel                *int64   `json:"nsfw_level"`
	NSFW                     *bool    `json:"nsfw"`
	PremiumSubscriptionCount *int64   `json:"premium_subscription_count"`
}

// GuildProfile is the secondary upstream block carrying counts and badge/tag
// metadata. It is flattened into the public guild snapshot downstream.
type GuildProfile struct {
	ID   *string `json:"id"`
	Name *string `json:"name"`

	MemberCount *int64 `json:"member_count"`
	OnlineCount *int64 `json:"online_count"`

	Tag                 *string `json:"tag"`
	Badge               *int64  `json:"badge"`
	BadgeColorPrimary   *string `json:"badge_color_primary"`
	BadgeColorSecondary *string `json:"badge_color_secondary"`
	BadgeHash           *string `json:"badge_hash"`

	Visibility               *int64 `json:"visibility"`
	PremiumTier              *int64 `json:"premium_tier"`
	PremiumSubscriptionCount *int64 `json:"premium_subscription_count"`

	// schema-unvalidated pass-through
	Traits       []json.RawMessage `json:"traits"`
	GameActivity json.RawMessage   `json:"game_activity"`
}

type Channel struct {
	ID   *string `json:"id"`
	Type *int64  `json:"type"`
	Name *string `json:"name"`
}

type User struct {
	ID            *string `json:"id"`
	Username      *string `json:"username"`
	GlobalName    *string `json:"global_name"`
	Discriminator *string `json:"discriminator"`

	// Avatar is required when the user block is present; Banner is nullable.
	Avatar *string `json:"avatar"`
	Banner *string `json:"banner"`

	Flags       *int64  `json:"flags"`
	PublicFlags *int64  `json:"public_flags"`
	AccentColor *int64  `json:"accent_color"`
	BannerColor *string `json:"banner_color"`

	// opaque upstream blobs, presence only
	AvatarDecorationData json.RawMessage `json:"avatar_decoration_data"`
	DisplayNameStyles    json.RawMessage `json:"display_name_styles"`
	Collectibles         json.RawMessage `json:"collectibles"`
	PrimaryGuild         json.RawMessage `json:"primary_guild"`
}
