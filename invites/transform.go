package invites

import (
	"time"

	"github.com/guildpeek/guildpeek/api/discordv9"
	"github.com/guildpeek/guildpeek/cdn"
	"github.com/guildpeek/guildpeek/util"
)

// transformV9 maps a validated v9 payload onto the public snapshot types.
// No network or disk I/O happens here; the input must already have passed
// Validate, so required pointers are dereferenced without checks.
func transformV9(ir *discordv9.InviteResponse) (*Invite, error) {
	var expires *time.Time
	if ir.ExpiresAt != nil {
		t, err := util.ParseTimestamp(*ir.ExpiresAt)
		if err != nil {
			return nil, &discordv9.ValidationError{Path: "expires_at", Problem: err.Error()}
		}
		expires = &t
	}

	g := ir.Guild
	p := ir.Profile

	guild := Guild{
		ID:          *g.ID,
		Name:        *g.Name,
		Description: g.Description,

		Members: *p.MemberCount,
		Onlines: *p.OnlineCount,

		Icon: cdn.NewImageRef(cdn.AssetGuildIcon, *g.ID, *g.Icon),

		Features:                 g.Features,
		VerificationLevel:        *g.VerificationLevel,
		NSFWLevel:                *g.NSFWLevel,
		NSFW:                     *g.NSFW,
		PremiumTier:              *p.PremiumTier,
		PremiumSubscriptionCount: *g.PremiumSubscriptionCount,
		VanityURL:                g.VanityURLCode,

		Tag:                 p.Tag,
		Badge:               *p.Badge,
		BadgeColorPrimary:   *p.BadgeColorPrimary,
		BadgeColorSecondary: *p.BadgeColorSecondary,
		BadgeHash:           p.BadgeHash,

		Traits:     p.Traits,
		Visibility: *p.Visibility,
	}
	if g.Splash != nil {
		guild.Banner = cdn.NewImageRef(cdn.AssetGuildSplash, *g.ID, *g.Splash)
	}

	out := &Invite{
		Code:      *ir.Code,
		ExpiresAt: expires,
		Guild:     guild,
		Channel: Channel{
			ID:   *ir.Channel.ID,
			Type: *ir.Channel.Type,
			Name: *ir.Channel.Name,
		},
	}

	if u := ir.Inviter; u != nil {
		inviter := Inviter{
			ID:            *u.ID,
			Username:      *u.Username,
			Discriminator: *u.Discriminator,
			Flags:         derefInt(u.Flags),
			PublicFlags:   derefInt(u.PublicFlags),
			AccentColor:   u.AccentColor,
			BannerColor:   u.BannerColor,
			Avatar:        cdn.NewImageRef(cdn.AssetUserAvatar, *u.ID, *u.Avatar),
		}
		// null global_name flattens to "" for compatibility; callers never
		// see a null here
		if u.GlobalName != nil {
			inviter.GlobalName = *u.GlobalName
		}
		if u.Banner != nil {
			inviter.Banner = cdn.NewImageRef(cdn.AssetUserBanner, *u.ID, *u.Banner)
		}
		out.Inviter = &inviter
	}

	return out, nil
}

func derefInt(p *int64) int64 {
	if p == nil {
		return 0
	}
	return *p
}
