package discordv9

import "fmt"

// ValidationError names the first structural defect found in a decoded
// payload, qualified by its JSON path.
type ValidationError struct {
	Path    string
	Problem string
}

func (ve *ValidationError) Error() string {
	return fmt.Sprintf("invalid invite payload at %s: %s", ve.Path, ve.Problem)
}

func errMissing(path string) error {
	return &ValidationError{Path: path, Problem: "missing or null required field"}
}

func errBad(path, problem string) error {
	return &ValidationError{Path: path, Problem: problem}
}

// Validate is the total gate between the upstream payload and the
// transformer: nothing downstream touches a response it has not accepted.
// It checks required fields and documented value constraints; fields
// declared nullable or opaque pass untouched.
func (ir *InviteResponse) Validate() error {
	if ir.Code == nil {
		return errMissing("code")
	}
	if ir.Guild == nil {
		return errMissing("guild")
	}
	if err := ir.Guild.validate("guild"); err != nil {
		return err
	}
	if ir.Channel == nil {
		return errMissing("channel")
	}
	if err := ir.Channel.validate("channel"); err != nil {
		return err
	}
	if ir.Profile == nil {
		return errMissing("profile")
	}
	if err := ir.Profile.validate("profile"); err != nil {
		return err
	}
	if ir.Inviter != nil {
		if err := ir.Inviter.validate("inviter"); err != nil {
			return err
		}
	}
	return nil
}

func (g *Guild) validate(path string) error {
	if g.ID == nil {
		return errMissing(path + ".id")
	}
	if g.Name == nil {
		return errMissing(path + ".name")
	}
	if g.Icon == nil {
		return errMissing(path + ".icon")
	}
	if g.Features == nil {
		return errMissing(path + ".features")
	}
	if g.VerificationLevel == nil {
		return errMissing(path + ".verification_level")
	}
	if g.NSFWLevel == nil {
		return errMissing(path + ".nsfw_level")
	}
	if g.NSFW == nil {
		return errMissing(path + ".nsfw")
	}
	if g.PremiumSubscriptionCount == nil {
		return errMissing(path + ".premium_subscription_count")
	}
	return nil
}

func (p *GuildProfile) validate(path string) error {
	if p.MemberCount == nil {
		return errMissing(path + ".member_count")
	}
	if p.OnlineCount == nil {
		return errMissing(path + ".online_count")
	}
	if *p.MemberCount < 0 {
		return errBad(path+".member_count", "negative count")
	}
	if *p.OnlineCount < 0 {
		return errBad(path+".online_count", "negative count")
	}
	if *p.OnlineCount > *p.MemberCount {
		return errBad(path+".online_count", "online count exceeds member count")
	}
	if p.Badge == nil {
		return errMissing(path + ".badge")
	}
	if p.BadgeColorPrimary == nil {
		return errMissing(path + ".badge_color_primary")
	}
	if p.BadgeColorSecondary == nil {
		return errMissing(path + ".badge_color_secondary")
	}
	if p.Visibility == nil {
		return errMissing(path + ".visibility")
	}
	if p.PremiumTier == nil {
		return errMissing(path + ".premium_tier")
	}
	return nil
}

func (ch *Channel) validate(path string) error {
	if ch.ID == nil {
		return errMissing(path + ".id")
	}
	if ch.Type == nil {
		return errMissing(path + ".type")
	}
	if ch.Name == nil {
		return errMissing(path + ".name")
	}
	return nil
}

func (u *User) validate(path string) error {
	if u.ID == nil {
		return errMissing(path + ".id")
	}
	if u.Username == nil {
		return errMissing(path + ".username")
	}
	if u.Discriminator == nil {
		return errMissing(path + ".discriminator")
	}
	if u.Avatar == nil {
		return errMissing(path + ".avatar")
	}
	return nil
}
