package invites

import (
	"fmt"
	"net/url"
	"strings"
)

// ExtractInviteCode pulls the invite code out of a shareable link. Two link
// shapes are recognized: https://discord.gg/<code> and
// https://discord.com/invite/<code> (a www. prefix is tolerated). Anything
// else fails with ErrInvalidInviteLink.
func ExtractInviteCode(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrInvalidInviteLink, rawURL)
	}

	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	path := strings.Trim(u.EscapedPath(), "/")

	switch host {
	case "discord.gg":
		if path != "" && !strings.Contains(path, "/") {
			return path, nil
		}
	case "discord.com":
		if code, ok := strings.CutPrefix(path, "invite/"); ok && code != "" && !strings.Contains(code, "/") {
			return code, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrInvalidInviteLink, rawURL)
}
