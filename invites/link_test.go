package invites

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractInviteCode(t *testing.T) {
	assert := assert.New(t)

	good := map[string]string{
		"https://discord.gg/abc123":          "abc123",
		"https://discord.com/invite/abc123":  "abc123",
		"https://www.discord.com/invite/xyz": "xyz",
		"https://discord.gg/abc123/":         "abc123",
		"https://DISCORD.GG/CaseKept":        "CaseKept",
	}
	for link, code := range good {
		got, err := ExtractInviteCode(link)
		assert.NoError(err, link)
		assert.Equal(code, got)
	}

	bad := []string{
		"https://example.com/abc123",
		"https://discord.com/abc123",
		"https://discord.gg/",
		"https://discord.gg/a/b",
		"https://discord.com/invite/",
		"not a url at all \x00",
	}
	for _, link := range bad {
		_, err := ExtractInviteCode(link)
		assert.ErrorIs(err, ErrInvalidInviteLink, link)
	}
}
