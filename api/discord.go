package api

import "github.com/guildpeek/guildpeek/api/discordv9"

// Aliases tracking the newest supported protocol version. Code written
// against these names keeps compiling when a newer versioned package
// becomes the default; older versions stay importable by name.

type (
	InviteResponse  = discordv9.InviteResponse
	Guild           = discordv9.Guild
	GuildProfile    = discordv9.GuildProfile
	Channel         = discordv9.Channel
	User            = discordv9.User
	ValidationError = discordv9.ValidationError
)

// LatestVersion is the protocol version the aliases above refer to.
const LatestVersion = discordv9.Version
