package utils

import (
	"log"

	"github.com/bwmarrin/discordgo"
)

// IsGuildAdmin reports whether the message author may manage the guild's
// Trello token: the guild owner, or any member with the administrator
// permission.
func IsGuildAdmin(s *discordgo.Session, m *discordgo.MessageCreate) bool {
	guild, err := s.State.Guild(m.GuildID)
	if err == nil && guild.OwnerID == m.Author.ID {
		return true
	}

	perms, err := s.State.MessagePermissions(m.Message)
	if err != nil {
		perms, err = s.UserChannelPermissions(m.Author.ID, m.ChannelID)
		if err != nil {
			log.Printf("Couldn't resolve permissions for user %s in channel %s: %v", m.Author.ID, m.ChannelID, err)
			return false
		}
	}
	return perms&discordgo.PermissionAdministrator != 0
}
