package handlers

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"trello-bot/utils"

	"github.com/bwmarrin/discordgo"
)

// handleGuildCommand looks for "<prefix> token" in guild messages from the
// guild owner or an administrator and opens a DM session bound to that
// guild. Anyone else is ignored silently.
func (h *Handlers) handleGuildCommand(s *discordgo.Session, m *discordgo.MessageCreate) {
	parts := h.commandParts(m.Content, true)
	if len(parts) != 1 || !strings.EqualFold(parts[0], "token") {
		return
	}
	if !utils.IsGuildAdmin(s, m) {
		return
	}

	guildID, err := strconv.ParseInt(m.GuildID, 10, 64)
	if err != nil {
		log.Printf("Error parsing guild ID %s: %v", m.GuildID, err)
		return
	}
	userID, err := strconv.ParseInt(m.Author.ID, 10, 64)
	if err != nil {
		log.Printf("Error parsing user ID %s: %v", m.Author.ID, err)
		return
	}

	h.sessions.Open(userID, guildID)

	channel, err := s.UserChannelCreate(m.Author.ID)
	if err != nil {
		log.Printf("Error opening DM with user %s: %v", m.Author.ID, err)
		return
	}

	guildName := m.GuildID
	if guild, err := s.State.Guild(m.GuildID); err == nil {
		guildName = guild.Name
	}
	welcome := fmt.Sprintf(
		"Managing the Trello token for **%s**.\n"+
			"Commands:\n"+
			"`set <token>` - set the Trello token for the server\n"+
			"`get` - show the current token and who added it\n"+
			"`del` - remove the token\n"+
			"`end` - end this session\n"+
			"This session expires after %s.",
		guildName, h.sessions.timeout)
	if _, err := s.ChannelMessageSend(channel.ID, welcome); err != nil {
		log.Printf("Error sending DM to user %s: %v", m.Author.ID, err)
	}
}

// handlePrivateMessage runs the set/get/del/end subcommands against the
// guild the sender's session is bound to.
func (h *Handlers) handlePrivateMessage(s *discordgo.Session, m *discordgo.MessageCreate) {
	userID, err := strconv.ParseInt(m.Author.ID, 10, 64)
	if err != nil {
		log.Printf("Error parsing user ID %s: %v", m.Author.ID, err)
		return
	}

	guildID, status := h.sessions.Resolve(userID)
	switch status {
	case SessionMissing:
		h.reply(s, m.ChannelID, fmt.Sprintf("You need to use `%s token` in your server before we can do anything here!", h.prefix))
		return
	case SessionExpired:
		h.reply(s, m.ChannelID, fmt.Sprintf("Our private message session has timed out!\nPlease use `%s token` in your server again if you want to continue.", h.prefix))
		return
	}

	// The guild may have kicked the bot since the session was opened.
	guildStr := strconv.FormatInt(guildID, 10)
	if _, err := s.State.Guild(guildStr); err != nil {
		h.sessions.End(userID)
		h.reply(s, m.ChannelID, fmt.Sprintf("Couldn't find server with ID %d!", guildID))
		return
	}

	parts := h.commandParts(m.Content, false)
	if len(parts) == 0 {
		return
	}

	switch strings.ToLower(parts[0]) {
	case "set":
		h.handleSet(s, m, guildID, userID, parts)
	case "get":
		h.handleGet(s, m, guildID)
	case "del":
		if err := h.store.RemoveToken(guildID); err != nil {
			log.Printf("Error removing token for guild %d: %v", guildID, err)
			h.reply(s, m.ChannelID, "🚫 Couldn't remove the token, try again later.")
			return
		}
		h.reply(s, m.ChannelID, "Trello token removed for this server")
	case "end":
		h.sessions.End(userID)
		h.reply(s, m.ChannelID, "Session ended")
	default:
		h.reply(s, m.ChannelID, "🚫 Invalid command arguments")
	}
}

func (h *Handlers) handleSet(s *discordgo.Session, m *discordgo.MessageCreate, guildID, userID int64, parts []string) {
	if len(parts) < 2 {
		h.reply(s, m.ChannelID, "🚫 No token provided!")
		return
	}
	if len(parts) > 2 {
		h.reply(s, m.ChannelID, "🚫 Invalid token provided!")
		return
	}
	token := parts[1]
	if err := h.store.SetToken(guildID, token, userID); err != nil {
		utils.Error("tokens", "set", fmt.Sprintf("Failed to store token for guild %d: %v", guildID, err))
		h.reply(s, m.ChannelID, "🚫 Couldn't save the token, try again later.")
		return
	}
	h.reply(s, m.ChannelID, fmt.Sprintf("✅ Set token for this server to %s", token))
}

func (h *Handlers) handleGet(s *discordgo.Session, m *discordgo.MessageCreate, guildID int64) {
	token, ownerID, ok, err := h.store.GetTokenOwner(guildID)
	if err != nil {
		log.Printf("Error querying token for guild %d: %v", guildID, err)
		h.reply(s, m.ChannelID, "🚫 Couldn't look up the token, try again later.")
		return
	}
	if !ok {
		h.reply(s, m.ChannelID, "There is no Trello token set for this server")
		return
	}

	ownerName := "Unknown"
	if owner, err := s.User(strconv.FormatInt(ownerID, 10)); err == nil {
		ownerName = owner.Username
	}
	h.reply(s, m.ChannelID, fmt.Sprintf("Trello token: %s\nAdded by: %s", token, ownerName))
}

// commandParts splits a message into fields after stripping the command
// prefix. With requirePrefix, messages without the prefix yield nil.
func (h *Handlers) commandParts(content string, requirePrefix bool) []string {
	if strings.HasPrefix(content, h.prefix) {
		content = strings.TrimSpace(strings.TrimPrefix(content, h.prefix))
	} else if requirePrefix {
		return nil
	}
	return strings.Fields(content)
}

func (h *Handlers) reply(s *discordgo.Session, channelID, content string) {
	if _, err := s.ChannelMessageSend(channelID, content); err != nil {
		log.Printf("Error sending message to channel %s: %v", channelID, err)
	}
}
