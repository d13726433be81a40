package handlers

import (
	"fmt"
	"log"
	"strconv"

	"github.com/bwmarrin/discordgo"
)

// MissingTokenNotifier DMs a guild's owner the first time a Trello link is
// seen while no token is set for that guild. The request pipeline calls it
// at most once per absence period via the store's notified flag.
type MissingTokenNotifier struct {
	session *discordgo.Session
	prefix  string
}

// NewMissingTokenNotifier creates the notifier.
func NewMissingTokenNotifier(session *discordgo.Session, prefix string) *MissingTokenNotifier {
	if prefix == "" {
		prefix = "t!"
	}
	return &MissingTokenNotifier{session: session, prefix: prefix}
}

// MissingToken sends the warning DM to the guild owner.
func (n *MissingTokenNotifier) MissingToken(guildID int64) {
	id := strconv.FormatInt(guildID, 10)
	guild, err := n.session.State.Guild(id)
	if err != nil {
		guild, err = n.session.Guild(id)
		if err != nil {
			log.Printf("Couldn't resolve guild %s for missing-token warning: %v", id, err)
			return
		}
	}

	channel, err := n.session.UserChannelCreate(guild.OwnerID)
	if err != nil {
		log.Printf("Couldn't open DM with owner of guild %s: %v", id, err)
		return
	}

	message := fmt.Sprintf(
		"A Trello link was posted in **%s**, but no Trello token is set for that server, so I can't look anything up.\n"+
			"Use `%s token` in the server to set one up.",
		guild.Name, n.prefix)
	if _, err := n.session.ChannelMessageSend(channel.ID, message); err != nil {
		log.Printf("Error sending missing-token warning for guild %s: %v", id, err)
	}
}
