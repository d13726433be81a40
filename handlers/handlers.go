package handlers

import (
	"log"
	"strconv"

	"trello-bot/bot"
	"trello-bot/database"
	"trello-bot/trello"
	"trello-bot/worker"

	"github.com/bwmarrin/discordgo"
)

// Handlers wires the bot's Discord event handlers to their dependencies.
type Handlers struct {
	bot      *bot.Bot
	store    *database.TokenStore
	trello   *trello.RequestHandler
	pool     *worker.Pool
	sessions *SessionManager
	prefix   string
}

// New creates the handler set.
func New(b *bot.Bot, store *database.TokenStore, client *trello.RequestHandler, pool *worker.Pool, sessions *SessionManager, prefix string) *Handlers {
	if prefix == "" {
		prefix = "t!"
	}
	return &Handlers{
		bot:      b,
		store:    store,
		trello:   client,
		pool:     pool,
		sessions: sessions,
		prefix:   prefix,
	}
}

// Register all handlers to the bot.
func (h *Handlers) Register() {
	s := h.bot.Session
	s.AddHandler(h.Ready)
	s.AddHandler(h.MessageCreate)
	s.AddHandler(h.GuildDelete)
}

// Ready logs the login and sets the bot's presence.
func (h *Handlers) Ready(s *discordgo.Session, r *discordgo.Ready) {
	log.Printf("Logged in as %v#%v with %d guilds", s.State.User.Username, s.State.User.Discriminator, len(r.Guilds))
	if err := s.UpdateGameStatus(0, "Watching for Trello card links"); err != nil {
		log.Printf("Error setting presence: %v", err)
	}
}

// GuildDelete removes the departing guild's token. Unavailable guilds are a
// Discord outage, not a removal, and keep their token.
func (h *Handlers) GuildDelete(s *discordgo.Session, g *discordgo.GuildDelete) {
	if g.Unavailable {
		return
	}
	guildID, err := strconv.ParseInt(g.ID, 10, 64)
	if err != nil {
		log.Printf("Error parsing guild ID %s: %v", g.ID, err)
		return
	}
	log.Printf("Left guild %s, removing its token", g.ID)
	if err := h.store.RemoveToken(guildID); err != nil {
		log.Printf("Error removing token for guild %s: %v", g.ID, err)
	}
}
