package handlers

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"time"

	"trello-bot/trello"
	"trello-bot/utils"

	"github.com/bwmarrin/discordgo"
)

const fetchTimeout = 30 * time.Second

// MessageCreate is called for every message the bot can see. Guild messages
// are scanned for Trello links and checked for the token command; private
// messages drive an open token session.
func (h *Handlers) MessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	// Ignore all messages created by bots, including this one.
	if m.Author.Bot {
		return
	}

	if m.GuildID == "" {
		h.handlePrivateMessage(s, m)
		return
	}

	h.handleGuildCommand(s, m)
	h.dispatchReferences(s, m)
}

// dispatchReferences queues one fetch job per Trello link in the message.
// Jobs run independently; neither their order nor the order of the
// resulting channel messages is guaranteed.
func (h *Handlers) dispatchReferences(s *discordgo.Session, m *discordgo.MessageCreate) {
	refs := trello.ExtractReferences(m.Content)
	if len(refs) == 0 {
		return
	}

	guildID, err := strconv.ParseInt(m.GuildID, 10, 64)
	if err != nil {
		log.Printf("Error parsing guild ID %s: %v", m.GuildID, err)
		return
	}

	for _, ref := range refs {
		ref := ref
		if !h.pool.Submit(func() { h.handleReference(s, ref, guildID, m.ChannelID) }) {
			log.Printf("Fetch queue full, dropping %s %s", ref.Type, ref.ID)
		}
	}
}

// handleReference runs on the worker pool: fetch the entity, map it and post
// the summary embed back to the originating channel.
func (h *Handlers) handleReference(s *discordgo.Session, ref trello.Reference, guildID int64, channelID string) {
	ctx, cancel := context.WithTimeout(context.Background(), fetchTimeout)
	defer cancel()

	var summary *trello.Summary
	var err error
	switch ref.Type {
	case trello.EntityBoard:
		var board *trello.Board
		if board, err = h.trello.GetBoardInfo(ctx, ref.ID, guildID); err == nil {
			summary, err = trello.MapBoard(board)
		}
	case trello.EntityCard:
		var card *trello.Card
		if card, err = h.trello.GetCardInfo(ctx, ref.ID, guildID); err == nil {
			summary, err = trello.MapCard(card, time.Now())
		}
	default:
		return
	}

	if err != nil {
		h.reportFetchError(s, ref, channelID, err)
		return
	}

	if _, err := s.ChannelMessageSendEmbed(channelID, summaryEmbed(summary)); err != nil {
		log.Printf("Error sending summary for %s %s: %v", ref.Type, ref.ID, err)
	}
}

// reportFetchError posts a short failure notice to the originating channel.
// A missing credential stays silent here: the pipeline already DMed the
// guild owner, and repeating it per link would be noise.
func (h *Handlers) reportFetchError(s *discordgo.Session, ref trello.Reference, channelID string, err error) {
	if errors.Is(err, trello.ErrNoCredential) {
		return
	}

	var apiErr *trello.APIError
	var malformed *trello.MalformedResponseError
	var content string
	switch {
	case errors.As(err, &apiErr):
		content = fmt.Sprintf("🚫 Trello rejected the request for %s `%s`: %d %s", ref.Type, ref.ID, apiErr.Code, apiErr.Message)
	case errors.As(err, &malformed):
		utils.Error("trello", "fetch", fmt.Sprintf("Unparseable response for %s %s: %s", ref.Type, ref.ID, truncate(malformed.Body, 500)))
		content = fmt.Sprintf("🚫 Couldn't read Trello's response for %s `%s`", ref.Type, ref.ID)
	default:
		log.Printf("Couldn't get info for %s %s: %v", ref.Type, ref.ID, err)
		content = fmt.Sprintf("🚫 Couldn't get info for %s `%s`", ref.Type, ref.ID)
	}

	if _, err := s.ChannelMessageSend(channelID, content); err != nil {
		log.Printf("Error sending failure notice for %s %s: %v", ref.Type, ref.ID, err)
	}
}

func summaryEmbed(summary *trello.Summary) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       summary.Title,
		Description: summary.Description,
		Color:       summary.Colour,
	}
	if summary.Footer != "" {
		embed.Footer = &discordgo.MessageEmbedFooter{Text: summary.Footer}
	}
	for _, field := range summary.Fields {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:   field.Name,
			Value:  field.Value,
			Inline: field.Inline,
		})
	}
	return embed
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max] + "…"
}
