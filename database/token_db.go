package database

import (
	"database/sql"
	"errors"
	"fmt"
)

// TokenStore persists each guild's Trello token together with who set it and
// whether the missing-token warning has been sent. The sqlite table is the
// only authoritative copy; callers re-read it per request and never cache.
type TokenStore struct {
	db *sql.DB
}

// NewTokenStore wraps an initialized database connection.
func NewTokenStore(db *sql.DB) *TokenStore {
	return &TokenStore{db: db}
}

// GetToken returns the guild's token and its notified flag. A guild without
// a record yields ("", false, nil).
func (s *TokenStore) GetToken(guildID int64) (string, bool, error) {
	var token sql.NullString
	var notified bool
	err := s.db.QueryRow(
		"SELECT trello_token, notified FROM tokens WHERE guild_id = ?", guildID,
	).Scan(&token, &notified)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to query token for guild %d: %w", guildID, err)
	}
	return token.String, notified, nil
}

// GetTokenOwner returns the guild's token and the user who set it. ok is
// false when no usable token is stored.
func (s *TokenStore) GetTokenOwner(guildID int64) (string, int64, bool, error) {
	var token sql.NullString
	var owner sql.NullInt64
	err := s.db.QueryRow(
		"SELECT trello_token, token_owner FROM tokens WHERE guild_id = ?", guildID,
	).Scan(&token, &owner)
	if errors.Is(err, sql.ErrNoRows) {
		return "", 0, false, nil
	}
	if err != nil {
		return "", 0, false, fmt.Errorf("failed to query token owner for guild %d: %w", guildID, err)
	}
	if !token.Valid || token.String == "" {
		return "", 0, false, nil
	}
	return token.String, owner.Int64, true, nil
}

// SetToken stores the token for a guild, replacing any previous record. A
// fresh token always clears a pending missing-token warning.
func (s *TokenStore) SetToken(guildID int64, token string, ownerID int64) error {
	_, err := s.db.Exec(
		"INSERT OR REPLACE INTO tokens (guild_id, trello_token, token_owner, notified) VALUES (?, ?, ?, 0)",
		guildID, token, ownerID,
	)
	if err != nil {
		return fmt.Errorf("failed to set token for guild %d: %w", guildID, err)
	}
	return nil
}

// RemoveToken deletes the guild's record. Removing an absent record is a
// no-op.
func (s *TokenStore) RemoveToken(guildID int64) error {
	_, err := s.db.Exec("DELETE FROM tokens WHERE guild_id = ?", guildID)
	if err != nil {
		return fmt.Errorf("failed to remove token for guild %d: %w", guildID, err)
	}
	return nil
}

// MarkNotified records that the missing-token warning has been sent for a
// guild. The token and owner columns are left untouched; a guild with no
// record gets a notified-only placeholder row.
func (s *TokenStore) MarkNotified(guildID int64) error {
	_, err := s.db.Exec(
		`INSERT INTO tokens (guild_id, notified) VALUES (?, 1)
         ON CONFLICT(guild_id) DO UPDATE SET notified = 1`,
		guildID,
	)
	if err != nil {
		return fmt.Errorf("failed to mark guild %d as notified: %w", guildID, err)
	}
	return nil
}
