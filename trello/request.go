package trello

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

// ErrNoCredential means the guild has no Trello token set. The one-time
// warning to the guild owner is handled inside the pipeline; callers should
// not post anything to the channel for this error.
var ErrNoCredential = errors.New("no trello token set for guild")

// MalformedResponseError means Trello returned a body that isn't the
// expected JSON document. The raw body is kept for diagnostics.
type MalformedResponseError struct {
	Body string
}

func (e *MalformedResponseError) Error() string {
	return "malformed trello response"
}

// APIError means Trello rejected the request. Code is the HTTP status and
// Message comes from the error body when it could be parsed.
type APIError struct {
	Code    int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("trello api error %d: %s", e.Code, e.Message)
}

// TokenStore is the slice of the credential store the pipeline needs.
type TokenStore interface {
	GetToken(guildID int64) (token string, notified bool, err error)
	MarkNotified(guildID int64) error
}

// Notifier delivers the one-time missing-token warning for a guild.
type Notifier interface {
	MissingToken(guildID int64)
}

// Config holds the request pipeline's fixed settings.
type Config struct {
	AppKey  string
	BaseURL string        // empty selects the public Trello API
	Timeout time.Duration // empty selects 15 seconds
}

// RequestHandler fetches boards and cards from the Trello API on behalf of
// guilds. Tokens are re-read from the store on every request so a freshly
// set or removed token takes effect immediately.
type RequestHandler struct {
	store    TokenStore
	limiter  *Limiter
	notifier Notifier
	client   *http.Client

	urlBoards *ApiURL
	urlCards  *ApiURL
}

// NewRequestHandler builds the pipeline with its two URL templates. The
// field selections match what the summary mapper reads and nothing more.
func NewRequestHandler(cfg Config, store TokenStore, limiter *Limiter, notifier Notifier) *RequestHandler {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 15 * time.Second
	}

	builder := NewURLBuilder(cfg.BaseURL, cfg.AppKey)
	return &RequestHandler{
		store:    store,
		limiter:  limiter,
		notifier: notifier,
		client:   &http.Client{Timeout: timeout},
		urlBoards: builder.Create("boards").
			AddParam("fields", "name,desc,closed,prefs").
			Build(),
		urlCards: builder.Create("cards").
			AddParam("fields", "closed,desc,due,dueComplete,name,labels").
			AddParam("members", "true").
			AddParam("member_fields", "username").
			AddParam("checklists", "all").
			AddParam("checklist_fields", "name,pos").
			AddParam("board", "true").
			AddParam("board_fields", "name").
			AddParam("list", "true").
			AddParam("list_fields", "name").
			AddParam("label_fields", "name,color").
			Build(),
	}
}

// GetBoardInfo fetches the board with the given id using the guild's token.
func (h *RequestHandler) GetBoardInfo(ctx context.Context, boardID string, guildID int64) (*Board, error) {
	var board Board
	if err := h.get(ctx, h.urlBoards, boardID, guildID, &board); err != nil {
		return nil, err
	}
	return &board, nil
}

// GetCardInfo fetches the card with the given id using the guild's token.
func (h *RequestHandler) GetCardInfo(ctx context.Context, cardID string, guildID int64) (*Card, error) {
	var card Card
	if err := h.get(ctx, h.urlCards, cardID, guildID, &card); err != nil {
		return nil, err
	}
	return &card, nil
}

// get runs the full pipeline: resolve token, wait out the rate limiter,
// issue the GET and classify the response into out or a typed error.
func (h *RequestHandler) get(ctx context.Context, u *ApiURL, id string, guildID int64, out any) error {
	token, err := h.token(guildID)
	if err != nil {
		return err
	}

	if wait := h.limiter.Acquire(); wait > 0 {
		log.Printf("Rate limit reached, waiting %s before sending next request", wait)
		timer := time.NewTimer(wait)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-timer.C:
		}
	}

	log.Printf("HTTP GET %s/%s for guild %d", u.Resource(), id, guildID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.Instantiate(id, token), nil)
	if err != nil {
		return fmt.Errorf("failed to build request for %s %s: %w", u.Resource(), id, err)
	}

	// The client never errors on 4xx/5xx, so the error body stays readable
	// and classification happens here on the status code.
	resp, err := h.client.Do(req)
	if err != nil {
		return fmt.Errorf("request for %s %s failed: %w", u.Resource(), id, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response for %s %s: %w", u.Resource(), id, err)
	}

	if resp.StatusCode >= 400 {
		apiErr := newAPIError(resp.StatusCode, body)
		log.Printf("Error getting %s %s: %v", u.Resource(), id, apiErr)
		return apiErr
	}
	if err := json.Unmarshal(body, out); err != nil {
		log.Printf("Unparseable response for %s %s: %v\nBody: %s", u.Resource(), id, err, body)
		return &MalformedResponseError{Body: string(body)}
	}
	return nil
}

// token resolves the guild's Trello token. A blank or missing token triggers
// the one-time owner warning before returning ErrNoCredential. A store query
// failure is logged and degrades to the same behaviour as an unset token.
func (h *RequestHandler) token(guildID int64) (string, error) {
	token, notified, err := h.store.GetToken(guildID)
	if err != nil {
		log.Printf("Token lookup failed for guild %d, treating as unset: %v", guildID, err)
	}
	if strings.TrimSpace(token) != "" {
		return token, nil
	}

	log.Printf("Token not set for guild %d - not getting info", guildID)
	if !notified {
		if err := h.store.MarkNotified(guildID); err != nil {
			log.Printf("Failed to mark guild %d as notified: %v", guildID, err)
		} else if h.notifier != nil {
			h.notifier.MissingToken(guildID)
		}
	}
	return "", ErrNoCredential
}

// newAPIError pulls the message out of Trello's error body, falling back to
// the raw body text when it isn't JSON.
func newAPIError(code int, body []byte) *APIError {
	var payload struct {
		Error   string `json:"error"`
		Message string `json:"message"`
	}
	message := strings.TrimSpace(string(body))
	if err := json.Unmarshal(body, &payload); err == nil {
		switch {
		case payload.Message != "":
			message = payload.Message
		case payload.Error != "":
			message = payload.Error
		}
	}
	return &APIError{Code: code, Message: message}
}
