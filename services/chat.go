package services

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"portfolio/content"
	"portfolio/models"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"
)

const chatActionID = "chat"

type chatSession struct {
	mu       sync.Mutex
	audience content.Audience
	messages []models.ChatMessage
}

func (s *chatSession) append(sender, text string) models.ChatMessage {
	msg := models.ChatMessage{
		ID:        uuid.NewString(),
		Text:      text,
		Sender:    sender,
		Timestamp: time.Now(),
	}
	s.messages = append(s.messages, msg)
	return msg
}

func (s *chatSession) snapshot() []models.ChatMessage {
	return append([]models.ChatMessage(nil), s.messages...)
}

// ChatService keeps the conversations of chat-style pages. Sessions live in
// a bounded LRU; an evicted session is gone.
type ChatService struct {
	site     *Site
	sessions *lru.Cache[string, *chatSession]
	logger   *zap.Logger
}

// NewChatService creates a chat service holding at most maxSessions
// conversations.
func NewChatService(site *Site, maxSessions int, logger *zap.Logger) (*ChatService, error) {
	cache, err := lru.New[string, *chatSession](maxSessions)
	if err != nil {
		return nil, fmt.Errorf("failed to create session cache: %w", err)
	}
	return &ChatService{
		site:     site,
		sessions: cache,
		logger:   logger.Named("chat"),
	}, nil
}

func chatPage(slug string) (content.Page, error) {
	page, ok := content.Lookup(slug)
	if !ok {
		return page, fmt.Errorf("%w: %s", ErrPageNotFound, slug)
	}
	if !page.Chat {
		return page, fmt.Errorf("%w: %s has no chat", ErrActionNotFound, slug)
	}
	return page, nil
}

// Send appends the user's message and the AI's reply to a session. A blank
// sessionID starts a new conversation. Empty text is rejected before
// anything is recorded.
func (c *ChatService) Send(ctx context.Context, slug, sessionID, audience, text string) (*models.ChatResponse, error) {
	if _, err := chatPage(slug); err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		_, action, err := c.site.Resolve(slug, chatActionID)
		if err != nil {
			return nil, err
		}
		return nil, &ValidationError{Message: action.EmptyMessage}
	}

	if sessionID == "" {
		sessionID = uuid.NewString()
	}
	sess, ok := c.sessions.Get(sessionID)
	if !ok {
		// Two first sends on one id must end up sharing a session.
		fresh := &chatSession{}
		sess = fresh
		if prev, found, _ := c.sessions.PeekOrAdd(sessionID, fresh); found {
			sess = prev
		}
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()
	sess.audience = content.ParseAudience(audience)
	sess.append(models.SenderUser, text)

	res, err := c.site.Run(ctx, slug, chatActionID, models.ActionRequest{
		Input:  text,
		Choice: string(sess.audience),
	}, nil)
	if err != nil {
		return nil, err
	}
	sess.append(models.SenderAI, res.Outcome.Text)

	c.logger.Debug("chat turn",
		zap.String("page", slug),
		zap.String("session", sessionID),
		zap.String("audience", string(sess.audience)),
		zap.Int("messages", len(sess.messages)))

	return &models.ChatResponse{
		BaseResponse: models.NewSuccess(),
		SessionID:    sessionID,
		Audience:     string(sess.audience),
		Messages:     sess.snapshot(),
	}, nil
}

// History returns the conversation of a session. Unknown or evicted
// sessions are empty.
func (c *ChatService) History(slug, sessionID string) (*models.ChatResponse, error) {
	if _, err := chatPage(slug); err != nil {
		return nil, err
	}
	resp := &models.ChatResponse{
		BaseResponse: models.NewSuccess(),
		SessionID:    sessionID,
		Audience:     string(content.AudienceGeneral),
		Messages:     []models.ChatMessage{},
	}
	if sess, ok := c.sessions.Get(sessionID); ok {
		sess.mu.Lock()
		resp.Audience = string(sess.audience)
		resp.Messages = sess.snapshot()
		sess.mu.Unlock()
	}
	return resp, nil
}

// GetStatus reports session usage.
func (c *ChatService) GetStatus() map[string]interface{} {
	return map[string]interface{}{
		"sessions": c.sessions.Len(),
	}
}
