package models

import "time"

// Chat senders
const (
	SenderUser = "user"
	SenderAI   = "ai"
)

// ChatMessage is one entry of a chat-style page conversation. Messages are
// appended in order and never edited.
type ChatMessage struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Sender    string    `json:"sender"` // "user" or "ai"
	Timestamp time.Time `json:"timestamp"`
}

// ChatRequest represents an incoming chat message for a page
type ChatRequest struct {
	BaseRequest
	Message  string `json:"message"`
	Audience string `json:"audience,omitempty"`
}

// ChatResponse carries the full ordered conversation of a session
type ChatResponse struct {
	BaseResponse
	SessionID string        `json:"session_id"`
	Audience  string        `json:"audience,omitempty"`
	Messages  []ChatMessage `json:"messages"`
}
