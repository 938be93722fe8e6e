package models

import "github.com/google/uuid"

// ChatRole identifies who wrote a chat message.
type ChatRole string

const (
	RoleUser      ChatRole = "user"
	RoleAssistant ChatRole = "assistant"
)

type ChatMessage struct {
	ID   string   `json:"id"`
	Role ChatRole `json:"role"`
	Text string   `json:"text"`
}

func NewChatMessage(role ChatRole, text string) ChatMessage {
	return ChatMessage{
		ID:   uuid.NewString(),
		Role: role,
		Text: text,
	}
}
