package realtime

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Inbound event topics dispatched by the backend.
const (
	EventNewMessage          = "new_message"
	EventUserTyping          = "user_typing"
	EventMessageRead         = "message_read"
	EventConversationUpdated = "conversation_updated"
	EventConversationCreated = "conversation_created"
)

// TopicWildcard subscribes a listener to every inbound event regardless of
// its type.
const TopicWildcard = "*"

// Event is one inbound wire message. Data carries the type-specific payload
// undecoded; the typed On* wrappers unwrap it for the common topics.
type Event struct {
	Type           string          `json:"type"`
	Data           json.RawMessage `json:"data"`
	ConversationID string          `json:"conversationId,omitempty"`
	UserID         string          `json:"userId,omitempty"`
}

// parseEvent decodes one inbound text frame. Callers drop the frame when it
// fails to parse; a bad frame never affects connection state.
func parseEvent(data []byte) (Event, error) {
	var ev Event
	if err := json.Unmarshal(data, &ev); err != nil {
		return Event{}, fmt.Errorf("parse event: %w", err)
	}
	if ev.Type == "" {
		return Event{}, errors.New("event has no type")
	}
	return ev, nil
}

// ChatMessage is the payload of a "new_message" event.
type ChatMessage struct {
	ID             string         `json:"id"`
	ConversationID string         `json:"conversationId"`
	SenderID       string         `json:"senderId"`
	Content        string         `json:"content"`
	Type           string         `json:"type"`
	Metadata       map[string]any `json:"metadata,omitempty"`
	CreatedAt      string         `json:"createdAt"`
}

// TypingEvent is the payload of a "user_typing" event.
type TypingEvent struct {
	ConversationID string `json:"conversationId"`
	UserID         string `json:"userId"`
	IsTyping       bool   `json:"isTyping"`
}

// ReadReceipt is the payload of a "message_read" event.
type ReadReceipt struct {
	ConversationID string `json:"conversationId"`
	MessageID      string `json:"messageId"`
	UserID         string `json:"userId"`
	ReadAt         string `json:"readAt,omitempty"`
}

// ConversationEvent is the payload of the "conversation_updated" and
// "conversation_created" events.
type ConversationEvent struct {
	ConversationID string   `json:"conversationId"`
	Action         string   `json:"action,omitempty"`
	Title          string   `json:"title,omitempty"`
	Participants   []string `json:"participants,omitempty"`
}
