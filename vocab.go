package realtime

// Frame is one outbound wire message. The receiver parses by key, so field
// order is not significant.
type Frame struct {
	Type           string `json:"type"`
	Data           any    `json:"data,omitempty"`
	ConversationID string `json:"conversationId,omitempty"`
	UserID         string `json:"userId,omitempty"`
}

// Outbound wire types used by the vocabulary presets.
const (
	frameConversationUpdated = "conversation_updated"
	frameJoinConversation    = "join_conversation"
	frameLeaveConversation   = "leave_conversation"
	frameTyping              = "typing"
	frameMessageRead         = "message_read"
	frameMarkRead            = "mark_read"
)

// Vocabulary maps the client's logical actions onto wire frame shapes. The
// backend historically accepted two overlapping dialects, so both ship as
// presets and deployments select the one their node speaks.
type Vocabulary struct {
	Name     string
	Join     func(conversationID string) Frame
	Leave    func(conversationID string) Frame
	Typing   func(conversationID, userID string, isTyping bool) Frame
	MarkRead func(conversationID, messageID, userID string) Frame
}

type roomAction struct {
	Action         string `json:"action"`
	ConversationID string `json:"conversationId"`
}

type typingPayload struct {
	IsTyping bool   `json:"isTyping"`
	UserID   string `json:"userId"`
}

type readPayload struct {
	MessageID string `json:"messageId"`
	UserID    string `json:"userId,omitempty"`
}

// RoomVocabulary is the default dialect: join and leave are expressed as a
// single conversation_updated command carrying an action field.
func RoomVocabulary() Vocabulary {
	return Vocabulary{
		Name: "room",
		Join: func(conversationID string) Frame {
			return Frame{
				Type:           frameConversationUpdated,
				Data:           roomAction{Action: "join", ConversationID: conversationID},
				ConversationID: conversationID,
			}
		},
		Leave: func(conversationID string) Frame {
			return Frame{
				Type:           frameConversationUpdated,
				Data:           roomAction{Action: "leave", ConversationID: conversationID},
				ConversationID: conversationID,
			}
		},
		Typing: typingFrame,
		MarkRead: func(conversationID, messageID, userID string) Frame {
			return Frame{
				Type:           frameMessageRead,
				Data:           readPayload{MessageID: messageID, UserID: userID},
				ConversationID: conversationID,
			}
		},
	}
}

// CommandVocabulary is the alternate dialect with a dedicated wire type per
// action.
func CommandVocabulary() Vocabulary {
	return Vocabulary{
		Name: "command",
		Join: func(conversationID string) Frame {
			return Frame{Type: frameJoinConversation, ConversationID: conversationID}
		},
		Leave: func(conversationID string) Frame {
			return Frame{Type: frameLeaveConversation, ConversationID: conversationID}
		},
		Typing: typingFrame,
		MarkRead: func(conversationID, messageID, userID string) Frame {
			return Frame{
				Type:           frameMarkRead,
				Data:           readPayload{MessageID: messageID},
				ConversationID: conversationID,
				UserID:         userID,
			}
		},
	}
}

// Typing is encoded identically in both dialects.
func typingFrame(conversationID, userID string, isTyping bool) Frame {
	return Frame{
		Type:           frameTyping,
		Data:           typingPayload{IsTyping: isTyping, UserID: userID},
		ConversationID: conversationID,
	}
}
