package realtime

import (
	"testing"
)

func TestParseEvent_Valid(t *testing.T) {
	frame := `{"type":"new_message","data":{"content":"hi"},"conversationId":"conv-1","userId":"u-2"}`

	ev, err := parseEvent([]byte(frame))
	if err != nil {
		t.Fatalf("parseEvent() error: %v", err)
	}
	if ev.Type != "new_message" {
		t.Errorf("Type = %q, want new_message", ev.Type)
	}
	if ev.ConversationID != "conv-1" {
		t.Errorf("ConversationID = %q, want conv-1", ev.ConversationID)
	}
	if ev.UserID != "u-2" {
		t.Errorf("UserID = %q, want u-2", ev.UserID)
	}
	if len(ev.Data) == 0 {
		t.Error("Data should carry the raw payload")
	}
}

func TestParseEvent_InvalidJSON(t *testing.T) {
	_, err := parseEvent([]byte("not json at all"))
	if err == nil {
		t.Fatal("parseEvent() should error on malformed frame")
	}
}

func TestParseEvent_MissingType(t *testing.T) {
	_, err := parseEvent([]byte(`{"data":{"content":"hi"}}`))
	if err == nil {
		t.Fatal("parseEvent() should error when the frame has no type")
	}
}
