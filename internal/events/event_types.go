package events

import (
	"time"

	"github.com/spec-kit/listener-admin/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventListenerCreated      EventType = "listener_created"
	EventMessageSent          EventType = "message_sent"
	EventSessionCreated       EventType = "session_created"
	EventSessionAssigned      EventType = "session_assigned"
	EventSessionStatusChanged EventType = "session_status_changed"
	EventSessionUnauthorized  EventType = "session_unauthorized"
)

// Event represents a console action emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// ListenerCreatedPayload payload.
type ListenerCreatedPayload struct {
	ListenerID  string   `json:"listener_id"`
	Name        string   `json:"name"`
	Specialties []string `json:"specialties"`
}

// MessageSentPayload payload.
type MessageSentPayload struct {
	ListenerID string                 `json:"listener_id"`
	MessageID  string                 `json:"message_id"`
	Priority   domain.MessagePriority `json:"priority"`
}

// SessionCreatedPayload payload.
type SessionCreatedPayload struct {
	SessionID string                 `json:"session_id"`
	UserID    string                 `json:"user_id"`
	Priority  domain.SessionPriority `json:"priority"`
}

// SessionAssignedPayload payload.
type SessionAssignedPayload struct {
	SessionID  string `json:"session_id"`
	ListenerID string `json:"listener_id"`
}

// SessionStatusChangedPayload payload.
type SessionStatusChangedPayload struct {
	SessionID string               `json:"session_id"`
	OldStatus domain.SessionStatus `json:"old_status"`
	NewStatus domain.SessionStatus `json:"new_status"`
}

// SessionUnauthorizedPayload payload emitted when the platform rejects the
// admin token and the session is cleared.
type SessionUnauthorizedPayload struct {
	Reason string `json:"reason"`
}
