package domain

import (
	"sort"
	"time"
)

// MessagePriority enumerates delivery urgency for admin messages.
type MessagePriority string

const (
	MessagePriorityNormal MessagePriority = "normal"
	MessagePriorityUrgent MessagePriority = "urgent"
)

// Message is an admin note attached to a listener, immutable once sent.
type Message struct {
	ID         string          `json:"id"`
	ListenerID string          `json:"listenerId"`
	Subject    string          `json:"subject"`
	Content    string          `json:"content"`
	Priority   MessagePriority `json:"priority"`
	CreatedAt  time.Time       `json:"createdAt"`
}

// SortMessages orders messages by creation time for display.
func SortMessages(messages []Message) {
	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].CreatedAt.Before(messages[j].CreatedAt)
	})
}
