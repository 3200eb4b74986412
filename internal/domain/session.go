package domain

import "time"

// SessionStatus enumerates lifecycle states for counseling sessions.
type SessionStatus string

const (
	SessionStatusUnassigned SessionStatus = "unassigned"
	SessionStatusAssigned   SessionStatus = "assigned"
	SessionStatusInProgress SessionStatus = "in-progress"
	SessionStatusCompleted  SessionStatus = "completed"
	SessionStatusCancelled  SessionStatus = "cancelled"
)

// SessionPriority enumerates scheduling urgency.
type SessionPriority string

const (
	SessionPriorityLow    SessionPriority = "low"
	SessionPriorityMedium SessionPriority = "medium"
	SessionPriorityHigh   SessionPriority = "high"
)

// Session is a scheduled meeting linking a user and a listener. ListenerID
// stays nil until the assignment flow picks one.
type Session struct {
	ID                    string          `json:"id"`
	UserID                string          `json:"userId"`
	ListenerID            *string         `json:"listenerId,omitempty"`
	Status                SessionStatus   `json:"status"`
	DateTime              time.Time       `json:"dateTime"`
	DurationMinutes       int             `json:"duration"`
	Priority              SessionPriority `json:"priority"`
	PreferredLanguages    []string        `json:"preferredLanguages"`
	SpecialtyRequirements []string        `json:"specialtyRequirements"`
	MeetingLink           string          `json:"meetingLink,omitempty"`
	CreatedAt             time.Time       `json:"createdAt"`
}

var allowedTransitions = map[SessionStatus][]SessionStatus{
	SessionStatusUnassigned: {SessionStatusAssigned, SessionStatusCancelled},
	SessionStatusAssigned:   {SessionStatusInProgress, SessionStatusCancelled},
	SessionStatusInProgress: {SessionStatusCompleted, SessionStatusCancelled},
	SessionStatusCompleted:  {},
	SessionStatusCancelled:  {},
}

// CanTransition reports whether the status machine permits current -> next.
func CanTransition(current, next SessionStatus) bool {
	for _, candidate := range allowedTransitions[current] {
		if candidate == next {
			return true
		}
	}
	return false
}

// CompletedOn reports whether the session finished on the given calendar day.
func (s *Session) CompletedOn(day time.Time) bool {
	if s.Status != SessionStatusCompleted {
		return false
	}
	y1, m1, d1 := s.DateTime.Date()
	y2, m2, d2 := day.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
