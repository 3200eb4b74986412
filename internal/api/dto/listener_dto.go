package dto

import "github.com/spec-kit/listener-admin/internal/domain"

// CreateListenerRequest is the listener creation form payload. An omitted
// schedule falls back to the default weekly template.
type CreateListenerRequest struct {
	Name        string                `json:"name"`
	Description string                `json:"description"`
	Gender      string                `json:"gender"`
	Email       string                `json:"email"`
	Phone       string                `json:"phone"`
	Specialties []string              `json:"specialties"`
	Languages   []string              `json:"languages"`
	Schedule    domain.WeeklySchedule `json:"availability"`
}

// SendMessageRequest is the admin-to-listener message form payload.
type SendMessageRequest struct {
	Subject  string                 `json:"subject"`
	Content  string                 `json:"content"`
	Priority domain.MessagePriority `json:"priority"`
}

// UpdatePresenceRequest payload.
type UpdatePresenceRequest struct {
	Status domain.PresenceStatus `json:"status"`
}

// UpdateAvailabilityRequest payload.
type UpdateAvailabilityRequest struct {
	Schedule domain.WeeklySchedule `json:"availability"`
}
