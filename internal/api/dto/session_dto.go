package dto

import (
	"time"

	"github.com/spec-kit/listener-admin/internal/domain"
)

// CreateSessionRequest is the session scheduling form payload.
type CreateSessionRequest struct {
	UserID                string                 `json:"user_id"`
	DateTime              time.Time              `json:"date_time"`
	DurationMinutes       int                    `json:"duration_minutes"`
	Priority              domain.SessionPriority `json:"priority"`
	PreferredLanguages    []string               `json:"preferred_languages"`
	SpecialtyRequirements []string               `json:"specialty_requirements"`
}

// AssignSessionRequest payload for the assignment modal confirm.
type AssignSessionRequest struct {
	ListenerID string `json:"listener_id"`
}

// UpdateSessionStatusRequest payload.
type UpdateSessionStatusRequest struct {
	Status domain.SessionStatus `json:"status"`
}

// FlagUserRequest payload.
type FlagUserRequest struct {
	Reason string `json:"reason"`
}

// UpdateAccountStatusRequest payload.
type UpdateAccountStatusRequest struct {
	Status domain.AccountStatus `json:"status"`
}
