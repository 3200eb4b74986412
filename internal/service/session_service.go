package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/listener-admin/internal/domain"
	"github.com/spec-kit/listener-admin/internal/events"
	"github.com/spec-kit/listener-admin/internal/platform"
	"github.com/spec-kit/listener-admin/internal/store"
	apperrors "github.com/spec-kit/listener-admin/pkg/util"
)

// SessionService coordinates session creation and lifecycle updates.
type SessionService struct {
	client     *platform.Client
	sessions   *store.Sessions
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// SessionDependencies bundles collaborators.
type SessionDependencies struct {
	Client     *platform.Client
	Sessions   *store.Sessions
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
}

// NewSessionService creates the service.
func NewSessionService(deps SessionDependencies) *SessionService {
	return &SessionService{
		client:     deps.Client,
		sessions:   deps.Sessions,
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
	}
}

// Create schedules a session from the admin form. New sessions always start
// unassigned.
func (s *SessionService) Create(ctx context.Context, input platform.CreateSessionInput) (*domain.Session, error) {
	if input.UserID == "" {
		return nil, apperrors.NewValidationError("user required", nil)
	}
	if input.DateTime.IsZero() {
		return nil, apperrors.NewValidationError("date and time required", nil)
	}
	if input.DurationMinutes <= 0 {
		return nil, apperrors.NewValidationError("duration must be positive", nil)
	}
	if input.Priority == "" {
		input.Priority = domain.SessionPriorityMedium
	}

	created, err := s.client.CreateSession(ctx, input)
	if err != nil {
		return nil, err
	}
	s.sessions.Refresh(ctx)
	s.publish(ctx, events.EventSessionCreated, events.SessionCreatedPayload{
		SessionID: created.ID,
		UserID:    created.UserID,
		Priority:  created.Priority,
	})
	return created, nil
}

// All returns every session regardless of view filters, for exports and
// audit checks.
func (s *SessionService) All(ctx context.Context) ([]domain.Session, error) {
	return s.client.ListAllSessions(ctx)
}

// UpdateStatus advances a session, guarding the transition locally before
// asking the backend. The backend remains authoritative; the guard just
// keeps obviously invalid clicks off the wire.
func (s *SessionService) UpdateStatus(ctx context.Context, sessionID string, next domain.SessionStatus) (*domain.Session, error) {
	var current *domain.Session
	for _, candidate := range s.sessions.Raw() {
		if candidate.ID == sessionID {
			session := candidate
			current = &session
			break
		}
	}
	if current != nil && !domain.CanTransition(current.Status, next) {
		return nil, apperrors.NewConflict("invalid status transition", map[string]any{
			"from": current.Status,
			"to":   next,
		})
	}

	updated, err := s.client.UpdateSessionStatus(ctx, sessionID, next)
	if err != nil {
		return nil, err
	}
	s.sessions.Refresh(ctx)
	oldStatus := domain.SessionStatus("")
	if current != nil {
		oldStatus = current.Status
	}
	s.publish(ctx, events.EventSessionStatusChanged, events.SessionStatusChangedPayload{
		SessionID: sessionID,
		OldStatus: oldStatus,
		NewStatus: updated.Status,
	})
	return updated, nil
}

func (s *SessionService) publish(ctx context.Context, eventType events.EventType, payload any) {
	if s.dispatcher == nil {
		return
	}
	s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		Timestamp: time.Now(),
		Payload:   payload,
	})
}
