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

// AssignmentService transitions sessions from unassigned to assigned.
type AssignmentService struct {
	client     *platform.Client
	sessions   *store.Sessions
	listeners  *store.Listeners
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// AssignmentDependencies bundles collaborators.
type AssignmentDependencies struct {
	Client     *platform.Client
	Sessions   *store.Sessions
	Listeners  *store.Listeners
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
}

// NewAssignmentService creates the service.
func NewAssignmentService(deps AssignmentDependencies) *AssignmentService {
	return &AssignmentService{
		client:     deps.Client,
		sessions:   deps.Sessions,
		listeners:  deps.Listeners,
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
	}
}

// Candidates returns the full listener list for the assignment picker,
// fetched fresh so a just-created listener is offered without waiting for the
// next poll. When the fetch fails the cached pool from the polling store is
// offered instead. No specialty or language matching happens here; the admin
// judges fit from the displayed attributes.
func (s *AssignmentService) Candidates(ctx context.Context) []domain.Listener {
	listeners, err := s.client.ListListeners(ctx, platform.ListenerQuery{})
	if err != nil {
		s.logger.Warn("candidate fetch failed, serving cached pool", zap.Error(err))
		return s.listeners.Raw()
	}
	return listeners
}

// Assign attaches a listener to a session and triggers a full re-fetch of
// the session list rather than patching local state. Failures are logged
// and returned so the caller can surface them; swallowing them would leave
// the admin staring at a modal that silently did nothing.
func (s *AssignmentService) Assign(ctx context.Context, sessionID, listenerID string) (*domain.Session, error) {
	if sessionID == "" || listenerID == "" {
		return nil, apperrors.NewValidationError("session and listener required", nil)
	}
	assigned, err := s.client.AssignSession(ctx, sessionID, listenerID)
	if err != nil {
		s.logger.Warn("session assignment failed",
			zap.String("session_id", sessionID),
			zap.String("listener_id", listenerID),
			zap.Error(err))
		return nil, err
	}
	s.sessions.Refresh(ctx)
	s.publish(ctx, events.EventSessionAssigned, events.SessionAssignedPayload{
		SessionID:  sessionID,
		ListenerID: listenerID,
	})
	return assigned, nil
}

func (s *AssignmentService) publish(ctx context.Context, eventType events.EventType, payload any) {
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
