package service

import (
	"context"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/listener-admin/internal/domain"
	"github.com/spec-kit/listener-admin/internal/events"
	"github.com/spec-kit/listener-admin/internal/platform"
	"github.com/spec-kit/listener-admin/internal/store"
	apperrors "github.com/spec-kit/listener-admin/pkg/util"
)

// Field-level validation messages for the listener creation form.
const (
	MsgFieldRequired  = "This field is required"
	MsgInvalidEmail   = "Please enter a valid email address"
	MsgInvalidPhone   = "Please enter a valid 10-digit phone number"
	MsgIncompleteSlot = "All time slots need a start and end time"
)

var (
	emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phonePattern = regexp.MustCompile(`^\d{10}$`)
)

// ListenerService coordinates listener creation, messaging and updates.
type ListenerService struct {
	client     *platform.Client
	listeners  *store.Listeners
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// ListenerDependencies bundles collaborators for the listener service.
type ListenerDependencies struct {
	Client     *platform.Client
	Listeners  *store.Listeners
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
}

// NewListenerService constructs the service.
func NewListenerService(deps ListenerDependencies) *ListenerService {
	return &ListenerService{
		client:     deps.Client,
		listeners:  deps.Listeners,
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
	}
}

// ValidateCreate checks the creation form and returns field-scoped errors.
// An empty map means the form is valid. Validation failures never reach the
// network.
func (s *ListenerService) ValidateCreate(input platform.CreateListenerInput) map[string]string {
	fieldErrors := map[string]string{}

	if strings.TrimSpace(input.Name) == "" {
		fieldErrors["name"] = MsgFieldRequired
	}
	if strings.TrimSpace(input.Description) == "" {
		fieldErrors["description"] = MsgFieldRequired
	}
	if strings.TrimSpace(input.Gender) == "" {
		fieldErrors["gender"] = MsgFieldRequired
	}

	email := strings.TrimSpace(input.Email)
	switch {
	case email == "":
		fieldErrors["email"] = MsgFieldRequired
	case !emailPattern.MatchString(email):
		fieldErrors["email"] = MsgInvalidEmail
	}

	phone := strings.TrimSpace(input.Phone)
	switch {
	case phone == "":
		fieldErrors["phone"] = MsgFieldRequired
	case !phonePattern.MatchString(phone):
		fieldErrors["phone"] = MsgInvalidPhone
	}

	for _, day := range input.Schedule {
		for _, slot := range day.Slots {
			if slot.StartTime == "" || slot.EndTime == "" {
				fieldErrors["availability"] = MsgIncompleteSlot
			}
		}
	}

	return fieldErrors
}

// Create validates the form, registers the listener and refreshes the store
// so the table reflects the new row without waiting for the next poll.
func (s *ListenerService) Create(ctx context.Context, input platform.CreateListenerInput) (*domain.Listener, error) {
	if fieldErrors := s.ValidateCreate(input); len(fieldErrors) > 0 {
		details := make(map[string]any, len(fieldErrors))
		for field, msg := range fieldErrors {
			details[field] = msg
		}
		return nil, apperrors.NewValidationError("listener form invalid", details)
	}
	if len(input.Schedule) == 0 {
		input.Schedule = domain.DefaultWeeklySchedule()
	}
	if err := input.Schedule.Validate(); err != nil {
		return nil, apperrors.NewValidationError(err.Error(), map[string]any{"availability": err.Error()})
	}

	listener, err := s.client.CreateListener(ctx, input)
	if err != nil {
		return nil, err
	}
	s.listeners.Refresh(ctx)
	s.publish(ctx, events.EventListenerCreated, events.ListenerCreatedPayload{
		ListenerID:  listener.ID,
		Name:        listener.Name,
		Specialties: listener.Specialties,
	})
	return listener, nil
}

// Get fetches one listener's full profile for the detail panel.
func (s *ListenerService) Get(ctx context.Context, listenerID string) (*domain.Listener, error) {
	return s.client.GetListener(ctx, listenerID)
}

// SendMessage delivers an admin message to a listener.
func (s *ListenerService) SendMessage(ctx context.Context, listenerID string, input platform.MessageInput) (*domain.Message, error) {
	if strings.TrimSpace(input.Subject) == "" || strings.TrimSpace(input.Content) == "" {
		return nil, apperrors.NewValidationError("subject and content required", nil)
	}
	if input.Priority == "" {
		input.Priority = domain.MessagePriorityNormal
	}
	message, err := s.client.SendMessage(ctx, listenerID, input)
	if err != nil {
		return nil, err
	}
	s.publish(ctx, events.EventMessageSent, events.MessageSentPayload{
		ListenerID: listenerID,
		MessageID:  message.ID,
		Priority:   message.Priority,
	})
	return message, nil
}

// Messages returns a listener's message history, oldest first.
func (s *ListenerService) Messages(ctx context.Context, listenerID string) ([]domain.Message, error) {
	return s.client.ListMessages(ctx, listenerID)
}

// UpdateStatus changes a listener's presence state and refreshes the store.
func (s *ListenerService) UpdateStatus(ctx context.Context, listenerID string, status domain.PresenceStatus) error {
	if err := s.client.UpdateListenerStatus(ctx, listenerID, status); err != nil {
		return err
	}
	s.listeners.Refresh(ctx)
	return nil
}

// UpdateAvailability validates and replaces a listener's weekly schedule.
func (s *ListenerService) UpdateAvailability(ctx context.Context, listenerID string, schedule domain.WeeklySchedule) error {
	if err := schedule.Validate(); err != nil {
		return apperrors.NewValidationError(err.Error(), map[string]any{"availability": err.Error()})
	}
	if err := s.client.UpdateAvailability(ctx, listenerID, schedule); err != nil {
		return err
	}
	s.listeners.Refresh(ctx)
	return nil
}

// Report fetches the per-listener report blob for download.
func (s *ListenerService) Report(ctx context.Context, listenerID, format string) ([]byte, string, error) {
	return s.client.ListenerReport(ctx, listenerID, format)
}

func (s *ListenerService) publish(ctx context.Context, eventType events.EventType, payload any) {
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
