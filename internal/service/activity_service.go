package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/listener-admin/internal/events"
)

// ActivityService writes an audit trail for console actions to the log.
type ActivityService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewActivityService creates the service.
func NewActivityService(dispatcher events.Dispatcher, logger *zap.Logger) *ActivityService {
	return &ActivityService{dispatcher: dispatcher, logger: logger}
}

// RegisterHandlers subscribes to events.
func (a *ActivityService) RegisterHandlers() {
	if a.dispatcher == nil {
		return
	}
	a.dispatcher.Subscribe(events.EventListenerCreated, a.handle("ListenerCreated"))
	a.dispatcher.Subscribe(events.EventMessageSent, a.handle("MessageSent"))
	a.dispatcher.Subscribe(events.EventSessionCreated, a.handle("SessionCreated"))
	a.dispatcher.Subscribe(events.EventSessionAssigned, a.handle("SessionAssigned"))
	a.dispatcher.Subscribe(events.EventSessionStatusChanged, a.handle("SessionStatusChanged"))
	a.dispatcher.Subscribe(events.EventSessionUnauthorized, a.handle("SessionUnauthorized"))
}

func (a *ActivityService) handle(name string) events.EventHandler {
	return func(ctx context.Context, event events.Event) {
		a.logger.Info(name,
			zap.String("event_id", event.ID),
			zap.Time("at", event.Timestamp),
			zap.Any("payload", event.Payload))
	}
}
