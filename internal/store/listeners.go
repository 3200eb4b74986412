package store

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/listener-admin/internal/domain"
	"github.com/spec-kit/listener-admin/internal/observability"
	"github.com/spec-kit/listener-admin/internal/platform"
)

// Listeners is the resource store backing the listener management view. The
// poll rides the retried monitor feed; the roster is a live snapshot, so the
// range selector does not narrow it. Search matches name and specialties.
type Listeners struct {
	*Store[domain.Listener]

	client *platform.Client
}

// NewListeners builds the listener store.
func NewListeners(client *platform.Client, interval time.Duration, pageSize int, logger *zap.Logger, obs *observability.Metrics) *Listeners {
	l := &Listeners{client: client}
	l.Store = New(Config[domain.Listener]{
		Name: "listeners",
		Fetch: func(ctx context.Context, _ domain.TimeRange) ([]domain.Listener, error) {
			return client.MonitorListeners(ctx)
		},
		Match: func(listener domain.Listener, term string) bool {
			if strings.Contains(strings.ToLower(listener.Name), term) {
				return true
			}
			for _, specialty := range listener.Specialties {
				if strings.Contains(strings.ToLower(specialty), term) {
					return true
				}
			}
			return false
		},
		Interval:   interval,
		PageSize:   pageSize,
		ErrMessage: "Failed to fetch listeners. Please try again.",
		Logger:     logger,
		Metrics:    obs,
	})
	return l
}

// Online returns the listeners currently online or in session, for the
// status strip above the table.
func (l *Listeners) Online() []domain.Listener {
	var online []domain.Listener
	for _, listener := range l.Raw() {
		if listener.AvailabilityStatus == domain.PresenceOnline ||
			listener.AvailabilityStatus == domain.PresenceInSession {
			online = append(online, listener)
		}
	}
	return online
}
