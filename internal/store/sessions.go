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

// Sessions is the resource store backing the session management view.
// Search matches the user id, the listener id and the status text.
type Sessions struct {
	*Store[domain.Session]

	now func() time.Time
}

// NewSessions builds the session store.
func NewSessions(client *platform.Client, interval time.Duration, pageSize int, logger *zap.Logger, obs *observability.Metrics) *Sessions {
	s := &Sessions{now: time.Now}
	s.Store = New(Config[domain.Session]{
		Name: "sessions",
		Fetch: func(ctx context.Context, rng domain.TimeRange) ([]domain.Session, error) {
			return client.ListSessions(ctx, platform.SessionQuery{Range: rng})
		},
		Match:      matchSession,
		Interval:   interval,
		PageSize:   pageSize,
		ErrMessage: "Failed to fetch sessions. Please try again.",
		Logger:     logger,
		Metrics:    obs,
	})
	return s
}

func matchSession(session domain.Session, term string) bool {
	if strings.Contains(strings.ToLower(session.UserID), term) {
		return true
	}
	if session.ListenerID != nil && strings.Contains(strings.ToLower(*session.ListenerID), term) {
		return true
	}
	return strings.Contains(strings.ToLower(string(session.Status)), term)
}

// CompletedToday recomputes locally, from the fetched list, how many
// sessions finished on the current calendar day.
func (s *Sessions) CompletedToday() int {
	today := s.now()
	count := 0
	for _, session := range s.Raw() {
		if session.CompletedOn(today) {
			count++
		}
	}
	return count
}

// Unassigned returns the sessions still waiting for a listener, oldest first
// as delivered by the backend.
func (s *Sessions) Unassigned() []domain.Session {
	var unassigned []domain.Session
	for _, session := range s.Raw() {
		if session.Status == domain.SessionStatusUnassigned {
			unassigned = append(unassigned, session)
		}
	}
	return unassigned
}
