package platform

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/spec-kit/listener-admin/internal/domain"
)

// SessionQuery narrows the session listing server-side.
type SessionQuery struct {
	Search   string
	Range    domain.TimeRange
	Status   domain.SessionStatus
	Priority domain.SessionPriority
}

func (q SessionQuery) values() url.Values {
	vals := url.Values{}
	if q.Search != "" {
		vals.Set("search", q.Search)
	}
	if q.Range != "" {
		vals.Set("range", string(q.Range))
	}
	if q.Status != "" {
		vals.Set("status", string(q.Status))
	}
	if q.Priority != "" {
		vals.Set("priority", string(q.Priority))
	}
	return vals
}

// CreateSessionInput is the admin session creation form payload.
type CreateSessionInput struct {
	UserID                string                 `json:"userId"`
	DateTime              time.Time              `json:"dateTime"`
	DurationMinutes       int                    `json:"duration"`
	Priority              domain.SessionPriority `json:"priority"`
	PreferredLanguages    []string               `json:"preferredLanguages"`
	SpecialtyRequirements []string               `json:"specialtyRequirements"`
}

// CreateSession schedules a new session; it starts unassigned.
func (c *Client) CreateSession(ctx context.Context, input CreateSessionInput) (*domain.Session, error) {
	var session domain.Session
	if err := c.post(ctx, "/sessions", input, &session, "session"); err != nil {
		return nil, err
	}
	return &session, nil
}

// ListSessions fetches the filtered session list.
func (c *Client) ListSessions(ctx context.Context, query SessionQuery) ([]domain.Session, error) {
	var sessions []domain.Session
	if err := c.get(ctx, "/sessions", query.values(), &sessions, "sessions"); err != nil {
		return nil, err
	}
	return sessions, nil
}

// ListAllSessions fetches every session regardless of filters.
func (c *Client) ListAllSessions(ctx context.Context) ([]domain.Session, error) {
	var sessions []domain.Session
	if err := c.get(ctx, "/sessions/all", nil, &sessions, "sessions"); err != nil {
		return nil, err
	}
	return sessions, nil
}

// MonitorSessions fetches the live session snapshot, retried like the
// listener monitor feed.
func (c *Client) MonitorSessions(ctx context.Context) ([]domain.Session, error) {
	var sessions []domain.Session
	err := c.withRetry(ctx, func() error {
		return c.get(ctx, "/sessions/monitor", nil, &sessions, "sessions")
	})
	if err != nil {
		return nil, err
	}
	return sessions, nil
}

// AssignSession attaches a listener to an unassigned session.
func (c *Client) AssignSession(ctx context.Context, sessionID, listenerID string) (*domain.Session, error) {
	body := map[string]string{"listenerId": listenerID}
	var session domain.Session
	if err := c.post(ctx, fmt.Sprintf("/sessions/%s/assign", sessionID), body, &session, "session"); err != nil {
		return nil, err
	}
	return &session, nil
}

// UpdateSessionStatus advances a session through its lifecycle.
func (c *Client) UpdateSessionStatus(ctx context.Context, sessionID string, status domain.SessionStatus) (*domain.Session, error) {
	body := map[string]string{"status": string(status)}
	var session domain.Session
	if err := c.patch(ctx, fmt.Sprintf("/sessions/%s/status", sessionID), body, &session, "session"); err != nil {
		return nil, err
	}
	return &session, nil
}
