package platform

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/spec-kit/listener-admin/internal/domain"
)

// ListenerQuery narrows the listener listing server-side.
type ListenerQuery struct {
	Search string
	Range  domain.TimeRange
}

func (q ListenerQuery) values() url.Values {
	vals := url.Values{}
	if q.Search != "" {
		vals.Set("search", q.Search)
	}
	if q.Range != "" {
		vals.Set("range", string(q.Range))
	}
	return vals
}

// CreateListenerInput is the admin creation form payload.
type CreateListenerInput struct {
	Name        string                `json:"name"`
	Description string                `json:"description"`
	Gender      string                `json:"gender"`
	Email       string                `json:"email"`
	Phone       string                `json:"phone"`
	Specialties []string              `json:"specialties"`
	Languages   []string              `json:"languages"`
	Schedule    domain.WeeklySchedule `json:"availability"`
}

// MessageInput is the admin-to-listener message payload.
type MessageInput struct {
	Subject  string                 `json:"subject"`
	Content  string                 `json:"content"`
	Priority domain.MessagePriority `json:"priority"`
}

// ListListeners fetches the listener list for the admin view.
func (c *Client) ListListeners(ctx context.Context, query ListenerQuery) ([]domain.Listener, error) {
	var listeners []domain.Listener
	if err := c.get(ctx, "/listeners", query.values(), &listeners, "listeners"); err != nil {
		return nil, err
	}
	return listeners, nil
}

// MonitorListeners fetches the live listener snapshot. The monitor feed backs
// the polling store, so transient failures are retried.
func (c *Client) MonitorListeners(ctx context.Context) ([]domain.Listener, error) {
	var listeners []domain.Listener
	err := c.withRetry(ctx, func() error {
		return c.get(ctx, "/listeners/monitor", nil, &listeners, "listeners")
	})
	if err != nil {
		return nil, err
	}
	return listeners, nil
}

// GetListener fetches one listener.
func (c *Client) GetListener(ctx context.Context, listenerID string) (*domain.Listener, error) {
	var listener domain.Listener
	if err := c.get(ctx, fmt.Sprintf("/listeners/%s", listenerID), nil, &listener, "listener"); err != nil {
		return nil, err
	}
	return &listener, nil
}

// CreateListener registers a new listener profile.
func (c *Client) CreateListener(ctx context.Context, input CreateListenerInput) (*domain.Listener, error) {
	var listener domain.Listener
	if err := c.post(ctx, "/listeners", input, &listener, "listener"); err != nil {
		return nil, err
	}
	return &listener, nil
}

// ListMessages fetches the messages sent to a listener, oldest first.
func (c *Client) ListMessages(ctx context.Context, listenerID string) ([]domain.Message, error) {
	var messages []domain.Message
	if err := c.get(ctx, fmt.Sprintf("/listeners/%s/messages", listenerID), nil, &messages, "messages"); err != nil {
		return nil, err
	}
	domain.SortMessages(messages)
	return messages, nil
}

// SendMessage delivers an admin message to a listener.
func (c *Client) SendMessage(ctx context.Context, listenerID string, input MessageInput) (*domain.Message, error) {
	var message domain.Message
	if err := c.post(ctx, fmt.Sprintf("/listeners/%s/messages", listenerID), input, &message, "message"); err != nil {
		return nil, err
	}
	return &message, nil
}

// UpdateListenerStatus changes a listener's presence state.
func (c *Client) UpdateListenerStatus(ctx context.Context, listenerID string, status domain.PresenceStatus) error {
	body := map[string]string{"availabilityStatus": string(status)}
	return c.patch(ctx, fmt.Sprintf("/listeners/%s/status", listenerID), body, nil)
}

// UpdateAvailability replaces a listener's weekly schedule.
func (c *Client) UpdateAvailability(ctx context.Context, listenerID string, schedule domain.WeeklySchedule) error {
	body := map[string]domain.WeeklySchedule{"availability": schedule}
	return c.patch(ctx, fmt.Sprintf("/listeners/%s/availability", listenerID), body, nil)
}

// ListenerReport downloads the per-listener activity report blob.
func (c *Client) ListenerReport(ctx context.Context, listenerID, format string) ([]byte, string, error) {
	vals := url.Values{}
	if format != "" {
		vals.Set("format", format)
	}
	return c.doRaw(ctx, http.MethodGet, fmt.Sprintf("/listeners/%s/report", listenerID), vals, nil)
}
