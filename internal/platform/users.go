package platform

import (
	"context"
	"fmt"
	"net/url"

	"github.com/spec-kit/listener-admin/internal/domain"
)

// UserQuery narrows the user listing server-side. Range filtering is
// delegated to the backend; the stores never filter by range locally.
type UserQuery struct {
	Search string
	Range  domain.TimeRange
	Status domain.AccountStatus
}

func (q UserQuery) values() url.Values {
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
	return vals
}

// ListUsers fetches the user list for the admin view.
func (c *Client) ListUsers(ctx context.Context, query UserQuery) ([]domain.User, error) {
	var users []domain.User
	if err := c.get(ctx, "/users", query.values(), &users, "users"); err != nil {
		return nil, err
	}
	return users, nil
}

// UserMetrics fetches the server-computed user aggregates.
func (c *Client) UserMetrics(ctx context.Context, rng domain.TimeRange) (*domain.UserMetrics, error) {
	vals := url.Values{}
	if rng != "" {
		vals.Set("range", string(rng))
	}
	var metrics domain.UserMetrics
	if err := c.get(ctx, "/users/metrics", vals, &metrics, "metrics"); err != nil {
		return nil, err
	}
	return &metrics, nil
}

// FlagUser marks a user account for review.
func (c *Client) FlagUser(ctx context.Context, userID, reason string) error {
	body := map[string]string{"reason": reason}
	return c.post(ctx, fmt.Sprintf("/users/%s/flag", userID), body, nil)
}

// UpdateUserStatus switches a user account between active and inactive.
func (c *Client) UpdateUserStatus(ctx context.Context, userID string, status domain.AccountStatus) error {
	body := map[string]string{"accountStatus": string(status)}
	return c.patch(ctx, fmt.Sprintf("/users/%s/status", userID), body, nil)
}
