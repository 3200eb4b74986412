package platform

import (
	"context"
	"time"

	"github.com/spec-kit/listener-admin/internal/domain"
)

// AuthResult is the credential the backend issues on login or setup.
type AuthResult struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// AdminProfile mirrors the backend's admin account record.
type AdminProfile struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// SetupInput registers the initial admin account.
type SetupInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Settings carries the console preferences stored server-side.
type Settings struct {
	NotificationsEnabled bool             `json:"notificationsEnabled"`
	DefaultLanguage      string           `json:"defaultLanguage"`
	DefaultTimeRange     domain.TimeRange `json:"defaultTimeRange"`
}

// Login exchanges admin credentials for an access token. The caller adopts
// the token into the session; the client itself never writes it.
func (c *Client) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	body := map[string]string{"email": email, "password": password}
	var result AuthResult
	if err := c.post(ctx, "/admin/auth", body, &result, "auth"); err != nil {
		return nil, err
	}
	return &result, nil
}

// Setup registers the first admin account and returns its token.
func (c *Client) Setup(ctx context.Context, input SetupInput) (*AuthResult, error) {
	var result AuthResult
	if err := c.post(ctx, "/admin/setup", input, &result, "auth"); err != nil {
		return nil, err
	}
	return &result, nil
}

// Profile fetches the authenticated admin's profile.
func (c *Client) Profile(ctx context.Context) (*AdminProfile, error) {
	var profile AdminProfile
	if err := c.get(ctx, "/admin/profile", nil, &profile, "profile", "admin"); err != nil {
		return nil, err
	}
	return &profile, nil
}

// UpdateProfile saves profile edits.
func (c *Client) UpdateProfile(ctx context.Context, profile AdminProfile) error {
	return c.patch(ctx, "/admin/profile", profile, nil)
}

// ChangePassword rotates the admin password. Hashing is the backend's job;
// the console only relays the values.
func (c *Client) ChangePassword(ctx context.Context, current, next string) error {
	body := map[string]string{"currentPassword": current, "newPassword": next}
	return c.post(ctx, "/admin/change-password", body, nil)
}

// GetSettings fetches console preferences.
func (c *Client) GetSettings(ctx context.Context) (*Settings, error) {
	var settings Settings
	if err := c.get(ctx, "/admin/settings", nil, &settings, "settings"); err != nil {
		return nil, err
	}
	return &settings, nil
}

// UpdateSettings saves console preferences.
func (c *Client) UpdateSettings(ctx context.Context, settings Settings) error {
	return c.patch(ctx, "/admin/settings", settings, nil)
}
