package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/listener-admin/internal/events"
	"github.com/spec-kit/listener-admin/internal/platform"
	"github.com/spec-kit/listener-admin/internal/session"
	apperrors "github.com/spec-kit/listener-admin/pkg/util"
)

// AuthService owns the admin login lifecycle: it exchanges credentials with
// the platform and adopts the issued token into the session.
type AuthService struct {
	client     *platform.Client
	session    *session.Session
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// AuthDependencies bundles collaborators for the auth service.
type AuthDependencies struct {
	Client     *platform.Client
	Session    *session.Session
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
}

// NewAuthService constructs the service and hooks session clears into the
// event stream so a 401-driven logout is observable.
func NewAuthService(deps AuthDependencies) *AuthService {
	s := &AuthService{
		client:     deps.Client,
		session:    deps.Session,
		dispatcher: deps.Dispatcher,
		logger:     deps.Logger,
	}
	s.session.OnClear(func(reason string) {
		s.logger.Info("session cleared", zap.String("reason", reason))
		if s.dispatcher != nil && reason == "unauthorized" {
			s.dispatcher.Publish(context.Background(), events.Event{
				ID:        uuid.NewString(),
				Type:      events.EventSessionUnauthorized,
				Timestamp: time.Now(),
				Payload:   events.SessionUnauthorizedPayload{Reason: reason},
			})
		}
	})
	return s
}

// Login authenticates against the platform and stores the returned token.
func (s *AuthService) Login(ctx context.Context, email, password string) (*platform.AuthResult, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, apperrors.NewValidationError("email and password required", nil)
	}
	result, err := s.client.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	s.session.Set(ctx, result.Token)
	return result, nil
}

// Setup registers the initial admin account and stores its token.
func (s *AuthService) Setup(ctx context.Context, input platform.SetupInput) (*platform.AuthResult, error) {
	if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Email) == "" || input.Password == "" {
		return nil, apperrors.NewValidationError("name, email, password required", nil)
	}
	result, err := s.client.Setup(ctx, input)
	if err != nil {
		return nil, err
	}
	s.session.Set(ctx, result.Token)
	return result, nil
}

// Logout drops the session token.
func (s *AuthService) Logout(ctx context.Context) {
	s.session.Clear(ctx, "logout")
}

// Authenticated reports whether the console holds a token. The auth gate
// checks this on every protected request.
func (s *AuthService) Authenticated() bool {
	return s.session.Authenticated()
}

// TokenExpiry exposes the token's expiry for the header widget.
func (s *AuthService) TokenExpiry() (time.Time, bool) {
	return s.session.ExpiresAt()
}
