package session

import (
	"context"
	"sync"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// TokenKey is the single key under which the admin access token persists.
// It mirrors the browser dashboard's one local-storage entry.
const TokenKey = "accessToken"

// TokenStore persists the one token string.
type TokenStore interface {
	Read(ctx context.Context) (string, error)
	Write(ctx context.Context, token string) error
	Delete(ctx context.Context) error
}

// ClearHook observes token clears; reason is "logout" or "unauthorized".
type ClearHook func(reason string)

// Session is the single owner of the admin access token. The platform client
// reads it on every request; only login/setup write it and only logout or a
// 401 clear it. Call sites never touch the store directly.
type Session struct {
	mu     sync.RWMutex
	token  string
	store  TokenStore
	logger *zap.Logger
	hooks  []ClearHook
}

// New builds a session, loading any previously persisted token.
func New(ctx context.Context, store TokenStore, logger *zap.Logger) *Session {
	s := &Session{store: store, logger: logger}
	if store != nil {
		token, err := store.Read(ctx)
		if err != nil {
			logger.Warn("unable to load persisted token", zap.Error(err))
		} else {
			s.token = token
		}
	}
	return s
}

// Token returns the current access token, empty when unauthenticated.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Authenticated reports whether a token is held.
func (s *Session) Authenticated() bool {
	return s.Token() != ""
}

// Set stores a freshly issued token and persists it.
func (s *Session) Set(ctx context.Context, token string) {
	s.mu.Lock()
	s.token = token
	s.mu.Unlock()
	if s.store == nil {
		return
	}
	if err := s.store.Write(ctx, token); err != nil {
		s.logger.Warn("unable to persist token", zap.Error(err))
	}
}

// Clear drops the token, removes it from the store and fires clear hooks.
// Clearing an already-empty session is a no-op so a burst of 401s from
// overlapping polls triggers the hooks once.
func (s *Session) Clear(ctx context.Context, reason string) {
	s.mu.Lock()
	if s.token == "" {
		s.mu.Unlock()
		return
	}
	s.token = ""
	hooks := append([]ClearHook(nil), s.hooks...)
	s.mu.Unlock()

	if s.store != nil {
		if err := s.store.Delete(ctx); err != nil {
			s.logger.Warn("unable to delete persisted token", zap.Error(err))
		}
	}
	for _, hook := range hooks {
		hook(reason)
	}
}

// OnClear registers a hook invoked whenever the token is cleared.
func (s *Session) OnClear(hook ClearHook) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.hooks = append(s.hooks, hook)
}

// ExpiresAt decodes the token's exp claim without verifying the signature;
// verification belongs to the backend. Returns false when the token is absent
// or not a readable JWT.
func (s *Session) ExpiresAt() (time.Time, bool) {
	token := s.Token()
	if token == "" {
		return time.Time{}, false
	}
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
