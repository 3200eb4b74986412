package service

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/listener-admin/internal/domain"
	"github.com/spec-kit/listener-admin/internal/platform"
	"github.com/spec-kit/listener-admin/internal/store"
	apperrors "github.com/spec-kit/listener-admin/pkg/util"
)

func TestSessionCreateDefaultsPriority(t *testing.T) {
	var body map[string]any
	mux := http.NewServeMux()
	mux.HandleFunc("POST /sessions", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		_, _ = w.Write([]byte(`{"data":{"session":{"id":"s1","userId":"u1","status":"unassigned","priority":"medium"}},"status":201}`))
	})
	mux.HandleFunc("GET /sessions", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"sessions":[]},"status":200}`))
	})

	client := newPlatformClient(t, mux)
	sessions := store.NewSessions(client, 0, 0, zap.NewNop(), nil)
	svc := NewSessionService(SessionDependencies{Client: client, Sessions: sessions, Logger: zap.NewNop()})

	created, err := svc.Create(context.Background(), platform.CreateSessionInput{
		UserID:          "u1",
		DateTime:        time.Now().Add(24 * time.Hour),
		DurationMinutes: 45,
	})
	require.NoError(t, err)
	assert.Equal(t, domain.SessionStatusUnassigned, created.Status)
	assert.Equal(t, "medium", body["priority"])
}

func TestSessionCreateValidation(t *testing.T) {
	svc := NewSessionService(SessionDependencies{Logger: zap.NewNop()})

	tests := []struct {
		name  string
		input platform.CreateSessionInput
	}{
		{"missing user", platform.CreateSessionInput{DateTime: time.Now(), DurationMinutes: 30}},
		{"missing date", platform.CreateSessionInput{UserID: "u1", DurationMinutes: 30}},
		{"zero duration", platform.CreateSessionInput{UserID: "u1", DateTime: time.Now()}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tt.input)
			require.Error(t, err)
			assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)
		})
	}
}

func TestAllSessionsBypassesViewFilters(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /sessions/all", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"sessions":[
			{"id":"s1","status":"completed"},
			{"id":"s2","status":"cancelled"},
			{"id":"s3","status":"unassigned"}
		]},"status":200}`))
	})

	client := newPlatformClient(t, mux)
	svc := NewSessionService(SessionDependencies{Client: client, Logger: zap.NewNop()})

	all, err := svc.All(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestUpdateStatusGuardsTransitionLocally(t *testing.T) {
	hits := 0
	mux := http.NewServeMux()
	mux.HandleFunc("GET /sessions", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"sessions":[{"id":"s1","status":"completed"}]},"status":200}`))
	})
	mux.HandleFunc("PATCH /sessions/s1/status", func(w http.ResponseWriter, r *http.Request) {
		hits++
		_, _ = w.Write([]byte(`{"data":{"session":{"id":"s1","status":"cancelled"}},"status":200}`))
	})

	client := newPlatformClient(t, mux)
	sessions := store.NewSessions(client, 0, 0, zap.NewNop(), nil)
	sessions.Refresh(context.Background())

	svc := NewSessionService(SessionDependencies{Client: client, Sessions: sessions, Logger: zap.NewNop()})

	// completed is terminal; the invalid click never reaches the backend
	_, err := svc.UpdateStatus(context.Background(), "s1", domain.SessionStatusCancelled)
	require.Error(t, err)
	assert.Equal(t, "CONFLICT", apperrors.ToDomainError(err).Code)
	assert.Zero(t, hits)

	// an unknown session is the backend's call
	_, err = svc.UpdateStatus(context.Background(), "s2", domain.SessionStatusCancelled)
	require.Error(t, err)
	assert.NotEqual(t, "CONFLICT", apperrors.ToDomainError(err).Code)
}

func TestUpdateStatusAdvancesSession(t *testing.T) {
	mux := http.NewServeMux()
	first := true
	mux.HandleFunc("GET /sessions", func(w http.ResponseWriter, r *http.Request) {
		if first {
			first = false
			_, _ = w.Write([]byte(`{"data":{"sessions":[{"id":"s1","status":"assigned"}]},"status":200}`))
			return
		}
		_, _ = w.Write([]byte(`{"data":{"sessions":[{"id":"s1","status":"in-progress"}]},"status":200}`))
	})
	mux.HandleFunc("PATCH /sessions/s1/status", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"session":{"id":"s1","status":"in-progress"}},"status":200}`))
	})

	client := newPlatformClient(t, mux)
	sessions := store.NewSessions(client, 0, 0, zap.NewNop(), nil)
	sessions.Refresh(context.Background())

	svc := NewSessionService(SessionDependencies{Client: client, Sessions: sessions, Logger: zap.NewNop()})

	updated, err := svc.UpdateStatus(context.Background(), "s1", domain.SessionStatusInProgress)
	require.NoError(t, err)
	assert.Equal(t, domain.SessionStatusInProgress, updated.Status)

	raw := sessions.Raw()
	require.Len(t, raw, 1)
	assert.Equal(t, domain.SessionStatusInProgress, raw[0].Status)
}
