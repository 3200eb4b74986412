package platform

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/listener-admin/internal/config"
	"github.com/spec-kit/listener-admin/internal/observability"
	"github.com/spec-kit/listener-admin/internal/session"
	apperrors "github.com/spec-kit/listener-admin/pkg/util"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *session.Session) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	sess := session.New(context.Background(), nil, zap.NewNop())
	sess.Set(context.Background(), "test-token")

	cfg := config.PlatformConfig{
		BaseURL:               srv.URL,
		RequestTimeoutSeconds: 5,
		RetryAttempts:         1,
		RetryDelaySeconds:     1,
	}
	return NewClient(cfg, sess, zap.NewNop(), observability.NewMetrics()), sess
}

func TestClientAttachesAuthHeaders(t *testing.T) {
	var gotAuth, gotContentType string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotContentType = r.Header.Get("Content-Type")
		_, _ = w.Write([]byte(`{"data":{"users":[]},"status":200}`))
	})

	_, err := client.ListUsers(context.Background(), UserQuery{})
	require.NoError(t, err)
	assert.Equal(t, "Bearer test-token", gotAuth)
	assert.Equal(t, "application/json", gotContentType)
}

func TestClientUnwrapsEnvelope(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"data": {"users": [
				{"id": "u1", "name": "Ada", "email": "ada@example.com", "accountStatus": "active"},
				{"id": "u2", "name": "Grace", "email": "grace@example.com", "accountStatus": "inactive"}
			]},
			"status": 200
		}`))
	})

	users, err := client.ListUsers(context.Background(), UserQuery{})
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "Ada", users[0].Name)
	assert.Equal(t, "grace@example.com", users[1].Email)
}

func TestClientUpstreamErrorUsesServerMessage(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"status":500,"message":"database exploded"}`))
	})

	_, err := client.ListSessions(context.Background(), SessionQuery{})
	require.Error(t, err)
	assert.Equal(t, "database exploded", apperrors.ToDomainError(err).Message)
}

func TestClientUpstreamErrorFallbackMessage(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	})

	_, err := client.ListSessions(context.Background(), SessionQuery{})
	require.Error(t, err)
	assert.Equal(t, "request failed with status 503", apperrors.ToDomainError(err).Message)
}

func TestClientUnauthorizedClearsSessionFirst(t *testing.T) {
	client, sess := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	var clearedReason string
	sess.OnClear(func(reason string) {
		clearedReason = reason
	})

	_, err := client.ListSessions(context.Background(), SessionQuery{})
	require.Error(t, err)
	assert.True(t, apperrors.IsUnauthorized(err))
	// the token is gone and the logout hook has fired by the time the
	// caller sees the error
	assert.Empty(t, sess.Token())
	assert.Equal(t, "unauthorized", clearedReason)
}

func TestClientTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	sess := session.New(context.Background(), nil, zap.NewNop())
	cfg := config.PlatformConfig{BaseURL: srv.URL, RetryAttempts: 1}
	client := NewClient(cfg, sess, zap.NewNop(), observability.NewMetrics())

	_, err := client.ListUsers(context.Background(), UserQuery{})
	require.Error(t, err)
	assert.Equal(t, "UPSTREAM_UNAVAILABLE", apperrors.ToDomainError(err).Code)
}

func TestClientBinaryExport(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/csv")
		_, _ = w.Write([]byte("id,name\n1,Ada\n"))
	})

	blob, contentType, err := client.ExportAnalytics(context.Background(), "7d", "csv")
	require.NoError(t, err)
	assert.Equal(t, "text/csv", contentType)
	assert.Equal(t, "id,name\n1,Ada\n", string(blob))
}
