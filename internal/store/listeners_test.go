package store

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/listener-admin/internal/config"
	"github.com/spec-kit/listener-admin/internal/observability"
	"github.com/spec-kit/listener-admin/internal/platform"
	"github.com/spec-kit/listener-admin/internal/session"
)

func TestListenersPollMonitorFeed(t *testing.T) {
	monitorHits := 0
	mux := http.NewServeMux()
	mux.HandleFunc("GET /listeners/monitor", func(w http.ResponseWriter, r *http.Request) {
		monitorHits++
		_, _ = w.Write([]byte(`{"data":{"listeners":[
			{"id":"l1","name":"Maya","specialties":["grief"],"availabilityStatus":"online"},
			{"id":"l2","name":"Noor","specialties":["anxiety"],"availabilityStatus":"in-session"},
			{"id":"l3","name":"Sam","specialties":["grief"],"availabilityStatus":"offline"}
		]},"status":200}`))
	})

	listeners := NewListeners(newBackedClient(t, mux), 0, 0, zap.NewNop(), nil)
	listeners.Refresh(context.Background())

	assert.Equal(t, 1, monitorHits)
	assert.Len(t, listeners.Raw(), 3)
	assert.Len(t, listeners.Online(), 2)

	listeners.Search("grief")
	filtered := listeners.Filtered()
	require.Len(t, filtered, 2)
	assert.Equal(t, "l1", filtered[0].ID)
	assert.Equal(t, "l3", filtered[1].ID)
}

func TestListenersPollRetriesTransientFailure(t *testing.T) {
	var mu sync.Mutex
	hits := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		hits++
		n := hits
		mu.Unlock()
		if n == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte(`{"data":{"listeners":[{"id":"l1","name":"Maya"}]},"status":200}`))
	}))
	t.Cleanup(srv.Close)

	sess := session.New(context.Background(), nil, zap.NewNop())
	sess.Set(context.Background(), "test-token")
	cfg := config.PlatformConfig{BaseURL: srv.URL, RetryAttempts: 2, RetryDelaySeconds: 1}
	client := platform.NewClient(cfg, sess, zap.NewNop(), observability.NewMetrics())

	listeners := NewListeners(client, 0, 0, zap.NewNop(), nil)
	listeners.Refresh(context.Background())

	mu.Lock()
	assert.Equal(t, 2, hits)
	mu.Unlock()
	snap := listeners.Snapshot()
	assert.Empty(t, snap.Error)
	require.Len(t, snap.Items, 1)
}
