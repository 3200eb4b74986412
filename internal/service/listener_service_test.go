package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/spec-kit/listener-admin/internal/config"
	"github.com/spec-kit/listener-admin/internal/domain"
	"github.com/spec-kit/listener-admin/internal/events"
	"github.com/spec-kit/listener-admin/internal/observability"
	"github.com/spec-kit/listener-admin/internal/platform"
	"github.com/spec-kit/listener-admin/internal/session"
	"github.com/spec-kit/listener-admin/internal/store"
	apperrors "github.com/spec-kit/listener-admin/pkg/util"
)

func newPlatformClient(t *testing.T, handler http.Handler) *platform.Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	sess := session.New(context.Background(), nil, zap.NewNop())
	sess.Set(context.Background(), "test-token")
	cfg := config.PlatformConfig{BaseURL: srv.URL, RetryAttempts: 1, RetryDelaySeconds: 1}
	return platform.NewClient(cfg, sess, zap.NewNop(), observability.NewMetrics())
}

func validCreateInput() platform.CreateListenerInput {
	return platform.CreateListenerInput{
		Name:        "Maya",
		Description: "Grief and loss support",
		Gender:      "female",
		Email:       "maya@example.com",
		Phone:       "5551234567",
		Specialties: []string{"grief"},
		Languages:   []string{"en"},
	}
}

func TestValidateCreate(t *testing.T) {
	svc := NewListenerService(ListenerDependencies{Logger: zap.NewNop()})

	tests := []struct {
		name      string
		mutate    func(*platform.CreateListenerInput)
		wantField string
		wantMsg   string
	}{
		{
			name:      "missing email",
			mutate:    func(in *platform.CreateListenerInput) { in.Email = "" },
			wantField: "email",
			wantMsg:   MsgFieldRequired,
		},
		{
			name:      "malformed email",
			mutate:    func(in *platform.CreateListenerInput) { in.Email = "abc" },
			wantField: "email",
			wantMsg:   MsgInvalidEmail,
		},
		{
			name:      "short phone",
			mutate:    func(in *platform.CreateListenerInput) { in.Phone = "12345" },
			wantField: "phone",
			wantMsg:   MsgInvalidPhone,
		},
		{
			name:      "phone with dashes",
			mutate:    func(in *platform.CreateListenerInput) { in.Phone = "555-123-4567" },
			wantField: "phone",
			wantMsg:   MsgInvalidPhone,
		},
		{
			name:      "missing name",
			mutate:    func(in *platform.CreateListenerInput) { in.Name = "   " },
			wantField: "name",
			wantMsg:   MsgFieldRequired,
		},
		{
			name: "incomplete slot",
			mutate: func(in *platform.CreateListenerInput) {
				in.Schedule = domain.DefaultWeeklySchedule()
				in.Schedule[0].Slots[0].EndTime = ""
			},
			wantField: "availability",
			wantMsg:   MsgIncompleteSlot,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			input := validCreateInput()
			tt.mutate(&input)
			fieldErrors := svc.ValidateCreate(input)
			assert.Equal(t, tt.wantMsg, fieldErrors[tt.wantField])
		})
	}

	t.Run("valid form", func(t *testing.T) {
		assert.Empty(t, svc.ValidateCreate(validCreateInput()))
	})
}

func TestCreateValidationNeverReachesNetwork(t *testing.T) {
	hits := 0
	client := newPlatformClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
	}))
	svc := NewListenerService(ListenerDependencies{Client: client, Logger: zap.NewNop()})

	input := validCreateInput()
	input.Email = "not-an-email"

	_, err := svc.Create(context.Background(), input)
	require.Error(t, err)
	domainErr := apperrors.ToDomainError(err)
	assert.Equal(t, "VALIDATION_FAILED", domainErr.Code)
	assert.Equal(t, MsgInvalidEmail, domainErr.Details["email"])
	assert.Zero(t, hits)
}

func TestCreateDefaultsScheduleAndRefreshes(t *testing.T) {
	var submitted platform.CreateListenerInput
	mux := http.NewServeMux()
	mux.HandleFunc("POST /listeners", func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&submitted))
		_, _ = w.Write([]byte(`{"data":{"listener":{"id":"l1","name":"Maya","specialties":["grief"]}},"status":201}`))
	})
	mux.HandleFunc("GET /listeners/monitor", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"data":{"listeners":[{"id":"l1","name":"Maya"}]},"status":200}`))
	})

	client := newPlatformClient(t, mux)
	listeners := store.NewListeners(client, 0, 0, zap.NewNop(), nil)
	dispatcher := events.NewInMemoryDispatcher()
	var created events.ListenerCreatedPayload
	dispatcher.Subscribe(events.EventListenerCreated, func(ctx context.Context, event events.Event) {
		created = event.Payload.(events.ListenerCreatedPayload)
	})

	svc := NewListenerService(ListenerDependencies{
		Client:     client,
		Listeners:  listeners,
		Dispatcher: dispatcher,
		Logger:     zap.NewNop(),
	})

	listener, err := svc.Create(context.Background(), validCreateInput())
	require.NoError(t, err)
	assert.Equal(t, "l1", listener.ID)

	// an empty form schedule falls back to the standard week
	require.Len(t, submitted.Schedule, 7)
	require.NoError(t, submitted.Schedule.Validate())

	// the table reflects the new row without waiting for the next poll
	raw := listeners.Raw()
	require.Len(t, raw, 1)
	assert.Equal(t, "l1", raw[0].ID)

	assert.Equal(t, "l1", created.ListenerID)
	assert.Equal(t, []string{"grief"}, created.Specialties)
}

func TestSendMessageDefaultsPriority(t *testing.T) {
	var body map[string]any
	client := newPlatformClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		_, _ = w.Write([]byte(`{"data":{"message":{"id":"m1","priority":"normal"}},"status":201}`))
	}))
	svc := NewListenerService(ListenerDependencies{Client: client, Logger: zap.NewNop()})

	message, err := svc.SendMessage(context.Background(), "l1", platform.MessageInput{
		Subject: "Schedule review",
		Content: "Please confirm next week's slots.",
	})
	require.NoError(t, err)
	assert.Equal(t, "m1", message.ID)
	assert.Equal(t, "normal", body["priority"])
}

func TestSendMessageRequiresContent(t *testing.T) {
	svc := NewListenerService(ListenerDependencies{Logger: zap.NewNop()})

	_, err := svc.SendMessage(context.Background(), "l1", platform.MessageInput{Subject: "hi"})
	require.Error(t, err)
	assert.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)
}
