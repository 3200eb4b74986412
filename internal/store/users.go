package store

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/listener-admin/internal/domain"
	"github.com/spec-kit/listener-admin/internal/observability"
	"github.com/spec-kit/listener-admin/internal/platform"
)

// Users is the resource store backing the user management view. Search
// matches name and email.
type Users struct {
	*Store[domain.User]

	client *platform.Client
	logger *zap.Logger

	metricsMu sync.RWMutex
	metrics   *domain.UserMetrics
}

// NewUsers builds the user store.
func NewUsers(client *platform.Client, interval time.Duration, pageSize int, logger *zap.Logger, obs *observability.Metrics) *Users {
	u := &Users{client: client, logger: logger}
	u.Store = New(Config[domain.User]{
		Name: "users",
		Fetch: func(ctx context.Context, rng domain.TimeRange) ([]domain.User, error) {
			return client.ListUsers(ctx, platform.UserQuery{Range: rng})
		},
		Match: func(user domain.User, term string) bool {
			return strings.Contains(strings.ToLower(user.Name), term) ||
				strings.Contains(strings.ToLower(user.Email), term)
		},
		Interval:      interval,
		PageSize:      pageSize,
		ErrMessage:    "Failed to fetch users. Please try again.",
		OnRangeChange: u.refreshMetrics,
		Logger:        logger,
		Metrics:       obs,
	})
	return u
}

// Start begins polling and loads the initial metrics snapshot.
func (u *Users) Start(ctx context.Context) {
	u.refreshMetrics(ctx, u.TimeRange())
	u.Store.Start(ctx)
}

// Metrics returns the latest user aggregate snapshot, nil before first load.
func (u *Users) Metrics() *domain.UserMetrics {
	u.metricsMu.RLock()
	defer u.metricsMu.RUnlock()
	return u.metrics
}

func (u *Users) refreshMetrics(ctx context.Context, rng domain.TimeRange) {
	metrics, err := u.client.UserMetrics(ctx, rng)
	if err != nil {
		u.logger.Warn("user metrics fetch failed", zap.Error(err))
		return
	}
	u.metricsMu.Lock()
	u.metrics = metrics
	u.metricsMu.Unlock()
}
