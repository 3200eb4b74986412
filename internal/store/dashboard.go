package store

import (
	"context"
	"sync"
	"time"

	"go.uber.org/atomic"
	"go.uber.org/zap"

	"github.com/spec-kit/listener-admin/internal/domain"
	"github.com/spec-kit/listener-admin/internal/observability"
	"github.com/spec-kit/listener-admin/internal/platform"
)

// Dashboard polls the analytics snapshot and the live monitor feeds for the
// overview page. It is not list-shaped, so it carries its own copy of the
// fetch-sequence discipline instead of embedding Store.
type Dashboard struct {
	client   *platform.Client
	interval time.Duration
	logger   *zap.Logger
	obs      *observability.Metrics

	seq atomic.Int64

	mu           sync.RWMutex
	analytics    *domain.AnalyticsData
	live         []domain.Listener
	liveSessions []domain.Session
	timeRange    domain.TimeRange
	loading      bool
	errText      string
}

// DashboardSnapshot is the render-ready overview state.
type DashboardSnapshot struct {
	Analytics     *domain.AnalyticsData `json:"analytics,omitempty"`
	LiveListeners []domain.Listener     `json:"liveListeners"`
	LiveSessions  []domain.Session      `json:"liveSessions"`
	Range         domain.TimeRange      `json:"range"`
	Loading       bool                  `json:"loading"`
	Error         string                `json:"error,omitempty"`
}

// NewDashboard builds the overview store.
func NewDashboard(client *platform.Client, interval time.Duration, logger *zap.Logger, obs *observability.Metrics) *Dashboard {
	if interval <= 0 {
		interval = 30 * time.Second
	}
	return &Dashboard{
		client:    client,
		interval:  interval,
		logger:    logger,
		obs:       obs,
		timeRange: domain.TimeRange7d,
	}
}

// Start performs the initial fetch and then polls until ctx is cancelled.
func (d *Dashboard) Start(ctx context.Context) {
	d.Refresh(ctx)
	go func() {
		ticker := time.NewTicker(d.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				d.seq.Inc()
				return
			case <-ticker.C:
				d.Refresh(ctx)
			}
		}
	}()
}

// Refresh re-fetches the analytics snapshot and the live monitor feeds,
// applying results only when no newer fetch has been issued meanwhile.
func (d *Dashboard) Refresh(ctx context.Context) {
	id := d.seq.Inc()

	d.mu.Lock()
	d.loading = true
	rng := d.timeRange
	d.mu.Unlock()

	analytics, err := d.client.Analytics(ctx, rng)
	var live []domain.Listener
	var liveSessions []domain.Session
	if err == nil {
		live, err = d.client.MonitorListeners(ctx)
	}
	if err == nil {
		liveSessions, err = d.client.MonitorSessions(ctx)
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if id != d.seq.Load() {
		d.logger.Debug("discarding stale dashboard fetch", zap.Int64("seq", id))
		return
	}
	d.loading = false
	d.obs.RecordPoll("dashboard", err != nil)
	if err != nil {
		d.logger.Warn("dashboard fetch failed", zap.Error(err))
		d.errText = "Failed to fetch analytics. Please try again."
		d.analytics = nil
		d.live = nil
		d.liveSessions = nil
		return
	}
	d.errText = ""
	d.analytics = analytics
	d.live = live
	d.liveSessions = liveSessions
}

// SetTimeRange switches the overview range and re-fetches.
func (d *Dashboard) SetTimeRange(ctx context.Context, rng domain.TimeRange) {
	if !domain.ValidTimeRange(rng) {
		return
	}
	d.mu.Lock()
	d.timeRange = rng
	d.mu.Unlock()
	d.Refresh(ctx)
}

// TimeRange returns the active range selector value.
func (d *Dashboard) TimeRange() domain.TimeRange {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.timeRange
}

// Snapshot returns the current overview state.
func (d *Dashboard) Snapshot() DashboardSnapshot {
	d.mu.RLock()
	defer d.mu.RUnlock()
	live := make([]domain.Listener, len(d.live))
	copy(live, d.live)
	liveSessions := make([]domain.Session, len(d.liveSessions))
	copy(liveSessions, d.liveSessions)
	return DashboardSnapshot{
		Analytics:     d.analytics,
		LiveListeners: live,
		LiveSessions:  liveSessions,
		Range:         d.timeRange,
		Loading:       d.loading,
		Error:         d.errText,
	}
}
