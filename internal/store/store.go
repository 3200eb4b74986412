package store

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.uber.org/atomic"
	"go.uber.org/zap"

	"github.com/spec-kit/listener-admin/internal/domain"
	"github.com/spec-kit/listener-admin/internal/observability"
)

// FetchFunc loads the raw entity list for a time range.
type FetchFunc[T any] func(ctx context.Context, rng domain.TimeRange) ([]T, error)

// MatchFunc reports whether an item matches a lowercased search term.
type MatchFunc[T any] func(item T, term string) bool

// Config bundles the pieces a resource store needs.
type Config[T any] struct {
	Name     string
	Fetch    FetchFunc[T]
	Match    MatchFunc[T]
	Interval time.Duration
	PageSize int
	// ErrMessage is the static user-facing string shown for any fetch
	// failure, initial or poll alike.
	ErrMessage string
	// OnRangeChange runs after the time range switches, before the refetch;
	// resource wrappers hook their metrics refresh here.
	OnRangeChange func(ctx context.Context, rng domain.TimeRange)
	Logger        *zap.Logger
	Metrics       *observability.Metrics
}

// Store owns the full lifecycle of one admin view's entity list: fetch,
// 30-second polling, local search, pagination and selection. Each store's
// state is disjoint from every other store's, so their polls may interleave
// freely.
type Store[T any] struct {
	cfg Config[T]

	// seq orders fetches. A completion only applies when it carries the
	// most recently issued sequence number; slower, older responses are
	// discarded rather than overwriting newer data.
	seq atomic.Int64

	mu        sync.RWMutex
	raw       []T
	filtered  []T
	search    string
	timeRange domain.TimeRange
	page      int
	loading   bool
	errText   string
	selected  *T
	panelOpen bool
}

// Snapshot is the render-ready view of a store.
type Snapshot[T any] struct {
	Items      []T              `json:"items"`
	Total      int              `json:"total"`
	Page       int              `json:"page"`
	TotalPages int              `json:"totalPages"`
	PageSize   int              `json:"pageSize"`
	HasPrev    bool             `json:"hasPrev"`
	HasNext    bool             `json:"hasNext"`
	Search     string           `json:"search"`
	Range      domain.TimeRange `json:"range"`
	Loading    bool             `json:"loading"`
	Error      string           `json:"error,omitempty"`
}

// New builds a store. Defaults: 30s interval, page size 10, 7d range.
func New[T any](cfg Config[T]) *Store[T] {
	if cfg.Interval <= 0 {
		cfg.Interval = 30 * time.Second
	}
	if cfg.PageSize <= 0 {
		cfg.PageSize = 10
	}
	if cfg.ErrMessage == "" {
		cfg.ErrMessage = "Failed to fetch data. Please try again."
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &Store[T]{cfg: cfg, timeRange: domain.TimeRange7d, page: 1}
}

// Start performs the initial fetch and then polls until ctx is cancelled.
// Cancellation stops the timer; an in-flight fetch resolving afterwards is
// discarded by the sequence check, never applied.
func (s *Store[T]) Start(ctx context.Context) {
	s.Refresh(ctx)
	go func() {
		ticker := time.NewTicker(s.cfg.Interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				// bump the sequence so late responses land stale
				s.seq.Inc()
				return
			case <-ticker.C:
				s.Refresh(ctx)
			}
		}
	}()
}

// Refresh issues a fetch and applies the outcome if it is still the newest.
// Failures set the store's static error string and empty the lists; success
// clears the error. The loading flag drops on every path.
func (s *Store[T]) Refresh(ctx context.Context) {
	id := s.seq.Inc()

	s.mu.Lock()
	s.loading = true
	rng := s.timeRange
	s.mu.Unlock()

	items, err := s.cfg.Fetch(ctx, rng)

	s.mu.Lock()
	defer s.mu.Unlock()
	if id != s.seq.Load() {
		// a newer fetch has been issued; this response is stale
		s.cfg.Logger.Debug("discarding stale fetch",
			zap.String("store", s.cfg.Name), zap.Int64("seq", id))
		return
	}
	s.loading = false
	s.cfg.Metrics.RecordPoll(s.cfg.Name, err != nil)
	if err != nil {
		s.cfg.Logger.Warn("fetch failed",
			zap.String("store", s.cfg.Name), zap.Error(err))
		s.errText = s.cfg.ErrMessage
		s.raw = nil
		s.filtered = nil
		return
	}
	s.errText = ""
	s.raw = items
	s.applyFilterLocked()
}

// Search recomputes the filtered list synchronously from the raw list using
// case-insensitive matching, and resets pagination to the first page.
func (s *Store[T]) Search(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.search = term
	s.page = 1
	s.applyFilterLocked()
}

// SetTimeRange switches the coarse range selector and re-triggers both the
// list fetch and the resource's metrics fetch. Range filtering itself is the
// backend's job.
func (s *Store[T]) SetTimeRange(ctx context.Context, rng domain.TimeRange) {
	if !domain.ValidTimeRange(rng) {
		return
	}
	s.mu.Lock()
	s.timeRange = rng
	s.page = 1
	s.mu.Unlock()
	if s.cfg.OnRangeChange != nil {
		s.cfg.OnRangeChange(ctx, rng)
	}
	s.Refresh(ctx)
}

// Select stores the entity and opens the detail panel.
func (s *Store[T]) Select(item T) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = &item
	s.panelOpen = true
}

// ClearSelection closes the detail panel and drops the selection.
func (s *Store[T]) ClearSelection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.selected = nil
	s.panelOpen = false
}

// Selected returns the current selection, if any.
func (s *Store[T]) Selected() (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.selected == nil {
		var zero T
		return zero, false
	}
	return *s.selected, true
}

// SetPage moves to a 1-based page, clamped to the valid span.
func (s *Store[T]) SetPage(page int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.page = clampPage(page, len(s.filtered), s.cfg.PageSize)
}

// Snapshot returns the current page slice plus view state.
func (s *Store[T]) Snapshot() Snapshot[T] {
	s.mu.RLock()
	defer s.mu.RUnlock()

	total := len(s.filtered)
	totalPages := pageCount(total, s.cfg.PageSize)
	page := clampPage(s.page, total, s.cfg.PageSize)

	start := (page - 1) * s.cfg.PageSize
	end := start + s.cfg.PageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}
	items := make([]T, end-start)
	copy(items, s.filtered[start:end])

	return Snapshot[T]{
		Items:      items,
		Total:      total,
		Page:       page,
		TotalPages: totalPages,
		PageSize:   s.cfg.PageSize,
		HasPrev:    page > 1,
		HasNext:    page < totalPages,
		Search:     s.search,
		Range:      s.timeRange,
		Loading:    s.loading,
		Error:      s.errText,
	}
}

// Raw returns a copy of the unfiltered list.
func (s *Store[T]) Raw() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, len(s.raw))
	copy(out, s.raw)
	return out
}

// Filtered returns a copy of the filtered list.
func (s *Store[T]) Filtered() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, len(s.filtered))
	copy(out, s.filtered)
	return out
}

// TimeRange returns the active range selector value.
func (s *Store[T]) TimeRange() domain.TimeRange {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.timeRange
}

func (s *Store[T]) applyFilterLocked() {
	term := strings.ToLower(strings.TrimSpace(s.search))
	if term == "" || s.cfg.Match == nil {
		s.filtered = append([]T(nil), s.raw...)
		return
	}
	filtered := make([]T, 0, len(s.raw))
	for _, item := range s.raw {
		if s.cfg.Match(item, term) {
			filtered = append(filtered, item)
		}
	}
	s.filtered = filtered
}

func pageCount(total, pageSize int) int {
	if total <= 0 {
		return 1
	}
	return (total + pageSize - 1) / pageSize
}

func clampPage(page, total, pageSize int) int {
	if page < 1 {
		return 1
	}
	if max := pageCount(total, pageSize); page > max {
		return max
	}
	return page
}
