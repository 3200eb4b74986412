package observability

import (
	"strconv"
	"sync"
	"time"
)

// Metrics provides basic in-memory counters for platform calls and polling.
type Metrics struct {
	mu            sync.Mutex
	platformCalls map[string]int64
	platformErrs  map[string]int64
	pollCycles    map[string]int64
	pollFailures  map[string]int64
}

// NewMetrics initializes metrics storage.
func NewMetrics() *Metrics {
	return &Metrics{
		platformCalls: make(map[string]int64),
		platformErrs:  make(map[string]int64),
		pollCycles:    make(map[string]int64),
		pollFailures:  make(map[string]int64),
	}
}

// RecordPlatformCall counts an outbound platform request by path, method and status.
func (m *Metrics) RecordPlatformCall(path, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	key := path + "|" + method + "|" + strconv.Itoa(status)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.platformCalls[key]++
}

// RecordPlatformError counts a failed outbound platform request.
func (m *Metrics) RecordPlatformError(path, method, code string) {
	if m == nil {
		return
	}
	key := path + "|" + method + "|" + code
	m.mu.Lock()
	defer m.mu.Unlock()
	m.platformErrs[key]++
}

// RecordPoll counts one poll cycle for a resource store.
func (m *Metrics) RecordPoll(resource string, failed bool) {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pollCycles[resource]++
	if failed {
		m.pollFailures[resource]++
	}
}

// PollFailures returns the failure count recorded for a resource.
func (m *Metrics) PollFailures(resource string) int64 {
	if m == nil {
		return 0
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pollFailures[resource]
}
