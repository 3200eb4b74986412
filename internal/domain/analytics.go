package domain

// TimeRange is the coarse selector the dashboard views share.
type TimeRange string

const (
	TimeRange24h TimeRange = "24h"
	TimeRange7d  TimeRange = "7d"
	TimeRange30d TimeRange = "30d"
)

// ValidTimeRange reports whether r is one of the selector values.
func ValidTimeRange(r TimeRange) bool {
	switch r {
	case TimeRange24h, TimeRange7d, TimeRange30d:
		return true
	}
	return false
}

// UserMetrics is the server-computed user aggregate, displayed as-is.
type UserMetrics struct {
	TotalUsers    int `json:"totalUsers"`
	ActiveUsers   int `json:"activeUsers"`
	NewUsers      int `json:"newUsers"`
	FlaggedUsers  int `json:"flaggedUsers"`
	VerifiedUsers int `json:"verifiedUsers"`
}

// SessionMetrics is the server-computed session aggregate.
type SessionMetrics struct {
	TotalSessions     int     `json:"totalSessions"`
	ActiveSessions    int     `json:"activeSessions"`
	CompletedSessions int     `json:"completedSessions"`
	CancelledSessions int     `json:"cancelledSessions"`
	AverageDuration   float64 `json:"averageDuration"`
}

// ListenerPoolMetrics is the server-computed listener aggregate.
type ListenerPoolMetrics struct {
	TotalListeners     int     `json:"totalListeners"`
	OnlineListeners    int     `json:"onlineListeners"`
	InSessionListeners int     `json:"inSessionListeners"`
	AverageRating      float64 `json:"averageRating"`
}

// AnalyticsData is the dashboard snapshot combining all aggregates.
type AnalyticsData struct {
	Users     UserMetrics         `json:"users"`
	Sessions  SessionMetrics      `json:"sessions"`
	Listeners ListenerPoolMetrics `json:"listeners"`
	Range     TimeRange           `json:"range"`
}
