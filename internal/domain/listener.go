package domain

// PresenceStatus enumerates the listener's connection state.
type PresenceStatus string

const (
	PresenceOnline    PresenceStatus = "online"
	PresenceOffline   PresenceStatus = "offline"
	PresenceInSession PresenceStatus = "in-session"
)

// AvailabilityState enumerates whether a listener can take new sessions.
type AvailabilityState string

const (
	AvailabilityAvailable AvailabilityState = "available"
	AvailabilityBusy      AvailabilityState = "busy"
	AvailabilityOffline   AvailabilityState = "offline"
)

// ListenerMetrics carries server-computed performance numbers for one listener.
type ListenerMetrics struct {
	TotalSessions  int     `json:"totalSessions"`
	CompletedToday int     `json:"completedToday"`
	AverageRating  float64 `json:"averageRating"`
}

// Listener models a platform-side counselor. Created via the admin form,
// mutated by status/availability calls, never deleted in-app.
type Listener struct {
	ID                 string            `json:"id"`
	Name               string            `json:"name"`
	Description        string            `json:"description"`
	Gender             string            `json:"gender"`
	Email              string            `json:"email"`
	Phone              string            `json:"phone"`
	Specialties        []string          `json:"specialties"`
	Languages          []string          `json:"languages"`
	Schedule           WeeklySchedule    `json:"availability"`
	AvailabilityStatus PresenceStatus    `json:"availabilityStatus"`
	Availability       AvailabilityState `json:"availabilityState"`
	CurrentSessionID   *string           `json:"currentSession,omitempty"`
	Metrics            ListenerMetrics   `json:"metrics"`
}
