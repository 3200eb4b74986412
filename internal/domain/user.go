package domain

import "time"

// AccountStatus represents lifecycle states for an end-user account.
type AccountStatus string

const (
	AccountStatusActive   AccountStatus = "active"
	AccountStatusInactive AccountStatus = "inactive"
)

// User is the platform end-user as mirrored from the backend. The console never
// owns these records; they are created server-side on registration and mutated
// only through flag/status calls.
type User struct {
	ID               string        `json:"id"`
	Name             string        `json:"name"`
	Email            string        `json:"email"`
	RegistrationDate time.Time     `json:"registrationDate"`
	LastLoginDate    *time.Time    `json:"lastLoginDate,omitempty"`
	AccountStatus    AccountStatus `json:"accountStatus"`
	TotalSessions    int           `json:"totalSessions"`
	LoginAttempts    int           `json:"loginAttempts"`
	ReportedIssues   int           `json:"reportedIssues"`
	Verified         bool          `json:"verified"`
	Device           string        `json:"device,omitempty"`
	Location         string        `json:"location,omitempty"`
}
