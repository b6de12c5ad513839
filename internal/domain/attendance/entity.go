package attendance

import "time"

const (
	StatusPresent = "present"
	StatusAbsent  = "absent"
	StatusOnLeave = "on_leave"
	StatusRemote  = "remote"
)

// Attendance is one ledger entry per (user, local calendar day). Date is the
// day key: the server-local date formatted as YYYY-MM-DD. CheckOutTime is set
// exactly once and never cleared afterwards.
type Attendance struct {
	ID           string
	UserID       string
	Date         string
	CheckInTime  time.Time
	CheckOutTime *time.Time
	Status       string
	Notes        *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
