package attendance

import "context"

// AttendanceRepository defines data access for the attendance ledger. All
// reads and writes are scoped to the owning user.
type AttendanceRepository interface {
	// Create inserts a new record. When the insert loses a race on the
	// (user_id, date) unique index the storage collision is returned as
	// ErrAlreadyCheckedIn, not as a generic failure.
	Create(ctx context.Context, record Attendance) (Attendance, error)

	// GetByUserAndDate retrieves the record for a user on a day key.
	// Returns (nil, nil) when no record exists.
	GetByUserAndDate(ctx context.Context, userID string, date string) (*Attendance, error)

	// SetCheckOut stamps the check-out time and optionally replaces notes
	SetCheckOut(ctx context.Context, record Attendance) (Attendance, error)

	// ListByUser retrieves records date-descending with the total count of
	// the user's unfiltered set
	ListByUser(ctx context.Context, userID string, limit int, offset int) ([]Attendance, int64, error)

	// DeleteByUser removes every record owned by the user and reports how
	// many were deleted
	DeleteByUser(ctx context.Context, userID string) (int64, error)
}
