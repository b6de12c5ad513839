package attendance

import "context"

// AttendanceService defines business logic for the check-in/check-out day
// cycle. Per user per day the state machine is
// NOT_CHECKED_IN -> CHECKED_IN -> CHECKED_OUT, terminal for that day.
type AttendanceService interface {
	// CheckIn opens today's attendance record for the caller
	CheckIn(ctx context.Context, req CheckInRequest) (AttendanceResponse, error)

	// CheckOut closes today's attendance record for the caller
	CheckOut(ctx context.Context, req CheckOutRequest) (AttendanceResponse, error)

	// Today reports the caller's record and state for the current day key
	Today(ctx context.Context) (TodayResponse, error)

	// History lists the caller's records date-descending with pagination
	History(ctx context.Context, req HistoryRequest) (HistoryResponse, error)

	// Cleanup deletes all of the caller's records. Test/admin utility, never
	// part of the normal check-in flow.
	Cleanup(ctx context.Context) (CleanupResponse, error)
}
