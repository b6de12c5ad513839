package attendance

import "errors"

// Attendance domain errors
var (
	ErrAlreadyCheckedIn  = errors.New("you have already checked in today")
	ErrAlreadyCheckedOut = errors.New("you have already checked out today")
	ErrNoCheckInToday    = errors.New("no check-in record found for today, please check in first")
	ErrRecordNotFound    = errors.New("attendance record not found")
)
