package attendance

import (
	"time"

	"github.com/worklog-hq/attendance-backend-go/internal/pkg/validator"
)

const maxNotesLength = 1000

type CheckInRequest struct {
	Notes *string `json:"notes,omitempty"`
}

func (r *CheckInRequest) Validate() error {
	return validateNotes(r.Notes)
}

type CheckOutRequest struct {
	Notes *string `json:"notes,omitempty"`
}

func (r *CheckOutRequest) Validate() error {
	return validateNotes(r.Notes)
}

func validateNotes(notes *string) error {
	if notes != nil && len(*notes) > maxNotesLength {
		return validator.ValidationErrors{{
			Field:   "notes",
			Message: "notes must not exceed 1000 characters",
		}}
	}
	return nil
}

// HistoryRequest carries pagination for the owner-scoped history listing.
// Limit and Offset are clamped by the service when absent or out of range.
type HistoryRequest struct {
	Limit  int
	Offset int
}

type AttendanceResponse struct {
	ID           string  `json:"id"`
	UserID       string  `json:"user_id"`
	Date         string  `json:"date"`
	CheckInTime  string  `json:"check_in_time"`
	CheckOutTime *string `json:"check_out_time"`
	Status       string  `json:"status"`
	Notes        *string `json:"notes"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

func (a Attendance) ToResponse() AttendanceResponse {
	var checkOut *string
	if a.CheckOutTime != nil {
		formatted := a.CheckOutTime.Format(time.RFC3339)
		checkOut = &formatted
	}
	return AttendanceResponse{
		ID:           a.ID,
		UserID:       a.UserID,
		Date:         a.Date,
		CheckInTime:  a.CheckInTime.Format(time.RFC3339),
		CheckOutTime: checkOut,
		Status:       a.Status,
		Notes:        a.Notes,
		CreatedAt:    a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    a.UpdatedAt.Format(time.RFC3339),
	}
}

// TodayResponse reports the caller's state for the current day key. The
// record is null when the caller has not checked in yet.
type TodayResponse struct {
	Attendance   *AttendanceResponse `json:"attendance"`
	HasCheckedIn bool                `json:"has_checked_in"`
	Date         string              `json:"date"`
}

type Pagination struct {
	Total  int64 `json:"total"`
	Limit  int   `json:"limit"`
	Offset int   `json:"offset"`
}

type HistoryResponse struct {
	Attendance []AttendanceResponse `json:"attendance"`
	Pagination Pagination           `json:"pagination"`
}

type CleanupResponse struct {
	DeletedCount int64 `json:"deleted_count"`
}
