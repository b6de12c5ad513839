package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/worklog-hq/attendance-backend-go/internal/domain/attendance"
	"github.com/worklog-hq/attendance-backend-go/internal/domain/auth"
	"github.com/worklog-hq/attendance-backend-go/internal/pkg/database"
)

const (
	defaultHistoryLimit = 30
	maxHistoryLimit     = 100
)

type AttendanceServiceImpl struct {
	db *database.DB
	attendance.AttendanceRepository
}

func NewAttendanceService(db *database.DB, attendanceRepository attendance.AttendanceRepository) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		db:                   db,
		AttendanceRepository: attendanceRepository,
	}
}

// DayKey formats t as the local-timezone calendar date. All attendance
// comparisons partition on this key, not on UTC, so a request near midnight
// is never attributed to the wrong day by a UTC offset.
func DayKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// CheckIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	identity, err := auth.IdentityFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := time.Now()
	today := DayKey(now)

	// Early exit for the common repeat case. The (user_id, date) unique
	// index remains the authority under concurrent check-ins.
	existing, err := a.AttendanceRepository.GetByUserAndDate(ctx, identity.UserID, today)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check existing attendance: %w", err)
	}
	if existing != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedIn
	}

	created, err := a.AttendanceRepository.Create(ctx, attendance.Attendance{
		UserID:      identity.UserID,
		Date:        today,
		CheckInTime: now,
		Status:      attendance.StatusPresent,
		Notes:       req.Notes,
	})
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return created.ToResponse(), nil
}

// CheckOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	identity, err := auth.IdentityFromContext(ctx)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := time.Now()
	today := DayKey(now)

	record, err := a.AttendanceRepository.GetByUserAndDate(ctx, identity.UserID, today)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}
	if record == nil {
		return attendance.AttendanceResponse{}, attendance.ErrNoCheckInToday
	}
	if record.CheckOutTime != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedOut
	}

	record.CheckOutTime = &now
	if req.Notes != nil {
		record.Notes = req.Notes
	}

	updated, err := a.AttendanceRepository.SetCheckOut(ctx, *record)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	return updated.ToResponse(), nil
}

// Today implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Today(ctx context.Context) (attendance.TodayResponse, error) {
	identity, err := auth.IdentityFromContext(ctx)
	if err != nil {
		return attendance.TodayResponse{}, err
	}

	today := DayKey(time.Now())

	record, err := a.AttendanceRepository.GetByUserAndDate(ctx, identity.UserID, today)
	if err != nil {
		return attendance.TodayResponse{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}

	result := attendance.TodayResponse{
		HasCheckedIn: record != nil,
		Date:         today,
	}
	if record != nil {
		resp := record.ToResponse()
		result.Attendance = &resp
	}

	return result, nil
}

// History implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) History(ctx context.Context, req attendance.HistoryRequest) (attendance.HistoryResponse, error) {
	identity, err := auth.IdentityFromContext(ctx)
	if err != nil {
		return attendance.HistoryResponse{}, err
	}

	limit := req.Limit
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	if limit > maxHistoryLimit {
		limit = maxHistoryLimit
	}
	offset := req.Offset
	if offset < 0 {
		offset = 0
	}

	records, total, err := a.AttendanceRepository.ListByUser(ctx, identity.UserID, limit, offset)
	if err != nil {
		return attendance.HistoryResponse{}, err
	}

	responses := make([]attendance.AttendanceResponse, 0, len(records))
	for _, record := range records {
		responses = append(responses, record.ToResponse())
	}

	return attendance.HistoryResponse{
		Attendance: responses,
		Pagination: attendance.Pagination{
			Total:  total,
			Limit:  limit,
			Offset: offset,
		},
	}, nil
}

// Cleanup implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) Cleanup(ctx context.Context) (attendance.CleanupResponse, error) {
	identity, err := auth.IdentityFromContext(ctx)
	if err != nil {
		return attendance.CleanupResponse{}, err
	}

	deleted, err := a.AttendanceRepository.DeleteByUser(ctx, identity.UserID)
	if err != nil {
		return attendance.CleanupResponse{}, err
	}

	return attendance.CleanupResponse{DeletedCount: deleted}, nil
}
