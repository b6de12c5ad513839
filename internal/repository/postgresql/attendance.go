package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/worklog-hq/attendance-backend-go/internal/domain/attendance"
	"github.com/worklog-hq/attendance-backend-go/internal/pkg/database"
)

type attendanceRepositoryImpl struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepositoryImpl{db: db}
}

// Create implements attendance.AttendanceRepository. The unique index on
// (user_id, date) is the authoritative duplicate guard: under concurrent
// check-ins exactly one insert wins and every loser gets ErrAlreadyCheckedIn.
func (r *attendanceRepositoryImpl) Create(ctx context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	id, err := uuid.NewV7()
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("generate attendance id: %w", err)
	}

	query := `
		INSERT INTO attendance (id, user_id, date, check_in_time, status, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING id, user_id, date, check_in_time, check_out_time, status, notes, created_at, updated_at
	`

	var created attendance.Attendance
	err = q.QueryRow(ctx, query,
		id.String(),
		record.UserID,
		record.Date,
		record.CheckInTime,
		record.Status,
		record.Notes,
	).Scan(
		&created.ID,
		&created.UserID,
		&created.Date,
		&created.CheckInTime,
		&created.CheckOutTime,
		&created.Status,
		&created.Notes,
		&created.CreatedAt,
		&created.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err, "attendance_user_id_date_key") {
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return created, nil
}

// GetByUserAndDate implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) GetByUserAndDate(ctx context.Context, userID string, date string) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, date, check_in_time, check_out_time, status, notes, created_at, updated_at
		FROM attendance
		WHERE user_id = $1
		  AND date = $2
		LIMIT 1
	`

	var record attendance.Attendance
	err := q.QueryRow(ctx, query, userID, date).Scan(
		&record.ID,
		&record.UserID,
		&record.Date,
		&record.CheckInTime,
		&record.CheckOutTime,
		&record.Status,
		&record.Notes,
		&record.CreatedAt,
		&record.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil // no record for this day
		}
		return nil, fmt.Errorf("failed to get attendance by user and date: %w", err)
	}

	return &record, nil
}

// SetCheckOut implements attendance.AttendanceRepository. The WHERE clause
// re-asserts that check_out_time is still null, so a lost race surfaces as
// ErrAlreadyCheckedOut instead of silently overwriting the first stamp.
func (r *attendanceRepositoryImpl) SetCheckOut(ctx context.Context, record attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendance
		SET check_out_time = $1, notes = $2, updated_at = NOW()
		WHERE id = $3
		  AND check_out_time IS NULL
		RETURNING id, user_id, date, check_in_time, check_out_time, status, notes, created_at, updated_at
	`

	var updated attendance.Attendance
	err := q.QueryRow(ctx, query, record.CheckOutTime, record.Notes, record.ID).Scan(
		&updated.ID,
		&updated.UserID,
		&updated.Date,
		&updated.CheckInTime,
		&updated.CheckOutTime,
		&updated.Status,
		&updated.Notes,
		&updated.CreatedAt,
		&updated.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.Attendance{}, attendance.ErrAlreadyCheckedOut
		}
		return attendance.Attendance{}, fmt.Errorf("failed to set check-out: %w", err)
	}

	return updated, nil
}

// ListByUser implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) ListByUser(ctx context.Context, userID string, limit int, offset int) ([]attendance.Attendance, int64, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, date, check_in_time, check_out_time, status, notes, created_at, updated_at
		FROM attendance
		WHERE user_id = $1
		ORDER BY date DESC
		LIMIT $2 OFFSET $3
	`

	rows, err := q.Query(ctx, query, userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	records := []attendance.Attendance{}
	for rows.Next() {
		var record attendance.Attendance
		if err := rows.Scan(
			&record.ID,
			&record.UserID,
			&record.Date,
			&record.CheckInTime,
			&record.CheckOutTime,
			&record.Status,
			&record.Notes,
			&record.CreatedAt,
			&record.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan attendance row: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate attendance rows: %w", err)
	}

	var total int64
	err = q.QueryRow(ctx, `SELECT COUNT(*) FROM attendance WHERE user_id = $1`, userID).Scan(&total)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count attendance: %w", err)
	}

	return records, total, nil
}

// DeleteByUser implements attendance.AttendanceRepository.
func (r *attendanceRepositoryImpl) DeleteByUser(ctx context.Context, userID string) (int64, error) {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendance WHERE user_id = $1`, userID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete attendance records: %w", err)
	}

	return tag.RowsAffected(), nil
}
