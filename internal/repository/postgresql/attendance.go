package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tamabee-group/api-hr-sub001/internal/domain/attendance"
	"github.com/tamabee-group/api-hr-sub001/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	id, employee_id, company_id, work_date,
	original_check_in, original_check_out, rounded_check_in, rounded_check_out,
	status, working_minutes, late_minutes, early_leave_minutes,
	created_at, updated_at
`

func scanAttendance(row pgx.Row) (attendance.AttendanceRecord, error) {
	var record attendance.AttendanceRecord
	err := row.Scan(
		&record.ID, &record.EmployeeID, &record.CompanyID, &record.WorkDate,
		&record.OriginalCheckIn, &record.OriginalCheckOut, &record.RoundedCheckIn, &record.RoundedCheckOut,
		&record.Status, &record.WorkingMinutes, &record.LateMinutes, &record.EarlyLeaveMinutes,
		&record.CreatedAt, &record.UpdatedAt,
	)
	return record, err
}

// Create implements attendance.AttendanceRepository.
func (a *attendanceRepository) Create(ctx context.Context, record attendance.AttendanceRecord) (attendance.AttendanceRecord, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO attendance_records (
			employee_id, company_id, work_date,
			original_check_in, original_check_out, rounded_check_in, rounded_check_out,
			status, working_minutes, late_minutes, early_leave_minutes
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		record.EmployeeID,
		record.CompanyID,
		record.WorkDate,
		record.OriginalCheckIn,
		record.OriginalCheckOut,
		record.RoundedCheckIn,
		record.RoundedCheckOut,
		record.Status,
		record.WorkingMinutes,
		record.LateMinutes,
		record.EarlyLeaveMinutes,
	).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)
	if err != nil {
		return attendance.AttendanceRecord{}, fmt.Errorf("failed to insert attendance record: %w", err)
	}

	return record, nil
}

// GetByID implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByID(ctx context.Context, id string, companyID string) (attendance.AttendanceRecord, error) {
	q := GetQuerier(ctx, a.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendance_records WHERE id = $1 AND company_id = $2`

	record, err := scanAttendance(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.AttendanceRecord{}, attendance.ErrAttendanceNotFound
		}
		return attendance.AttendanceRecord{}, fmt.Errorf("failed to get attendance record: %w", err)
	}

	return record, nil
}

// GetByEmployeeAndDate implements attendance.AttendanceRepository.
func (a *attendanceRepository) GetByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time, companyID string) (*attendance.AttendanceRecord, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT ` + attendanceColumns + `
		FROM attendance_records
		WHERE employee_id = $1 AND work_date = $2 AND company_id = $3
	`

	record, err := scanAttendance(q.QueryRow(ctx, query, employeeID, date, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance record by employee and date: %w", err)
	}

	return &record, nil
}

// Update implements attendance.AttendanceRepository.
func (a *attendanceRepository) Update(ctx context.Context, record attendance.AttendanceRecord) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE attendance_records SET
			original_check_in = $1,
			original_check_out = $2,
			rounded_check_in = $3,
			rounded_check_out = $4,
			status = $5,
			working_minutes = $6,
			late_minutes = $7,
			early_leave_minutes = $8,
			updated_at = NOW()
		WHERE id = $9 AND company_id = $10
	`

	tag, err := q.Exec(ctx, query,
		record.OriginalCheckIn,
		record.OriginalCheckOut,
		record.RoundedCheckIn,
		record.RoundedCheckOut,
		record.Status,
		record.WorkingMinutes,
		record.LateMinutes,
		record.EarlyLeaveMinutes,
		record.ID,
		record.CompanyID,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrAttendanceNotFound
	}

	return nil
}
