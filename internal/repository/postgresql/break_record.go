package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tamabee-group/api-hr-sub001/internal/domain/attendance"
	"github.com/tamabee-group/api-hr-sub001/internal/pkg/database"
)

type breakRepository struct {
	db *database.DB
}

func NewBreakRepository(db *database.DB) attendance.BreakRepository {
	return &breakRepository{db: db}
}

const breakColumns = `
	id, attendance_record_id, break_number, break_start, break_end,
	actual_break_minutes, effective_break_minutes, created_at, updated_at
`

func scanBreak(row pgx.Row) (attendance.BreakRecord, error) {
	var record attendance.BreakRecord
	err := row.Scan(
		&record.ID, &record.AttendanceRecordID, &record.BreakNumber, &record.BreakStart, &record.BreakEnd,
		&record.ActualBreakMinutes, &record.EffectiveBreakMinutes, &record.CreatedAt, &record.UpdatedAt,
	)
	return record, err
}

// Create implements attendance.BreakRepository.
func (b *breakRepository) Create(ctx context.Context, record attendance.BreakRecord) (attendance.BreakRecord, error) {
	q := GetQuerier(ctx, b.db)

	query := `
		INSERT INTO break_records (
			attendance_record_id, break_number, break_start, break_end,
			actual_break_minutes, effective_break_minutes
		) VALUES (
			$1, $2, $3, $4, $5, $6
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		record.AttendanceRecordID,
		record.BreakNumber,
		record.BreakStart,
		record.BreakEnd,
		record.ActualBreakMinutes,
		record.EffectiveBreakMinutes,
	).Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)
	if err != nil {
		return attendance.BreakRecord{}, fmt.Errorf("failed to insert break record: %w", err)
	}

	return record, nil
}

// GetByID implements attendance.BreakRepository.
func (b *breakRepository) GetByID(ctx context.Context, id string) (attendance.BreakRecord, error) {
	q := GetQuerier(ctx, b.db)

	query := `SELECT ` + breakColumns + ` FROM break_records WHERE id = $1`

	record, err := scanBreak(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return attendance.BreakRecord{}, attendance.ErrBreakNotFound
		}
		return attendance.BreakRecord{}, fmt.Errorf("failed to get break record: %w", err)
	}

	return record, nil
}

// ListByAttendanceID implements attendance.BreakRepository.
func (b *breakRepository) ListByAttendanceID(ctx context.Context, attendanceRecordID string) ([]attendance.BreakRecord, error) {
	q := GetQuerier(ctx, b.db)

	query := `
		SELECT ` + breakColumns + `
		FROM break_records
		WHERE attendance_record_id = $1
		ORDER BY break_number
	`

	rows, err := q.Query(ctx, query, attendanceRecordID)
	if err != nil {
		return nil, fmt.Errorf("failed to list break records: %w", err)
	}
	defer rows.Close()

	var breaks []attendance.BreakRecord
	for rows.Next() {
		record, err := scanBreak(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan break record: %w", err)
		}
		breaks = append(breaks, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate break records: %w", err)
	}

	return breaks, nil
}

// GetActive implements attendance.BreakRepository.
func (b *breakRepository) GetActive(ctx context.Context, attendanceRecordID string) (*attendance.BreakRecord, error) {
	q := GetQuerier(ctx, b.db)

	query := `
		SELECT ` + breakColumns + `
		FROM break_records
		WHERE attendance_record_id = $1 AND break_end IS NULL
		LIMIT 1
	`

	record, err := scanBreak(q.QueryRow(ctx, query, attendanceRecordID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get active break: %w", err)
	}

	return &record, nil
}

// Update implements attendance.BreakRepository.
func (b *breakRepository) Update(ctx context.Context, record attendance.BreakRecord) error {
	q := GetQuerier(ctx, b.db)

	query := `
		UPDATE break_records SET
			break_start = $1,
			break_end = $2,
			actual_break_minutes = $3,
			effective_break_minutes = $4,
			updated_at = NOW()
		WHERE id = $5
	`

	tag, err := q.Exec(ctx, query,
		record.BreakStart,
		record.BreakEnd,
		record.ActualBreakMinutes,
		record.EffectiveBreakMinutes,
		record.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update break record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrBreakNotFound
	}

	return nil
}
