package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tamabee-group/api-hr-sub001/internal/domain/adjustment"
	"github.com/tamabee-group/api-hr-sub001/internal/pkg/database"
)

type adjustmentRepository struct {
	db *database.DB
}

func NewAdjustmentRepository(db *database.DB) adjustment.AdjustmentRepository {
	return &adjustmentRepository{db: db}
}

const adjustmentColumns = `
	id, company_id, employee_id, attendance_record_id, break_record_id,
	original_check_in, original_check_out, requested_check_in, requested_check_out,
	original_break_start, original_break_end, requested_break_start, requested_break_end,
	reason, status, approver_id, approver_comment, rejection_reason, decided_at,
	created_at, updated_at
`

func scanAdjustment(row pgx.Row) (adjustment.AdjustmentRequest, error) {
	var request adjustment.AdjustmentRequest
	err := row.Scan(
		&request.ID, &request.CompanyID, &request.EmployeeID, &request.AttendanceRecordID, &request.BreakRecordID,
		&request.OriginalCheckIn, &request.OriginalCheckOut, &request.RequestedCheckIn, &request.RequestedCheckOut,
		&request.OriginalBreakStart, &request.OriginalBreakEnd, &request.RequestedBreakStart, &request.RequestedBreakEnd,
		&request.Reason, &request.Status, &request.ApproverID, &request.ApproverComment, &request.RejectionReason, &request.DecidedAt,
		&request.CreatedAt, &request.UpdatedAt,
	)
	return request, err
}

// Create implements adjustment.AdjustmentRepository.
func (a *adjustmentRepository) Create(ctx context.Context, request adjustment.AdjustmentRequest) (adjustment.AdjustmentRequest, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		INSERT INTO adjustment_requests (
			company_id, employee_id, attendance_record_id, break_record_id,
			original_check_in, original_check_out, requested_check_in, requested_check_out,
			original_break_start, original_break_end, requested_break_start, requested_break_end,
			reason, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		request.CompanyID,
		request.EmployeeID,
		request.AttendanceRecordID,
		request.BreakRecordID,
		request.OriginalCheckIn,
		request.OriginalCheckOut,
		request.RequestedCheckIn,
		request.RequestedCheckOut,
		request.OriginalBreakStart,
		request.OriginalBreakEnd,
		request.RequestedBreakStart,
		request.RequestedBreakEnd,
		request.Reason,
		request.Status,
	).Scan(&request.ID, &request.CreatedAt, &request.UpdatedAt)
	if err != nil {
		return adjustment.AdjustmentRequest{}, fmt.Errorf("failed to insert adjustment request: %w", err)
	}

	return request, nil
}

// GetByID implements adjustment.AdjustmentRepository.
func (a *adjustmentRepository) GetByID(ctx context.Context, id string, companyID string) (adjustment.AdjustmentRequest, error) {
	q := GetQuerier(ctx, a.db)

	query := `SELECT ` + adjustmentColumns + ` FROM adjustment_requests WHERE id = $1 AND company_id = $2`

	request, err := scanAdjustment(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return adjustment.AdjustmentRequest{}, adjustment.ErrAdjustmentNotFound
		}
		return adjustment.AdjustmentRequest{}, fmt.Errorf("failed to get adjustment request: %w", err)
	}

	return request, nil
}

// HasPending implements adjustment.AdjustmentRepository.
func (a *adjustmentRepository) HasPending(ctx context.Context, attendanceRecordID string) (bool, error) {
	q := GetQuerier(ctx, a.db)

	query := `
		SELECT EXISTS (
			SELECT 1 FROM adjustment_requests
			WHERE attendance_record_id = $1 AND status = $2
		)
	`

	var exists bool
	if err := q.QueryRow(ctx, query, attendanceRecordID, adjustment.StatusPending).Scan(&exists); err != nil {
		return false, fmt.Errorf("failed to check pending adjustment: %w", err)
	}

	return exists, nil
}

// Update implements adjustment.AdjustmentRepository.
func (a *adjustmentRepository) Update(ctx context.Context, request adjustment.AdjustmentRequest) error {
	q := GetQuerier(ctx, a.db)

	query := `
		UPDATE adjustment_requests SET
			status = $1,
			approver_id = $2,
			approver_comment = $3,
			rejection_reason = $4,
			decided_at = $5,
			updated_at = NOW()
		WHERE id = $6 AND company_id = $7
	`

	tag, err := q.Exec(ctx, query,
		request.Status,
		request.ApproverID,
		request.ApproverComment,
		request.RejectionReason,
		request.DecidedAt,
		request.ID,
		request.CompanyID,
	)
	if err != nil {
		return fmt.Errorf("failed to update adjustment request: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return adjustment.ErrAdjustmentNotFound
	}

	return nil
}
