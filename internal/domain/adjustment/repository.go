package adjustment

import "context"

type AdjustmentRepository interface {
	Create(ctx context.Context, request AdjustmentRequest) (AdjustmentRequest, error)
	GetByID(ctx context.Context, id string, companyID string) (AdjustmentRequest, error)
	// HasPending reports whether a PENDING request exists for the attendance record.
	HasPending(ctx context.Context, attendanceRecordID string) (bool, error)
	Update(ctx context.Context, request AdjustmentRequest) error
}
