package adjustment

import "context"

// AdjustmentService is the correction workflow: create a PENDING request, then
// decide it exactly once. Approval rewrites the target records through the
// attendance rewriter; rejection leaves them untouched.
type AdjustmentService interface {
	Create(ctx context.Context, req CreateAdjustmentRequest) (AdjustmentResponse, error)
	Approve(ctx context.Context, req DecideAdjustmentRequest) (AdjustmentResponse, error)
	Reject(ctx context.Context, req DecideAdjustmentRequest) (AdjustmentResponse, error)
	Get(ctx context.Context, id string, companyID string) (AdjustmentResponse, error)
}
