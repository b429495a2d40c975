package adjustment

import "time"

// AdjustmentRequest is one proposed retroactive correction of an attendance
// day. Original* fields are snapshots taken at creation and are never mutated
// afterwards; together with the requested* fields they form the audit trail.
type AdjustmentRequest struct {
	ID                 string
	CompanyID          string
	EmployeeID         string
	AttendanceRecordID string
	BreakRecordID      *string

	OriginalCheckIn     *time.Time
	OriginalCheckOut    *time.Time
	RequestedCheckIn    *time.Time
	RequestedCheckOut   *time.Time
	OriginalBreakStart  *time.Time
	OriginalBreakEnd    *time.Time
	RequestedBreakStart *time.Time
	RequestedBreakEnd   *time.Time

	Reason          string
	Status          Status
	ApproverID      *string
	ApproverComment *string
	RejectionReason *string
	DecidedAt       *time.Time
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type Status string

const (
	StatusPending  Status = "PENDING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
)

// RequestsCheckTimes reports whether the request proposes new clock times.
func (a AdjustmentRequest) RequestsCheckTimes() bool {
	return a.RequestedCheckIn != nil || a.RequestedCheckOut != nil
}

// RequestsBreakTimes reports whether the request proposes new break times.
func (a AdjustmentRequest) RequestsBreakTimes() bool {
	return a.RequestedBreakStart != nil || a.RequestedBreakEnd != nil
}
