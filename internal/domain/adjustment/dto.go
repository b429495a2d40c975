package adjustment

import (
	"time"

	"github.com/tamabee-group/api-hr-sub001/internal/pkg/validator"
)

const timestampLayout = "2006-01-02 15:04:05"

type CreateAdjustmentRequest struct {
	EmployeeID         string  `json:"-"`
	CompanyID          string  `json:"-"`
	AttendanceRecordID string  `json:"attendance_record_id"`
	BreakRecordID      *string `json:"break_record_id,omitempty"`

	RequestedCheckIn    *string `json:"requested_check_in,omitempty"`
	RequestedCheckOut   *string `json:"requested_check_out,omitempty"`
	RequestedBreakStart *string `json:"requested_break_start,omitempty"`
	RequestedBreakEnd   *string `json:"requested_break_end,omitempty"`

	Reason string `json:"reason"`
}

func (r *CreateAdjustmentRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.AttendanceRecordID) {
		errs = append(errs, validator.ValidationError{
			Field:   "attendance_record_id",
			Message: "attendance_record_id is required",
		})
	}

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "reason is required",
		})
	}

	for field, value := range map[string]*string{
		"requested_check_in":    r.RequestedCheckIn,
		"requested_check_out":   r.RequestedCheckOut,
		"requested_break_start": r.RequestedBreakStart,
		"requested_break_end":   r.RequestedBreakEnd,
	} {
		if value == nil {
			continue
		}
		if _, err := time.Parse(timestampLayout, *value); err != nil {
			errs = append(errs, validator.ValidationError{
				Field:   field,
				Message: "must be in YYYY-MM-DD HH:MM:SS format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ParsedTimes returns the requested timestamps as time values. Validate must
// have passed before calling.
func (r *CreateAdjustmentRequest) ParsedTimes() (checkIn, checkOut, breakStart, breakEnd *time.Time) {
	parse := func(s *string) *time.Time {
		if s == nil {
			return nil
		}
		t, _ := time.Parse(timestampLayout, *s)
		return &t
	}
	return parse(r.RequestedCheckIn), parse(r.RequestedCheckOut),
		parse(r.RequestedBreakStart), parse(r.RequestedBreakEnd)
}

type DecideAdjustmentRequest struct {
	ID         string `json:"-"`
	CompanyID  string `json:"-"`
	ApproverID string `json:"-"`
	Comment    string `json:"comment,omitempty"`
	Reason     string `json:"reason,omitempty"`
}

func (r *DecideAdjustmentRequest) ValidateReject() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{
			Field:   "reason",
			Message: "rejection reason is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AdjustmentResponse struct {
	ID                 string  `json:"id"`
	EmployeeID         string  `json:"employee_id"`
	AttendanceRecordID string  `json:"attendance_record_id"`
	BreakRecordID      *string `json:"break_record_id,omitempty"`

	OriginalCheckIn     *string `json:"original_check_in,omitempty"`
	OriginalCheckOut    *string `json:"original_check_out,omitempty"`
	RequestedCheckIn    *string `json:"requested_check_in,omitempty"`
	RequestedCheckOut   *string `json:"requested_check_out,omitempty"`
	OriginalBreakStart  *string `json:"original_break_start,omitempty"`
	OriginalBreakEnd    *string `json:"original_break_end,omitempty"`
	RequestedBreakStart *string `json:"requested_break_start,omitempty"`
	RequestedBreakEnd   *string `json:"requested_break_end,omitempty"`

	Reason          string  `json:"reason"`
	Status          string  `json:"status"`
	ApproverID      *string `json:"approver_id,omitempty"`
	ApproverComment *string `json:"approver_comment,omitempty"`
	RejectionReason *string `json:"rejection_reason,omitempty"`
	DecidedAt       *string `json:"decided_at,omitempty"`
	CreatedAt       string  `json:"created_at"`
}

func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format(timestampLayout)
	return &format
}

// NewAdjustmentResponse maps an AdjustmentRequest to its snapshot DTO.
func NewAdjustmentResponse(req AdjustmentRequest) AdjustmentResponse {
	return AdjustmentResponse{
		ID:                  req.ID,
		EmployeeID:          req.EmployeeID,
		AttendanceRecordID:  req.AttendanceRecordID,
		BreakRecordID:       req.BreakRecordID,
		OriginalCheckIn:     timePtrToString(req.OriginalCheckIn),
		OriginalCheckOut:    timePtrToString(req.OriginalCheckOut),
		RequestedCheckIn:    timePtrToString(req.RequestedCheckIn),
		RequestedCheckOut:   timePtrToString(req.RequestedCheckOut),
		OriginalBreakStart:  timePtrToString(req.OriginalBreakStart),
		OriginalBreakEnd:    timePtrToString(req.OriginalBreakEnd),
		RequestedBreakStart: timePtrToString(req.RequestedBreakStart),
		RequestedBreakEnd:   timePtrToString(req.RequestedBreakEnd),
		Reason:              req.Reason,
		Status:              string(req.Status),
		ApproverID:          req.ApproverID,
		ApproverComment:     req.ApproverComment,
		RejectionReason:     req.RejectionReason,
		DecidedAt:           timePtrToString(req.DecidedAt),
		CreatedAt:           req.CreatedAt.Format(timestampLayout),
	}
}
