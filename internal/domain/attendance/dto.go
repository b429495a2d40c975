package attendance

import (
	"time"

	"github.com/tamabee-group/api-hr-sub001/internal/pkg/validator"
)

type CheckInRequest struct {
	EmployeeID string `json:"-"`
	CompanyID  string `json:"-"`
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.CompanyID) {
		errs = append(errs, validator.ValidationError{
			Field:   "company_id",
			Message: "company_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type CheckOutRequest struct {
	EmployeeID string `json:"-"`
	CompanyID  string `json:"-"`
}

func (r *CheckOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.CompanyID) {
		errs = append(errs, validator.ValidationError{
			Field:   "company_id",
			Message: "company_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type StartBreakRequest struct {
	AttendanceRecordID string `json:"attendance_record_id"`
	CompanyID          string `json:"-"`
}

func (r *StartBreakRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.AttendanceRecordID) {
		errs = append(errs, validator.ValidationError{
			Field:   "attendance_record_id",
			Message: "attendance_record_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type EndBreakRequest struct {
	BreakRecordID string `json:"break_record_id"`
	CompanyID     string `json:"-"`
}

func (r *EndBreakRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.BreakRecordID) {
		errs = append(errs, validator.ValidationError{
			Field:   "break_record_id",
			Message: "break_record_id is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AttendanceResponse struct {
	ID                string          `json:"id"`
	EmployeeID        string          `json:"employee_id"`
	WorkDate          string          `json:"work_date"`
	OriginalCheckIn   *string         `json:"original_check_in,omitempty"`
	OriginalCheckOut  *string         `json:"original_check_out,omitempty"`
	RoundedCheckIn    *string         `json:"rounded_check_in,omitempty"`
	RoundedCheckOut   *string         `json:"rounded_check_out,omitempty"`
	Status            string          `json:"status"`
	WorkingMinutes    *int            `json:"working_minutes,omitempty"`
	LateMinutes       *int            `json:"late_minutes,omitempty"`
	EarlyLeaveMinutes *int            `json:"early_leave_minutes,omitempty"`
	Breaks            []BreakResponse `json:"breaks,omitempty"`
}

type BreakResponse struct {
	ID                    string  `json:"id"`
	AttendanceRecordID    string  `json:"attendance_record_id"`
	BreakNumber           int     `json:"break_number"`
	BreakStart            string  `json:"break_start"`
	BreakEnd              *string `json:"break_end,omitempty"`
	ActualBreakMinutes    *int    `json:"actual_break_minutes,omitempty"`
	EffectiveBreakMinutes *int    `json:"effective_break_minutes,omitempty"`
}

func timePtrToString(t *time.Time) *string {
	if t == nil {
		return nil
	}
	format := t.Format("2006-01-02 15:04:05")
	return &format
}

// NewAttendanceResponse maps an AttendanceRecord and its breaks to a snapshot DTO.
func NewAttendanceResponse(record AttendanceRecord, breaks []BreakRecord) AttendanceResponse {
	resp := AttendanceResponse{
		ID:                record.ID,
		EmployeeID:        record.EmployeeID,
		WorkDate:          record.WorkDate.Format("2006-01-02"),
		OriginalCheckIn:   timePtrToString(record.OriginalCheckIn),
		OriginalCheckOut:  timePtrToString(record.OriginalCheckOut),
		RoundedCheckIn:    timePtrToString(record.RoundedCheckIn),
		RoundedCheckOut:   timePtrToString(record.RoundedCheckOut),
		Status:            string(record.Status),
		WorkingMinutes:    record.WorkingMinutes,
		LateMinutes:       record.LateMinutes,
		EarlyLeaveMinutes: record.EarlyLeaveMinutes,
	}
	for _, b := range breaks {
		resp.Breaks = append(resp.Breaks, NewBreakResponse(b))
	}
	return resp
}

// NewBreakResponse maps a BreakRecord to a snapshot DTO.
func NewBreakResponse(record BreakRecord) BreakResponse {
	return BreakResponse{
		ID:                    record.ID,
		AttendanceRecordID:    record.AttendanceRecordID,
		BreakNumber:           record.BreakNumber,
		BreakStart:            record.BreakStart.Format("2006-01-02 15:04:05"),
		BreakEnd:              timePtrToString(record.BreakEnd),
		ActualBreakMinutes:    record.ActualBreakMinutes,
		EffectiveBreakMinutes: record.EffectiveBreakMinutes,
	}
}
