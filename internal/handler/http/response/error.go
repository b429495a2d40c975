package response

import (
	"errors"
	"net/http"

	"github.com/tamabee-group/api-hr-sub001/internal/domain/adjustment"
	"github.com/tamabee-group/api-hr-sub001/internal/domain/attendance"
	"github.com/tamabee-group/api-hr-sub001/internal/domain/company"
	"github.com/tamabee-group/api-hr-sub001/internal/domain/employee"
	"github.com/tamabee-group/api-hr-sub001/internal/domain/schedule"
	"github.com/tamabee-group/api-hr-sub001/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Attendance domain errors
	case errors.Is(err, attendance.ErrAlreadyCheckedIn):
		Conflict(w, "Already checked in today")
	case errors.Is(err, attendance.ErrNotCheckedIn):
		Conflict(w, "Not checked in yet")
	case errors.Is(err, attendance.ErrAlreadyCheckedOut):
		Conflict(w, "Already checked out")
	case errors.Is(err, attendance.ErrActiveBreakExists):
		Conflict(w, "A break is already in progress")
	case errors.Is(err, attendance.ErrBreakAlreadyEnded):
		Conflict(w, "Break has already been ended")
	case errors.Is(err, attendance.ErrMaxBreaksExceeded):
		BadRequest(w, "Maximum number of breaks per day exceeded", nil)
	case errors.Is(err, attendance.ErrOverlappingBreak):
		Conflict(w, "Break interval overlaps an existing break")
	case errors.Is(err, attendance.ErrCheckOutBeforeIn):
		BadRequest(w, "Check-out must not be before check-in", nil)
	case errors.Is(err, attendance.ErrBreakEndBeforeStart):
		BadRequest(w, "Break end must not be before break start", nil)
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrBreakNotFound):
		NotFound(w, "Break record not found")

	// Adjustment domain errors
	case errors.Is(err, adjustment.ErrAdjustmentNotFound):
		NotFound(w, "Adjustment request not found")
	case errors.Is(err, adjustment.ErrDuplicatePendingAdjustment):
		Conflict(w, "A pending adjustment already exists for this attendance record")
	case errors.Is(err, adjustment.ErrAdjustmentNotPending):
		Conflict(w, "Adjustment request has already been decided")
	case errors.Is(err, adjustment.ErrBreakRecordIDRequired):
		BadRequest(w, "break_record_id is required when break times are requested", nil)
	case errors.Is(err, adjustment.ErrBreakNotOnAttendanceRecord):
		BadRequest(w, "Break record does not belong to the target attendance record", nil)
	case errors.Is(err, adjustment.ErrNothingRequested):
		BadRequest(w, "Adjustment request must propose at least one new value", nil)

	// Schedule domain errors
	case errors.Is(err, schedule.ErrScheduleNotFound):
		NotFound(w, "No work schedule found for this employee and date")
	case errors.Is(err, schedule.ErrAssignmentNotFound):
		NotFound(w, "Schedule assignment not found")
	case errors.Is(err, schedule.ErrOverlappingAssignment):
		Conflict(w, "An assignment already covers part of this date range")

	// Employee and company domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrManagerAccessRequired):
		Forbidden(w, "Manager or owner role required")
	case errors.Is(err, company.ErrCompanyNotFound):
		NotFound(w, "Company not found")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
