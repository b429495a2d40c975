package schedule

import (
	"slices"

	"github.com/tamabee-group/api-hr-sub001/internal/pkg/validator"
)

type CreateWorkScheduleRequest struct {
	CompanyID               string `json:"-"`
	Name                    string `json:"name"`
	Type                    string `json:"type"`
	StartTime               string `json:"start_time"` // "15:04"
	EndTime                 string `json:"end_time"`   // "15:04"
	BreakEntitlementMinutes int    `json:"break_entitlement_minutes"`
	IsDefault               bool   `json:"is_default"`
}

func (r *CreateWorkScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}

	if !slices.Contains(ScheduleTypeValues, r.Type) {
		errs = append(errs, validator.ValidationError{
			Field:   "type",
			Message: "type must be FIXED or FLEXIBLE",
		})
	}

	if _, ok := validator.IsValidClockTime(r.StartTime); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "start_time",
			Message: "start_time must be in HH:MM format",
		})
	}

	if _, ok := validator.IsValidClockTime(r.EndTime); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "end_time",
			Message: "end_time must be in HH:MM format",
		})
	}

	if r.BreakEntitlementMinutes < 0 {
		errs = append(errs, validator.ValidationError{
			Field:   "break_entitlement_minutes",
			Message: "break_entitlement_minutes must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type AssignScheduleRequest struct {
	CompanyID      string  `json:"-"`
	EmployeeID     string  `json:"employee_id"`
	WorkScheduleID string  `json:"work_schedule_id"`
	EffectiveFrom  string  `json:"effective_from"`         // "2006-01-02"
	EffectiveTo    *string `json:"effective_to,omitempty"` // "2006-01-02", open-ended when absent
}

func (r *AssignScheduleRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.EmployeeID) {
		errs = append(errs, validator.ValidationError{
			Field:   "employee_id",
			Message: "employee_id is required",
		})
	}

	if validator.IsEmpty(r.WorkScheduleID) {
		errs = append(errs, validator.ValidationError{
			Field:   "work_schedule_id",
			Message: "work_schedule_id is required",
		})
	}

	from, okFrom := validator.IsValidDate(r.EffectiveFrom)
	if !okFrom {
		errs = append(errs, validator.ValidationError{
			Field:   "effective_from",
			Message: "effective_from must be in YYYY-MM-DD format",
		})
	}

	if r.EffectiveTo != nil {
		to, ok := validator.IsValidDate(*r.EffectiveTo)
		if !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "effective_to",
				Message: "effective_to must be in YYYY-MM-DD format",
			})
		} else if okFrom && to.Before(from) {
			errs = append(errs, validator.ValidationError{
				Field:   "effective_to",
				Message: "effective_to must not be before effective_from",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type WorkScheduleResponse struct {
	ID                      string `json:"id"`
	Name                    string `json:"name"`
	Type                    string `json:"type"`
	StartTime               string `json:"start_time"`
	EndTime                 string `json:"end_time"`
	BreakEntitlementMinutes int    `json:"break_entitlement_minutes"`
	IsDefault               bool   `json:"is_default"`
}

type ScheduleAssignmentResponse struct {
	ID             string  `json:"id"`
	EmployeeID     string  `json:"employee_id"`
	WorkScheduleID string  `json:"work_schedule_id"`
	EffectiveFrom  string  `json:"effective_from"`
	EffectiveTo    *string `json:"effective_to,omitempty"`
}
