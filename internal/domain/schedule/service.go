package schedule

import (
	"context"
	"time"
)

// Resolver resolves the work schedule that applies to an employee on a date:
// the covering assignment's schedule first, the company default as fallback.
type Resolver interface {
	Resolve(ctx context.Context, employeeID string, companyID string, date time.Time) (WorkSchedule, error)
}

// ScheduleService manages work schedules and assignments.
type ScheduleService interface {
	Resolver

	CreateSchedule(ctx context.Context, req CreateWorkScheduleRequest) (WorkScheduleResponse, error)
	AssignEmployee(ctx context.Context, req AssignScheduleRequest) (ScheduleAssignmentResponse, error)
	GetEffectiveSchedule(ctx context.Context, employeeID string, companyID string, date time.Time) (WorkScheduleResponse, error)
}
