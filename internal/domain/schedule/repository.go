package schedule

import (
	"context"
	"time"
)

type WorkScheduleRepository interface {
	Create(ctx context.Context, workSchedule WorkSchedule) (WorkSchedule, error)
	GetByID(ctx context.Context, id string, companyID string) (WorkSchedule, error)
	GetDefault(ctx context.Context, companyID string) (WorkSchedule, error)
	ListByCompany(ctx context.Context, companyID string) ([]WorkSchedule, error)
}

type ScheduleAssignmentRepository interface {
	Create(ctx context.Context, assignment ScheduleAssignment) (ScheduleAssignment, error)
	// GetEffective returns the assignment covering date for the employee, or
	// nil when none covers it.
	GetEffective(ctx context.Context, employeeID string, date time.Time) (*ScheduleAssignment, error)
	ListByEmployee(ctx context.Context, employeeID string) ([]ScheduleAssignment, error)
}
