package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/tamabee-group/api-hr-sub001/internal/domain/schedule"
)

type WorkScheduleRepository struct {
	mu        sync.RWMutex
	schedules map[string]schedule.WorkSchedule
}

func NewWorkScheduleRepository() *WorkScheduleRepository {
	return &WorkScheduleRepository{schedules: make(map[string]schedule.WorkSchedule)}
}

func (r *WorkScheduleRepository) Create(_ context.Context, ws schedule.WorkSchedule) (schedule.WorkSchedule, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	ws.ID = uuid.NewString()
	ws.CreatedAt = now
	ws.UpdatedAt = now
	r.schedules[ws.ID] = ws
	return ws, nil
}

func (r *WorkScheduleRepository) GetByID(_ context.Context, id string, companyID string) (schedule.WorkSchedule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ws, ok := r.schedules[id]
	if !ok || ws.CompanyID != companyID {
		return schedule.WorkSchedule{}, schedule.ErrScheduleNotFound
	}
	return ws, nil
}

func (r *WorkScheduleRepository) GetDefault(_ context.Context, companyID string) (schedule.WorkSchedule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, ws := range r.schedules {
		if ws.CompanyID == companyID && ws.IsDefault {
			return ws, nil
		}
	}
	return schedule.WorkSchedule{}, schedule.ErrScheduleNotFound
}

func (r *WorkScheduleRepository) ListByCompany(_ context.Context, companyID string) ([]schedule.WorkSchedule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []schedule.WorkSchedule
	for _, ws := range r.schedules {
		if ws.CompanyID == companyID {
			out = append(out, ws)
		}
	}
	return out, nil
}

type ScheduleAssignmentRepository struct {
	mu          sync.RWMutex
	assignments map[string]schedule.ScheduleAssignment
}

func NewScheduleAssignmentRepository() *ScheduleAssignmentRepository {
	return &ScheduleAssignmentRepository{assignments: make(map[string]schedule.ScheduleAssignment)}
}

func (r *ScheduleAssignmentRepository) Create(_ context.Context, a schedule.ScheduleAssignment) (schedule.ScheduleAssignment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	a.ID = uuid.NewString()
	a.CreatedAt = now
	a.UpdatedAt = now
	r.assignments[a.ID] = a
	return a, nil
}

func (r *ScheduleAssignmentRepository) GetEffective(_ context.Context, employeeID string, date time.Time) (*schedule.ScheduleAssignment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.assignments {
		if a.EmployeeID == employeeID && a.Covers(date) {
			found := a
			return &found, nil
		}
	}
	return nil, nil
}

func (r *ScheduleAssignmentRepository) ListByEmployee(_ context.Context, employeeID string) ([]schedule.ScheduleAssignment, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var out []schedule.ScheduleAssignment
	for _, a := range r.assignments {
		if a.EmployeeID == employeeID {
			out = append(out, a)
		}
	}
	return out, nil
}
