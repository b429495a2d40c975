package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tamabee-group/api-hr-sub001/internal/domain/employee"
	"github.com/tamabee-group/api-hr-sub001/internal/domain/schedule"
)

type ScheduleServiceImpl struct {
	schedule.WorkScheduleRepository
	schedule.ScheduleAssignmentRepository
	employee.EmployeeRepository
}

func NewScheduleService(
	workScheduleRepo schedule.WorkScheduleRepository,
	assignmentRepo schedule.ScheduleAssignmentRepository,
	employeeRepo employee.EmployeeRepository,
) schedule.ScheduleService {
	return &ScheduleServiceImpl{
		WorkScheduleRepository:       workScheduleRepo,
		ScheduleAssignmentRepository: assignmentRepo,
		EmployeeRepository:           employeeRepo,
	}
}

// Resolve implements schedule.Resolver. An assignment covering the date wins;
// otherwise the company default applies; otherwise there is no schedule.
func (s *ScheduleServiceImpl) Resolve(ctx context.Context, employeeID string, companyID string, date time.Time) (schedule.WorkSchedule, error) {
	assignment, err := s.ScheduleAssignmentRepository.GetEffective(ctx, employeeID, date)
	if err != nil {
		return schedule.WorkSchedule{}, fmt.Errorf("failed to get effective schedule assignment: %w", err)
	}

	if assignment != nil {
		ws, err := s.WorkScheduleRepository.GetByID(ctx, assignment.WorkScheduleID, companyID)
		if err != nil {
			return schedule.WorkSchedule{}, fmt.Errorf("failed to get assigned work schedule: %w", err)
		}
		return ws, nil
	}

	ws, err := s.WorkScheduleRepository.GetDefault(ctx, companyID)
	if err != nil {
		if errors.Is(err, schedule.ErrScheduleNotFound) {
			return schedule.WorkSchedule{}, schedule.ErrScheduleNotFound
		}
		return schedule.WorkSchedule{}, fmt.Errorf("failed to get default work schedule: %w", err)
	}
	return ws, nil
}

// CreateSchedule implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) CreateSchedule(ctx context.Context, req schedule.CreateWorkScheduleRequest) (schedule.WorkScheduleResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.WorkScheduleResponse{}, err
	}

	startTime, _ := time.Parse("15:04", req.StartTime)
	endTime, _ := time.Parse("15:04", req.EndTime)

	created, err := s.WorkScheduleRepository.Create(ctx, schedule.WorkSchedule{
		CompanyID:               req.CompanyID,
		Name:                    req.Name,
		Type:                    schedule.ScheduleType(req.Type),
		StartTime:               startTime,
		EndTime:                 endTime,
		BreakEntitlementMinutes: req.BreakEntitlementMinutes,
		IsDefault:               req.IsDefault,
	})
	if err != nil {
		return schedule.WorkScheduleResponse{}, fmt.Errorf("failed to create work schedule: %w", err)
	}

	return mapScheduleToResponse(created), nil
}

// AssignEmployee implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) AssignEmployee(ctx context.Context, req schedule.AssignScheduleRequest) (schedule.ScheduleAssignmentResponse, error) {
	if err := req.Validate(); err != nil {
		return schedule.ScheduleAssignmentResponse{}, err
	}

	exists, err := s.EmployeeRepository.Exists(ctx, req.EmployeeID, req.CompanyID)
	if err != nil {
		return schedule.ScheduleAssignmentResponse{}, fmt.Errorf("failed to check employee: %w", err)
	}
	if !exists {
		return schedule.ScheduleAssignmentResponse{}, employee.ErrEmployeeNotFound
	}

	if _, err := s.WorkScheduleRepository.GetByID(ctx, req.WorkScheduleID, req.CompanyID); err != nil {
		return schedule.ScheduleAssignmentResponse{}, fmt.Errorf("failed to get work schedule: %w", err)
	}

	from, _ := time.Parse("2006-01-02", req.EffectiveFrom)
	var to *time.Time
	if req.EffectiveTo != nil {
		parsed, _ := time.Parse("2006-01-02", *req.EffectiveTo)
		to = &parsed
	}

	existing, err := s.ScheduleAssignmentRepository.ListByEmployee(ctx, req.EmployeeID)
	if err != nil {
		return schedule.ScheduleAssignmentResponse{}, fmt.Errorf("failed to list schedule assignments: %w", err)
	}
	for _, a := range existing {
		if rangesOverlap(from, to, a.EffectiveFrom, a.EffectiveTo) {
			return schedule.ScheduleAssignmentResponse{}, schedule.ErrOverlappingAssignment
		}
	}

	created, err := s.ScheduleAssignmentRepository.Create(ctx, schedule.ScheduleAssignment{
		EmployeeID:     req.EmployeeID,
		CompanyID:      req.CompanyID,
		WorkScheduleID: req.WorkScheduleID,
		EffectiveFrom:  from,
		EffectiveTo:    to,
	})
	if err != nil {
		return schedule.ScheduleAssignmentResponse{}, fmt.Errorf("failed to create schedule assignment: %w", err)
	}

	return mapAssignmentToResponse(created), nil
}

// GetEffectiveSchedule implements schedule.ScheduleService.
func (s *ScheduleServiceImpl) GetEffectiveSchedule(ctx context.Context, employeeID string, companyID string, date time.Time) (schedule.WorkScheduleResponse, error) {
	ws, err := s.Resolve(ctx, employeeID, companyID, date)
	if err != nil {
		return schedule.WorkScheduleResponse{}, err
	}
	return mapScheduleToResponse(ws), nil
}

// rangesOverlap treats a nil end as open-ended.
func rangesOverlap(aFrom time.Time, aTo *time.Time, bFrom time.Time, bTo *time.Time) bool {
	if aTo != nil && aTo.Before(bFrom) {
		return false
	}
	if bTo != nil && bTo.Before(aFrom) {
		return false
	}
	return true
}

func mapScheduleToResponse(ws schedule.WorkSchedule) schedule.WorkScheduleResponse {
	return schedule.WorkScheduleResponse{
		ID:                      ws.ID,
		Name:                    ws.Name,
		Type:                    string(ws.Type),
		StartTime:               ws.StartTime.Format("15:04"),
		EndTime:                 ws.EndTime.Format("15:04"),
		BreakEntitlementMinutes: ws.BreakEntitlementMinutes,
		IsDefault:               ws.IsDefault,
	}
}

func mapAssignmentToResponse(a schedule.ScheduleAssignment) schedule.ScheduleAssignmentResponse {
	resp := schedule.ScheduleAssignmentResponse{
		ID:             a.ID,
		EmployeeID:     a.EmployeeID,
		WorkScheduleID: a.WorkScheduleID,
		EffectiveFrom:  a.EffectiveFrom.Format("2006-01-02"),
	}
	if a.EffectiveTo != nil {
		formatted := a.EffectiveTo.Format("2006-01-02")
		resp.EffectiveTo = &formatted
	}
	return resp
}
