package attendance

import (
	"context"
	"fmt"
	"time"

	"github.com/tamabee-group/api-hr-sub001/internal/domain/attendance"
	"github.com/tamabee-group/api-hr-sub001/internal/domain/company"
	"github.com/tamabee-group/api-hr-sub001/internal/domain/employee"
	"github.com/tamabee-group/api-hr-sub001/internal/domain/schedule"
	"github.com/tamabee-group/api-hr-sub001/internal/pkg/clock"
	"github.com/tamabee-group/api-hr-sub001/internal/pkg/lock"
	"github.com/tamabee-group/api-hr-sub001/internal/pkg/timeutil"
)

// AttendanceServiceImpl implements attendance.AttendanceService and
// attendance.Rewriter. All mutations run under the per-day keyed lock so
// invariants spanning the record and its breaks cannot race.
type AttendanceServiceImpl struct {
	clock clock.Clock
	locks *lock.KeyedMutex
	attendance.AttendanceRepository
	attendance.BreakRepository
	employee.EmployeeRepository
	company.SettingsRepository
	resolver schedule.Resolver
}

func NewAttendanceService(
	clk clock.Clock,
	locks *lock.KeyedMutex,
	attendanceRepo attendance.AttendanceRepository,
	breakRepo attendance.BreakRepository,
	employeeRepo employee.EmployeeRepository,
	settingsRepo company.SettingsRepository,
	resolver schedule.Resolver,
) *AttendanceServiceImpl {
	return &AttendanceServiceImpl{
		clock:                clk,
		locks:                locks,
		AttendanceRepository: attendanceRepo,
		BreakRepository:      breakRepo,
		EmployeeRepository:   employeeRepo,
		SettingsRepository:   settingsRepo,
		resolver:             resolver,
	}
}

func workDateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// CheckIn implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckIn(ctx context.Context, req attendance.CheckInRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	exists, err := a.EmployeeRepository.Exists(ctx, req.EmployeeID, req.CompanyID)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check employee: %w", err)
	}
	if !exists {
		return attendance.AttendanceResponse{}, employee.ErrEmployeeNotFound
	}

	now := a.clock.Now()
	workDate := workDateOf(now)

	unlock := a.locks.Lock(attendance.DayKey(req.EmployeeID, workDate))
	defer unlock()

	existing, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, req.EmployeeID, workDate, req.CompanyID)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to check existing attendance: %w", err)
	}
	if existing != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedIn
	}

	cfg, err := a.SettingsRepository.GetAttendanceConfig(ctx, req.CompanyID)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get attendance config: %w", err)
	}

	ws, err := a.resolver.Resolve(ctx, req.EmployeeID, req.CompanyID, workDate)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	rounded, err := timeutil.Round(now, cfg.RoundingIntervalMinutes, cfg.CheckInRounding)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to round check-in time: %w", err)
	}

	late := lateMinutes(rounded, ws.StartAt(workDate), cfg.LateGraceMinutes)
	status := attendance.StatusPresent
	if late > 0 {
		status = attendance.StatusLate
	}

	record := attendance.AttendanceRecord{
		EmployeeID:      req.EmployeeID,
		CompanyID:       req.CompanyID,
		WorkDate:        workDate,
		OriginalCheckIn: &now,
		RoundedCheckIn:  &rounded,
		Status:          status,
		LateMinutes:     &late,
	}

	created, err := a.AttendanceRepository.Create(ctx, record)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return attendance.NewAttendanceResponse(created, nil), nil
}

// CheckOut implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) CheckOut(ctx context.Context, req attendance.CheckOutRequest) (attendance.AttendanceResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.AttendanceResponse{}, err
	}

	now := a.clock.Now()
	workDate := workDateOf(now)

	unlock := a.locks.Lock(attendance.DayKey(req.EmployeeID, workDate))
	defer unlock()

	record, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, req.EmployeeID, workDate, req.CompanyID)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get attendance record: %w", err)
	}
	if record == nil {
		return attendance.AttendanceResponse{}, attendance.ErrNotCheckedIn
	}
	if record.OriginalCheckOut != nil {
		return attendance.AttendanceResponse{}, attendance.ErrAlreadyCheckedOut
	}

	breaks, err := a.BreakRepository.ListByAttendanceID(ctx, record.ID)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to list breaks: %w", err)
	}
	for _, b := range breaks {
		if b.Active() {
			return attendance.AttendanceResponse{}, attendance.ErrActiveBreakExists
		}
	}

	cfg, err := a.SettingsRepository.GetAttendanceConfig(ctx, req.CompanyID)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get attendance config: %w", err)
	}

	ws, err := a.resolver.Resolve(ctx, req.EmployeeID, req.CompanyID, workDate)
	if err != nil {
		return attendance.AttendanceResponse{}, err
	}

	rounded, err := timeutil.Round(now, cfg.RoundingIntervalMinutes, cfg.CheckOutRounding)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to round check-out time: %w", err)
	}

	metrics := computeDayMetrics(*record.RoundedCheckIn, rounded, ws, cfg, workDate, totalEffectiveBreakMinutes(breaks))

	record.OriginalCheckOut = &now
	record.RoundedCheckOut = &rounded
	record.WorkingMinutes = &metrics.WorkingMinutes
	record.LateMinutes = &metrics.LateMinutes
	record.EarlyLeaveMinutes = &metrics.EarlyLeaveMinutes

	if err := a.AttendanceRepository.Update(ctx, *record); err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to update attendance record: %w", err)
	}

	return attendance.NewAttendanceResponse(*record, breaks), nil
}

// GetAttendanceForDate implements attendance.AttendanceService.
func (a *AttendanceServiceImpl) GetAttendanceForDate(ctx context.Context, employeeID string, companyID string, date time.Time) (attendance.AttendanceResponse, error) {
	record, err := a.AttendanceRepository.GetByEmployeeAndDate(ctx, employeeID, workDateOf(date), companyID)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to get attendance record: %w", err)
	}
	if record == nil {
		return attendance.AttendanceResponse{}, attendance.ErrAttendanceNotFound
	}

	breaks, err := a.BreakRepository.ListByAttendanceID(ctx, record.ID)
	if err != nil {
		return attendance.AttendanceResponse{}, fmt.Errorf("failed to list breaks: %w", err)
	}

	return attendance.NewAttendanceResponse(*record, breaks), nil
}
