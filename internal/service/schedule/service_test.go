package schedule

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tamabee-group/api-hr-sub001/internal/domain/employee"
	"github.com/tamabee-group/api-hr-sub001/internal/domain/schedule"
	"github.com/tamabee-group/api-hr-sub001/internal/pkg/validator"
	"github.com/tamabee-group/api-hr-sub001/internal/repository/memory"
)

const testCompanyID = "co-1"

type testEnv struct {
	svc         schedule.ScheduleService
	schedules   *memory.WorkScheduleRepository
	assignments *memory.ScheduleAssignmentRepository
	emp         employee.Employee
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	employees := memory.NewEmployeeRepository()
	emp := employees.Put(employee.Employee{
		CompanyID: testCompanyID,
		Name:      "Suzuki",
		Status:    employee.EmploymentStatusActive,
	})

	schedules := memory.NewWorkScheduleRepository()
	assignments := memory.NewScheduleAssignmentRepository()

	return &testEnv{
		svc:         NewScheduleService(schedules, assignments, employees),
		schedules:   schedules,
		assignments: assignments,
		emp:         emp,
	}
}

func (e *testEnv) addSchedule(t *testing.T, name string, isDefault bool) schedule.WorkSchedule {
	t.Helper()
	ws, err := e.schedules.Create(context.Background(), schedule.WorkSchedule{
		CompanyID: testCompanyID,
		Name:      name,
		Type:      schedule.ScheduleTypeFixed,
		StartTime: time.Date(0, 1, 1, 9, 0, 0, 0, time.UTC),
		EndTime:   time.Date(0, 1, 1, 18, 0, 0, 0, time.UTC),
		IsDefault: isDefault,
	})
	require.NoError(t, err)
	return ws
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestResolveUsesCoveringAssignment(t *testing.T) {
	env := newTestEnv(t)
	env.addSchedule(t, "Default", true)
	special := env.addSchedule(t, "Night shift", false)

	to := date(2026, 3, 31)
	_, err := env.assignments.Create(context.Background(), schedule.ScheduleAssignment{
		EmployeeID:     env.emp.ID,
		CompanyID:      testCompanyID,
		WorkScheduleID: special.ID,
		EffectiveFrom:  date(2026, 3, 1),
		EffectiveTo:    &to,
	})
	require.NoError(t, err)

	resolved, err := env.svc.Resolve(context.Background(), env.emp.ID, testCompanyID, date(2026, 3, 15))
	require.NoError(t, err)
	assert.Equal(t, special.ID, resolved.ID)
}

func TestResolveFallsBackToDefault(t *testing.T) {
	env := newTestEnv(t)
	def := env.addSchedule(t, "Default", true)
	special := env.addSchedule(t, "Night shift", false)

	to := date(2026, 3, 31)
	_, err := env.assignments.Create(context.Background(), schedule.ScheduleAssignment{
		EmployeeID:     env.emp.ID,
		CompanyID:      testCompanyID,
		WorkScheduleID: special.ID,
		EffectiveFrom:  date(2026, 3, 1),
		EffectiveTo:    &to,
	})
	require.NoError(t, err)

	resolved, err := env.svc.Resolve(context.Background(), env.emp.ID, testCompanyID, date(2026, 4, 10))
	require.NoError(t, err)
	assert.Equal(t, def.ID, resolved.ID)
}

func TestResolveWithoutAnySchedule(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.Resolve(context.Background(), env.emp.ID, testCompanyID, date(2026, 3, 15))
	assert.ErrorIs(t, err, schedule.ErrScheduleNotFound)
}

func TestAssignEmployeeRejectsOverlap(t *testing.T) {
	env := newTestEnv(t)
	ws := env.addSchedule(t, "Default", true)

	// Open-ended assignment from March.
	_, err := env.svc.AssignEmployee(context.Background(), schedule.AssignScheduleRequest{
		CompanyID:      testCompanyID,
		EmployeeID:     env.emp.ID,
		WorkScheduleID: ws.ID,
		EffectiveFrom:  "2026-03-01",
	})
	require.NoError(t, err)

	_, err = env.svc.AssignEmployee(context.Background(), schedule.AssignScheduleRequest{
		CompanyID:      testCompanyID,
		EmployeeID:     env.emp.ID,
		WorkScheduleID: ws.ID,
		EffectiveFrom:  "2026-04-01",
	})
	assert.ErrorIs(t, err, schedule.ErrOverlappingAssignment)
}

func TestAssignEmployeeAllowsDisjointRanges(t *testing.T) {
	env := newTestEnv(t)
	ws := env.addSchedule(t, "Default", true)

	to := "2026-03-31"
	_, err := env.svc.AssignEmployee(context.Background(), schedule.AssignScheduleRequest{
		CompanyID:      testCompanyID,
		EmployeeID:     env.emp.ID,
		WorkScheduleID: ws.ID,
		EffectiveFrom:  "2026-03-01",
		EffectiveTo:    &to,
	})
	require.NoError(t, err)

	_, err = env.svc.AssignEmployee(context.Background(), schedule.AssignScheduleRequest{
		CompanyID:      testCompanyID,
		EmployeeID:     env.emp.ID,
		WorkScheduleID: ws.ID,
		EffectiveFrom:  "2026-04-01",
	})
	assert.NoError(t, err)
}

func TestAssignUnknownEmployee(t *testing.T) {
	env := newTestEnv(t)
	ws := env.addSchedule(t, "Default", true)

	_, err := env.svc.AssignEmployee(context.Background(), schedule.AssignScheduleRequest{
		CompanyID:      testCompanyID,
		EmployeeID:     "ghost",
		WorkScheduleID: ws.ID,
		EffectiveFrom:  "2026-03-01",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestCreateScheduleRejectsBadInput(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.CreateSchedule(context.Background(), schedule.CreateWorkScheduleRequest{
		CompanyID: testCompanyID,
		Name:      "",
		Type:      "WEEKLY",
		StartTime: "9am",
		EndTime:   "18:00",
	})

	var validationErrs validator.ValidationErrors
	require.ErrorAs(t, err, &validationErrs)
	details := validationErrs.ToMap()
	assert.Contains(t, details, "name")
	assert.Contains(t, details, "type")
	assert.Contains(t, details, "start_time")
}

func TestCreateScheduleAndGetEffective(t *testing.T) {
	env := newTestEnv(t)

	created, err := env.svc.CreateSchedule(context.Background(), schedule.CreateWorkScheduleRequest{
		CompanyID:               testCompanyID,
		Name:                    "Core hours",
		Type:                    string(schedule.ScheduleTypeFixed),
		StartTime:               "09:00",
		EndTime:                 "18:00",
		BreakEntitlementMinutes: 60,
		IsDefault:               true,
	})
	require.NoError(t, err)
	assert.Equal(t, "09:00", created.StartTime)
	assert.Equal(t, "18:00", created.EndTime)

	effective, err := env.svc.GetEffectiveSchedule(context.Background(), env.emp.ID, testCompanyID, date(2026, 3, 2))
	require.NoError(t, err)
	assert.Equal(t, created.ID, effective.ID)
}
