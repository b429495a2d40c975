package attendance

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tamabee-group/api-hr-sub001/internal/domain/attendance"
	"github.com/tamabee-group/api-hr-sub001/internal/domain/company"
	"github.com/tamabee-group/api-hr-sub001/internal/domain/employee"
	"github.com/tamabee-group/api-hr-sub001/internal/domain/schedule"
	"github.com/tamabee-group/api-hr-sub001/internal/pkg/lock"
	"github.com/tamabee-group/api-hr-sub001/internal/pkg/timeutil"
	"github.com/tamabee-group/api-hr-sub001/internal/repository/memory"
	scheduleService "github.com/tamabee-group/api-hr-sub001/internal/service/schedule"
)

const testCompanyID = "co-1"

// stepClock is a clock the tests move forward between operations.
type stepClock struct {
	now time.Time
}

func (c *stepClock) Now() time.Time { return c.now }

func (c *stepClock) set(hour, min int) {
	c.now = time.Date(c.now.Year(), c.now.Month(), c.now.Day(), hour, min, 0, 0, time.UTC)
}

func timeOfDay(hour, min int) time.Time {
	return time.Date(0, 1, 1, hour, min, 0, 0, time.UTC)
}

type testEnv struct {
	clk         *stepClock
	svc         *AttendanceServiceImpl
	employees   *memory.EmployeeRepository
	schedules   *memory.WorkScheduleRepository
	assignments *memory.ScheduleAssignmentRepository
	settings    *memory.CompanySettingsRepository
	records     *memory.AttendanceRepository
	breaks      *memory.BreakRepository
	emp         employee.Employee
}

// newTestEnv wires the service against the memory repositories with a default
// 09:00-18:00 schedule and the fixture attendance config.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		clk:         &stepClock{now: time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)},
		employees:   memory.NewEmployeeRepository(),
		schedules:   memory.NewWorkScheduleRepository(),
		assignments: memory.NewScheduleAssignmentRepository(),
		settings:    memory.NewCompanySettingsRepository(),
		records:     memory.NewAttendanceRepository(),
		breaks:      memory.NewBreakRepository(),
	}

	env.emp = env.employees.Put(employee.Employee{
		CompanyID: testCompanyID,
		Name:      "Sato",
		Status:    employee.EmploymentStatusActive,
	})

	_, err := env.schedules.Create(context.Background(), schedule.WorkSchedule{
		CompanyID: testCompanyID,
		Name:      "Core hours",
		Type:      schedule.ScheduleTypeFixed,
		StartTime: timeOfDay(9, 0),
		EndTime:   timeOfDay(18, 0),
		IsDefault: true,
	})
	require.NoError(t, err)

	resolver := scheduleService.NewScheduleService(env.schedules, env.assignments, env.employees)
	env.svc = NewAttendanceService(
		env.clk, lock.NewKeyedMutex(),
		env.records, env.breaks, env.employees, env.settings, resolver,
	)
	return env
}

func (e *testEnv) saveConfig(t *testing.T, mutate func(cfg *company.AttendanceConfig)) {
	t.Helper()
	cfg, err := e.settings.GetAttendanceConfig(context.Background(), testCompanyID)
	require.NoError(t, err)
	mutate(&cfg)
	require.NoError(t, e.settings.SaveAttendanceConfig(context.Background(), cfg))
}

func (e *testEnv) checkInAt(t *testing.T, hour, min int) attendance.AttendanceResponse {
	t.Helper()
	e.clk.set(hour, min)
	resp, err := e.svc.CheckIn(context.Background(), attendance.CheckInRequest{
		EmployeeID: e.emp.ID,
		CompanyID:  testCompanyID,
	})
	require.NoError(t, err)
	return resp
}

func (e *testEnv) checkOutAt(t *testing.T, hour, min int) attendance.AttendanceResponse {
	t.Helper()
	e.clk.set(hour, min)
	resp, err := e.svc.CheckOut(context.Background(), attendance.CheckOutRequest{
		EmployeeID: e.emp.ID,
		CompanyID:  testCompanyID,
	})
	require.NoError(t, err)
	return resp
}

func TestCheckInRoundsUpOnTime(t *testing.T) {
	env := newTestEnv(t)

	resp := env.checkInAt(t, 8, 57)

	assert.Equal(t, "2026-03-02", resp.WorkDate)
	require.NotNil(t, resp.OriginalCheckIn)
	assert.Equal(t, "2026-03-02 08:57:00", *resp.OriginalCheckIn)
	require.NotNil(t, resp.RoundedCheckIn)
	assert.Equal(t, "2026-03-02 09:00:00", *resp.RoundedCheckIn)
	assert.Equal(t, string(attendance.StatusPresent), resp.Status)
	require.NotNil(t, resp.LateMinutes)
	assert.Equal(t, 0, *resp.LateMinutes)
}

func TestCheckInTwiceSameDay(t *testing.T) {
	env := newTestEnv(t)
	env.checkInAt(t, 8, 57)

	env.clk.set(9, 30)
	_, err := env.svc.CheckIn(context.Background(), attendance.CheckInRequest{
		EmployeeID: env.emp.ID,
		CompanyID:  testCompanyID,
	})
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedIn)
}

func TestCheckInUnknownEmployee(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.CheckIn(context.Background(), attendance.CheckInRequest{
		EmployeeID: "ghost",
		CompanyID:  testCompanyID,
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestCheckInLateReportsWholeDelay(t *testing.T) {
	env := newTestEnv(t)
	env.saveConfig(t, func(cfg *company.AttendanceConfig) {
		cfg.RoundingIntervalMinutes = 5
		cfg.LateGraceMinutes = 10
	})

	// 09:33 rounds up to 09:35, past the 09:10 grace boundary. The reported
	// lateness counts from the scheduled start, grace span included.
	resp := env.checkInAt(t, 9, 33)

	require.NotNil(t, resp.RoundedCheckIn)
	assert.Equal(t, "2026-03-02 09:35:00", *resp.RoundedCheckIn)
	assert.Equal(t, string(attendance.StatusLate), resp.Status)
	require.NotNil(t, resp.LateMinutes)
	assert.Equal(t, 35, *resp.LateMinutes)
}

func TestCheckInWithinGrace(t *testing.T) {
	env := newTestEnv(t)
	env.saveConfig(t, func(cfg *company.AttendanceConfig) {
		cfg.RoundingIntervalMinutes = 5
		cfg.LateGraceMinutes = 10
	})

	resp := env.checkInAt(t, 9, 4)

	require.NotNil(t, resp.RoundedCheckIn)
	assert.Equal(t, "2026-03-02 09:05:00", *resp.RoundedCheckIn)
	assert.Equal(t, string(attendance.StatusPresent), resp.Status)
	require.NotNil(t, resp.LateMinutes)
	assert.Equal(t, 0, *resp.LateMinutes)
}

func TestCheckOutComputesWorkingMinutes(t *testing.T) {
	env := newTestEnv(t)

	// Assigned 08:00-17:00 schedule overrides the company default.
	ws, err := env.schedules.Create(context.Background(), schedule.WorkSchedule{
		CompanyID: testCompanyID,
		Name:      "Early shift",
		Type:      schedule.ScheduleTypeFixed,
		StartTime: timeOfDay(8, 0),
		EndTime:   timeOfDay(17, 0),
	})
	require.NoError(t, err)
	_, err = env.assignments.Create(context.Background(), schedule.ScheduleAssignment{
		EmployeeID:     env.emp.ID,
		CompanyID:      testCompanyID,
		WorkScheduleID: ws.ID,
		EffectiveFrom:  time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	checkIn := env.checkInAt(t, 7, 58)

	env.clk.set(12, 0)
	started, err := env.svc.StartBreak(context.Background(), attendance.StartBreakRequest{
		AttendanceRecordID: checkIn.ID,
		CompanyID:          testCompanyID,
	})
	require.NoError(t, err)

	env.clk.set(12, 30)
	_, err = env.svc.EndBreak(context.Background(), attendance.EndBreakRequest{
		BreakRecordID: started.ID,
		CompanyID:     testCompanyID,
	})
	require.NoError(t, err)

	resp := env.checkOutAt(t, 17, 5)

	require.NotNil(t, resp.RoundedCheckOut)
	assert.Equal(t, "2026-03-02 17:00:00", *resp.RoundedCheckOut)
	require.NotNil(t, resp.WorkingMinutes)
	assert.Equal(t, 510, *resp.WorkingMinutes)
	require.NotNil(t, resp.LateMinutes)
	assert.Equal(t, 0, *resp.LateMinutes)
	require.NotNil(t, resp.EarlyLeaveMinutes)
	assert.Equal(t, 0, *resp.EarlyLeaveMinutes)
	assert.Len(t, resp.Breaks, 1)
}

func TestCheckOutEarlyLeave(t *testing.T) {
	env := newTestEnv(t)
	env.checkInAt(t, 8, 57)

	resp := env.checkOutAt(t, 17, 2)

	require.NotNil(t, resp.RoundedCheckOut)
	assert.Equal(t, "2026-03-02 17:00:00", *resp.RoundedCheckOut)
	require.NotNil(t, resp.EarlyLeaveMinutes)
	assert.Equal(t, 60, *resp.EarlyLeaveMinutes)
	require.NotNil(t, resp.WorkingMinutes)
	assert.Equal(t, 480, *resp.WorkingMinutes)
}

func TestCheckOutWithoutCheckIn(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.CheckOut(context.Background(), attendance.CheckOutRequest{
		EmployeeID: env.emp.ID,
		CompanyID:  testCompanyID,
	})
	assert.ErrorIs(t, err, attendance.ErrNotCheckedIn)
}

func TestCheckOutTwice(t *testing.T) {
	env := newTestEnv(t)
	env.checkInAt(t, 8, 57)
	env.checkOutAt(t, 17, 0)

	env.clk.set(18, 0)
	_, err := env.svc.CheckOut(context.Background(), attendance.CheckOutRequest{
		EmployeeID: env.emp.ID,
		CompanyID:  testCompanyID,
	})
	assert.ErrorIs(t, err, attendance.ErrAlreadyCheckedOut)
}

func TestCheckOutWithActiveBreak(t *testing.T) {
	env := newTestEnv(t)
	checkIn := env.checkInAt(t, 8, 57)

	env.clk.set(12, 0)
	_, err := env.svc.StartBreak(context.Background(), attendance.StartBreakRequest{
		AttendanceRecordID: checkIn.ID,
		CompanyID:          testCompanyID,
	})
	require.NoError(t, err)

	env.clk.set(17, 0)
	_, err = env.svc.CheckOut(context.Background(), attendance.CheckOutRequest{
		EmployeeID: env.emp.ID,
		CompanyID:  testCompanyID,
	})
	assert.ErrorIs(t, err, attendance.ErrActiveBreakExists)
}

func TestGetAttendanceForDate(t *testing.T) {
	env := newTestEnv(t)
	checkIn := env.checkInAt(t, 8, 57)

	resp, err := env.svc.GetAttendanceForDate(context.Background(), env.emp.ID, testCompanyID, env.clk.Now())
	require.NoError(t, err)
	assert.Equal(t, checkIn.ID, resp.ID)

	_, err = env.svc.GetAttendanceForDate(context.Background(), env.emp.ID, testCompanyID, env.clk.Now().AddDate(0, 0, 1))
	assert.ErrorIs(t, err, attendance.ErrAttendanceNotFound)
}

func TestRoundedCheckOutNeverBeforeCheckIn(t *testing.T) {
	env := newTestEnv(t)
	env.saveConfig(t, func(cfg *company.AttendanceConfig) {
		cfg.CheckOutRounding = timeutil.RoundDown
	})
	env.checkInAt(t, 8, 57)

	// Checkout minutes after check-in still rounds down below the rounded
	// check-in; working minutes clamp at zero instead of going negative.
	resp := env.checkOutAt(t, 9, 5)
	require.NotNil(t, resp.WorkingMinutes)
	assert.Equal(t, 0, *resp.WorkingMinutes)
}
