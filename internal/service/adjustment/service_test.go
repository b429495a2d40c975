package adjustment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tamabee-group/api-hr-sub001/internal/domain/adjustment"
	"github.com/tamabee-group/api-hr-sub001/internal/domain/attendance"
	"github.com/tamabee-group/api-hr-sub001/internal/domain/employee"
	"github.com/tamabee-group/api-hr-sub001/internal/domain/schedule"
	"github.com/tamabee-group/api-hr-sub001/internal/pkg/lock"
	"github.com/tamabee-group/api-hr-sub001/internal/pkg/validator"
	"github.com/tamabee-group/api-hr-sub001/internal/repository/memory"
	attendanceService "github.com/tamabee-group/api-hr-sub001/internal/service/attendance"
	scheduleService "github.com/tamabee-group/api-hr-sub001/internal/service/schedule"
)

const (
	testCompanyID = "co-1"
	approverID    = "mgr-1"
)

type stepClock struct {
	now time.Time
}

func (c *stepClock) Now() time.Time { return c.now }

func (c *stepClock) set(hour, min int) {
	c.now = time.Date(c.now.Year(), c.now.Month(), c.now.Day(), hour, min, 0, 0, time.UTC)
}

type testEnv struct {
	clk           *stepClock
	svc           *AdjustmentServiceImpl
	attendanceSvc *attendanceService.AttendanceServiceImpl
	records       *memory.AttendanceRepository
	breaks        *memory.BreakRepository
	emp           employee.Employee
}

// newTestEnv wires the full correction pipeline: attendance service as the
// rewriter, shared day locks, memory repositories, fixture config and a
// default 09:00-18:00 schedule.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	clk := &stepClock{now: time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)}
	employees := memory.NewEmployeeRepository()
	schedules := memory.NewWorkScheduleRepository()
	assignments := memory.NewScheduleAssignmentRepository()
	settings := memory.NewCompanySettingsRepository()
	records := memory.NewAttendanceRepository()
	breaks := memory.NewBreakRepository()
	adjustments := memory.NewAdjustmentRepository()
	locks := lock.NewKeyedMutex()

	emp := employees.Put(employee.Employee{
		CompanyID: testCompanyID,
		Name:      "Tanaka",
		Status:    employee.EmploymentStatusActive,
	})

	_, err := schedules.Create(context.Background(), schedule.WorkSchedule{
		CompanyID: testCompanyID,
		Name:      "Core hours",
		Type:      schedule.ScheduleTypeFixed,
		StartTime: time.Date(0, 1, 1, 9, 0, 0, 0, time.UTC),
		EndTime:   time.Date(0, 1, 1, 18, 0, 0, 0, time.UTC),
		IsDefault: true,
	})
	require.NoError(t, err)

	resolver := scheduleService.NewScheduleService(schedules, assignments, employees)
	attendanceSvc := attendanceService.NewAttendanceService(
		clk, locks, records, breaks, employees, settings, resolver,
	)
	svc := NewAdjustmentService(
		memory.NewTxManager(), clk, locks, adjustments, records, breaks, attendanceSvc,
	)

	return &testEnv{
		clk:           clk,
		svc:           svc,
		attendanceSvc: attendanceSvc,
		records:       records,
		breaks:        breaks,
		emp:           emp,
	}
}

func (e *testEnv) checkInAt(t *testing.T, hour, min int) attendance.AttendanceResponse {
	t.Helper()
	e.clk.set(hour, min)
	resp, err := e.attendanceSvc.CheckIn(context.Background(), attendance.CheckInRequest{
		EmployeeID: e.emp.ID,
		CompanyID:  testCompanyID,
	})
	require.NoError(t, err)
	return resp
}

func (e *testEnv) checkOutAt(t *testing.T, hour, min int) attendance.AttendanceResponse {
	t.Helper()
	e.clk.set(hour, min)
	resp, err := e.attendanceSvc.CheckOut(context.Background(), attendance.CheckOutRequest{
		EmployeeID: e.emp.ID,
		CompanyID:  testCompanyID,
	})
	require.NoError(t, err)
	return resp
}

func (e *testEnv) takeBreak(t *testing.T, recordID string, startHour, startMin, endHour, endMin int) attendance.BreakResponse {
	t.Helper()
	e.clk.set(startHour, startMin)
	started, err := e.attendanceSvc.StartBreak(context.Background(), attendance.StartBreakRequest{
		AttendanceRecordID: recordID,
		CompanyID:          testCompanyID,
	})
	require.NoError(t, err)

	e.clk.set(endHour, endMin)
	ended, err := e.attendanceSvc.EndBreak(context.Background(), attendance.EndBreakRequest{
		BreakRecordID: started.ID,
		CompanyID:     testCompanyID,
	})
	require.NoError(t, err)
	return ended
}

func strPtr(s string) *string { return &s }

func TestCreateSnapshotsOriginals(t *testing.T) {
	env := newTestEnv(t)
	record := env.checkInAt(t, 9, 10)
	env.checkOutAt(t, 18, 0)

	resp, err := env.svc.Create(context.Background(), adjustment.CreateAdjustmentRequest{
		EmployeeID:         env.emp.ID,
		CompanyID:          testCompanyID,
		AttendanceRecordID: record.ID,
		RequestedCheckIn:   strPtr("2026-03-02 08:55:00"),
		Reason:             "badge reader was down",
	})
	require.NoError(t, err)

	assert.Equal(t, string(adjustment.StatusPending), resp.Status)
	require.NotNil(t, resp.OriginalCheckIn)
	assert.Equal(t, "2026-03-02 09:10:00", *resp.OriginalCheckIn)
	require.NotNil(t, resp.OriginalCheckOut)
	assert.Equal(t, "2026-03-02 18:00:00", *resp.OriginalCheckOut)
	require.NotNil(t, resp.RequestedCheckIn)
	assert.Equal(t, "2026-03-02 08:55:00", *resp.RequestedCheckIn)
	assert.Nil(t, resp.ApproverID)
	assert.Nil(t, resp.DecidedAt)
}

func TestCreateWithoutAnyRequestedValue(t *testing.T) {
	env := newTestEnv(t)
	record := env.checkInAt(t, 9, 10)

	_, err := env.svc.Create(context.Background(), adjustment.CreateAdjustmentRequest{
		EmployeeID:         env.emp.ID,
		CompanyID:          testCompanyID,
		AttendanceRecordID: record.ID,
		Reason:             "nothing really",
	})
	assert.ErrorIs(t, err, adjustment.ErrNothingRequested)
}

func TestCreateBreakTimesRequireBreakRecordID(t *testing.T) {
	env := newTestEnv(t)
	record := env.checkInAt(t, 9, 10)

	_, err := env.svc.Create(context.Background(), adjustment.CreateAdjustmentRequest{
		EmployeeID:         env.emp.ID,
		CompanyID:          testCompanyID,
		AttendanceRecordID: record.ID,
		RequestedBreakEnd:  strPtr("2026-03-02 12:45:00"),
		Reason:             "forgot to end the break",
	})
	assert.ErrorIs(t, err, adjustment.ErrBreakRecordIDRequired)
}

func TestCreateRejectsSecondPending(t *testing.T) {
	env := newTestEnv(t)
	record := env.checkInAt(t, 9, 10)

	req := adjustment.CreateAdjustmentRequest{
		EmployeeID:         env.emp.ID,
		CompanyID:          testCompanyID,
		AttendanceRecordID: record.ID,
		RequestedCheckIn:   strPtr("2026-03-02 08:55:00"),
		Reason:             "badge reader was down",
	}
	_, err := env.svc.Create(context.Background(), req)
	require.NoError(t, err)

	_, err = env.svc.Create(context.Background(), req)
	assert.ErrorIs(t, err, adjustment.ErrDuplicatePendingAdjustment)
}

func TestCreateBreakFromOtherRecord(t *testing.T) {
	env := newTestEnv(t)
	record := env.checkInAt(t, 9, 10)

	// A break belonging to a different attendance record.
	stray, err := env.breaks.Create(context.Background(), attendance.BreakRecord{
		AttendanceRecordID: "other-record",
		BreakNumber:        1,
		BreakStart:         time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	_, err = env.svc.Create(context.Background(), adjustment.CreateAdjustmentRequest{
		EmployeeID:          env.emp.ID,
		CompanyID:           testCompanyID,
		AttendanceRecordID:  record.ID,
		BreakRecordID:       &stray.ID,
		RequestedBreakStart: strPtr("2026-03-02 12:05:00"),
		Reason:              "wrong start recorded",
	})
	assert.ErrorIs(t, err, adjustment.ErrBreakNotOnAttendanceRecord)
}

func TestApproveRewritesCheckTimes(t *testing.T) {
	env := newTestEnv(t)
	record := env.checkInAt(t, 9, 10)
	env.checkOutAt(t, 18, 0)

	created, err := env.svc.Create(context.Background(), adjustment.CreateAdjustmentRequest{
		EmployeeID:         env.emp.ID,
		CompanyID:          testCompanyID,
		AttendanceRecordID: record.ID,
		RequestedCheckIn:   strPtr("2026-03-02 08:55:00"),
		Reason:             "badge reader was down",
	})
	require.NoError(t, err)

	env.clk.set(19, 0)
	decided, err := env.svc.Approve(context.Background(), adjustment.DecideAdjustmentRequest{
		ID:         created.ID,
		CompanyID:  testCompanyID,
		ApproverID: approverID,
		Comment:    "confirmed with reception",
	})
	require.NoError(t, err)

	assert.Equal(t, string(adjustment.StatusApproved), decided.Status)
	require.NotNil(t, decided.ApproverID)
	assert.Equal(t, approverID, *decided.ApproverID)
	require.NotNil(t, decided.ApproverComment)
	assert.Equal(t, "confirmed with reception", *decided.ApproverComment)
	require.NotNil(t, decided.DecidedAt)

	// The audit trail keeps the pre-correction values.
	require.NotNil(t, decided.OriginalCheckIn)
	assert.Equal(t, "2026-03-02 09:10:00", *decided.OriginalCheckIn)

	// The record went through the same rounding and metrics pipeline.
	updated, err := env.records.GetByID(context.Background(), record.ID, testCompanyID)
	require.NoError(t, err)
	require.NotNil(t, updated.RoundedCheckIn)
	assert.Equal(t, time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC), *updated.RoundedCheckIn)
	require.NotNil(t, updated.WorkingMinutes)
	assert.Equal(t, 540, *updated.WorkingMinutes)
	require.NotNil(t, updated.LateMinutes)
	assert.Equal(t, 0, *updated.LateMinutes)
	assert.Equal(t, attendance.StatusPresent, updated.Status)
}

func TestApproveRewritesBreakTimes(t *testing.T) {
	env := newTestEnv(t)
	record := env.checkInAt(t, 8, 58)
	br := env.takeBreak(t, record.ID, 12, 0, 12, 10)
	env.checkOutAt(t, 17, 0)

	created, err := env.svc.Create(context.Background(), adjustment.CreateAdjustmentRequest{
		EmployeeID:         env.emp.ID,
		CompanyID:          testCompanyID,
		AttendanceRecordID: record.ID,
		BreakRecordID:      &br.ID,
		RequestedBreakEnd:  strPtr("2026-03-02 12:40:00"),
		Reason:             "ended the break late in the app",
	})
	require.NoError(t, err)
	require.NotNil(t, created.OriginalBreakEnd)
	assert.Equal(t, "2026-03-02 12:10:00", *created.OriginalBreakEnd)

	env.clk.set(19, 0)
	_, err = env.svc.Approve(context.Background(), adjustment.DecideAdjustmentRequest{
		ID:         created.ID,
		CompanyID:  testCompanyID,
		ApproverID: approverID,
	})
	require.NoError(t, err)

	rewritten, err := env.breaks.GetByID(context.Background(), br.ID)
	require.NoError(t, err)
	require.NotNil(t, rewritten.ActualBreakMinutes)
	assert.Equal(t, 40, *rewritten.ActualBreakMinutes)
	require.NotNil(t, rewritten.EffectiveBreakMinutes)
	assert.Equal(t, 40, *rewritten.EffectiveBreakMinutes)

	updated, err := env.records.GetByID(context.Background(), record.ID, testCompanyID)
	require.NoError(t, err)
	require.NotNil(t, updated.WorkingMinutes)
	assert.Equal(t, 440, *updated.WorkingMinutes)
}

func TestApproveRejectsRewriteOntoActiveBreak(t *testing.T) {
	env := newTestEnv(t)
	record := env.checkInAt(t, 9, 0)
	br := env.takeBreak(t, record.ID, 12, 0, 12, 30)

	// A second break is still in progress when the decision is made.
	env.clk.set(12, 45)
	_, err := env.attendanceSvc.StartBreak(context.Background(), attendance.StartBreakRequest{
		AttendanceRecordID: record.ID,
		CompanyID:          testCompanyID,
	})
	require.NoError(t, err)

	created, err := env.svc.Create(context.Background(), adjustment.CreateAdjustmentRequest{
		EmployeeID:          env.emp.ID,
		CompanyID:           testCompanyID,
		AttendanceRecordID:  record.ID,
		BreakRecordID:       &br.ID,
		RequestedBreakStart: strPtr("2026-03-02 12:40:00"),
		RequestedBreakEnd:   strPtr("2026-03-02 13:10:00"),
		Reason:              "logged the break too early",
	})
	require.NoError(t, err)

	env.clk.set(13, 30)
	_, err = env.svc.Approve(context.Background(), adjustment.DecideAdjustmentRequest{
		ID:         created.ID,
		CompanyID:  testCompanyID,
		ApproverID: approverID,
	})
	assert.ErrorIs(t, err, attendance.ErrOverlappingBreak)

	// The completed break keeps its recorded interval.
	untouched, err := env.breaks.GetByID(context.Background(), br.ID)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC), untouched.BreakStart)
	require.NotNil(t, untouched.BreakEnd)
	assert.Equal(t, time.Date(2026, 3, 2, 12, 30, 0, 0, time.UTC), *untouched.BreakEnd)
}

func TestApproveAlreadyDecided(t *testing.T) {
	env := newTestEnv(t)
	record := env.checkInAt(t, 9, 10)

	created, err := env.svc.Create(context.Background(), adjustment.CreateAdjustmentRequest{
		EmployeeID:         env.emp.ID,
		CompanyID:          testCompanyID,
		AttendanceRecordID: record.ID,
		RequestedCheckIn:   strPtr("2026-03-02 08:55:00"),
		Reason:             "badge reader was down",
	})
	require.NoError(t, err)

	decide := adjustment.DecideAdjustmentRequest{
		ID:         created.ID,
		CompanyID:  testCompanyID,
		ApproverID: approverID,
	}
	_, err = env.svc.Approve(context.Background(), decide)
	require.NoError(t, err)

	_, err = env.svc.Approve(context.Background(), decide)
	assert.ErrorIs(t, err, adjustment.ErrAdjustmentNotPending)

	decide.Reason = "changed my mind"
	_, err = env.svc.Reject(context.Background(), decide)
	assert.ErrorIs(t, err, adjustment.ErrAdjustmentNotPending)
}

func TestRejectLeavesDataUntouched(t *testing.T) {
	env := newTestEnv(t)
	record := env.checkInAt(t, 9, 10)

	created, err := env.svc.Create(context.Background(), adjustment.CreateAdjustmentRequest{
		EmployeeID:         env.emp.ID,
		CompanyID:          testCompanyID,
		AttendanceRecordID: record.ID,
		RequestedCheckIn:   strPtr("2026-03-02 08:55:00"),
		Reason:             "badge reader was down",
	})
	require.NoError(t, err)

	env.clk.set(19, 0)
	decided, err := env.svc.Reject(context.Background(), adjustment.DecideAdjustmentRequest{
		ID:         created.ID,
		CompanyID:  testCompanyID,
		ApproverID: approverID,
		Reason:     "no evidence provided",
	})
	require.NoError(t, err)

	assert.Equal(t, string(adjustment.StatusRejected), decided.Status)
	require.NotNil(t, decided.RejectionReason)
	assert.Equal(t, "no evidence provided", *decided.RejectionReason)
	require.NotNil(t, decided.DecidedAt)

	untouched, err := env.records.GetByID(context.Background(), record.ID, testCompanyID)
	require.NoError(t, err)
	require.NotNil(t, untouched.RoundedCheckIn)
	assert.Equal(t, time.Date(2026, 3, 2, 9, 15, 0, 0, time.UTC), *untouched.RoundedCheckIn)
	require.NotNil(t, untouched.LateMinutes)
	assert.Equal(t, 15, *untouched.LateMinutes)
	assert.Equal(t, attendance.StatusLate, untouched.Status)
}

func TestRejectRequiresReason(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.Reject(context.Background(), adjustment.DecideAdjustmentRequest{
		ID:         "whatever",
		CompanyID:  testCompanyID,
		ApproverID: approverID,
	})

	var validationErrs validator.ValidationErrors
	assert.ErrorAs(t, err, &validationErrs)
}

func TestGetUnknownAdjustment(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.svc.Get(context.Background(), "missing", testCompanyID)
	assert.ErrorIs(t, err, adjustment.ErrAdjustmentNotFound)
}
