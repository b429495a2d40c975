package adjustment

import (
	"context"
	"fmt"

	"github.com/tamabee-group/api-hr-sub001/internal/domain/adjustment"
	"github.com/tamabee-group/api-hr-sub001/internal/domain/attendance"
	"github.com/tamabee-group/api-hr-sub001/internal/pkg/clock"
	"github.com/tamabee-group/api-hr-sub001/internal/pkg/database"
	"github.com/tamabee-group/api-hr-sub001/internal/pkg/lock"
)

// AdjustmentServiceImpl implements the correction workflow. It owns the state
// machine; the actual rewriting of attendance data is delegated to the
// attendance rewriter so both paths share one rounding and metrics pipeline.
type AdjustmentServiceImpl struct {
	tx    database.TxManager
	clock clock.Clock
	locks *lock.KeyedMutex
	adjustment.AdjustmentRepository
	attendance.AttendanceRepository
	attendance.BreakRepository
	rewriter attendance.Rewriter
}

func NewAdjustmentService(
	tx database.TxManager,
	clk clock.Clock,
	locks *lock.KeyedMutex,
	adjustmentRepo adjustment.AdjustmentRepository,
	attendanceRepo attendance.AttendanceRepository,
	breakRepo attendance.BreakRepository,
	rewriter attendance.Rewriter,
) *AdjustmentServiceImpl {
	return &AdjustmentServiceImpl{
		tx:                   tx,
		clock:                clk,
		locks:                locks,
		AdjustmentRepository: adjustmentRepo,
		AttendanceRepository: attendanceRepo,
		BreakRepository:      breakRepo,
		rewriter:             rewriter,
	}
}

// Create implements adjustment.AdjustmentService.
func (s *AdjustmentServiceImpl) Create(ctx context.Context, req adjustment.CreateAdjustmentRequest) (adjustment.AdjustmentResponse, error) {
	if err := req.Validate(); err != nil {
		return adjustment.AdjustmentResponse{}, err
	}

	checkIn, checkOut, breakStart, breakEnd := req.ParsedTimes()

	if checkIn == nil && checkOut == nil && breakStart == nil && breakEnd == nil {
		return adjustment.AdjustmentResponse{}, adjustment.ErrNothingRequested
	}
	if (breakStart != nil || breakEnd != nil) && req.BreakRecordID == nil {
		return adjustment.AdjustmentResponse{}, adjustment.ErrBreakRecordIDRequired
	}

	record, err := s.AttendanceRepository.GetByID(ctx, req.AttendanceRecordID, req.CompanyID)
	if err != nil {
		return adjustment.AdjustmentResponse{}, err
	}

	unlock := s.locks.Lock(attendance.DayKey(record.EmployeeID, record.WorkDate))
	defer unlock()

	hasPending, err := s.AdjustmentRepository.HasPending(ctx, record.ID)
	if err != nil {
		return adjustment.AdjustmentResponse{}, fmt.Errorf("failed to check pending adjustments: %w", err)
	}
	if hasPending {
		return adjustment.AdjustmentResponse{}, adjustment.ErrDuplicatePendingAdjustment
	}

	request := adjustment.AdjustmentRequest{
		CompanyID:          req.CompanyID,
		EmployeeID:         req.EmployeeID,
		AttendanceRecordID: record.ID,
		BreakRecordID:      req.BreakRecordID,
		// Snapshot the current values; these fields stay frozen from here on.
		OriginalCheckIn:     record.OriginalCheckIn,
		OriginalCheckOut:    record.OriginalCheckOut,
		RequestedCheckIn:    checkIn,
		RequestedCheckOut:   checkOut,
		RequestedBreakStart: breakStart,
		RequestedBreakEnd:   breakEnd,
		Reason:              req.Reason,
		Status:              adjustment.StatusPending,
	}

	if req.BreakRecordID != nil {
		br, err := s.BreakRepository.GetByID(ctx, *req.BreakRecordID)
		if err != nil {
			return adjustment.AdjustmentResponse{}, err
		}
		if br.AttendanceRecordID != record.ID {
			return adjustment.AdjustmentResponse{}, adjustment.ErrBreakNotOnAttendanceRecord
		}
		start := br.BreakStart
		request.OriginalBreakStart = &start
		request.OriginalBreakEnd = br.BreakEnd
	}

	created, err := s.AdjustmentRepository.Create(ctx, request)
	if err != nil {
		return adjustment.AdjustmentResponse{}, fmt.Errorf("failed to create adjustment request: %w", err)
	}

	return adjustment.NewAdjustmentResponse(created), nil
}

// Approve implements adjustment.AdjustmentService. The requested values are
// pushed through the same rounding and metrics pipeline as live events; the
// request itself keeps its original and requested values as the audit trail.
func (s *AdjustmentServiceImpl) Approve(ctx context.Context, req adjustment.DecideAdjustmentRequest) (adjustment.AdjustmentResponse, error) {
	request, err := s.AdjustmentRepository.GetByID(ctx, req.ID, req.CompanyID)
	if err != nil {
		return adjustment.AdjustmentResponse{}, err
	}
	if request.Status != adjustment.StatusPending {
		return adjustment.AdjustmentResponse{}, adjustment.ErrAdjustmentNotPending
	}

	record, err := s.AttendanceRepository.GetByID(ctx, request.AttendanceRecordID, req.CompanyID)
	if err != nil {
		return adjustment.AdjustmentResponse{}, err
	}

	unlock := s.locks.Lock(attendance.DayKey(record.EmployeeID, record.WorkDate))
	defer unlock()

	// Re-read under the lock; a concurrent decision must not be repeated.
	request, err = s.AdjustmentRepository.GetByID(ctx, req.ID, req.CompanyID)
	if err != nil {
		return adjustment.AdjustmentResponse{}, err
	}
	if request.Status != adjustment.StatusPending {
		return adjustment.AdjustmentResponse{}, adjustment.ErrAdjustmentNotPending
	}

	err = s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		if request.RequestsCheckTimes() {
			if _, err := s.rewriter.ApplyCheckTimes(ctx, request.AttendanceRecordID, req.CompanyID, request.RequestedCheckIn, request.RequestedCheckOut); err != nil {
				return err
			}
		}

		if request.BreakRecordID != nil && request.RequestsBreakTimes() {
			if _, err := s.rewriter.ApplyBreakTimes(ctx, *request.BreakRecordID, req.CompanyID, request.RequestedBreakStart, request.RequestedBreakEnd); err != nil {
				return err
			}
		}

		now := s.clock.Now()
		request.Status = adjustment.StatusApproved
		request.ApproverID = &req.ApproverID
		if req.Comment != "" {
			comment := req.Comment
			request.ApproverComment = &comment
		}
		request.DecidedAt = &now

		if err := s.AdjustmentRepository.Update(ctx, request); err != nil {
			return fmt.Errorf("failed to update adjustment request: %w", err)
		}
		return nil
	})
	if err != nil {
		return adjustment.AdjustmentResponse{}, err
	}

	return adjustment.NewAdjustmentResponse(request), nil
}

// Reject implements adjustment.AdjustmentService. No attendance or break data
// is touched.
func (s *AdjustmentServiceImpl) Reject(ctx context.Context, req adjustment.DecideAdjustmentRequest) (adjustment.AdjustmentResponse, error) {
	if err := req.ValidateReject(); err != nil {
		return adjustment.AdjustmentResponse{}, err
	}

	request, err := s.AdjustmentRepository.GetByID(ctx, req.ID, req.CompanyID)
	if err != nil {
		return adjustment.AdjustmentResponse{}, err
	}
	if request.Status != adjustment.StatusPending {
		return adjustment.AdjustmentResponse{}, adjustment.ErrAdjustmentNotPending
	}

	record, err := s.AttendanceRepository.GetByID(ctx, request.AttendanceRecordID, req.CompanyID)
	if err != nil {
		return adjustment.AdjustmentResponse{}, err
	}

	unlock := s.locks.Lock(attendance.DayKey(record.EmployeeID, record.WorkDate))
	defer unlock()

	request, err = s.AdjustmentRepository.GetByID(ctx, req.ID, req.CompanyID)
	if err != nil {
		return adjustment.AdjustmentResponse{}, err
	}
	if request.Status != adjustment.StatusPending {
		return adjustment.AdjustmentResponse{}, adjustment.ErrAdjustmentNotPending
	}

	now := s.clock.Now()
	reason := req.Reason
	request.Status = adjustment.StatusRejected
	request.RejectionReason = &reason
	request.ApproverID = &req.ApproverID
	request.DecidedAt = &now

	if err := s.AdjustmentRepository.Update(ctx, request); err != nil {
		return adjustment.AdjustmentResponse{}, fmt.Errorf("failed to update adjustment request: %w", err)
	}

	return adjustment.NewAdjustmentResponse(request), nil
}

// Get implements adjustment.AdjustmentService.
func (s *AdjustmentServiceImpl) Get(ctx context.Context, id string, companyID string) (adjustment.AdjustmentResponse, error) {
	request, err := s.AdjustmentRepository.GetByID(ctx, id, companyID)
	if err != nil {
		return adjustment.AdjustmentResponse{}, err
	}
	return adjustment.NewAdjustmentResponse(request), nil
}
