package adjustment

import "errors"

var (
	ErrAdjustmentNotFound         = errors.New("adjustment request not found")
	ErrDuplicatePendingAdjustment = errors.New("a pending adjustment already exists for this attendance record")
	ErrBreakRecordIDRequired      = errors.New("break_record_id is required when break times are requested")
	ErrAdjustmentNotPending       = errors.New("adjustment request has already been decided")
	ErrBreakNotOnAttendanceRecord = errors.New("break record does not belong to the target attendance record")
	ErrNothingRequested           = errors.New("adjustment request must propose at least one new value")
)
