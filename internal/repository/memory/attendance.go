package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/tamabee-group/api-hr-sub001/internal/domain/attendance"
)

// AttendanceRepository is a map-backed implementation used by unit tests and
// the memory storage driver.
type AttendanceRepository struct {
	mu      sync.RWMutex
	records map[string]attendance.AttendanceRecord
}

func NewAttendanceRepository() *AttendanceRepository {
	return &AttendanceRepository{records: make(map[string]attendance.AttendanceRecord)}
}

func (r *AttendanceRepository) Create(_ context.Context, record attendance.AttendanceRecord) (attendance.AttendanceRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	record.ID = uuid.NewString()
	record.CreatedAt = now
	record.UpdatedAt = now
	r.records[record.ID] = record
	return record, nil
}

func (r *AttendanceRepository) GetByID(_ context.Context, id string, companyID string) (attendance.AttendanceRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.records[id]
	if !ok || record.CompanyID != companyID {
		return attendance.AttendanceRecord{}, attendance.ErrAttendanceNotFound
	}
	return record, nil
}

func (r *AttendanceRepository) GetByEmployeeAndDate(_ context.Context, employeeID string, date time.Time, companyID string) (*attendance.AttendanceRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	day := date.Format("2006-01-02")
	for _, record := range r.records {
		if record.EmployeeID == employeeID && record.CompanyID == companyID &&
			record.WorkDate.Format("2006-01-02") == day {
			found := record
			return &found, nil
		}
	}
	return nil, nil
}

func (r *AttendanceRepository) Update(_ context.Context, record attendance.AttendanceRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[record.ID]; !ok {
		return attendance.ErrAttendanceNotFound
	}
	record.UpdatedAt = time.Now()
	r.records[record.ID] = record
	return nil
}

// BreakRepository is the map-backed attendance.BreakRepository.
type BreakRepository struct {
	mu      sync.RWMutex
	records map[string]attendance.BreakRecord
}

func NewBreakRepository() *BreakRepository {
	return &BreakRepository{records: make(map[string]attendance.BreakRecord)}
}

func (r *BreakRepository) Create(_ context.Context, record attendance.BreakRecord) (attendance.BreakRecord, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	record.ID = uuid.NewString()
	record.CreatedAt = now
	record.UpdatedAt = now
	r.records[record.ID] = record
	return record, nil
}

func (r *BreakRepository) GetByID(_ context.Context, id string) (attendance.BreakRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	record, ok := r.records[id]
	if !ok {
		return attendance.BreakRecord{}, attendance.ErrBreakNotFound
	}
	return record, nil
}

func (r *BreakRepository) ListByAttendanceID(_ context.Context, attendanceRecordID string) ([]attendance.BreakRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var breaks []attendance.BreakRecord
	for _, record := range r.records {
		if record.AttendanceRecordID == attendanceRecordID {
			breaks = append(breaks, record)
		}
	}
	sort.Slice(breaks, func(i, j int) bool { return breaks[i].BreakNumber < breaks[j].BreakNumber })
	return breaks, nil
}

func (r *BreakRepository) GetActive(_ context.Context, attendanceRecordID string) (*attendance.BreakRecord, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, record := range r.records {
		if record.AttendanceRecordID == attendanceRecordID && record.BreakEnd == nil {
			found := record
			return &found, nil
		}
	}
	return nil, nil
}

func (r *BreakRepository) Update(_ context.Context, record attendance.BreakRecord) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.records[record.ID]; !ok {
		return attendance.ErrBreakNotFound
	}
	record.UpdatedAt = time.Now()
	r.records[record.ID] = record
	return nil
}
