package memory

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/tamabee-group/api-hr-sub001/internal/domain/adjustment"
)

type AdjustmentRepository struct {
	mu       sync.RWMutex
	requests map[string]adjustment.AdjustmentRequest
}

func NewAdjustmentRepository() *AdjustmentRepository {
	return &AdjustmentRepository{requests: make(map[string]adjustment.AdjustmentRequest)}
}

func (r *AdjustmentRepository) Create(_ context.Context, request adjustment.AdjustmentRequest) (adjustment.AdjustmentRequest, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	request.ID = uuid.NewString()
	request.CreatedAt = now
	request.UpdatedAt = now
	r.requests[request.ID] = request
	return request, nil
}

func (r *AdjustmentRepository) GetByID(_ context.Context, id string, companyID string) (adjustment.AdjustmentRequest, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	request, ok := r.requests[id]
	if !ok || request.CompanyID != companyID {
		return adjustment.AdjustmentRequest{}, adjustment.ErrAdjustmentNotFound
	}
	return request, nil
}

func (r *AdjustmentRepository) HasPending(_ context.Context, attendanceRecordID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, request := range r.requests {
		if request.AttendanceRecordID == attendanceRecordID && request.Status == adjustment.StatusPending {
			return true, nil
		}
	}
	return false, nil
}

func (r *AdjustmentRepository) Update(_ context.Context, request adjustment.AdjustmentRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.requests[request.ID]; !ok {
		return adjustment.ErrAdjustmentNotFound
	}
	request.UpdatedAt = time.Now()
	r.requests[request.ID] = request
	return nil
}
