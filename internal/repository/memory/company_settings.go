package memory

import (
	"context"
	"sync"

	"github.com/tamabee-group/api-hr-sub001/internal/domain/company"
	"github.com/tamabee-group/api-hr-sub001/internal/fixtures"
)

type CompanySettingsRepository struct {
	mu      sync.RWMutex
	configs map[string]company.AttendanceConfig
}

func NewCompanySettingsRepository() *CompanySettingsRepository {
	return &CompanySettingsRepository{configs: make(map[string]company.AttendanceConfig)}
}

// GetAttendanceConfig falls back to the fixture defaults for companies that
// never stored a policy.
func (r *CompanySettingsRepository) GetAttendanceConfig(_ context.Context, companyID string) (company.AttendanceConfig, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if config, ok := r.configs[companyID]; ok {
		return config, nil
	}
	return fixtures.DefaultAttendanceConfig(companyID), nil
}

func (r *CompanySettingsRepository) SaveAttendanceConfig(_ context.Context, config company.AttendanceConfig) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.configs[config.CompanyID] = config
	return nil
}
