package company

import "context"

// SettingsRepository provides the attendance policy for a company. A company
// without a stored policy row gets the fixture defaults.
type SettingsRepository interface {
	GetAttendanceConfig(ctx context.Context, companyID string) (AttendanceConfig, error)
	SaveAttendanceConfig(ctx context.Context, config AttendanceConfig) error
}
