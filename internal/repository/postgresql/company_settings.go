package postgresql

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tamabee-group/api-hr-sub001/internal/domain/company"
	"github.com/tamabee-group/api-hr-sub001/internal/fixtures"
	"github.com/tamabee-group/api-hr-sub001/internal/pkg/database"
)

type companySettingsRepository struct {
	db *database.DB
}

func NewCompanySettingsRepository(db *database.DB) company.SettingsRepository {
	return &companySettingsRepository{db: db}
}

// breakPolicyBand is the JSONB shape stored in attendance_configs.break_policy.
type breakPolicyBand struct {
	MinWorkedMinutes        int  `json:"min_worked_minutes"`
	MaxWorkedMinutes        *int `json:"max_worked_minutes"`
	MinRequiredBreakMinutes int  `json:"min_required_break_minutes"`
	MaxCreditedBreakMinutes int  `json:"max_credited_break_minutes"`
}

// GetAttendanceConfig implements company.SettingsRepository. Companies without
// a stored policy row get the fixture defaults.
func (c *companySettingsRepository) GetAttendanceConfig(ctx context.Context, companyID string) (company.AttendanceConfig, error) {
	q := GetQuerier(ctx, c.db)

	query := `
		SELECT company_id, rounding_interval_minutes, check_in_rounding, check_out_rounding,
			late_grace_minutes, early_leave_grace_minutes, max_breaks_per_day, break_policy
		FROM attendance_configs
		WHERE company_id = $1
	`

	var config company.AttendanceConfig
	var policyJSON []byte
	err := q.QueryRow(ctx, query, companyID).Scan(
		&config.CompanyID,
		&config.RoundingIntervalMinutes,
		&config.CheckInRounding,
		&config.CheckOutRounding,
		&config.LateGraceMinutes,
		&config.EarlyLeaveGraceMinutes,
		&config.MaxBreaksPerDay,
		&policyJSON,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return fixtures.DefaultAttendanceConfig(companyID), nil
		}
		return company.AttendanceConfig{}, fmt.Errorf("failed to get attendance config: %w", err)
	}

	var bands []breakPolicyBand
	if err := json.Unmarshal(policyJSON, &bands); err != nil {
		return company.AttendanceConfig{}, fmt.Errorf("failed to decode break policy: %w", err)
	}
	for _, band := range bands {
		config.BreakPolicy = append(config.BreakPolicy, company.BreakPolicyBand(band))
	}

	return config, nil
}

// SaveAttendanceConfig implements company.SettingsRepository.
func (c *companySettingsRepository) SaveAttendanceConfig(ctx context.Context, config company.AttendanceConfig) error {
	q := GetQuerier(ctx, c.db)

	bands := make([]breakPolicyBand, 0, len(config.BreakPolicy))
	for _, band := range config.BreakPolicy {
		bands = append(bands, breakPolicyBand(band))
	}
	policyJSON, err := json.Marshal(bands)
	if err != nil {
		return fmt.Errorf("failed to encode break policy: %w", err)
	}

	query := `
		INSERT INTO attendance_configs (
			company_id, rounding_interval_minutes, check_in_rounding, check_out_rounding,
			late_grace_minutes, early_leave_grace_minutes, max_breaks_per_day, break_policy
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		)
		ON CONFLICT (company_id) DO UPDATE SET
			rounding_interval_minutes = EXCLUDED.rounding_interval_minutes,
			check_in_rounding = EXCLUDED.check_in_rounding,
			check_out_rounding = EXCLUDED.check_out_rounding,
			late_grace_minutes = EXCLUDED.late_grace_minutes,
			early_leave_grace_minutes = EXCLUDED.early_leave_grace_minutes,
			max_breaks_per_day = EXCLUDED.max_breaks_per_day,
			break_policy = EXCLUDED.break_policy,
			updated_at = NOW()
	`

	_, err = q.Exec(ctx, query,
		config.CompanyID,
		config.RoundingIntervalMinutes,
		config.CheckInRounding,
		config.CheckOutRounding,
		config.LateGraceMinutes,
		config.EarlyLeaveGraceMinutes,
		config.MaxBreaksPerDay,
		policyJSON,
	)
	if err != nil {
		return fmt.Errorf("failed to save attendance config: %w", err)
	}

	return nil
}
