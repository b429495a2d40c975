package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tamabee-group/api-hr-sub001/internal/domain/schedule"
	"github.com/tamabee-group/api-hr-sub001/internal/pkg/database"
)

type workScheduleRepository struct {
	db *database.DB
}

func NewWorkScheduleRepository(db *database.DB) schedule.WorkScheduleRepository {
	return &workScheduleRepository{db: db}
}

const workScheduleColumns = `
	id, company_id, name, type, start_time, end_time,
	break_entitlement_minutes, is_default, created_at, updated_at
`

func scanWorkSchedule(row pgx.Row) (schedule.WorkSchedule, error) {
	var ws schedule.WorkSchedule
	err := row.Scan(
		&ws.ID, &ws.CompanyID, &ws.Name, &ws.Type, &ws.StartTime, &ws.EndTime,
		&ws.BreakEntitlementMinutes, &ws.IsDefault, &ws.CreatedAt, &ws.UpdatedAt,
	)
	return ws, err
}

// Create implements schedule.WorkScheduleRepository.
func (w *workScheduleRepository) Create(ctx context.Context, ws schedule.WorkSchedule) (schedule.WorkSchedule, error) {
	q := GetQuerier(ctx, w.db)

	query := `
		INSERT INTO work_schedules (
			company_id, name, type, start_time, end_time,
			break_entitlement_minutes, is_default
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		ws.CompanyID,
		ws.Name,
		ws.Type,
		ws.StartTime,
		ws.EndTime,
		ws.BreakEntitlementMinutes,
		ws.IsDefault,
	).Scan(&ws.ID, &ws.CreatedAt, &ws.UpdatedAt)
	if err != nil {
		return schedule.WorkSchedule{}, fmt.Errorf("failed to insert work schedule: %w", err)
	}

	return ws, nil
}

// GetByID implements schedule.WorkScheduleRepository.
func (w *workScheduleRepository) GetByID(ctx context.Context, id string, companyID string) (schedule.WorkSchedule, error) {
	q := GetQuerier(ctx, w.db)

	query := `SELECT ` + workScheduleColumns + ` FROM work_schedules WHERE id = $1 AND company_id = $2`

	ws, err := scanWorkSchedule(q.QueryRow(ctx, query, id, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.WorkSchedule{}, schedule.ErrScheduleNotFound
		}
		return schedule.WorkSchedule{}, fmt.Errorf("failed to get work schedule: %w", err)
	}

	return ws, nil
}

// GetDefault implements schedule.WorkScheduleRepository.
func (w *workScheduleRepository) GetDefault(ctx context.Context, companyID string) (schedule.WorkSchedule, error) {
	q := GetQuerier(ctx, w.db)

	query := `
		SELECT ` + workScheduleColumns + `
		FROM work_schedules
		WHERE company_id = $1 AND is_default = TRUE
		LIMIT 1
	`

	ws, err := scanWorkSchedule(q.QueryRow(ctx, query, companyID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return schedule.WorkSchedule{}, schedule.ErrScheduleNotFound
		}
		return schedule.WorkSchedule{}, fmt.Errorf("failed to get default work schedule: %w", err)
	}

	return ws, nil
}

// ListByCompany implements schedule.WorkScheduleRepository.
func (w *workScheduleRepository) ListByCompany(ctx context.Context, companyID string) ([]schedule.WorkSchedule, error) {
	q := GetQuerier(ctx, w.db)

	query := `
		SELECT ` + workScheduleColumns + `
		FROM work_schedules
		WHERE company_id = $1
		ORDER BY created_at
	`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to list work schedules: %w", err)
	}
	defer rows.Close()

	var schedules []schedule.WorkSchedule
	for rows.Next() {
		ws, err := scanWorkSchedule(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan work schedule: %w", err)
		}
		schedules = append(schedules, ws)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate work schedules: %w", err)
	}

	return schedules, nil
}
