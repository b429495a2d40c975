package postgresql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tamabee-group/api-hr-sub001/internal/domain/schedule"
	"github.com/tamabee-group/api-hr-sub001/internal/pkg/database"
)

type scheduleAssignmentRepository struct {
	db *database.DB
}

func NewScheduleAssignmentRepository(db *database.DB) schedule.ScheduleAssignmentRepository {
	return &scheduleAssignmentRepository{db: db}
}

const assignmentColumns = `
	id, employee_id, company_id, work_schedule_id,
	effective_from, effective_to, created_at, updated_at
`

func scanAssignment(row pgx.Row) (schedule.ScheduleAssignment, error) {
	var assignment schedule.ScheduleAssignment
	err := row.Scan(
		&assignment.ID, &assignment.EmployeeID, &assignment.CompanyID, &assignment.WorkScheduleID,
		&assignment.EffectiveFrom, &assignment.EffectiveTo, &assignment.CreatedAt, &assignment.UpdatedAt,
	)
	return assignment, err
}

// Create implements schedule.ScheduleAssignmentRepository.
func (s *scheduleAssignmentRepository) Create(ctx context.Context, assignment schedule.ScheduleAssignment) (schedule.ScheduleAssignment, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		INSERT INTO schedule_assignments (
			employee_id, company_id, work_schedule_id, effective_from, effective_to
		) VALUES (
			$1, $2, $3, $4, $5
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		assignment.EmployeeID,
		assignment.CompanyID,
		assignment.WorkScheduleID,
		assignment.EffectiveFrom,
		assignment.EffectiveTo,
	).Scan(&assignment.ID, &assignment.CreatedAt, &assignment.UpdatedAt)
	if err != nil {
		return schedule.ScheduleAssignment{}, fmt.Errorf("failed to insert schedule assignment: %w", err)
	}

	return assignment, nil
}

// GetEffective implements schedule.ScheduleAssignmentRepository.
func (s *scheduleAssignmentRepository) GetEffective(ctx context.Context, employeeID string, date time.Time) (*schedule.ScheduleAssignment, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT ` + assignmentColumns + `
		FROM schedule_assignments
		WHERE employee_id = $1
			AND effective_from <= $2
			AND (effective_to IS NULL OR effective_to >= $2)
		ORDER BY effective_from DESC
		LIMIT 1
	`

	assignment, err := scanAssignment(q.QueryRow(ctx, query, employeeID, date))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get effective schedule assignment: %w", err)
	}

	return &assignment, nil
}

// ListByEmployee implements schedule.ScheduleAssignmentRepository.
func (s *scheduleAssignmentRepository) ListByEmployee(ctx context.Context, employeeID string) ([]schedule.ScheduleAssignment, error) {
	q := GetQuerier(ctx, s.db)

	query := `
		SELECT ` + assignmentColumns + `
		FROM schedule_assignments
		WHERE employee_id = $1
		ORDER BY effective_from
	`

	rows, err := q.Query(ctx, query, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to list schedule assignments: %w", err)
	}
	defer rows.Close()

	var assignments []schedule.ScheduleAssignment
	for rows.Next() {
		assignment, err := scanAssignment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan schedule assignment: %w", err)
		}
		assignments = append(assignments, assignment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate schedule assignments: %w", err)
	}

	return assignments, nil
}
