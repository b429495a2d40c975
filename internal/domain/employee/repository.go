package employee

import "context"

// EmployeeRepository is the directory consulted before recording attendance.
// Employee lifecycle management itself lives in another service.
type EmployeeRepository interface {
	GetByID(ctx context.Context, id string, companyID string) (Employee, error)
	Exists(ctx context.Context, id string, companyID string) (bool, error)
}
