package employee

import "context"

// EmployeeService exposes the read-only employee directory. The master data
// itself is owned by the HR module.
type EmployeeService interface {
	List(ctx context.Context, filter EmployeeFilter) (ListEmployeeResponse, error)
	Get(ctx context.Context, id string) (EmployeeResponse, error)
}
