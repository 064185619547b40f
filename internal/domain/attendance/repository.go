package attendance

import "context"

type AttendanceRepository interface {
	// Create appends a new attendance row. Corrections are new rows, not
	// updates; the engine picks the latest row per employee and date.
	Create(ctx context.Context, record Record) (Record, error)

	// ListByMonth retrieves every row dated inside the given month, including
	// duplicates for the same employee and date.
	ListByMonth(ctx context.Context, year int, month int) ([]Record, error)

	// ListByEmployeeMonth retrieves one employee's rows for the month.
	ListByEmployeeMonth(ctx context.Context, employeeID string, year int, month int) ([]Record, error)

	Delete(ctx context.Context, id string) error
}
