package attendance

import "context"

// AttendanceService defines business logic for attendance data entry. The
// store is append-friendly: a correction is a new row for the same employee
// and date, and the compensation engine resolves duplicates latest-wins.
type AttendanceService interface {
	CreateRecord(ctx context.Context, req CreateRecordRequest) (RecordResponse, error)
	ListByMonth(ctx context.Context, year, month int, employeeID *string) (ListRecordResponse, error)
	DeleteRecord(ctx context.Context, id string) error
}
