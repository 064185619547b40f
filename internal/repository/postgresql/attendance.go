package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/meridian-erp/erp-backend-go/internal/domain/attendance"
	"github.com/meridian-erp/erp-backend-go/internal/pkg/database"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

// monthBounds returns [first day of month, first day of next month).
func monthBounds(year, month int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}

func (r *attendanceRepository) Create(ctx context.Context, record attendance.Record) (attendance.Record, error) {
	q := GetQuerier(ctx, r.db)

	record.ID = uuid.NewString()

	query := `
		INSERT INTO attendance_records (id, employee_id, date, status)
		VALUES ($1, $2, $3, $4)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		record.ID,
		record.EmployeeID,
		record.Date,
		string(record.Status),
	).Scan(&record.CreatedAt, &record.UpdatedAt)
	if err != nil {
		return attendance.Record{}, fmt.Errorf("failed to create attendance record: %w", err)
	}

	return record, nil
}

func (r *attendanceRepository) ListByMonth(ctx context.Context, year int, month int) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)
	start, end := monthBounds(year, month)

	query := `
		SELECT id, employee_id, date, status, created_at, updated_at
		FROM attendance_records
		WHERE date >= $1 AND date < $2
		ORDER BY employee_id, date, updated_at
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	return scanAttendanceRows(rows)
}

func (r *attendanceRepository) ListByEmployeeMonth(ctx context.Context, employeeID string, year int, month int) ([]attendance.Record, error) {
	q := GetQuerier(ctx, r.db)
	start, end := monthBounds(year, month)

	query := `
		SELECT id, employee_id, date, status, created_at, updated_at
		FROM attendance_records
		WHERE employee_id = $1 AND date >= $2 AND date < $3
		ORDER BY date, updated_at
	`

	rows, err := q.Query(ctx, query, employeeID, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance records: %w", err)
	}
	defer rows.Close()

	return scanAttendanceRows(rows)
}

func scanAttendanceRows(rows pgx.Rows) ([]attendance.Record, error) {
	var records []attendance.Record
	for rows.Next() {
		var (
			record attendance.Record
			status string
		)
		if err := rows.Scan(
			&record.ID, &record.EmployeeID, &record.Date, &status,
			&record.CreatedAt, &record.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan attendance record: %w", err)
		}
		record.Status = attendance.Status(status)
		records = append(records, record)
	}
	return records, rows.Err()
}

func (r *attendanceRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM attendance_records WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete attendance record: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrRecordNotFound
	}
	return nil
}
