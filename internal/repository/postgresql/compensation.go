package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/meridian-erp/erp-backend-go/internal/domain/compensation"
	"github.com/meridian-erp/erp-backend-go/internal/pkg/database"
)

type compensationRepository struct {
	db *database.DB
}

func NewCompensationRepository(db *database.DB) compensation.CompensationRepository {
	return &compensationRepository{db: db}
}

func (r *compensationRepository) Upsert(ctx context.Context, record compensation.Record) (bool, error) {
	q := GetQuerier(ctx, r.db)

	// Replace the Pending draft for this employee and period; never touch a
	// record the payroll run already marked Paid. The WHERE on the conflict
	// update makes a Paid row return no id, which we report as skipped.
	query := `
		INSERT INTO compensation_records (
			id, employee_id, year, month,
			present_days, half_days, sundays_worked, applicable_holidays,
			full_working_days, payable_days, earning_ratio,
			attendance_basic, attendance_conveyance, total_gross_earnings,
			pf_base, pf_amount, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17
		)
		ON CONFLICT (employee_id, year, month) DO UPDATE SET
			present_days = EXCLUDED.present_days,
			half_days = EXCLUDED.half_days,
			sundays_worked = EXCLUDED.sundays_worked,
			applicable_holidays = EXCLUDED.applicable_holidays,
			full_working_days = EXCLUDED.full_working_days,
			payable_days = EXCLUDED.payable_days,
			earning_ratio = EXCLUDED.earning_ratio,
			attendance_basic = EXCLUDED.attendance_basic,
			attendance_conveyance = EXCLUDED.attendance_conveyance,
			total_gross_earnings = EXCLUDED.total_gross_earnings,
			pf_base = EXCLUDED.pf_base,
			pf_amount = EXCLUDED.pf_amount,
			updated_at = NOW()
		WHERE compensation_records.status = 'Pending'
		RETURNING id
	`

	var id string
	err := q.QueryRow(ctx, query,
		uuid.NewString(),
		record.EmployeeID, record.Year, record.Month,
		record.PresentDays, record.HalfDays, record.SundaysWorked, record.ApplicableHolidays,
		record.FullWorkingDays, record.PayableDays, record.EarningRatio,
		record.AttendanceBasic, record.AttendanceConveyance, record.TotalGrossEarnings,
		record.PFBase, record.PFAmount, string(compensation.PaymentStatusPending),
	).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("failed to upsert compensation record: %w", err)
	}
	return true, nil
}

const compensationRecordColumns = `
	c.id, c.employee_id, c.year, c.month,
	c.present_days, c.half_days, c.sundays_worked, c.applicable_holidays,
	c.full_working_days, c.payable_days, c.earning_ratio,
	c.attendance_basic, c.attendance_conveyance, c.total_gross_earnings,
	c.pf_base, c.pf_amount, c.status, c.paid_at, c.paid_by,
	c.created_at, c.updated_at,
	e.full_name, e.employee_code, e.department
`

func scanCompensationRecord(row pgx.Row) (compensation.Record, error) {
	var (
		record compensation.Record
		status string
	)
	err := row.Scan(
		&record.ID, &record.EmployeeID, &record.Year, &record.Month,
		&record.PresentDays, &record.HalfDays, &record.SundaysWorked, &record.ApplicableHolidays,
		&record.FullWorkingDays, &record.PayableDays, &record.EarningRatio,
		&record.AttendanceBasic, &record.AttendanceConveyance, &record.TotalGrossEarnings,
		&record.PFBase, &record.PFAmount, &status, &record.PaidAt, &record.PaidBy,
		&record.CreatedAt, &record.UpdatedAt,
		&record.EmployeeName, &record.EmployeeCode, &record.Department,
	)
	if err != nil {
		return compensation.Record{}, err
	}
	record.Status = compensation.PaymentStatus(status)
	return record, nil
}

func (r *compensationRepository) ListByPeriod(ctx context.Context, year, month int) ([]compensation.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + compensationRecordColumns + `
		FROM compensation_records c
		JOIN employees e ON e.id = c.employee_id
		WHERE c.year = $1 AND c.month = $2
		ORDER BY e.employee_code
	`

	rows, err := q.Query(ctx, query, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list compensation records: %w", err)
	}
	defer rows.Close()

	var records []compensation.Record
	for rows.Next() {
		record, err := scanCompensationRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan compensation record: %w", err)
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

func (r *compensationRepository) MarkPaid(ctx context.Context, ids []string, paidBy string) ([]string, error) {
	q := GetQuerier(ctx, r.db)

	// The run is all-or-nothing: an unknown id or an id already flipped to
	// Paid rejects the whole batch before anything is updated.
	var known, alreadyPaid int
	if err := q.QueryRow(ctx,
		`SELECT COUNT(*), COUNT(*) FILTER (WHERE status = 'Paid')
		 FROM compensation_records WHERE id = ANY($1)`, ids,
	).Scan(&known, &alreadyPaid); err != nil {
		return nil, fmt.Errorf("failed to check compensation records: %w", err)
	}
	if known != len(ids) {
		return nil, compensation.ErrRecordNotFound
	}
	if alreadyPaid > 0 {
		return nil, compensation.ErrRecordAlreadyPaid
	}

	query := `
		UPDATE compensation_records
		SET status = 'Paid', paid_at = NOW(), paid_by = $2, updated_at = NOW()
		WHERE id = ANY($1) AND status = 'Pending'
		RETURNING id
	`

	rows, err := q.Query(ctx, query, ids, paidBy)
	if err != nil {
		return nil, fmt.Errorf("failed to mark compensation records paid: %w", err)
	}
	defer rows.Close()

	var paid []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan paid id: %w", err)
		}
		paid = append(paid, id)
	}
	return paid, rows.Err()
}
