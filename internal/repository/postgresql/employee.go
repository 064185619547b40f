package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/meridian-erp/erp-backend-go/internal/domain/employee"
	"github.com/meridian-erp/erp-backend-go/internal/pkg/database"
)

type employeeRepository struct {
	db *database.DB
}

func NewEmployeeRepository(db *database.DB) employee.EmployeeRepository {
	return &employeeRepository{db: db}
}

const employeeColumns = `
	id, employee_code, full_name, department, pf_applicable, include_pf,
	basic, hra, conveyance, other_allowance, special_allowance, gross_monthly,
	active, created_at, updated_at
`

func scanEmployee(row pgx.Row) (employee.Employee, error) {
	var (
		emp                              employee.Employee
		basic, hra, conveyance           *decimal.Decimal
		otherAllowance, specialAllowance *decimal.Decimal
		grossMonthly                     *decimal.Decimal
	)

	err := row.Scan(
		&emp.ID, &emp.EmployeeCode, &emp.FullName, &emp.Department,
		&emp.PFApplicable, &emp.IncludePF,
		&basic, &hra, &conveyance, &otherAllowance, &specialAllowance, &grossMonthly,
		&emp.Active, &emp.CreatedAt, &emp.UpdatedAt,
	)
	if err != nil {
		return employee.Employee{}, err
	}

	// All salary columns NULL means HR has not set up a structure yet; the
	// engine treats that as zero salary.
	if basic != nil || hra != nil || conveyance != nil || otherAllowance != nil ||
		specialAllowance != nil || grossMonthly != nil {
		emp.Salary = &employee.SalaryStructure{
			Basic:            derefDecimal(basic),
			HRA:              derefDecimal(hra),
			Conveyance:       derefDecimal(conveyance),
			OtherAllowance:   derefDecimal(otherAllowance),
			SpecialAllowance: derefDecimal(specialAllowance),
			GrossMonthly:     grossMonthly,
		}
	}
	return emp, nil
}

func derefDecimal(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}

func (r *employeeRepository) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE id = $1`

	emp, err := scanEmployee(q.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.Employee{}, employee.ErrEmployeeNotFound
		}
		return employee.Employee{}, fmt.Errorf("failed to get employee: %w", err)
	}
	return emp, nil
}

func (r *employeeRepository) GetActive(ctx context.Context) ([]employee.Employee, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + employeeColumns + ` FROM employees WHERE active ORDER BY employee_code`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list active employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}
	return employees, rows.Err()
}

func (r *employeeRepository) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	q := GetQuerier(ctx, r.db)

	where := " WHERE 1=1"
	args := []interface{}{}
	argPos := 1

	if filter.Department != nil {
		where += fmt.Sprintf(" AND department = $%d", argPos)
		args = append(args, *filter.Department)
		argPos++
	}
	if filter.ActiveOnly {
		where += " AND active"
	}

	var total int64
	if err := q.QueryRow(ctx, "SELECT COUNT(*) FROM employees"+where, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count employees: %w", err)
	}

	query := `SELECT ` + employeeColumns + ` FROM employees` + where +
		fmt.Sprintf(" ORDER BY employee_code LIMIT $%d OFFSET $%d", argPos, argPos+1)
	args = append(args, filter.Limit, (filter.Page-1)*filter.Limit)

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list employees: %w", err)
	}
	defer rows.Close()

	var employees []employee.Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan employee: %w", err)
		}
		employees = append(employees, emp)
	}
	return employees, total, rows.Err()
}
