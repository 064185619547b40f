package employee

import (
	"time"

	"github.com/shopspring/decimal"
)

// DepartmentStaff is the department whose Sunday attendance also counts as a
// regular present day. All other departments get Sunday work compensated
// separately, never as presence.
const DepartmentStaff = "Staff"

type Employee struct {
	ID           string
	EmployeeCode string
	FullName     string
	Department   string
	PFApplicable bool
	// IncludePF is the legacy flag kept from the old HR screens. Either flag
	// opts the employee into provident fund.
	IncludePF bool
	Salary    *SalaryStructure
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SalaryStructure is the static monthly salary split maintained by HR.
type SalaryStructure struct {
	Basic            decimal.Decimal
	HRA              decimal.Decimal
	Conveyance       decimal.Decimal
	OtherAllowance   decimal.Decimal
	SpecialAllowance decimal.Decimal
	// GrossMonthly overrides the component sum when present and nonzero.
	GrossMonthly *decimal.Decimal
}

// ProvidentFundApplicable reports whether either PF opt-in flag is set.
func (e Employee) ProvidentFundApplicable() bool {
	return e.PFApplicable || e.IncludePF
}

// MonthlySalary resolves the nominal monthly salary: the gross override when
// present and nonzero, else the sum of the components. A missing structure
// yields zero, which is legal and produces zero pay downstream.
func (e Employee) MonthlySalary() decimal.Decimal {
	if e.Salary == nil {
		return decimal.Zero
	}
	if e.Salary.GrossMonthly != nil && !e.Salary.GrossMonthly.IsZero() {
		return *e.Salary.GrossMonthly
	}
	return e.Salary.Basic.
		Add(e.Salary.HRA).
		Add(e.Salary.Conveyance).
		Add(e.Salary.OtherAllowance).
		Add(e.Salary.SpecialAllowance)
}

// Basic returns the static basic component, zero when no structure exists.
func (e Employee) Basic() decimal.Decimal {
	if e.Salary == nil {
		return decimal.Zero
	}
	return e.Salary.Basic
}

// Conveyance returns the static conveyance component, zero when no structure exists.
func (e Employee) Conveyance() decimal.Decimal {
	if e.Salary == nil {
		return decimal.Zero
	}
	return e.Salary.Conveyance
}
