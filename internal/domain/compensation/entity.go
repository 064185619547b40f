package compensation

import (
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus enum. The flag is owned by the payroll-run endpoint, never by
// the compensation engine.
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "Pending"
	PaymentStatusPaid    PaymentStatus = "Paid"
)

// Result is the engine output for one employee and one month. It is a pure
// function of the roster, the month's attendance rows, and the holiday
// calendar; it carries no persistence concerns.
type Result struct {
	EmployeeID           string
	Year                 int
	Month                int
	PresentDays          int
	HalfDays             int
	SundaysWorked        int
	ApplicableHolidays   int
	FullWorkingDays      int
	PayableDays          decimal.Decimal
	EarningRatio         decimal.Decimal
	AttendanceBasic      decimal.Decimal
	AttendanceConveyance decimal.Decimal
	TotalGrossEarnings   decimal.Decimal
	PFBase               decimal.Decimal
	PFAmount             decimal.Decimal
}

// Record is a persisted Result plus the payment flag and joined employee
// fields for listing.
type Record struct {
	ID        string
	Result
	Status    PaymentStatus
	PaidAt    *time.Time
	PaidBy    *string
	CreatedAt time.Time
	UpdatedAt time.Time

	// Joined fields
	EmployeeName *string
	EmployeeCode *string
	Department   *string
}
