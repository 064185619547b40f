package compensation

import (
	"github.com/shopspring/decimal"
)

type EarningsInput struct {
	FullWorkingDays    int
	HalfDays           int
	ApplicableHolidays int
	SundaysInMonth     int
	SundaysWorked      int
	TotalDaysInMonth   int
	MonthlySalary      decimal.Decimal
	Basic              decimal.Decimal
	Conveyance         decimal.Decimal
}

type Earnings struct {
	PerDayRate           decimal.Decimal
	TotalGrossEarnings   decimal.Decimal
	EarningRatio         decimal.Decimal
	AttendanceBasic      decimal.Decimal
	AttendanceConveyance decimal.Decimal
	PayableDays          decimal.Decimal
}

var two = decimal.NewFromInt(2)

// AllocateEarnings distributes the static monthly salary across credited
// days, half days, qualifying holidays and unworked Sundays. A zero monthly
// salary is legal and yields zero pay throughout.
//
// Rounding of the adjusted Basic and Conveyance is decimal.Round(0): half
// away from zero, to the nearest integer currency unit.
func AllocateEarnings(in EarningsInput) Earnings {
	perDay := decimal.Zero
	if in.TotalDaysInMonth > 0 {
		perDay = in.MonthlySalary.Div(decimal.NewFromInt(int64(in.TotalDaysInMonth)))
	}

	pdPay := perDay.Mul(decimal.NewFromInt(int64(in.FullWorkingDays)))
	hdPay := perDay.Div(two).Mul(decimal.NewFromInt(int64(in.HalfDays)))
	holidayPay := perDay.Mul(decimal.NewFromInt(int64(in.ApplicableHolidays)))

	// Sundays already captured inside the full-working-day credit (Staff who
	// worked them) are subtracted out so they are not paid twice.
	effectiveSundays := in.SundaysInMonth - in.SundaysWorked
	if effectiveSundays < 0 {
		effectiveSundays = 0
	}
	sundayPay := perDay.Mul(decimal.NewFromInt(int64(effectiveSundays)))

	gross := pdPay.Add(hdPay).Add(holidayPay).Add(sundayPay)

	ratio := decimal.Zero
	if in.MonthlySalary.IsPositive() {
		// Deliberately unclamped: overlapping holiday, Sunday and full-month
		// credit can push attendance-derived pay above the nominal salary,
		// and downstream components scale up with it.
		ratio = gross.Div(in.MonthlySalary)
	}

	return Earnings{
		PerDayRate:           perDay,
		TotalGrossEarnings:   gross,
		EarningRatio:         ratio,
		AttendanceBasic:      in.Basic.Mul(ratio).Round(0),
		AttendanceConveyance: in.Conveyance.Mul(ratio).Round(0),
		PayableDays:          decimal.NewFromInt(int64(in.FullWorkingDays)).Add(decimal.New(int64(in.HalfDays)*5, -1)),
	}
}
