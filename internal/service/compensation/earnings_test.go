package compensation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func assertDecimalEqual(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.True(t, got.Equal(decimal.RequireFromString(want)),
		"want %s, got %s", want, got.String())
}

func TestAllocateEarningsScenario(t *testing.T) {
	// 30-day month, 4 Sundays, non-Staff employee: 20 present, 2 half days,
	// 1 applicable holiday, no Sundays worked, 30000 monthly on a
	// 15000/1600 basic/conveyance split.
	got := AllocateEarnings(EarningsInput{
		FullWorkingDays:    20,
		HalfDays:           2,
		ApplicableHolidays: 1,
		SundaysInMonth:     4,
		SundaysWorked:      0,
		TotalDaysInMonth:   30,
		MonthlySalary:      decimal.NewFromInt(30000),
		Basic:              decimal.NewFromInt(15000),
		Conveyance:         decimal.NewFromInt(1600),
	})

	assertDecimalEqual(t, "1000", got.PerDayRate)
	// 20000 + 1000 + 1000 + 4000
	assertDecimalEqual(t, "26000", got.TotalGrossEarnings)
	assert.InDelta(t, 0.8667, got.EarningRatio.InexactFloat64(), 0.0001)
	assertDecimalEqual(t, "13000", got.AttendanceBasic)
	assertDecimalEqual(t, "1387", got.AttendanceConveyance)
	assertDecimalEqual(t, "21", got.PayableDays)
}

func TestAllocateEarningsZeroSalary(t *testing.T) {
	got := AllocateEarnings(EarningsInput{
		FullWorkingDays:    22,
		HalfDays:           3,
		ApplicableHolidays: 2,
		SundaysInMonth:     4,
		TotalDaysInMonth:   30,
		MonthlySalary:      decimal.Zero,
		Basic:              decimal.Zero,
		Conveyance:         decimal.Zero,
	})

	assert.True(t, got.PerDayRate.IsZero())
	assert.True(t, got.TotalGrossEarnings.IsZero())
	assert.True(t, got.EarningRatio.IsZero())
	assert.True(t, got.AttendanceBasic.IsZero())
	assert.True(t, got.AttendanceConveyance.IsZero())
	// Payable days are attendance facts, independent of salary.
	assertDecimalEqual(t, "23.5", got.PayableDays)
}

func TestAllocateEarningsRatioAboveOne(t *testing.T) {
	// Full-month credit plus holiday and Sunday pay can exceed the nominal
	// salary. The ratio is deliberately unclamped and downstream components
	// scale up with it.
	got := AllocateEarnings(EarningsInput{
		FullWorkingDays:    31,
		HalfDays:           0,
		ApplicableHolidays: 2,
		SundaysInMonth:     5,
		SundaysWorked:      0,
		TotalDaysInMonth:   31,
		MonthlySalary:      decimal.NewFromInt(31000),
		Basic:              decimal.NewFromInt(15500),
		Conveyance:         decimal.NewFromInt(1550),
	})

	// perDay = 1000; gross = (31 + 2 + 5) * 1000
	assertDecimalEqual(t, "38000", got.TotalGrossEarnings)
	assert.True(t, got.EarningRatio.GreaterThan(decimal.NewFromInt(1)))
	// 15500 * 38/31 and 1550 * 38/31
	assertDecimalEqual(t, "19000", got.AttendanceBasic)
	assertDecimalEqual(t, "1900", got.AttendanceConveyance)
}

func TestAllocateEarningsSundayNotDoublePaid(t *testing.T) {
	// Worked Sundays are subtracted from the rest-day Sunday pay; they are
	// already inside the full-working-day credit.
	got := AllocateEarnings(EarningsInput{
		FullWorkingDays:    28,
		HalfDays:           0,
		ApplicableHolidays: 0,
		SundaysInMonth:     4,
		SundaysWorked:      4,
		TotalDaysInMonth:   28,
		MonthlySalary:      decimal.NewFromInt(28000),
		Basic:              decimal.NewFromInt(14000),
		Conveyance:         decimal.NewFromInt(1400),
	})

	assertDecimalEqual(t, "28000", got.TotalGrossEarnings)
	assertDecimalEqual(t, "1", got.EarningRatio)
	assertDecimalEqual(t, "14000", got.AttendanceBasic)
	assertDecimalEqual(t, "1400", got.AttendanceConveyance)
}

func TestAllocateEarningsMoreSundaysWorkedThanInMonth(t *testing.T) {
	// The effective Sunday count never goes negative.
	got := AllocateEarnings(EarningsInput{
		FullWorkingDays:  10,
		SundaysInMonth:   4,
		SundaysWorked:    6,
		TotalDaysInMonth: 30,
		MonthlySalary:    decimal.NewFromInt(30000),
		Basic:            decimal.NewFromInt(15000),
		Conveyance:       decimal.NewFromInt(1600),
	})

	// gross = 10 * 1000, no Sunday pay at all
	assertDecimalEqual(t, "10000", got.TotalGrossEarnings)
}
