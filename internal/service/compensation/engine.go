package compensation

import (
	"time"

	"github.com/meridian-erp/erp-backend-go/internal/domain/attendance"
	"github.com/meridian-erp/erp-backend-go/internal/domain/compensation"
	"github.com/meridian-erp/erp-backend-go/internal/domain/employee"
	"github.com/meridian-erp/erp-backend-go/internal/domain/holiday"
)

// MonthContext carries the calendar facts of a target month. Derived, never
// persisted.
type MonthContext struct {
	Year           int
	Month          time.Month
	TotalDays      int
	SundaysInMonth int
}

func NewMonthContext(year int, month time.Month) MonthContext {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	totalDays := first.AddDate(0, 1, -1).Day()

	sundays := 0
	for d := 0; d < totalDays; d++ {
		if first.AddDate(0, 0, d).Weekday() == time.Sunday {
			sundays++
		}
	}

	return MonthContext{
		Year:           year,
		Month:          month,
		TotalDays:      totalDays,
		SundaysInMonth: sundays,
	}
}

// Engine converts a month of raw attendance into payable salary components
// and a provident fund contribution per employee. Compute is a pure function
// of its inputs: no I/O, no cross-employee state, idempotent.
type Engine struct{}

func NewEngine() *Engine {
	return &Engine{}
}

// Compute runs the full pipeline for every employee on the roster and returns
// one result per employee, in roster order. Business-data irregularities
// (missing rows, missing salary structure, unknown department) resolve to
// zero/ignore defaults and never error.
func (e *Engine) Compute(
	roster []employee.Employee,
	records []attendance.Record,
	holidays []holiday.Holiday,
	year int,
	month time.Month,
) []compensation.Result {
	mc := NewMonthContext(year, month)
	tallies := AggregateMonth(records, roster, year, month)

	results := make([]compensation.Result, 0, len(roster))
	for _, emp := range roster {
		results = append(results, e.computeEmployee(emp, tallies[emp.ID], holidays, mc))
	}
	return results
}

func (e *Engine) computeEmployee(
	emp employee.Employee,
	tally DayTally,
	holidays []holiday.Holiday,
	mc MonthContext,
) compensation.Result {
	// Computed once here and shared by the threshold rule and holiday pay.
	applicableHolidays := ApplicableHolidays(holidays, emp.Department, mc.Year, mc.Month)

	fullDays := FullWorkingDays(mc.TotalDays, tally.PresentDays, applicableHolidays)

	earnings := AllocateEarnings(EarningsInput{
		FullWorkingDays:    fullDays,
		HalfDays:           tally.HalfDays,
		ApplicableHolidays: applicableHolidays,
		SundaysInMonth:     mc.SundaysInMonth,
		SundaysWorked:      tally.SundaysWorked,
		TotalDaysInMonth:   mc.TotalDays,
		MonthlySalary:      emp.MonthlySalary(),
		Basic:              emp.Basic(),
		Conveyance:         emp.Conveyance(),
	})

	pfBase, pfAmount := ComputeProvidentFund(
		earnings.AttendanceBasic,
		earnings.AttendanceConveyance,
		emp.ProvidentFundApplicable(),
	)

	return compensation.Result{
		EmployeeID:           emp.ID,
		Year:                 mc.Year,
		Month:                int(mc.Month),
		PresentDays:          tally.PresentDays,
		HalfDays:             tally.HalfDays,
		SundaysWorked:        tally.SundaysWorked,
		ApplicableHolidays:   applicableHolidays,
		FullWorkingDays:      fullDays,
		PayableDays:          earnings.PayableDays,
		EarningRatio:         earnings.EarningRatio,
		AttendanceBasic:      earnings.AttendanceBasic,
		AttendanceConveyance: earnings.AttendanceConveyance,
		TotalGrossEarnings:   earnings.TotalGrossEarnings,
		PFBase:               pfBase,
		PFAmount:             pfAmount,
	}
}
