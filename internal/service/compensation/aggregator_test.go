package compensation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/meridian-erp/erp-backend-go/internal/domain/attendance"
	"github.com/meridian-erp/erp-backend-go/internal/domain/employee"
)

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func record(employeeID string, date time.Time, status attendance.Status, updatedAt time.Time) attendance.Record {
	return attendance.Record{
		EmployeeID: employeeID,
		Date:       date,
		Status:     status,
		CreatedAt:  updatedAt,
		UpdatedAt:  updatedAt,
	}
}

var testRoster = []employee.Employee{
	{ID: "emp-staff", Department: employee.DepartmentStaff},
	{ID: "emp-prod", Department: "Production"},
}

func TestAggregateMonthBasicCounts(t *testing.T) {
	// April 2026: 30 days, Sundays on 5, 12, 19, 26.
	records := []attendance.Record{
		record("emp-prod", day(2026, time.April, 1), attendance.StatusPresent, time.Time{}),
		record("emp-prod", day(2026, time.April, 2), attendance.StatusPresent, time.Time{}),
		record("emp-prod", day(2026, time.April, 3), attendance.StatusHalfDay, time.Time{}),
		record("emp-prod", day(2026, time.April, 4), attendance.StatusLeave, time.Time{}),
		record("emp-prod", day(2026, time.April, 6), attendance.StatusAbsent, time.Time{}),
		record("emp-prod", day(2026, time.April, 7), attendance.StatusWeekOff, time.Time{}),
		record("emp-prod", day(2026, time.April, 8), attendance.StatusHoliday, time.Time{}),
	}

	tallies := AggregateMonth(records, testRoster, 2026, time.April)

	assert.Equal(t, DayTally{PresentDays: 2, HalfDays: 1, SundaysWorked: 0}, tallies["emp-prod"])
	// No rows at all is an implicit fully absent month.
	assert.Equal(t, DayTally{}, tallies["emp-staff"])
}

func TestAggregateMonthSundayRules(t *testing.T) {
	sunday := day(2026, time.April, 5)
	records := []attendance.Record{
		record("emp-staff", sunday, attendance.StatusPresent, time.Time{}),
		record("emp-prod", sunday, attendance.StatusPresent, time.Time{}),
		// Anything but Present on a Sunday contributes nothing.
		record("emp-staff", day(2026, time.April, 12), attendance.StatusHalfDay, time.Time{}),
		record("emp-prod", day(2026, time.April, 12), attendance.StatusHalfDay, time.Time{}),
	}

	tallies := AggregateMonth(records, testRoster, 2026, time.April)

	// Staff Sunday presence counts both as a worked Sunday and a present day.
	assert.Equal(t, DayTally{PresentDays: 1, HalfDays: 0, SundaysWorked: 1}, tallies["emp-staff"])
	// Non-Staff Sunday presence is a worked Sunday only.
	assert.Equal(t, DayTally{PresentDays: 0, HalfDays: 0, SundaysWorked: 1}, tallies["emp-prod"])
}

func TestAggregateMonthLatestDuplicateWins(t *testing.T) {
	date := day(2026, time.April, 2)
	older := record("emp-prod", date, attendance.StatusPresent, time.Date(2026, time.April, 2, 9, 0, 0, 0, time.UTC))
	newer := record("emp-prod", date, attendance.StatusAbsent, time.Date(2026, time.April, 3, 9, 0, 0, 0, time.UTC))

	// Input order must not matter.
	for _, records := range [][]attendance.Record{{older, newer}, {newer, older}} {
		tallies := AggregateMonth(records, testRoster, 2026, time.April)
		assert.Equal(t, DayTally{}, tallies["emp-prod"])
	}
}

func TestAggregateMonthIdenticalTimestampFirstSeenWins(t *testing.T) {
	date := day(2026, time.April, 2)
	ts := time.Date(2026, time.April, 3, 9, 0, 0, 0, time.UTC)
	present := record("emp-prod", date, attendance.StatusPresent, ts)
	absent := record("emp-prod", date, attendance.StatusAbsent, ts)

	// On an exact timestamp tie the earlier row in the input keeps its slot,
	// so a fixed input slice always aggregates the same way.
	tallies := AggregateMonth([]attendance.Record{present, absent}, testRoster, 2026, time.April)
	assert.Equal(t, DayTally{PresentDays: 1}, tallies["emp-prod"])

	tallies = AggregateMonth([]attendance.Record{absent, present}, testRoster, 2026, time.April)
	assert.Equal(t, DayTally{}, tallies["emp-prod"])
}

func TestAggregateMonthTimestampFallback(t *testing.T) {
	date := day(2026, time.April, 2)

	// A row with only created_at competes against updated_at.
	corrected := attendance.Record{
		EmployeeID: "emp-prod",
		Date:       date,
		Status:     attendance.StatusPresent,
		CreatedAt:  time.Date(2026, time.April, 4, 9, 0, 0, 0, time.UTC),
	}
	stale := record("emp-prod", date, attendance.StatusAbsent, time.Date(2026, time.April, 3, 9, 0, 0, 0, time.UTC))

	tallies := AggregateMonth([]attendance.Record{stale, corrected}, testRoster, 2026, time.April)
	assert.Equal(t, DayTally{PresentDays: 1}, tallies["emp-prod"])
}

func TestAggregateMonthIgnoresOtherMonthsAndUnknownEmployees(t *testing.T) {
	records := []attendance.Record{
		// Stray rows from neighboring months never leak in.
		record("emp-prod", day(2026, time.March, 31), attendance.StatusPresent, time.Time{}),
		record("emp-prod", day(2026, time.May, 1), attendance.StatusPresent, time.Time{}),
		record("emp-prod", day(2025, time.April, 1), attendance.StatusPresent, time.Time{}),
		// Rows for employees off the roster are dropped.
		record("emp-gone", day(2026, time.April, 1), attendance.StatusPresent, time.Time{}),
		record("emp-prod", day(2026, time.April, 1), attendance.StatusPresent, time.Time{}),
	}

	tallies := AggregateMonth(records, testRoster, 2026, time.April)

	assert.Equal(t, DayTally{PresentDays: 1}, tallies["emp-prod"])
	assert.NotContains(t, tallies, "emp-gone")
}
