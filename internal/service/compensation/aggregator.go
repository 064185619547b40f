package compensation

import (
	"time"

	"github.com/meridian-erp/erp-backend-go/internal/domain/attendance"
	"github.com/meridian-erp/erp-backend-go/internal/domain/employee"
)

// DayTally is the per-employee reduction of one month of raw attendance rows.
type DayTally struct {
	PresentDays   int
	HalfDays      int
	SundaysWorked int
}

// AggregateMonth reduces the month's attendance rows into per-employee day
// tallies. A missing row for a date contributes nothing (implicit Absent); no
// explicit Absent row is ever required.
func AggregateMonth(records []attendance.Record, roster []employee.Employee, year int, month time.Month) map[string]DayTally {
	departments := make(map[string]string, len(roster))
	for _, emp := range roster {
		departments[emp.ID] = emp.Department
	}

	tallies := make(map[string]DayTally, len(roster))
	for _, rec := range latestPerDay(records, year, month, departments) {
		tally := tallies[rec.EmployeeID]
		if rec.Date.Weekday() == time.Sunday {
			// On Sundays only Present matters. A worked Sunday is compensated
			// separately; Staff presence additionally counts toward the
			// regular present total, other departments' does not.
			if rec.Status == attendance.StatusPresent {
				tally.SundaysWorked++
				if departments[rec.EmployeeID] == employee.DepartmentStaff {
					tally.PresentDays++
				}
			}
		} else {
			switch rec.Status {
			case attendance.StatusPresent:
				tally.PresentDays++
			case attendance.StatusHalfDay:
				tally.HalfDays++
			}
			// Leave, Holiday, WeekOff and Absent rows contribute nothing
			// here; qualifying holidays are paid via the holiday count.
		}
		tallies[rec.EmployeeID] = tally
	}
	return tallies
}

// latestPerDay folds duplicate rows for the same employee and date down to
// the row with the greatest effective timestamp (updated_at, then created_at,
// then zero). Rows dated outside the target month or belonging to employees
// not on the roster are dropped. On identical timestamps the first row seen
// wins.
func latestPerDay(records []attendance.Record, year int, month time.Month, departments map[string]string) map[string]attendance.Record {
	selected := make(map[string]attendance.Record)
	for _, rec := range records {
		if rec.Date.Year() != year || rec.Date.Month() != month {
			continue
		}
		if _, onRoster := departments[rec.EmployeeID]; !onRoster {
			continue
		}
		key := rec.EmployeeID + "|" + rec.Date.Format("2006-01-02")
		if existing, ok := selected[key]; ok && !rec.EffectiveTimestamp().After(existing.EffectiveTimestamp()) {
			continue
		}
		selected[key] = rec
	}
	return selected
}
