package compensation

import (
	"time"

	"github.com/meridian-erp/erp-backend-go/internal/domain/holiday"
	"github.com/meridian-erp/erp-backend-go/internal/pkg/validator"
)

// ApplicableHolidays counts the month's holidays that apply to the given
// department: entries whose department list contains "All" or the exact
// department string. Matching is case-sensitive with no normalization, so an
// unknown department simply matches nothing. This is the only place the
// department match predicate lives.
func ApplicableHolidays(holidays []holiday.Holiday, department string, year int, month time.Month) int {
	count := 0
	for _, h := range holidays {
		if h.Date.Year() != year || h.Date.Month() != month {
			continue
		}
		if validator.IsInSlice(holiday.DepartmentAll, h.Departments) ||
			validator.IsInSlice(department, h.Departments) {
			count++
		}
	}
	return count
}
