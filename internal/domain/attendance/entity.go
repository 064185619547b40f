package attendance

import "time"

// Status is the daily attendance status recorded per employee per date.
type Status string

const (
	StatusPresent Status = "Present"
	StatusHalfDay Status = "HalfDay"
	StatusLeave   Status = "Leave"
	StatusHoliday Status = "Holiday"
	StatusWeekOff Status = "WeekOff"
	StatusAbsent  Status = "Absent"
)

// Valid reports whether s is one of the known daily statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPresent, StatusHalfDay, StatusLeave, StatusHoliday, StatusWeekOff, StatusAbsent:
		return true
	}
	return false
}

// Record is one attendance row. The store is append-friendly: multiple rows
// may exist for the same employee and date (created then corrected), and the
// compensation engine resolves duplicates by latest timestamp.
type Record struct {
	ID         string
	EmployeeID string
	Date       time.Time
	Status     Status
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// EffectiveTimestamp is the tie-break key for duplicate rows on the same
// employee and date: updated_at, falling back to created_at, falling back to
// the zero time.
func (r Record) EffectiveTimestamp() time.Time {
	if !r.UpdatedAt.IsZero() {
		return r.UpdatedAt
	}
	return r.CreatedAt
}
