package holiday

import "time"

// DepartmentAll is the sentinel department value meaning the holiday applies
// to every department.
const DepartmentAll = "All"

type Holiday struct {
	ID   string
	Date time.Time
	Name string
	// Departments the holiday applies to. Contains DepartmentAll or exact
	// department names; matching is case-sensitive with no normalization.
	Departments []string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
