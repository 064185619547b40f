package compensation

// requiredDaysForFullMonth is the attendance bar above which the whole month
// is credited. The 27-day bar for 31-day months is a deliberate business
// policy, not a rounding artifact.
func requiredDaysForFullMonth(totalDaysInMonth int) int {
	if totalDaysInMonth == 31 {
		return 27
	}
	return 26
}

// FullWorkingDays applies the full-month attendance credit: holidays lower
// the bar (they cap the achievable present count), and clearing the adjusted
// bar credits the entire month. Below the bar the employee is credited only
// for days actually present.
func FullWorkingDays(totalDaysInMonth, presentDays, applicableHolidays int) int {
	adjustedRequired := requiredDaysForFullMonth(totalDaysInMonth) - applicableHolidays
	if presentDays >= adjustedRequired {
		return totalDaysInMonth
	}
	return presentDays
}
