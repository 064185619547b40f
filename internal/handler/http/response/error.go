package response

import (
	"errors"
	"net/http"

	"github.com/meridian-erp/erp-backend-go/internal/domain/attendance"
	"github.com/meridian-erp/erp-backend-go/internal/domain/compensation"
	"github.com/meridian-erp/erp-backend-go/internal/domain/employee"
	"github.com/meridian-erp/erp-backend-go/internal/domain/holiday"
	"github.com/meridian-erp/erp-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrInvalidStatus):
		BadRequest(w, "Invalid attendance status", nil)

	// Holiday domain errors
	case errors.Is(err, holiday.ErrHolidayNotFound):
		NotFound(w, "Holiday not found")

	// Compensation domain errors
	case errors.Is(err, compensation.ErrRecordNotFound):
		NotFound(w, "Compensation record not found")
	case errors.Is(err, compensation.ErrRecordAlreadyPaid):
		Conflict(w, "Compensation record already paid")
	case errors.Is(err, compensation.ErrInvalidPeriod):
		BadRequest(w, "Invalid compensation period", nil)
	case errors.Is(err, compensation.ErrNoRecordsForPeriod):
		NotFound(w, "No compensation records exist for this period")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
