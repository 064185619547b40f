package holiday

import (
	"github.com/meridian-erp/erp-backend-go/internal/pkg/validator"
)

type CreateHolidayRequest struct {
	Date        string   `json:"date"` // YYYY-MM-DD
	Name        string   `json:"name"`
	Departments []string `json:"departments"`
}

func (r *CreateHolidayRequest) Validate() error {
	var errs validator.ValidationErrors

	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be a valid date (YYYY-MM-DD)"})
	}
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if len(r.Departments) == 0 {
		errs = append(errs, validator.ValidationError{Field: "departments", Message: "must name at least one department or \"All\""})
	}
	for _, d := range r.Departments {
		if validator.IsEmpty(d) {
			errs = append(errs, validator.ValidationError{Field: "departments", Message: "must not contain empty entries"})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type HolidayResponse struct {
	ID          string   `json:"id"`
	Date        string   `json:"date"`
	Name        string   `json:"name"`
	Departments []string `json:"departments"`
}

type ListHolidayResponse struct {
	Holidays []HolidayResponse `json:"holidays"`
}

func ToHolidayResponse(h Holiday) HolidayResponse {
	return HolidayResponse{
		ID:          h.ID,
		Date:        h.Date.Format("2006-01-02"),
		Name:        h.Name,
		Departments: h.Departments,
	}
}
