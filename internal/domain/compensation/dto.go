package compensation

import (
	"time"

	"github.com/meridian-erp/erp-backend-go/internal/pkg/validator"
	"github.com/shopspring/decimal"
)

type GenerateRequest struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

func (r *GenerateRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Year < 2000 || r.Year > 2100 {
		errs = append(errs, validator.ValidationError{Field: "year", Message: "must be between 2000 and 2100"})
	}
	if r.Month < 1 || r.Month > 12 {
		errs = append(errs, validator.ValidationError{Field: "month", Message: "must be between 1 and 12"})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type MarkPaidRequest struct {
	IDs []string `json:"ids"`
}

func (r *MarkPaidRequest) Validate() error {
	var errs validator.ValidationErrors

	if len(r.IDs) == 0 {
		errs = append(errs, validator.ValidationError{Field: "ids", Message: "must contain at least one record id"})
	}
	for _, id := range r.IDs {
		if validator.IsEmpty(id) {
			errs = append(errs, validator.ValidationError{Field: "ids", Message: "must not contain empty entries"})
			break
		}
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type RecordResponse struct {
	ID                   string          `json:"id"`
	EmployeeID           string          `json:"employee_id"`
	EmployeeName         *string         `json:"employee_name,omitempty"`
	EmployeeCode         *string         `json:"employee_code,omitempty"`
	Department           *string         `json:"department,omitempty"`
	Year                 int             `json:"year"`
	Month                int             `json:"month"`
	PresentDays          int             `json:"present_days"`
	HalfDays             int             `json:"half_days"`
	SundaysWorked        int             `json:"sundays_worked"`
	ApplicableHolidays   int             `json:"applicable_holidays"`
	FullWorkingDays      int             `json:"full_working_days"`
	PayableDays          decimal.Decimal `json:"payable_days"`
	EarningRatio         decimal.Decimal `json:"earning_ratio"`
	AttendanceBasic      decimal.Decimal `json:"attendance_basic"`
	AttendanceConveyance decimal.Decimal `json:"attendance_conveyance"`
	TotalGrossEarnings   decimal.Decimal `json:"total_gross_earnings"`
	PFBase               decimal.Decimal `json:"pf_base"`
	PFAmount             decimal.Decimal `json:"pf_amount"`
	Status               string          `json:"status"`
	PaidAt               *time.Time      `json:"paid_at,omitempty"`
}

type GenerateResponse struct {
	Year        int              `json:"year"`
	Month       int              `json:"month"`
	Generated   int              `json:"generated"`
	SkippedPaid int              `json:"skipped_paid"`
	Records     []RecordResponse `json:"records"`
}

type ListResponse struct {
	Records []RecordResponse `json:"records"`
}

type MarkPaidResponse struct {
	PaidIDs []string `json:"paid_ids"`
}

func ToRecordResponse(r Record) RecordResponse {
	return RecordResponse{
		ID:                   r.ID,
		EmployeeID:           r.EmployeeID,
		EmployeeName:         r.EmployeeName,
		EmployeeCode:         r.EmployeeCode,
		Department:           r.Department,
		Year:                 r.Year,
		Month:                r.Month,
		PresentDays:          r.PresentDays,
		HalfDays:             r.HalfDays,
		SundaysWorked:        r.SundaysWorked,
		ApplicableHolidays:   r.ApplicableHolidays,
		FullWorkingDays:      r.FullWorkingDays,
		PayableDays:          r.PayableDays,
		EarningRatio:         r.EarningRatio,
		AttendanceBasic:      r.AttendanceBasic,
		AttendanceConveyance: r.AttendanceConveyance,
		TotalGrossEarnings:   r.TotalGrossEarnings,
		PFBase:               r.PFBase,
		PFAmount:             r.PFAmount,
		Status:               string(r.Status),
		PaidAt:               r.PaidAt,
	}
}
