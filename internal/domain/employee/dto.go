package employee

import "github.com/shopspring/decimal"

type EmployeeFilter struct {
	Department *string
	ActiveOnly bool
	Page       int
	Limit      int
}

type SalaryStructureResponse struct {
	Basic            decimal.Decimal  `json:"basic"`
	HRA              decimal.Decimal  `json:"hra"`
	Conveyance       decimal.Decimal  `json:"conveyance"`
	OtherAllowance   decimal.Decimal  `json:"other_allowance"`
	SpecialAllowance decimal.Decimal  `json:"special_allowance"`
	GrossMonthly     *decimal.Decimal `json:"gross_monthly,omitempty"`
}

type EmployeeResponse struct {
	ID           string                   `json:"id"`
	EmployeeCode string                   `json:"employee_code"`
	FullName     string                   `json:"full_name"`
	Department   string                   `json:"department"`
	PFApplicable bool                     `json:"pf_applicable"`
	Salary       *SalaryStructureResponse `json:"salary,omitempty"`
	Active       bool                     `json:"active"`
}

type ListEmployeeResponse struct {
	Employees  []EmployeeResponse `json:"employees"`
	TotalItems int64              `json:"total_items"`
}

func ToEmployeeResponse(e Employee) EmployeeResponse {
	resp := EmployeeResponse{
		ID:           e.ID,
		EmployeeCode: e.EmployeeCode,
		FullName:     e.FullName,
		Department:   e.Department,
		PFApplicable: e.ProvidentFundApplicable(),
		Active:       e.Active,
	}
	if e.Salary != nil {
		resp.Salary = &SalaryStructureResponse{
			Basic:            e.Salary.Basic,
			HRA:              e.Salary.HRA,
			Conveyance:       e.Salary.Conveyance,
			OtherAllowance:   e.Salary.OtherAllowance,
			SpecialAllowance: e.Salary.SpecialAllowance,
			GrossMonthly:     e.Salary.GrossMonthly,
		}
	}
	return resp
}
