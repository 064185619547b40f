package compensation

import (
	"github.com/shopspring/decimal"
)

// pfRate is the statutory provident fund contribution rate (12%).
var pfRate = decimal.New(12, -2)

// ComputeProvidentFund derives the PF base from the attendance-adjusted Basic
// and Conveyance and applies the statutory rate when the employee has opted
// in. No statutory wage cap applies; the 12% is taken on the full base.
func ComputeProvidentFund(attendanceBasic, attendanceConveyance decimal.Decimal, applicable bool) (base, amount decimal.Decimal) {
	base = attendanceBasic.Add(attendanceConveyance)
	if !applicable {
		return base, decimal.Zero
	}
	return base, base.Mul(pfRate).Round(0)
}
