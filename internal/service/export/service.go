package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/meridian-erp/erp-backend-go/internal/domain/compensation"
)

// ExportService renders stored records to spreadsheets. Pure formatting: it
// never recomputes any figure.
type ExportService struct{}

func NewExportService() *ExportService {
	return &ExportService{}
}

var compensationHeaders = []string{
	"Employee Code", "Employee Name", "Department",
	"Present Days", "Half Days", "Sundays Worked", "Applicable Holidays",
	"Full Working Days", "Payable Days", "Earning Ratio",
	"Attendance Basic", "Attendance Conveyance", "Total Gross Earnings",
	"PF Base", "PF Amount", "Status",
}

// CompensationWorkbook renders one month of compensation records into an XLSX
// workbook with a single sheet named after the period.
func (s *ExportService) CompensationWorkbook(records []compensation.Record, year, month int) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := fmt.Sprintf("%04d-%02d", year, month)
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}

	for col, header := range compensationHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return nil, err
		}
	}

	for i, record := range records {
		values := []interface{}{
			deref(record.EmployeeCode),
			deref(record.EmployeeName),
			deref(record.Department),
			record.PresentDays,
			record.HalfDays,
			record.SundaysWorked,
			record.ApplicableHolidays,
			record.FullWorkingDays,
			record.PayableDays.InexactFloat64(),
			record.EarningRatio.InexactFloat64(),
			record.AttendanceBasic.InexactFloat64(),
			record.AttendanceConveyance.InexactFloat64(),
			record.TotalGrossEarnings.InexactFloat64(),
			record.PFBase.InexactFloat64(),
			record.PFAmount.InexactFloat64(),
			string(record.Status),
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, i+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
