package attendance

import (
	"context"
	"time"

	"github.com/meridian-erp/erp-backend-go/internal/domain/attendance"
	"github.com/meridian-erp/erp-backend-go/internal/domain/employee"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	employeeRepo   employee.EmployeeRepository
}

func NewAttendanceService(
	attendanceRepo attendance.AttendanceRepository,
	employeeRepo employee.EmployeeRepository,
) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		employeeRepo:   employeeRepo,
	}
}

func (s *AttendanceServiceImpl) CreateRecord(ctx context.Context, req attendance.CreateRecordRequest) (attendance.RecordResponse, error) {
	if err := req.Validate(); err != nil {
		return attendance.RecordResponse{}, err
	}

	status := attendance.Status(req.Status)
	if !status.Valid() {
		return attendance.RecordResponse{}, attendance.ErrInvalidStatus
	}

	if _, err := s.employeeRepo.GetByID(ctx, req.EmployeeID); err != nil {
		return attendance.RecordResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	record := attendance.Record{
		EmployeeID: req.EmployeeID,
		Date:       date,
		Status:     status,
	}

	created, err := s.attendanceRepo.Create(ctx, record)
	if err != nil {
		return attendance.RecordResponse{}, err
	}
	return attendance.ToRecordResponse(created), nil
}

func (s *AttendanceServiceImpl) ListByMonth(ctx context.Context, year, month int, employeeID *string) (attendance.ListRecordResponse, error) {
	var (
		records []attendance.Record
		err     error
	)
	if employeeID != nil {
		records, err = s.attendanceRepo.ListByEmployeeMonth(ctx, *employeeID, year, month)
	} else {
		records, err = s.attendanceRepo.ListByMonth(ctx, year, month)
	}
	if err != nil {
		return attendance.ListRecordResponse{}, err
	}

	resp := attendance.ListRecordResponse{Records: make([]attendance.RecordResponse, 0, len(records))}
	for _, record := range records {
		resp.Records = append(resp.Records, attendance.ToRecordResponse(record))
	}
	return resp, nil
}

func (s *AttendanceServiceImpl) DeleteRecord(ctx context.Context, id string) error {
	return s.attendanceRepo.Delete(ctx, id)
}
