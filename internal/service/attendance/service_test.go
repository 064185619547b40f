package attendance

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridian-erp/erp-backend-go/internal/domain/attendance"
	"github.com/meridian-erp/erp-backend-go/internal/domain/employee"
)

type stubEmployeeRepo struct{ employees map[string]employee.Employee }

func (s *stubEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	if emp, ok := s.employees[id]; ok {
		return emp, nil
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (s *stubEmployeeRepo) GetActive(ctx context.Context) ([]employee.Employee, error) {
	return nil, nil
}

func (s *stubEmployeeRepo) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	return nil, 0, nil
}

type stubAttendanceRepo struct{ created []attendance.Record }

func (s *stubAttendanceRepo) Create(ctx context.Context, record attendance.Record) (attendance.Record, error) {
	record.ID = "rec-1"
	s.created = append(s.created, record)
	return record, nil
}

func (s *stubAttendanceRepo) ListByMonth(ctx context.Context, year, month int) ([]attendance.Record, error) {
	return nil, nil
}

func (s *stubAttendanceRepo) ListByEmployeeMonth(ctx context.Context, employeeID string, year, month int) ([]attendance.Record, error) {
	return nil, nil
}

func (s *stubAttendanceRepo) Delete(ctx context.Context, id string) error { return nil }

func newTestService(repo *stubAttendanceRepo) attendance.AttendanceService {
	employees := &stubEmployeeRepo{employees: map[string]employee.Employee{
		"emp-1": {ID: "emp-1", Department: "Production"},
	}}
	return NewAttendanceService(repo, employees)
}

func TestCreateRecord(t *testing.T) {
	repo := &stubAttendanceRepo{}
	svc := newTestService(repo)

	resp, err := svc.CreateRecord(context.Background(), attendance.CreateRecordRequest{
		EmployeeID: "emp-1",
		Date:       "2026-04-01",
		Status:     "Present",
	})
	require.NoError(t, err)

	assert.Equal(t, "rec-1", resp.ID)
	assert.Equal(t, "2026-04-01", resp.Date)
	assert.Equal(t, "Present", resp.Status)
	require.Len(t, repo.created, 1)
	assert.Equal(t, attendance.StatusPresent, repo.created[0].Status)
}

func TestCreateRecordInvalidStatus(t *testing.T) {
	repo := &stubAttendanceRepo{}
	svc := newTestService(repo)

	_, err := svc.CreateRecord(context.Background(), attendance.CreateRecordRequest{
		EmployeeID: "emp-1",
		Date:       "2026-04-01",
		Status:     "OnSite",
	})
	assert.ErrorIs(t, err, attendance.ErrInvalidStatus)
	assert.Empty(t, repo.created)
}

func TestCreateRecordUnknownEmployee(t *testing.T) {
	repo := &stubAttendanceRepo{}
	svc := newTestService(repo)

	_, err := svc.CreateRecord(context.Background(), attendance.CreateRecordRequest{
		EmployeeID: "emp-missing",
		Date:       "2026-04-01",
		Status:     "Present",
	})
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
	assert.Empty(t, repo.created)
}
