package compensation

import (
	"context"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridian-erp/erp-backend-go/internal/domain/attendance"
	"github.com/meridian-erp/erp-backend-go/internal/domain/compensation"
	"github.com/meridian-erp/erp-backend-go/internal/domain/employee"
	"github.com/meridian-erp/erp-backend-go/internal/domain/holiday"
	"github.com/meridian-erp/erp-backend-go/internal/pkg/jwt"
	"github.com/meridian-erp/erp-backend-go/internal/service/export"
)

type stubTx struct{ pgx.Tx }

func (stubTx) Commit(ctx context.Context) error   { return nil }
func (stubTx) Rollback(ctx context.Context) error { return nil }

type stubTxBeginner struct{}

func (stubTxBeginner) BeginTx(ctx context.Context) (pgx.Tx, error) { return stubTx{}, nil }

type stubEmployeeRepo struct{ active []employee.Employee }

func (s *stubEmployeeRepo) GetByID(ctx context.Context, id string) (employee.Employee, error) {
	for _, emp := range s.active {
		if emp.ID == id {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrEmployeeNotFound
}

func (s *stubEmployeeRepo) GetActive(ctx context.Context) ([]employee.Employee, error) {
	return s.active, nil
}

func (s *stubEmployeeRepo) List(ctx context.Context, filter employee.EmployeeFilter) ([]employee.Employee, int64, error) {
	return s.active, int64(len(s.active)), nil
}

type stubAttendanceRepo struct{ records []attendance.Record }

func (s *stubAttendanceRepo) Create(ctx context.Context, record attendance.Record) (attendance.Record, error) {
	return record, nil
}

func (s *stubAttendanceRepo) ListByMonth(ctx context.Context, year, month int) ([]attendance.Record, error) {
	return s.records, nil
}

func (s *stubAttendanceRepo) ListByEmployeeMonth(ctx context.Context, employeeID string, year, month int) ([]attendance.Record, error) {
	return s.records, nil
}

func (s *stubAttendanceRepo) Delete(ctx context.Context, id string) error { return nil }

type stubHolidayRepo struct{ holidays []holiday.Holiday }

func (s *stubHolidayRepo) Create(ctx context.Context, h holiday.Holiday) (holiday.Holiday, error) {
	return h, nil
}

func (s *stubHolidayRepo) ListByMonth(ctx context.Context, year, month int) ([]holiday.Holiday, error) {
	return s.holidays, nil
}

func (s *stubHolidayRepo) Delete(ctx context.Context, id string) error { return nil }

// stubCompensationRepo treats the employee ids in paid as rows a previous
// payroll run already flipped to Paid.
type stubCompensationRepo struct {
	paid        map[string]bool
	upserted    []compensation.Record
	markPaidErr error
	markedBy    string
}

func (s *stubCompensationRepo) Upsert(ctx context.Context, record compensation.Record) (bool, error) {
	if s.paid[record.EmployeeID] {
		return false, nil
	}
	s.upserted = append(s.upserted, record)
	return true, nil
}

func (s *stubCompensationRepo) ListByPeriod(ctx context.Context, year, month int) ([]compensation.Record, error) {
	return s.upserted, nil
}

func (s *stubCompensationRepo) MarkPaid(ctx context.Context, ids []string, paidBy string) ([]string, error) {
	if s.markPaidErr != nil {
		return nil, s.markPaidErr
	}
	s.markedBy = paidBy
	return ids, nil
}

func newTestService(repo *stubCompensationRepo, roster []employee.Employee) compensation.CompensationService {
	return NewCompensationService(
		stubTxBeginner{},
		repo,
		&stubEmployeeRepo{active: roster},
		&stubAttendanceRepo{},
		&stubHolidayRepo{},
		export.NewExportService(),
	)
}

// authedContext builds a request context carrying verified claims, the shape
// the jwtauth verifier middleware produces.
func authedContext(t *testing.T, userID string) context.Context {
	t.Helper()
	jwtSvc := jwt.NewJWTService("test-secret", "1h")
	tokenString, _, err := jwtSvc.GenerateAccessToken(userID, "admin")
	require.NoError(t, err)
	token, err := jwtSvc.JWTAuth().Decode(tokenString)
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func TestGenerateSkipsPaidRecords(t *testing.T) {
	roster := []employee.Employee{
		{ID: "emp-1", Department: "Production",
			Salary: &employee.SalaryStructure{GrossMonthly: decimalPtr(decimal.NewFromInt(30000))}},
		{ID: "emp-2", Department: "Production",
			Salary: &employee.SalaryStructure{GrossMonthly: decimalPtr(decimal.NewFromInt(24000))}},
	}
	repo := &stubCompensationRepo{paid: map[string]bool{"emp-2": true}}
	svc := newTestService(repo, roster)

	resp, err := svc.Generate(context.Background(), compensation.GenerateRequest{Year: 2026, Month: 4})
	require.NoError(t, err)

	// emp-2's row survived a previous payroll run as Paid: the regenerate must
	// leave it alone and report it, not silently recompute it.
	assert.Equal(t, 1, resp.Generated)
	assert.Equal(t, 1, resp.SkippedPaid)
	require.Len(t, repo.upserted, 1)
	assert.Equal(t, "emp-1", repo.upserted[0].EmployeeID)
	assert.Equal(t, compensation.PaymentStatusPending, repo.upserted[0].Status)
}

func TestGenerateWritesOneDraftPerRosterEntry(t *testing.T) {
	roster := []employee.Employee{
		{ID: "emp-1", Department: employee.DepartmentStaff},
		{ID: "emp-2", Department: "Production"},
	}
	repo := &stubCompensationRepo{}
	svc := newTestService(repo, roster)

	resp, err := svc.Generate(context.Background(), compensation.GenerateRequest{Year: 2026, Month: 4})
	require.NoError(t, err)

	assert.Equal(t, 2, resp.Generated)
	assert.Equal(t, 0, resp.SkippedPaid)
	require.Len(t, repo.upserted, 2)
	assert.Len(t, resp.Records, 2)
}

func TestGenerateRejectsInvalidPeriod(t *testing.T) {
	repo := &stubCompensationRepo{}
	svc := newTestService(repo, nil)

	_, err := svc.Generate(context.Background(), compensation.GenerateRequest{Year: 2026, Month: 13})
	require.Error(t, err)
	assert.Empty(t, repo.upserted)
}

func TestMarkPaidUsesActingUserFromClaims(t *testing.T) {
	repo := &stubCompensationRepo{}
	svc := newTestService(repo, nil)

	resp, err := svc.MarkPaid(authedContext(t, "admin-7"), compensation.MarkPaidRequest{IDs: []string{"rec-1", "rec-2"}})
	require.NoError(t, err)

	assert.Equal(t, []string{"rec-1", "rec-2"}, resp.PaidIDs)
	assert.Equal(t, "admin-7", repo.markedBy)
}

func TestMarkPaidSurfacesAlreadyPaid(t *testing.T) {
	repo := &stubCompensationRepo{markPaidErr: compensation.ErrRecordAlreadyPaid}
	svc := newTestService(repo, nil)

	_, err := svc.MarkPaid(authedContext(t, "admin-7"), compensation.MarkPaidRequest{IDs: []string{"rec-1"}})
	assert.ErrorIs(t, err, compensation.ErrRecordAlreadyPaid)
}

func TestMarkPaidRequiresClaims(t *testing.T) {
	repo := &stubCompensationRepo{}
	svc := newTestService(repo, nil)

	_, err := svc.MarkPaid(context.Background(), compensation.MarkPaidRequest{IDs: []string{"rec-1"}})
	require.Error(t, err)
	assert.Empty(t, repo.markedBy)
}

func TestExportNoRecordsForPeriod(t *testing.T) {
	svc := newTestService(&stubCompensationRepo{}, nil)

	_, _, err := svc.Export(context.Background(), 2026, 4)
	assert.ErrorIs(t, err, compensation.ErrNoRecordsForPeriod)
}
