package compensation

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/errgroup"

	"github.com/meridian-erp/erp-backend-go/internal/domain/attendance"
	"github.com/meridian-erp/erp-backend-go/internal/domain/compensation"
	"github.com/meridian-erp/erp-backend-go/internal/domain/employee"
	"github.com/meridian-erp/erp-backend-go/internal/domain/holiday"
	"github.com/meridian-erp/erp-backend-go/internal/pkg/database"
	"github.com/meridian-erp/erp-backend-go/internal/repository/postgresql"
	"github.com/meridian-erp/erp-backend-go/internal/service/export"
)

type CompensationServiceImpl struct {
	db               database.TxBeginner
	engine           *Engine
	compensationRepo compensation.CompensationRepository
	employeeRepo     employee.EmployeeRepository
	attendanceRepo   attendance.AttendanceRepository
	holidayRepo      holiday.HolidayRepository
	exporter         *export.ExportService
}

func NewCompensationService(
	db database.TxBeginner,
	compensationRepo compensation.CompensationRepository,
	employeeRepo employee.EmployeeRepository,
	attendanceRepo attendance.AttendanceRepository,
	holidayRepo holiday.HolidayRepository,
	exporter *export.ExportService,
) compensation.CompensationService {
	return &CompensationServiceImpl{
		db:               db,
		engine:           NewEngine(),
		compensationRepo: compensationRepo,
		employeeRepo:     employeeRepo,
		attendanceRepo:   attendanceRepo,
		holidayRepo:      holidayRepo,
		exporter:         exporter,
	}
}

// getUserIDFromContext extracts the acting user from the JWT claims.
func getUserIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", fmt.Errorf("user_id claim is missing or invalid")
	}
	return userID, nil
}

func (s *CompensationServiceImpl) Generate(ctx context.Context, req compensation.GenerateRequest) (compensation.GenerateResponse, error) {
	if err := req.Validate(); err != nil {
		return compensation.GenerateResponse{}, err
	}

	// The three inputs are independent reads; gather them concurrently, but
	// run the engine only once all three are fully loaded. Partial attendance
	// data would silently under-count presence.
	var (
		roster   []employee.Employee
		records  []attendance.Record
		holidays []holiday.Holiday
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		roster, err = s.employeeRepo.GetActive(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		records, err = s.attendanceRepo.ListByMonth(gctx, req.Year, req.Month)
		return err
	})
	g.Go(func() error {
		var err error
		holidays, err = s.holidayRepo.ListByMonth(gctx, req.Year, req.Month)
		return err
	})
	if err := g.Wait(); err != nil {
		return compensation.GenerateResponse{}, fmt.Errorf("failed to load compensation inputs: %w", err)
	}

	results := s.engine.Compute(roster, records, holidays, req.Year, time.Month(req.Month))

	resp := compensation.GenerateResponse{Year: req.Year, Month: req.Month}
	err := postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := context.WithValue(ctx, "tx", tx)
		for _, result := range results {
			record := compensation.Record{
				Result: result,
				Status: compensation.PaymentStatusPending,
			}
			overwritten, err := s.compensationRepo.Upsert(txCtx, record)
			if err != nil {
				return err
			}
			if !overwritten {
				resp.SkippedPaid++
				continue
			}
			resp.Generated++
		}
		return nil
	})
	if err != nil {
		return compensation.GenerateResponse{}, err
	}

	stored, err := s.compensationRepo.ListByPeriod(ctx, req.Year, req.Month)
	if err != nil {
		return compensation.GenerateResponse{}, err
	}
	for _, record := range stored {
		resp.Records = append(resp.Records, compensation.ToRecordResponse(record))
	}

	slog.Info("Compensation generated",
		"year", req.Year,
		"month", req.Month,
		"employees", len(roster),
		"generated", resp.Generated,
		"skipped_paid", resp.SkippedPaid,
	)
	return resp, nil
}

func (s *CompensationServiceImpl) List(ctx context.Context, year, month int) (compensation.ListResponse, error) {
	if month < 1 || month > 12 {
		return compensation.ListResponse{}, compensation.ErrInvalidPeriod
	}

	records, err := s.compensationRepo.ListByPeriod(ctx, year, month)
	if err != nil {
		return compensation.ListResponse{}, err
	}

	resp := compensation.ListResponse{Records: make([]compensation.RecordResponse, 0, len(records))}
	for _, record := range records {
		resp.Records = append(resp.Records, compensation.ToRecordResponse(record))
	}
	return resp, nil
}

func (s *CompensationServiceImpl) MarkPaid(ctx context.Context, req compensation.MarkPaidRequest) (compensation.MarkPaidResponse, error) {
	if err := req.Validate(); err != nil {
		return compensation.MarkPaidResponse{}, err
	}

	userID, err := getUserIDFromContext(ctx)
	if err != nil {
		return compensation.MarkPaidResponse{}, err
	}

	paidIDs, err := s.compensationRepo.MarkPaid(ctx, req.IDs, userID)
	if err != nil {
		return compensation.MarkPaidResponse{}, err
	}

	slog.Info("Compensation marked paid", "count", len(paidIDs), "by", userID)
	return compensation.MarkPaidResponse{PaidIDs: paidIDs}, nil
}

func (s *CompensationServiceImpl) Export(ctx context.Context, year, month int) (string, []byte, error) {
	if month < 1 || month > 12 {
		return "", nil, compensation.ErrInvalidPeriod
	}

	records, err := s.compensationRepo.ListByPeriod(ctx, year, month)
	if err != nil {
		return "", nil, err
	}
	if len(records) == 0 {
		return "", nil, compensation.ErrNoRecordsForPeriod
	}

	content, err := s.exporter.CompensationWorkbook(records, year, month)
	if err != nil {
		return "", nil, err
	}

	filename := fmt.Sprintf("compensation-%04d-%02d.xlsx", year, month)
	return filename, content, nil
}
