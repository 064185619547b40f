package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/meridian-erp/erp-backend-go/internal/domain/compensation"
)

// CompensationJobs keeps the current month's draft compensation warm so the
// payroll and PF screens always show numbers computed from the latest
// attendance corrections. Paid records are never touched by the refresh.
type CompensationJobs struct {
	compensationSvc compensation.CompensationService
}

func NewCompensationJobs(compensationSvc compensation.CompensationService) *CompensationJobs {
	return &CompensationJobs{compensationSvc: compensationSvc}
}

func (j *CompensationJobs) RegisterJobs(scheduler *Scheduler) {
	scheduler.AddJob("refresh_current_month_compensation", 1*time.Hour, j.RefreshCurrentMonth)
}

func (j *CompensationJobs) RefreshCurrentMonth(ctx context.Context) error {
	// Only run in the first hour of the day (00:00-00:59 UTC)
	if time.Now().UTC().Hour() != 0 {
		return nil
	}

	now := time.Now().UTC()
	req := compensation.GenerateRequest{Year: now.Year(), Month: int(now.Month())}

	slog.Info("Cron: refreshing draft compensation", "year", req.Year, "month", req.Month)

	resp, err := j.compensationSvc.Generate(ctx, req)
	if err != nil {
		return err
	}

	slog.Info("Cron: draft compensation refreshed",
		"year", req.Year,
		"month", req.Month,
		"generated", resp.Generated,
		"skipped_paid", resp.SkippedPaid,
	)
	return nil
}
