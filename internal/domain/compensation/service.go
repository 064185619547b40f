package compensation

import "context"

// CompensationService defines business logic around the monthly compensation
// engine: generating a period, listing it, flipping the payment flag, and
// exporting it.
type CompensationService interface {
	// Generate gathers the roster, the month's attendance rows, and the
	// holiday calendar, runs the engine, and persists one draft record per
	// employee. Records already marked Paid are never overwritten.
	Generate(ctx context.Context, req GenerateRequest) (GenerateResponse, error)

	// List retrieves the period's stored records.
	List(ctx context.Context, year, month int) (ListResponse, error)

	// MarkPaid flips Pending records to Paid on behalf of the payroll run.
	// The acting user comes from the JWT claims in ctx.
	MarkPaid(ctx context.Context, req MarkPaidRequest) (MarkPaidResponse, error)

	// Export renders the period's stored records to an XLSX workbook.
	Export(ctx context.Context, year, month int) (filename string, content []byte, err error)
}
