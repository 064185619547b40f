package compensation

import "context"

type CompensationRepository interface {
	// Upsert writes one computed record for an employee and period. Existing
	// Pending rows are replaced; rows already marked Paid are left untouched
	// and reported via overwritten=false.
	Upsert(ctx context.Context, record Record) (overwritten bool, err error)

	// ListByPeriod returns the period's records with employee fields joined,
	// ordered by employee code.
	ListByPeriod(ctx context.Context, year, month int) ([]Record, error)

	// MarkPaid flips Pending records to Paid and returns the updated ids.
	// Unknown ids are ErrRecordNotFound and ids already Paid are
	// ErrRecordAlreadyPaid; either rejects the whole batch.
	MarkPaid(ctx context.Context, ids []string, paidBy string) ([]string, error)
}
