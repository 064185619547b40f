package holiday

import "context"

// HolidayService backs the HR holiday calendar editor.
type HolidayService interface {
	Create(ctx context.Context, req CreateHolidayRequest) (HolidayResponse, error)
	ListByMonth(ctx context.Context, year, month int) (ListHolidayResponse, error)
	Delete(ctx context.Context, id string) error
}
