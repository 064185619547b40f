package holiday

import "context"

type HolidayRepository interface {
	Create(ctx context.Context, holiday Holiday) (Holiday, error)
	ListByMonth(ctx context.Context, year int, month int) ([]Holiday, error)
	Delete(ctx context.Context, id string) error
}
