package holiday

import (
	"context"
	"time"

	"github.com/meridian-erp/erp-backend-go/internal/domain/holiday"
)

type HolidayServiceImpl struct {
	holidayRepo holiday.HolidayRepository
}

func NewHolidayService(holidayRepo holiday.HolidayRepository) holiday.HolidayService {
	return &HolidayServiceImpl{holidayRepo: holidayRepo}
}

func (s *HolidayServiceImpl) Create(ctx context.Context, req holiday.CreateHolidayRequest) (holiday.HolidayResponse, error) {
	if err := req.Validate(); err != nil {
		return holiday.HolidayResponse{}, err
	}

	date, _ := time.Parse("2006-01-02", req.Date)
	created, err := s.holidayRepo.Create(ctx, holiday.Holiday{
		Date:        date,
		Name:        req.Name,
		Departments: req.Departments,
	})
	if err != nil {
		return holiday.HolidayResponse{}, err
	}
	return holiday.ToHolidayResponse(created), nil
}

func (s *HolidayServiceImpl) ListByMonth(ctx context.Context, year, month int) (holiday.ListHolidayResponse, error) {
	holidays, err := s.holidayRepo.ListByMonth(ctx, year, month)
	if err != nil {
		return holiday.ListHolidayResponse{}, err
	}

	resp := holiday.ListHolidayResponse{Holidays: make([]holiday.HolidayResponse, 0, len(holidays))}
	for _, h := range holidays {
		resp.Holidays = append(resp.Holidays, holiday.ToHolidayResponse(h))
	}
	return resp, nil
}

func (s *HolidayServiceImpl) Delete(ctx context.Context, id string) error {
	return s.holidayRepo.Delete(ctx, id)
}
