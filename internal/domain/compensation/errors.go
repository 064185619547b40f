package compensation

import "errors"

var (
	ErrRecordNotFound     = errors.New("compensation record not found")
	ErrRecordAlreadyPaid  = errors.New("compensation record already paid, cannot modify")
	ErrInvalidPeriod      = errors.New("invalid compensation period")
	ErrNoRecordsForPeriod = errors.New("no compensation records exist for this period")
)
