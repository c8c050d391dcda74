package datetime

import "github.com/pkg/errors"

var (
	ErrInvalidDateTimeSpecification = errors.New("invalid date-time specification")
	ErrInvalidIntervalBounds        = errors.New("invalid interval bounds")
)
