package errs

import (
	"errors"
)

var (
	ErrNotFound         = errors.New("not found")
	ErrInvalidDuration  = errors.New("invalid duration")
	ErrItemNotAvailable = errors.New("item is not available")
	ErrInvalidArgument  = errors.New("invalid argument")
)
