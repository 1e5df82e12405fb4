package usecase

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNotFound              = errors.New("resource not found")
	ErrNoData                = errors.New("no data loaded")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)
