package debt

import "errors"

var (
	ErrNotFound = errors.New("debt not found")
	ErrInvalid  = errors.New("invalid debt")
)
