package budget

import "errors"

var (
	ErrNotFound  = errors.New("budget item not found")
	ErrInvalid   = errors.New("invalid budget item")
	ErrDuplicate = errors.New("category already planned for this month")
)
