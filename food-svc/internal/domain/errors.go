package domain

import "errors"

var (
	ErrNotFound         = errors.New("record not found")
	ErrDuplicate        = errors.New("duplicate record")
	ErrInvalidReference = errors.New("referenced record does not exist")
)
