package usecase

import "errors"

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrNoJobsFound  = errors.New("no jobs found")
	ErrInternal     = errors.New("internal error")
)
