package usecase

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrNoTextInImage         = errors.New("no text in image")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)
