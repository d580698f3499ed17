package model

import "errors"

var (
	// ErrNotFound is returned when the requested record doesn't exist
	ErrNotFound = errors.New("record not found")

	// ErrInvalidInterval is returned by writes whose wake time does not come
	// strictly after their sleep time
	ErrInvalidInterval = errors.New("wake time must be later than sleep time")
)
