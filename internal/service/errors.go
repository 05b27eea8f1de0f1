package service

import "errors"

var (
	// ErrInvalidRequest is wrapped by every validation failure
	ErrInvalidRequest = errors.New("invalid request")

	// ErrHistoryUnavailable is returned when no search log store is configured
	ErrHistoryUnavailable = errors.New("search history is not available")
)
