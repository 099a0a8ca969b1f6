package domain

import "errors"

var (
	// ErrEmptyDataset is returned when a dataset carries no alarms
	ErrEmptyDataset = errors.New("dataset contains no alarms")
	// ErrInvalidPrimarySet is returned when a dataset does not have exactly one primary situation set
	ErrInvalidPrimarySet = errors.New("dataset must have exactly one primary situation set")
	// ErrInvalidRadius is returned for a negative view radius
	ErrInvalidRadius = errors.New("radius must be >= 0")
	// ErrMissingTimestamp is returned when a view is requested without a timestamp
	ErrMissingTimestamp = errors.New("timestamp is required")
	// ErrNotFound is returned for unknown dataset identifiers
	ErrNotFound = errors.New("not found")
)
