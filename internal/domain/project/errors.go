package project

import "errors"

var (
	// ErrProjectNotFound indicates the saved project doesn't exist.
	ErrProjectNotFound = errors.New("project not found")
	// ErrMalformedDocument indicates a project document that cannot be
	// deserialized: missing required fields or non-numeric layer order.
	ErrMalformedDocument = errors.New("malformed project document")
	// ErrInvalidInput indicates invalid input for project operations.
	ErrInvalidInput = errors.New("invalid project input")
)
