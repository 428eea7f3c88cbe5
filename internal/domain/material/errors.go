package material

import "errors"

var (
	// ErrMaterialNotFound indicates no table row matched the reference.
	ErrMaterialNotFound = errors.New("material not found")
	// ErrSourceNotFound indicates the material source doesn't exist.
	ErrSourceNotFound = errors.New("material source not found")
	// ErrInvalidInput indicates invalid input for source operations.
	ErrInvalidInput = errors.New("invalid material source input")
)
