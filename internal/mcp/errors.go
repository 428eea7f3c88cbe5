package mcp

import (
	"errors"
	"fmt"

	"github.com/uvalc/uvalc/internal/domain/material"
	"github.com/uvalc/uvalc/internal/domain/project"
	"github.com/uvalc/uvalc/internal/repository"
)

// APIError represents an MCP error response.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	Details      any    `json:"details,omitempty"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// MapError maps domain errors to MCP error codes. Unknown errors pass
// through unchanged.
func MapError(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, material.ErrMaterialNotFound):
		return &APIError{Code: "MATERIAL_NOT_FOUND", Message: "material not found", RecoveryHint: "Check category and name against list_materials"}
	case errors.Is(err, material.ErrSourceNotFound):
		return &APIError{Code: "SOURCE_NOT_FOUND", Message: "material source not found", RecoveryHint: "Load a catalog with load_materials first"}
	case errors.Is(err, project.ErrProjectNotFound):
		return &APIError{Code: "PROJECT_NOT_FOUND", Message: "project not found", RecoveryHint: "Check ID against list_projects"}
	case errors.Is(err, project.ErrMalformedDocument):
		return &APIError{Code: "MALFORMED_DOCUMENT", Message: err.Error(), RecoveryHint: "Fix the project document; it is not repaired silently"}
	case errors.Is(err, project.ErrInvalidInput),
		errors.Is(err, material.ErrInvalidInput),
		errors.Is(err, repository.ErrInvalidInput):
		return &APIError{Code: "INVALID_INPUT", Message: err.Error()}
	default:
		return err
	}
}
