/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrScanFailed is returned when a table scan could not be completed
	ErrScanFailed = errors.New("scan failed")

	// ErrInvalidInput is returned when input or configuration validation fails
	ErrInvalidInput = errors.New("invalid input")
)

// ScanFailedError represents a failed remote scan. Connectivity, throttling,
// permission and missing-table failures all collapse into this one kind.
type ScanFailedError struct {
	Table string
	Cause error
}

func (e *ScanFailedError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("scan of table %q failed", e.Table)
	}
	return fmt.Sprintf("scan of table %q failed: %v", e.Table, e.Cause)
}

func (e *ScanFailedError) Is(target error) bool {
	return target == ErrScanFailed
}

func (e *ScanFailedError) Unwrap() error {
	return e.Cause
}

// ValidationError represents an input validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %q: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// Helper functions for creating errors

// NewScanFailedError creates a new ScanFailedError
func NewScanFailedError(table string, cause error) error {
	return &ScanFailedError{Table: table, Cause: cause}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsScanFailed checks if an error is a scan failed error
func IsScanFailed(err error) bool {
	return errors.Is(err, ErrScanFailed)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}
