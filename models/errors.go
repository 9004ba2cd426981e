package models

import (
	"errors"
	"fmt"
)

// Базовые виды ошибок ядра. Проверяются через errors.Is.
var (
	ErrValidation  = errors.New("validation failed")
	ErrConsistency = errors.New("consistency check failed")
)

// ValidationError rejects malformed input: bad pairing, negative goals,
// unknown team or player, bad assist.
type ValidationError struct {
	Field  string
	Reason string
}

func NewValidationError(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", ErrValidation, e.Reason)
	}
	return fmt.Sprintf("%s: %s: %s", ErrValidation, e.Field, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// ConsistencyError rejects input that disagrees with ledger state or with
// itself, e.g. a stale match number or a score that does not match the events.
type ConsistencyError struct {
	Reason string
}

func NewConsistencyError(format string, args ...any) *ConsistencyError {
	return &ConsistencyError{Reason: fmt.Sprintf(format, args...)}
}

func (e *ConsistencyError) Error() string {
	return fmt.Sprintf("%s: %s", ErrConsistency, e.Reason)
}

func (e *ConsistencyError) Unwrap() error { return ErrConsistency }
