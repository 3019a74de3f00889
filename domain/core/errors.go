package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Registry errors
	ErrResolution   = errors.New("unknown estimator name")
	ErrConstruction = errors.New("invalid constructor parameters")

	// Configuration errors
	ErrConfigValidation = errors.New("invalid configuration")

	// Data errors
	ErrData            = errors.New("data error")
	ErrMissingColumn   = fmt.Errorf("%w: missing column", ErrData)
	ErrEmptyTarget     = fmt.Errorf("%w: empty target", ErrData)
	ErrDegenerateClass = fmt.Errorf("%w: degenerate class distribution", ErrData)

	// Computation errors
	ErrCompute = errors.New("computation failed")

	// Persistence errors
	ErrPersistence = errors.New("persistence failed")
)

// Error constructors with context
func NewResolutionError(kind, name string) error {
	return fmt.Errorf("%w: no registered %s %q", ErrResolution, kind, name)
}

func NewConstructionError(name, param string, reason string) error {
	return fmt.Errorf("%w: %s parameter %q: %s", ErrConstruction, name, param, reason)
}

func NewConfigValidationError(fieldPath, reason string) error {
	return fmt.Errorf("%w: %s: %s", ErrConfigValidation, fieldPath, reason)
}

func NewMissingColumnError(column string) error {
	return fmt.Errorf("%w %q", ErrMissingColumn, column)
}

func NewComputeError(stage string, err error) error {
	return fmt.Errorf("%w in %s: %v", ErrCompute, stage, err)
}

func NewPersistenceError(path string, err error) error {
	return fmt.Errorf("%w: %s: %v", ErrPersistence, path, err)
}

// Error checking helpers
func IsResolutionError(err error) bool {
	return errors.Is(err, ErrResolution)
}

func IsConstructionError(err error) bool {
	return errors.Is(err, ErrConstruction)
}

func IsConfigValidationError(err error) bool {
	return errors.Is(err, ErrConfigValidation)
}

func IsDataError(err error) bool {
	return errors.Is(err, ErrData)
}

func IsComputeError(err error) bool {
	return errors.Is(err, ErrCompute)
}

func IsPersistenceError(err error) bool {
	return errors.Is(err, ErrPersistence)
}
