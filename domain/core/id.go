package core

import (
	"github.com/google/uuid"
)

// RunID identifies a single training run across log lines and artifacts.
type RunID string

// NewRunID generates a fresh run identifier.
func NewRunID() RunID {
	return RunID(uuid.New().String())
}

func (id RunID) String() string {
	return string(id)
}
