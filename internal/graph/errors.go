package graph

import (
	"errors"
	"fmt"
)

// ConfigError represents an invalid graph configuration detected at
// construction time.
//
// Configuration errors include:
//   - Duplicate node id in the node table
//   - Edge referencing an unknown node id
//   - Physical constant (inertia, conductivity, entropy, weight) outside [0,1]
//
// ConfigError includes structured fields for diagnostics.
type ConfigError struct {
	// Code identifies the error category.
	Code ConfigErrorCode

	// Message is a human-readable description.
	Message string

	// NodeID identifies the offending node, if any.
	NodeID string

	// Edge identifies the offending edge as "from->to", if any.
	Edge string
}

// ConfigErrorCode categorizes configuration errors.
type ConfigErrorCode string

const (
	// ErrCodeDuplicateNode indicates the same node id appears twice.
	ErrCodeDuplicateNode ConfigErrorCode = "DUPLICATE_NODE"

	// ErrCodeUnknownNode indicates an edge references a node id that
	// does not exist in the node table.
	ErrCodeUnknownNode ConfigErrorCode = "UNKNOWN_NODE"

	// ErrCodeOutOfRange indicates a physical constant outside [0,1].
	ErrCodeOutOfRange ConfigErrorCode = "OUT_OF_RANGE"

	// ErrCodeEmptyGraph indicates an empty node table.
	ErrCodeEmptyGraph ConfigErrorCode = "EMPTY_GRAPH"
)

// Error implements the error interface.
func (e *ConfigError) Error() string {
	switch {
	case e.NodeID != "" && e.Edge != "":
		return fmt.Sprintf("%s: %s (node=%s, edge=%s)", e.Code, e.Message, e.NodeID, e.Edge)
	case e.Edge != "":
		return fmt.Sprintf("%s: %s (edge=%s)", e.Code, e.Message, e.Edge)
	case e.NodeID != "":
		return fmt.Sprintf("%s: %s (node=%s)", e.Code, e.Message, e.NodeID)
	default:
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
}

// IsConfigError returns true if the error is a ConfigError.
// Uses errors.As to handle wrapped errors.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}

// newRangeError creates a ConfigError for a constant outside [0,1].
func newRangeError(nodeID, field string, value float64) *ConfigError {
	return &ConfigError{
		Code:    ErrCodeOutOfRange,
		Message: fmt.Sprintf("%s must be in [0,1], got %v", field, value),
		NodeID:  nodeID,
	}
}
