// SPDX-License-Identifier: MIT
package eulertour

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by Tour's public API. Per package policy, only
// these sentinel values are exposed; callers branch on them with errors.Is.
// They are never wrapped with formatted context at the definition site —
// call sites that need context wrap with %w.
var (
	// ErrVertexNotFound indicates an operation referenced a vertex ID that
	// was never created (or was already removed).
	ErrVertexNotFound = errors.New("eulertour: vertex not found")

	// ErrVertexExists indicates CreateVertex was called with an ID already
	// present in the tour.
	ErrVertexExists = errors.New("eulertour: vertex already exists")

	// ErrEdgeNotFound indicates Cut referenced a pair with no edge between
	// them.
	ErrEdgeNotFound = errors.New("eulertour: edge not found")
)

// ContractError reports a broken precondition: a caller invariant the API
// documents but cannot itself satisfy without cooperation (linking already
// connected vertices, cutting an existing edge whose endpoints the tour does
// not report as connected, removing a non-singleton vertex, or advancing an
// exhausted or
// invalidated iterator). Per spec, these are bugs in the caller, not
// recoverable conditions; Tour's methods panic with a *ContractError rather
// than returning one, so callers cannot silently ignore them.
type ContractError struct {
	Op      string // the method that detected the violation, e.g. "Link"
	Message string
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("eulertour: contract violation in %s: %s", e.Op, e.Message)
}

func panicContract(op, format string, args ...interface{}) {
	panic(&ContractError{Op: op, Message: fmt.Sprintf(format, args...)})
}
