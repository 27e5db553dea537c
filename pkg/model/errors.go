package model

import "fmt"

// ErrorKind categorizes a CoreError, per spec §7.
type ErrorKind int

const (
	// ErrNotFound means a referenced ID is not present in the store.
	ErrNotFound ErrorKind = iota
	// ErrWrongKind means the ID resolved, but to an entity of the wrong
	// kind for the operation.
	ErrWrongKind
	// ErrInvalidGeometry means a polygon has <3 vertices, is
	// self-intersecting, has zero area, or a wall has zero length.
	ErrInvalidGeometry
	// ErrInvalidArgument means a numeric argument is out of its valid
	// range (e.g. opening position outside [0,1]).
	ErrInvalidArgument
	// ErrDuplicateID means a caller attempted to re-insert an existing ID.
	ErrDuplicateID
	// ErrDuplicateEdge means a caller attempted to re-add an edge that
	// already exists.
	ErrDuplicateEdge
	// ErrDanglingReference means an operation would leave a reference to
	// a nonexistent entity.
	ErrDanglingReference
)

// String returns the kind's name, used in error messages and tests.
func (k ErrorKind) String() string {
	switch k {
	case ErrNotFound:
		return "NotFound"
	case ErrWrongKind:
		return "WrongKind"
	case ErrInvalidGeometry:
		return "InvalidGeometry"
	case ErrInvalidArgument:
		return "InvalidArgument"
	case ErrDuplicateID:
		return "DuplicateId"
	case ErrDuplicateEdge:
		return "DuplicateEdge"
	case ErrDanglingReference:
		return "DanglingReference"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// CoreError is the error type every mutating and read-only operation in the
// Core returns. Op names the failing operation for diagnostics; Detail is a
// human-readable message; the wrapped Err (if any) supports errors.Unwrap.
type CoreError struct {
	Kind   ErrorKind
	Op     string
	Detail string
	Err    error
}

// Error implements the error interface.
func (e *CoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %s: %v", e.Op, e.Kind, e.Detail, e.Err)
	}
	return fmt.Sprintf("%s: %s: %s", e.Op, e.Kind, e.Detail)
}

// Unwrap supports errors.Is/errors.As against the wrapped cause.
func (e *CoreError) Unwrap() error {
	return e.Err
}

func newErr(kind ErrorKind, op, detail string) *CoreError {
	return &CoreError{Kind: kind, Op: op, Detail: detail}
}

func notFound(op, kind, id string) *CoreError {
	return newErr(ErrNotFound, op, fmt.Sprintf("%s %q does not exist", kind, id))
}

func wrongKind(op, id, expected string) *CoreError {
	return newErr(ErrWrongKind, op, fmt.Sprintf("%q is not a %s", id, expected))
}

func invalidGeometry(op, reason string) *CoreError {
	return newErr(ErrInvalidGeometry, op, reason)
}

func invalidArgument(op, reason string) *CoreError {
	return newErr(ErrInvalidArgument, op, reason)
}

func duplicateID(op, id string) *CoreError {
	return newErr(ErrDuplicateID, op, fmt.Sprintf("id %q already exists", id))
}
