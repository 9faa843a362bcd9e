package common

import "fmt"

type ErrorCode int

const (
	// DuplicateObjectError indicates an attempt to register a table or an
	// operator descriptor under a name that is already taken.
	DuplicateObjectError ErrorCode = iota
	// NoSuchObjectError indicates a request for a table or descriptor that
	// does not exist.
	NoSuchObjectError
	// UnsupportedQueryError is returned by the planner for query shapes it
	// does not plan (joins, subqueries in FROM).
	UnsupportedQueryError
	// InvalidPlanError indicates a plan tree whose shape an operator cannot
	// be instantiated from, e.g. a fused aggregate over the wrong child.
	InvalidPlanError
)

func (ec ErrorCode) String() string {
	switch ec {
	case DuplicateObjectError:
		return "DuplicateObjectError"
	case NoSuchObjectError:
		return "NoSuchObjectError"
	case UnsupportedQueryError:
		return "UnsupportedQueryError"
	case InvalidPlanError:
		return "InvalidPlanError"
	}
	return "unknown"
}

// EngineError is the error type returned by the catalog, planner and executor.
// It wraps a specific ErrorCode with a detailed message so callers can tell
// "this query cannot be planned" apart from "this plan is malformed".
type EngineError struct {
	Code      ErrorCode
	ErrString string
}

func (e EngineError) Error() string {
	return fmt.Sprintf("err: %s; msg: %s", e.Code.String(), e.ErrString)
}

// Errorf builds an EngineError with a formatted message.
func Errorf(code ErrorCode, format string, args ...any) EngineError {
	return EngineError{Code: code, ErrString: fmt.Sprintf(format, args...)}
}
