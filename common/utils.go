package common

import "fmt"

// Assert checks a condition and panics if it is false.
//
// Use it for invariants of the engine itself: an operator driven after it was
// closed, a plan node of a kind the caller already matched on. Conditions that
// depend on the query or on the catalog return an EngineError instead.
func Assert(cond bool, format string, args ...any) {
	if !cond {
		panic(fmt.Sprintf(format, args...))
	}
}
