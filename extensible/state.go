package extensible

import "mit.edu/dsg/zero100/storage"

// CustomScanState is the runtime half of an extension operator. The host's
// custom scan executor drives it with the same open/next/close protocol as
// any built-in operator.
type CustomScanState interface {
	// Begin acquires the operator's resources. It may be called again to rescan.
	Begin() error
	// Exec returns the next row, or false once the operator is exhausted.
	// Exhaustion is sticky: later calls keep returning false.
	Exec() (storage.Tuple, bool)
	// End releases everything acquired by Begin, including child operators.
	// It must be safe to call without a prior Begin and more than once.
	End() error
}

// Explainer is implemented by states that add properties to EXPLAIN output.
type Explainer interface {
	Explain(es *ExplainState)
}
