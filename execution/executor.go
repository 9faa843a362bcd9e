package execution

import (
	"mit.edu/dsg/zero100/planner"
	"mit.edu/dsg/zero100/storage"
)

// Executor is the interface that all physical execution nodes must implement.
// Executors are pull-based: the parent calls Next until it returns false.
type Executor interface {
	PlanNode() planner.PlanNode

	// Init prepares the executor (and its children) for a scan. Calling it
	// again restarts the scan.
	Init(ctx *ExecutorContext) error

	// Next advances to the next tuple, returning false when exhausted or on error.
	Next() bool

	// Current returns the tuple most recently read by Next().
	Current() storage.Tuple

	// Error returns the last error encountered by the executor, if any.
	Error() error

	// Close releases resources held by the executor and its children.
	Close() error
}

// parentExecutor is implemented by executors with host-visible children.
type parentExecutor interface {
	children() []Executor
}
