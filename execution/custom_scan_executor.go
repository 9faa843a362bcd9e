package execution

import (
	"mit.edu/dsg/zero100/extensible"
	"mit.edu/dsg/zero100/planner"
	"mit.edu/dsg/zero100/storage"
)

// CustomScanExecutor drives an extension operator through the generic
// executor protocol. Everything operator-specific is behind state.
type CustomScanExecutor struct {
	plan  *planner.CustomScanNode
	state extensible.CustomScanState

	current storage.Tuple
}

func NewCustomScanExecutor(plan *planner.CustomScanNode, state extensible.CustomScanState) *CustomScanExecutor {
	return &CustomScanExecutor{plan: plan, state: state}
}

func (e *CustomScanExecutor) PlanNode() planner.PlanNode {
	return e.plan
}

// State exposes the extension state, mostly for EXPLAIN and tests.
func (e *CustomScanExecutor) State() extensible.CustomScanState {
	return e.state
}

func (e *CustomScanExecutor) Init(ctx *ExecutorContext) error {
	e.current = storage.Tuple{}
	ctx.Logger().WithField("operator", e.plan.Methods.Name()).Debug("begin custom scan")
	return e.state.Begin()
}

func (e *CustomScanExecutor) Next() bool {
	t, ok := e.state.Exec()
	if !ok {
		e.current = storage.Tuple{}
		return false
	}
	e.current = t
	return true
}

func (e *CustomScanExecutor) Current() storage.Tuple {
	return e.current
}

func (e *CustomScanExecutor) Error() error {
	return nil
}

func (e *CustomScanExecutor) Close() error {
	return e.state.End()
}
