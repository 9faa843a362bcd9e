package execution

import (
	"mit.edu/dsg/zero100/common"
	"mit.edu/dsg/zero100/planner"
	"mit.edu/dsg/zero100/storage"
)

// SeqScanExecutor implements a sequential scan over a table heap.
type SeqScanExecutor struct {
	plan      *planner.SeqScanNode
	tableHeap *storage.TableHeap

	// Runtime state
	slot    int
	current storage.Tuple
	open    bool
}

// NewSeqScanExecutor creates a new SeqScanExecutor.
func NewSeqScanExecutor(plan *planner.SeqScanNode, tableHeap *storage.TableHeap) *SeqScanExecutor {
	return &SeqScanExecutor{
		plan:      plan,
		tableHeap: tableHeap,
	}
}

func (e *SeqScanExecutor) PlanNode() planner.PlanNode {
	return e.plan
}

func (e *SeqScanExecutor) Init(ctx *ExecutorContext) error {
	e.slot = -1
	e.current = storage.Tuple{}
	e.open = true
	return nil
}

func (e *SeqScanExecutor) Next() bool {
	common.Assert(e.open, "SeqScanExecutor.Init() must be called before calling Next()")
	if e.slot+1 >= e.tableHeap.NumRows() {
		return false
	}
	e.slot++
	e.current = e.tableHeap.Row(e.slot)
	return true
}

func (e *SeqScanExecutor) Current() storage.Tuple {
	return e.current
}

func (e *SeqScanExecutor) Error() error {
	return nil
}

func (e *SeqScanExecutor) Close() error {
	e.open = false
	return nil
}

// ResultExecutor produces no rows.
type ResultExecutor struct {
	plan *planner.ResultNode
}

func NewResultExecutor(plan *planner.ResultNode) *ResultExecutor {
	return &ResultExecutor{plan: plan}
}

func (e *ResultExecutor) PlanNode() planner.PlanNode {
	return e.plan
}

func (e *ResultExecutor) Init(ctx *ExecutorContext) error {
	return nil
}

func (e *ResultExecutor) Next() bool {
	return false
}

func (e *ResultExecutor) Current() storage.Tuple {
	return storage.Tuple{}
}

func (e *ResultExecutor) Error() error {
	return nil
}

func (e *ResultExecutor) Close() error {
	return nil
}
