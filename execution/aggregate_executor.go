package execution

import (
	"github.com/tidwall/btree"

	"mit.edu/dsg/zero100/common"
	"mit.edu/dsg/zero100/planner"
	"mit.edu/dsg/zero100/storage"
)

// AggregateExecutor computes aggregates over its child, either over the whole
// input (no GROUP BY) or per value of a single integer grouping key. Groups
// are emitted in ascending key order, NULL key first.
type AggregateExecutor struct {
	plan  *planner.AggregateNode
	child Executor

	// Runtime state
	tuples       []storage.Tuple
	built        bool
	currentIndex int
	ctx          *ExecutorContext
	err          error
}

func NewAggregateExecutor(plan *planner.AggregateNode, child Executor) *AggregateExecutor {
	return &AggregateExecutor{
		child:        child,
		plan:         plan,
		currentIndex: -1,
	}
}

func (e *AggregateExecutor) PlanNode() planner.PlanNode {
	return e.plan
}

func (e *AggregateExecutor) children() []Executor {
	return []Executor{e.child}
}

func (e *AggregateExecutor) Init(ctx *ExecutorContext) error {
	if len(e.plan.GroupByClause) > 1 {
		return common.Errorf(common.UnsupportedQueryError, "aggregate supports at most one grouping column, got %d", len(e.plan.GroupByClause))
	}
	e.tuples = nil
	e.built = false
	e.currentIndex = -1
	e.ctx = ctx
	e.err = nil
	return e.child.Init(ctx)
}

func (e *AggregateExecutor) updateAggregateState(state []common.Value, tuple storage.Tuple) {
	for i, agg := range e.plan.AggClauses {
		val := agg.Expr.Eval(tuple)

		// Standard SQL aggregate rules: ignore NULLs
		if val.IsNull() {
			continue
		}

		switch agg.Type {
		case planner.AggCount:
			state[i] = common.NewIntValue(state[i].IntValue() + 1)
		case planner.AggSum:
			if state[i].IsNull() {
				state[i] = common.NewIntValue(val.IntValue())
			} else {
				state[i] = common.NewIntValue(state[i].IntValue() + val.IntValue())
			}
		case planner.AggMin:
			if state[i].IsNull() || val.Compare(state[i]) < 0 {
				state[i] = val
			}
		case planner.AggMax:
			if state[i].IsNull() || val.Compare(state[i]) > 0 {
				state[i] = val
			}
		}
	}
}

// initialState is the value of every aggregate before any input row.
func (e *AggregateExecutor) initialState() []common.Value {
	state := make([]common.Value, len(e.plan.AggClauses))
	for i, agg := range e.plan.AggClauses {
		switch agg.Type {
		case planner.AggCount:
			state[i] = common.NewIntValue(0)
		case planner.AggSum:
			state[i] = common.NewNullInt()
		default:
			if agg.OutputType() == common.Int32Type {
				state[i] = common.NewNullInt32()
			} else {
				state[i] = common.NewNullInt()
			}
		}
	}
	return state
}

func (e *AggregateExecutor) build() bool {
	e.built = true
	if len(e.plan.GroupByClause) == 0 {
		state := e.initialState()
		for e.child.Next() {
			e.updateAggregateState(state, e.child.Current())
		}
		if err := e.child.Error(); err != nil {
			e.err = err
			return false
		}
		// A global aggregation returns exactly one row, even over empty input.
		e.tuples = []storage.Tuple{storage.FromValues(state...)}
		return true
	}

	keyExpr := e.plan.GroupByClause[0]
	var groups btree.Map[int64, []common.Value]
	var nullGroup []common.Value
	for e.child.Next() {
		tuple := e.child.Current()
		key := keyExpr.Eval(tuple)

		var state []common.Value
		var found bool
		if key.IsNull() {
			state, found = nullGroup, nullGroup != nil
		} else {
			state, found = groups.Get(key.IntValue())
		}
		if !found {
			state = e.initialState()
			if key.IsNull() {
				nullGroup = state
			} else {
				groups.Set(key.IntValue(), state)
			}
		}
		e.updateAggregateState(state, tuple)
	}
	if err := e.child.Error(); err != nil {
		e.err = err
		return false
	}

	keyType := keyExpr.OutputType()
	if nullGroup != nil {
		nullKey := common.NewNullInt()
		if keyType == common.Int32Type {
			nullKey = common.NewNullInt32()
		}
		e.tuples = append(e.tuples, storage.FromValues(append([]common.Value{nullKey}, nullGroup...)...))
	}
	groups.Scan(func(k int64, state []common.Value) bool {
		key := common.NewIntValue(k)
		if keyType == common.Int32Type {
			key = common.NewInt32Value(int32(k))
		}
		e.tuples = append(e.tuples, storage.FromValues(append([]common.Value{key}, state...)...))
		return true
	})
	return true
}

func (e *AggregateExecutor) Next() bool {
	if !e.built {
		if !e.build() {
			return false
		}
	}
	e.currentIndex++
	return e.currentIndex < len(e.tuples)
}

func (e *AggregateExecutor) Current() storage.Tuple {
	return e.tuples[e.currentIndex]
}

func (e *AggregateExecutor) Error() error {
	return e.err
}

func (e *AggregateExecutor) Close() error {
	return e.child.Close()
}
