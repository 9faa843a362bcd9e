package zero100

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"mit.edu/dsg/zero100/common"
	"mit.edu/dsg/zero100/extensible"
	"mit.edu/dsg/zero100/planner"
	"mit.edu/dsg/zero100/storage"
)

var int4Tlist = []common.Type{common.Int32Type}

func newScanNode(capacity int) *planner.CustomScanNode {
	return planner.NewCustomScanNode(scanDescriptor, int4Tlist, nil, &scanPrivate{Capacity: capacity})
}

func newFusedNode(children ...planner.PlanNode) *planner.CustomScanNode {
	return planner.NewCustomScanNode(fusedDescriptor, int4Tlist, children, &fusedPrivate{TableName: "zero100"})
}

func newTestFused(t *testing.T, capacity int) *FusedSumState {
	st, err := fusedDescriptor.CreateCustomScanState(newFusedNode(newScanNode(capacity)))
	require.NoError(t, err)
	fused, ok := st.(*FusedSumState)
	require.True(t, ok, "got %T", st)
	return fused
}

func TestFusedSumState_SingleRow(t *testing.T) {
	fused := newTestFused(t, 100)
	require.NoError(t, fused.Begin())

	row, ok := fused.Exec()
	require.True(t, ok)
	require.Equal(t, 1, row.NumColumns())
	assert.Equal(t, int32(4950), row.GetValue(0).Int32Value())

	for i := 0; i < 3; i++ {
		_, ok = fused.Exec()
		assert.False(t, ok)
	}
	assert.Equal(t, int64(4950), fused.sum, "terminal calls must not touch the sum")
	require.NoError(t, fused.End())
}

func TestFusedSumState_ClosesChildOnce(t *testing.T) {
	fused := newTestFused(t, 100)
	require.NoError(t, fused.Begin())
	_, _ = fused.Exec()

	require.NoError(t, fused.End())
	require.NoError(t, fused.End())
	assert.Equal(t, 1, fused.child.endCalls)
	assert.Nil(t, fused.child.block)
}

func TestFusedSumState_CloseWithoutOpen(t *testing.T) {
	fused := newTestFused(t, 100)
	assert.NotPanics(t, func() {
		require.NoError(t, fused.End())
		require.NoError(t, fused.End())
	})
	assert.Equal(t, 1, fused.child.endCalls)
}

func TestFusedSumState_Reopen(t *testing.T) {
	fused := newTestFused(t, 10)
	for i := 0; i < 2; i++ {
		require.NoError(t, fused.Begin())
		row, ok := fused.Exec()
		require.True(t, ok)
		assert.Equal(t, int32(45), row.GetValue(0).Int32Value())
		require.NoError(t, fused.End())
	}
	assert.Equal(t, 2, fused.child.endCalls)
}

func TestFusedSumState_Explain(t *testing.T) {
	fused := newTestFused(t, 100)
	var es extensible.ExplainState
	fused.Explain(&es)

	assert.Equal(t, []extensible.ExplainProperty{
		{Label: "AAAAA", Value: "BBBBB"},
		{Label: "->", Value: "SIMD ON zero100"},
	}, es.Properties())
}

func TestFusedSumState_RejectsBadChild(t *testing.T) {
	other := planner.NewCustomScanNode(&foreignMethods{}, int4Tlist, nil, nil)
	tests := []struct {
		name string
		node *planner.CustomScanNode
	}{
		{"no child", newFusedNode()},
		{"two children", newFusedNode(newScanNode(10), newScanNode(10))},
		{"seq scan child", newFusedNode(planner.NewSeqScanNode(1, int4Tlist))},
		{"fused child", newFusedNode(newFusedNode(newScanNode(10)))},
		{"foreign child", newFusedNode(other)},
		{"no private", planner.NewCustomScanNode(fusedDescriptor, int4Tlist, []planner.PlanNode{newScanNode(10)}, nil)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fusedDescriptor.CreateCustomScanState(tt.node)
			var engErr common.EngineError
			require.ErrorAs(t, err, &engErr)
			assert.Equal(t, common.InvalidPlanError, engErr.Code)
		})
	}
}

// foreignMethods stands in for another extension's operator.
type foreignMethods struct{}

func (*foreignMethods) Name() string { return "zero100_test_foreign" }

func (*foreignMethods) CreateCustomScanState(node *planner.CustomScanNode) (extensible.CustomScanState, error) {
	return &foreignState{}, nil
}

type foreignState struct{}

func (*foreignState) Begin() error { return nil }

func (*foreignState) Exec() (storage.Tuple, bool) { return storage.Tuple{}, false }

func (*foreignState) End() error { return nil }
