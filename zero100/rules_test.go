package zero100

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"mit.edu/dsg/zero100/catalog"
	"mit.edu/dsg/zero100/common"
	"mit.edu/dsg/zero100/config"
	"mit.edu/dsg/zero100/planner"
)

type ruleFixture struct {
	cat   *catalog.Catalog
	zero  *catalog.Table
	other *catalog.Table
	wide  *catalog.Table
	x     *Extension
}

func newRuleFixture(t *testing.T) *ruleFixture {
	cat := catalog.NewCatalog()
	zero, err := cat.AddTable("zero100", []catalog.Column{{Name: "v", Type: common.Int32Type}}, 1000)
	require.NoError(t, err)
	other, err := cat.AddTable("other", []catalog.Column{{Name: "v", Type: common.Int32Type}}, 1000)
	require.NoError(t, err)
	wide, err := cat.AddTable("wide", []catalog.Column{{Name: "a", Type: common.Int32Type}, {Name: "b", Type: common.Int32Type}}, 1000)
	require.NoError(t, err)
	return &ruleFixture{cat: cat, zero: zero, other: other, wide: wide, x: &Extension{cfg: config.Default()}}
}

// baseRel mimics the planner's base relation setup: one sequential scan path.
func (f *ruleFixture) baseRel(table *catalog.Table, rte *planner.RangeTblEntry) (*planner.PlannerInfo, *planner.RelOptInfo) {
	root := planner.NewPlannerInfo(&planner.Query{RangeTable: []*planner.RangeTblEntry{rte}}, f.cat)
	rel := planner.NewBaseRel(1, table.Oid, table.ColumnTypes(), table.RowEstimate)
	rel.AddPath(&planner.SeqScanPath{PathBase: planner.PathBase{Parent: rel, Target: rel.Target, Rows: rel.Rows, TotalCost: 20}})
	root.SimpleRelArray[1] = rel
	return root, rel
}

func (f *ruleFixture) propose(table *catalog.Table, rte *planner.RangeTblEntry) *planner.RelOptInfo {
	root, rel := f.baseRel(table, rte)
	f.x.setRelPathlist(planner.RelPathlistArgs{Root: root, Rel: rel, RTI: 1, RTE: rte})
	return rel
}

func relationRTE(table *catalog.Table) *planner.RangeTblEntry {
	return &planner.RangeTblEntry{Kind: planner.RTERelation, RelID: table.Oid}
}

func customPaths(rel *planner.RelOptInfo) []*planner.CustomPath {
	var out []*planner.CustomPath
	for _, p := range rel.Pathlist() {
		if cp, ok := p.(*planner.CustomPath); ok {
			out = append(out, cp)
		}
	}
	return out
}

func TestPathProposal_ZeroTable(t *testing.T) {
	f := newRuleFixture(t)
	rel := f.propose(f.zero, relationRTE(f.zero))

	require.Len(t, rel.Pathlist(), 2)
	paths := customPaths(rel)
	require.Len(t, paths, 1)
	p := paths[0]
	assert.Same(t, rel, p.Parent)
	assert.Equal(t, 100.0, p.Rows)
	assert.Zero(t, p.StartupCost)
	assert.Zero(t, p.TotalCost)
	assert.False(t, p.ParallelAware)
	assert.Zero(t, p.ParallelWorkers)
	assert.Nil(t, p.PathKeys)
	assert.Same(t, scanDescriptor, p.Methods)
	assert.Equal(t, &scanPrivate{Capacity: 100}, p.CustomPrivate)
	assert.Same(t, p, rel.CheapestTotalPath())
}

func TestPathProposal_NoOp(t *testing.T) {
	f := newRuleFixture(t)

	t.Run("other table", func(t *testing.T) {
		rel := f.propose(f.other, relationRTE(f.other))
		assert.Empty(t, customPaths(rel))
		assert.Len(t, rel.Pathlist(), 1)
	})
	t.Run("not a relation", func(t *testing.T) {
		rel := f.propose(f.zero, &planner.RangeTblEntry{Kind: planner.RTESubquery, RelID: f.zero.Oid})
		assert.Empty(t, customPaths(rel))
	})
	t.Run("dummy", func(t *testing.T) {
		rte := relationRTE(f.zero)
		root, rel := f.baseRel(f.zero, rte)
		rel.MarkDummy()
		f.x.setRelPathlist(planner.RelPathlistArgs{Root: root, Rel: rel, RTI: 1, RTE: rte})
		assert.Empty(t, customPaths(rel))
	})
	t.Run("unknown oid", func(t *testing.T) {
		rel := f.propose(f.zero, &planner.RangeTblEntry{Kind: planner.RTERelation, RelID: 99})
		assert.Empty(t, customPaths(rel))
	})
	t.Run("wrong shape", func(t *testing.T) {
		x := &Extension{cfg: config.Default()}
		x.cfg.TableName = "wide"
		rte := relationRTE(f.wide)
		root, rel := f.baseRel(f.wide, rte)
		x.setRelPathlist(planner.RelPathlistArgs{Root: root, Rel: rel, RTI: 1, RTE: rte})
		assert.Empty(t, customPaths(rel))
	})
}

func TestPathProposal_ConfiguredTable(t *testing.T) {
	f := newRuleFixture(t)
	f.x.cfg.TableName = "other"
	f.x.cfg.ScanRows = 7

	assert.Empty(t, customPaths(f.propose(f.zero, relationRTE(f.zero))))
	paths := customPaths(f.propose(f.other, relationRTE(f.other)))
	require.Len(t, paths, 1)
	assert.Equal(t, 7.0, paths[0].Rows)
}

// stageAggregate builds the group-aggregate upper relation over the cheapest
// path of input, the way the planner does before running the upper-paths hook.
func stageAggregate(input *planner.RelOptInfo, groupBy []planner.Expr, aggs ...planner.AggregateClause) (*planner.RelOptInfo, *planner.AggPath) {
	target := planner.NewAggregateNode(nil, groupBy, aggs).OutputSchema()
	grouped := planner.NewUpperRel(target)
	agg := &planner.AggPath{
		PathBase:   planner.PathBase{Parent: grouped, Target: target, Rows: 1},
		Subpath:    input.CheapestTotalPath(),
		Strategy:   planner.AggPlain,
		GroupBy:    groupBy,
		AggClauses: aggs,
	}
	if len(groupBy) > 0 {
		agg.Strategy = planner.AggHashed
	}
	grouped.AddPath(agg)
	return grouped, agg
}

func sumOf(table *catalog.Table, col int) planner.AggregateClause {
	return planner.AggregateClause{Type: planner.AggSum, Expr: planner.NewColumnValueExpression(col, table.ColumnTypes(), "v")}
}

func (f *ruleFixture) rewrite(root *planner.PlannerInfo, stage planner.UpperRelationKind, input, output *planner.RelOptInfo) {
	f.x.createUpperPaths(planner.UpperPathsArgs{Root: root, Stage: stage, InputRel: input, OutputRel: output})
}

func TestRewrite_FusesSumOverScan(t *testing.T) {
	f := newRuleFixture(t)
	rte := relationRTE(f.zero)
	root, rel := f.baseRel(f.zero, rte)
	f.x.setRelPathlist(planner.RelPathlistArgs{Root: root, Rel: rel, RTI: 1, RTE: rte})
	scan := customPaths(rel)[0]

	grouped, agg := stageAggregate(rel, nil, sumOf(f.zero, 0))
	require.Same(t, scan, agg.Subpath)
	f.rewrite(root, planner.UpperRelGroupAgg, rel, grouped)

	fused, ok := agg.Subpath.(*planner.CustomPath)
	require.True(t, ok, "got %T", agg.Subpath)
	assert.Same(t, fusedDescriptor, fused.Methods)
	require.Len(t, fused.CustomPaths, 1)
	assert.Same(t, scan, fused.CustomPaths[0])
	assert.Equal(t, 1.0, fused.Rows)
	assert.Zero(t, fused.TotalCost)
	assert.Same(t, rel, fused.Parent)
	assert.Equal(t, &fusedPrivate{TableName: "zero100"}, fused.CustomPrivate)
	assert.Len(t, grouped.Pathlist(), 1, "the aggregate path itself is kept")
}

func TestRewrite_LeavesOtherPlansAlone(t *testing.T) {
	f := newRuleFixture(t)

	t.Run("unrelated scan", func(t *testing.T) {
		rte := relationRTE(f.other)
		root, rel := f.baseRel(f.other, rte)
		f.x.setRelPathlist(planner.RelPathlistArgs{Root: root, Rel: rel, RTI: 1, RTE: rte})
		grouped, agg := stageAggregate(rel, nil, sumOf(f.other, 0))
		before := agg.Subpath
		f.rewrite(root, planner.UpperRelGroupAgg, rel, grouped)
		assert.Same(t, before, agg.Subpath)
		assert.IsType(t, &planner.SeqScanPath{}, agg.Subpath)
	})

	zeroStage := func(t *testing.T, groupBy []planner.Expr, aggs ...planner.AggregateClause) (*planner.PlannerInfo, *planner.RelOptInfo, *planner.RelOptInfo, *planner.AggPath) {
		rte := relationRTE(f.zero)
		root, rel := f.baseRel(f.zero, rte)
		f.x.setRelPathlist(planner.RelPathlistArgs{Root: root, Rel: rel, RTI: 1, RTE: rte})
		grouped, agg := stageAggregate(rel, groupBy, aggs...)
		return root, rel, grouped, agg
	}
	col := planner.NewColumnValueExpression(0, f.zero.ColumnTypes(), "v")

	tests := []struct {
		name    string
		groupBy []planner.Expr
		aggs    []planner.AggregateClause
		stage   planner.UpperRelationKind
	}{
		{"wrong stage", nil, []planner.AggregateClause{sumOf(f.zero, 0)}, planner.UpperRelFinal},
		{"grouped", []planner.Expr{col}, []planner.AggregateClause{sumOf(f.zero, 0)}, planner.UpperRelGroupAgg},
		{"count", nil, []planner.AggregateClause{{Type: planner.AggCount, Expr: col}}, planner.UpperRelGroupAgg},
		{"two aggregates", nil, []planner.AggregateClause{sumOf(f.zero, 0), sumOf(f.zero, 0)}, planner.UpperRelGroupAgg},
		{"constant sum", nil, []planner.AggregateClause{{Type: planner.AggSum, Expr: planner.NewConstantValueExpression(common.NewInt32Value(1))}}, planner.UpperRelGroupAgg},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, rel, grouped, agg := zeroStage(t, tt.groupBy, tt.aggs...)
			before := agg.Subpath
			f.rewrite(root, tt.stage, rel, grouped)
			assert.Same(t, before, agg.Subpath)
		})
	}
}

func TestRewrite_OnlyFirstMatch(t *testing.T) {
	f := newRuleFixture(t)
	rte := relationRTE(f.zero)
	root, rel := f.baseRel(f.zero, rte)
	f.x.setRelPathlist(planner.RelPathlistArgs{Root: root, Rel: rel, RTI: 1, RTE: rte})

	grouped, first := stageAggregate(rel, nil, sumOf(f.zero, 0))
	second := &planner.AggPath{
		PathBase:   planner.PathBase{Parent: grouped, Target: first.Target, Rows: 1, TotalCost: 1000},
		Subpath:    first.Subpath,
		Strategy:   planner.AggPlain,
		AggClauses: first.AggClauses,
	}
	grouped.AddPath(second)
	scan := first.Subpath

	f.rewrite(root, planner.UpperRelGroupAgg, rel, grouped)
	assert.NotSame(t, scan, first.Subpath)
	assert.Same(t, scan, second.Subpath)
}
