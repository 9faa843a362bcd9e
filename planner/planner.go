package planner

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"mit.edu/dsg/zero100/catalog"
	"mit.edu/dsg/zero100/common"
	"mit.edu/dsg/zero100/util/logger"
)

// Cost model constants, in units of one sequential page fetch.
const (
	SeqPageCost  = 1.0
	CPUTupleCost = 0.01
	CPUOperCost  = 0.0025
	// TuplesPerPage is the assumed heap density used to derive page counts.
	TuplesPerPage = 100.0
	// DefaultNumGroups is the row estimate of a grouped aggregate.
	DefaultNumGroups = 200.0
)

// Query is an analyzed single-table query: an optional aggregate list over
// one range table entry.
type Query struct {
	RangeTable []*RangeTblEntry
	GroupBy    []Expr
	AggClauses []AggregateClause
	// ConstFalse is set when the WHERE clause folded to constant false.
	ConstFalse bool
}

func (q *Query) HasAggs() bool {
	return len(q.AggClauses) > 0
}

// PlannedStmt is the planner's output.
type PlannedStmt struct {
	QueryID  uuid.UUID
	PlanTree PlanNode
}

// Planner builds plans for queries, offering each stage to the installed hooks.
type Planner struct {
	catalog *catalog.Catalog
	hooks   *Hooks
}

// NewPlanner returns a planner over cat. A nil hooks uses DefaultHooks.
func NewPlanner(cat *catalog.Catalog, hooks *Hooks) *Planner {
	if hooks == nil {
		hooks = DefaultHooks
	}
	return &Planner{catalog: cat, hooks: hooks}
}

// Plan chooses the cheapest path for q and converts it into a plan tree.
func (p *Planner) Plan(q *Query) (*PlannedStmt, error) {
	if len(q.RangeTable) != 1 {
		return nil, common.Errorf(common.UnsupportedQueryError, "expected exactly one relation in FROM, got %d", len(q.RangeTable))
	}
	root := NewPlannerInfo(q, p.catalog)
	log := logger.L.WithField("query_id", root.QueryID)

	rel, err := p.setBaseRelPathlist(root, 1, q.RangeTable[0])
	if err != nil {
		return nil, errors.Wrap(err, "planning base relation")
	}
	current := rel

	if q.HasAggs() {
		current = p.createGroupingPaths(root, current)
	}

	final := root.FetchUpperRel(UpperRelFinal)
	final.Target = current.Target
	best := current.CheapestTotalPath()
	if best == nil {
		return nil, common.Errorf(common.InvalidPlanError, "no path for relation at range table index %d", rel.RTIndex)
	}
	// The final stage has no node of its own; it reuses the best path of the previous stage.
	final.AddPath(reparent(best, final))
	p.hooks.UpperPaths.Run(UpperPathsArgs{Root: root, Stage: UpperRelFinal, InputRel: current, OutputRel: final})

	plan, err := createPlan(root, final.CheapestTotalPath())
	if err != nil {
		return nil, errors.Wrap(err, "creating plan")
	}
	log.WithFields(logrus.Fields{"plan": plan.String(), "cost": final.CheapestTotalPath().Base().TotalCost}).Debug("planned query")
	return &PlannedStmt{QueryID: root.QueryID, PlanTree: plan}, nil
}

func (p *Planner) setBaseRelPathlist(root *PlannerInfo, rti int, rte *RangeTblEntry) (*RelOptInfo, error) {
	if rte.Kind != RTERelation {
		return nil, common.Errorf(common.UnsupportedQueryError, "cannot plan %s range table entries", rte.Kind)
	}
	table, err := root.Catalog.GetTableByOid(rte.RelID)
	if err != nil {
		return nil, err
	}

	rel := NewBaseRel(rti, table.Oid, table.ColumnTypes(), table.RowEstimate)
	rel.Pages = pagesFor(rel.Rows)
	root.SimpleRelArray[rti] = rel

	if root.Query.ConstFalse {
		rel.MarkDummy()
		rel.Rows = 0
		rel.AddPath(&ResultPath{PathBase: PathBase{Parent: rel, Target: rel.Target}})
	} else {
		rel.AddPath(&SeqScanPath{
			PathBase: PathBase{
				Parent:       rel,
				Target:       rel.Target,
				Rows:         rel.Rows,
				ParallelSafe: true,
				TotalCost:    rel.Pages*SeqPageCost + rel.Rows*CPUTupleCost,
			},
			Relid: table.Oid,
		})
	}

	p.hooks.RelPathlist.Run(RelPathlistArgs{Root: root, Rel: rel, RTI: rti, RTE: rte})
	return rel, nil
}

func (p *Planner) createGroupingPaths(root *PlannerInfo, input *RelOptInfo) *RelOptInfo {
	q := root.Query
	target := NewAggregateNode(nil, q.GroupBy, q.AggClauses).OutputSchema()
	grouped := root.FetchUpperRel(UpperRelGroupAgg)
	grouped.Target = target

	subpath := input.CheapestTotalPath()
	sub := subpath.Base()
	agg := &AggPath{
		PathBase: PathBase{
			Parent:      grouped,
			Target:      target,
			StartupCost: sub.TotalCost + sub.Rows*CPUOperCost*float64(len(q.AggClauses)),
		},
		Subpath:    subpath,
		GroupBy:    q.GroupBy,
		AggClauses: q.AggClauses,
	}
	if len(q.GroupBy) == 0 {
		agg.Strategy = AggPlain
		agg.Rows = 1
	} else {
		agg.Strategy = AggHashed
		agg.Rows = DefaultNumGroups
	}
	agg.TotalCost = agg.StartupCost + agg.Rows*CPUTupleCost
	grouped.Rows = agg.Rows
	grouped.AddPath(agg)

	p.hooks.UpperPaths.Run(UpperPathsArgs{Root: root, Stage: UpperRelGroupAgg, InputRel: input, OutputRel: grouped})
	return grouped
}

func pagesFor(rows float64) float64 {
	if rows <= 0 {
		return 0
	}
	pages := rows / TuplesPerPage
	if pages < 1 {
		return 1
	}
	return pages
}

// reparent returns a shallow copy of path whose Parent is rel.
func reparent(path Path, rel *RelOptInfo) Path {
	switch p := path.(type) {
	case *SeqScanPath:
		c := *p
		c.Parent = rel
		return &c
	case *ResultPath:
		c := *p
		c.Parent = rel
		return &c
	case *CustomPath:
		c := *p
		c.Parent = rel
		return &c
	case *AggPath:
		c := *p
		c.Parent = rel
		return &c
	}
	panic("unknown path type")
}
