package planner

import "mit.edu/dsg/zero100/common"

// Path is a costed, not-yet-executable strategy for producing a relation.
// Paths belong to the planning of one query and are dropped once the plan is built.
type Path interface {
	Base() *PathBase
}

// PathBase holds the fields every path variant carries.
type PathBase struct {
	Parent          *RelOptInfo
	Target          []common.Type
	Rows            float64
	StartupCost     float64
	TotalCost       float64
	ParallelAware   bool
	ParallelSafe    bool
	ParallelWorkers int
	// PathKeys lists the output columns the path is sorted on; nil means unordered.
	PathKeys []int
}

func (p *PathBase) Base() *PathBase {
	return p
}

// SeqScanPath scans a table heap in storage order.
// Relid is carried on the path itself; the path may be re-parented onto an
// upper relation that has no table of its own.
type SeqScanPath struct {
	PathBase
	Relid common.ObjectID
}

// ResultPath produces nothing; the only path of a dummy relation.
type ResultPath struct {
	PathBase
}

// CustomPath is a path whose planning and execution are supplied by an
// extension through Methods. CustomPaths are child paths the extension owns;
// the host plans them and hands the results to PlanCustomPath.
type CustomPath struct {
	PathBase
	Flags         uint32
	CustomPaths   []Path
	CustomPrivate any
	Methods       CustomPathMethods
}

type AggStrategy int

const (
	// AggPlain aggregates all input rows into exactly one output row.
	AggPlain AggStrategy = iota
	AggSorted
	AggHashed
)

func (s AggStrategy) String() string {
	switch s {
	case AggPlain:
		return "plain"
	case AggSorted:
		return "sorted"
	case AggHashed:
		return "hashed"
	}
	return "???"
}

// AggPath aggregates the output of Subpath. Extensions may replace Subpath
// during the group-aggregate upper stage; nothing else about it is theirs to change.
type AggPath struct {
	PathBase
	Subpath    Path
	Strategy   AggStrategy
	GroupBy    []Expr
	AggClauses []AggregateClause
}
