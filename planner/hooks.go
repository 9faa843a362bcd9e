package planner

import "mit.edu/dsg/zero100/extensible"

// RelPathlistArgs is passed to interceptors that run after the planner has
// generated the built-in paths of a base relation.
type RelPathlistArgs struct {
	Root *PlannerInfo
	Rel  *RelOptInfo
	RTI  int
	RTE  *RangeTblEntry
}

// UpperPathsArgs is passed to interceptors that run after the planner has
// generated the paths of an upper stage.
type UpperPathsArgs struct {
	Root      *PlannerInfo
	Stage     UpperRelationKind
	InputRel  *RelOptInfo
	OutputRel *RelOptInfo
	Extra     any
}

// Hooks holds the interception points offered to extensions. Each point is a
// chain: interceptors run in the order they were installed, every time.
type Hooks struct {
	RelPathlist extensible.Chain[RelPathlistArgs]
	UpperPaths  extensible.Chain[UpperPathsArgs]
}

// DefaultHooks is the process-wide set of hooks used by planners that are not
// given their own.
var DefaultHooks = &Hooks{}
