package planner

import (
	"github.com/tidwall/btree"

	"mit.edu/dsg/zero100/common"
)

type RTEKind int

const (
	RTERelation RTEKind = iota
	RTESubquery
	RTEJoin
	RTEValues
)

func (k RTEKind) String() string {
	switch k {
	case RTERelation:
		return "relation"
	case RTESubquery:
		return "subquery"
	case RTEJoin:
		return "join"
	case RTEValues:
		return "values"
	}
	return "???"
}

// RangeTblEntry is one entry of a query's FROM list.
type RangeTblEntry struct {
	Kind  RTEKind
	RelID common.ObjectID // only meaningful for RTERelation
	Alias string
}

type RelOptKind int

const (
	RelOptBaseRel RelOptKind = iota
	RelOptUpperRel
)

type pathEntry struct {
	seq  uint64
	path Path
}

func lessPath(a, b pathEntry) bool {
	ab, bb := a.path.Base(), b.path.Base()
	if ab.TotalCost != bb.TotalCost {
		return ab.TotalCost < bb.TotalCost
	}
	if ab.StartupCost != bb.StartupCost {
		return ab.StartupCost < bb.StartupCost
	}
	return a.seq < b.seq
}

// RelOptInfo describes a relation being planned: a base table or the output
// of an upper stage. Its candidate paths are kept ordered by cost; earlier
// additions win ties.
type RelOptInfo struct {
	Kind    RelOptKind
	RTIndex int
	Relid   common.ObjectID
	Target  []common.Type
	Rows    float64
	Pages   float64

	dummy    bool
	nextSeq  uint64
	pathlist *btree.BTreeG[pathEntry]
}

func newRelOptInfo(kind RelOptKind) *RelOptInfo {
	return &RelOptInfo{
		Kind:     kind,
		pathlist: btree.NewBTreeG(lessPath),
	}
}

// NewBaseRel creates the RelOptInfo of a base relation.
func NewBaseRel(rtIndex int, relid common.ObjectID, target []common.Type, rows float64) *RelOptInfo {
	rel := newRelOptInfo(RelOptBaseRel)
	rel.RTIndex = rtIndex
	rel.Relid = relid
	rel.Target = target
	rel.Rows = rows
	return rel
}

// NewUpperRel creates an empty upper relation.
func NewUpperRel(target []common.Type) *RelOptInfo {
	rel := newRelOptInfo(RelOptUpperRel)
	rel.Target = target
	return rel
}

// AddPath offers p as a way to produce the relation.
func (rel *RelOptInfo) AddPath(p Path) {
	common.Assert(p.Base().Parent == rel, "path added to a relation that is not its parent")
	rel.pathlist.Set(pathEntry{seq: rel.nextSeq, path: p})
	rel.nextSeq++
}

// Pathlist returns the candidate paths, cheapest first.
func (rel *RelOptInfo) Pathlist() []Path {
	out := make([]Path, 0, rel.pathlist.Len())
	rel.pathlist.Scan(func(e pathEntry) bool {
		out = append(out, e.path)
		return true
	})
	return out
}

// CheapestTotalPath returns the path with the lowest total cost, or nil.
func (rel *RelOptInfo) CheapestTotalPath() Path {
	e, ok := rel.pathlist.Min()
	if !ok {
		return nil
	}
	return e.path
}

// MarkDummy records that the relation is provably empty.
func (rel *RelOptInfo) MarkDummy() {
	rel.dummy = true
}

func (rel *RelOptInfo) IsDummy() bool {
	return rel.dummy
}
