package planner

import (
	"github.com/google/uuid"

	"mit.edu/dsg/zero100/catalog"
	"mit.edu/dsg/zero100/common"
)

type UpperRelationKind int

const (
	UpperRelSetOp UpperRelationKind = iota
	UpperRelPartialGroupAgg
	UpperRelGroupAgg
	UpperRelWindow
	UpperRelDistinct
	UpperRelOrdered
	UpperRelFinal
)

func (k UpperRelationKind) String() string {
	switch k {
	case UpperRelSetOp:
		return "setop"
	case UpperRelPartialGroupAgg:
		return "partial_group_agg"
	case UpperRelGroupAgg:
		return "group_agg"
	case UpperRelWindow:
		return "window"
	case UpperRelDistinct:
		return "distinct"
	case UpperRelOrdered:
		return "ordered"
	case UpperRelFinal:
		return "final"
	}
	return "???"
}

// PlannerInfo is the per-query planning context handed to every hook.
type PlannerInfo struct {
	QueryID uuid.UUID
	Query   *Query
	Catalog *catalog.Catalog

	// SimpleRelArray is indexed by range table index; slot 0 is unused.
	SimpleRelArray []*RelOptInfo
	upperRels      map[UpperRelationKind]*RelOptInfo
}

func NewPlannerInfo(q *Query, cat *catalog.Catalog) *PlannerInfo {
	return &PlannerInfo{
		QueryID:        uuid.New(),
		Query:          q,
		Catalog:        cat,
		SimpleRelArray: make([]*RelOptInfo, len(q.RangeTable)+1),
		upperRels:      make(map[UpperRelationKind]*RelOptInfo),
	}
}

// FetchUpperRel returns the upper relation for kind, creating it on first use.
func (root *PlannerInfo) FetchUpperRel(kind UpperRelationKind) *RelOptInfo {
	if rel, ok := root.upperRels[kind]; ok {
		return rel
	}
	rel := NewUpperRel(nil)
	root.upperRels[kind] = rel
	return rel
}

// RelName resolves a relation ObjectID through the catalog.
func (root *PlannerInfo) RelName(oid common.ObjectID) (string, bool) {
	if root.Catalog == nil {
		return "", false
	}
	return root.Catalog.RelName(oid)
}
