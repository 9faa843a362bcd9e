package planner

import (
	"mit.edu/dsg/zero100/common"
)

// PlanNode is one executable step of a finished plan. Plan nodes are built
// from the chosen path tree and are immutable afterwards; executors are
// instantiated from them.
type PlanNode interface {
	// OutputSchema returns the types of the tuples produced by this node.
	OutputSchema() []common.Type

	// Children returns the child plan nodes the host knows about. Custom
	// scans keep their children in CustomPlans instead.
	Children() []PlanNode

	String() string
}

// Walk visits node and its descendants depth-first, including the private
// children of custom scans. It stops descending where fn returns false.
func Walk(node PlanNode, fn func(PlanNode) bool) {
	if node == nil || !fn(node) {
		return
	}
	children := node.Children()
	if cs, ok := node.(*CustomScanNode); ok {
		children = cs.CustomPlans
	}
	for _, c := range children {
		Walk(c, fn)
	}
}
