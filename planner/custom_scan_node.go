package planner

import (
	"fmt"

	"mit.edu/dsg/zero100/common"
)

// CustomScanNode is the plan node of an extension-provided operator. The host
// treats it opaquely: everything operator-specific lives behind Methods and in
// CustomPrivate, and child plans the operator owns sit in CustomPlans.
type CustomScanNode struct {
	Methods         CustomScanMethods
	Flags           uint32
	ParallelAware   bool
	CustomPlans     []PlanNode
	CustomPrivate   any
	CustomScanTlist []common.Type
	outputSchema    []common.Type
}

func NewCustomScanNode(methods CustomScanMethods, tlist []common.Type, customPlans []PlanNode, private any) *CustomScanNode {
	return &CustomScanNode{
		Methods:         methods,
		CustomPlans:     customPlans,
		CustomPrivate:   private,
		CustomScanTlist: tlist,
		outputSchema:    tlist,
	}
}

func (n *CustomScanNode) OutputSchema() []common.Type {
	return n.outputSchema
}

// Children is empty: the host never drives a custom scan's children itself.
func (n *CustomScanNode) Children() []PlanNode {
	return nil
}

func (n *CustomScanNode) String() string {
	return fmt.Sprintf("Custom Scan (%s)", n.Methods.Name())
}
