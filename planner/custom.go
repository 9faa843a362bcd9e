package planner

import (
	"mit.edu/dsg/zero100/common"
	"mit.edu/dsg/zero100/extensible"
)

// CustomPathMethods turns an extension's CustomPath into a plan node.
type CustomPathMethods interface {
	Name() string
	// PlanCustomPath builds the plan node for path. customPlans holds the
	// plans built from path.CustomPaths, in order.
	PlanCustomPath(root *PlannerInfo, rel *RelOptInfo, path *CustomPath, tlist []common.Type, customPlans []PlanNode) (PlanNode, error)
}

// CustomScanMethods instantiates the runtime state of a CustomScanNode.
type CustomScanMethods interface {
	Name() string
	CreateCustomScanState(node *CustomScanNode) (extensible.CustomScanState, error)
}

var customScanMethods = extensible.NewRegistry[CustomScanMethods]("custom scan methods")

// RegisterCustomScanMethods makes methods resolvable by name. Registering the
// same descriptor twice is a no-op.
func RegisterCustomScanMethods(methods CustomScanMethods) error {
	return customScanMethods.Register(methods)
}

// GetCustomScanMethods returns the descriptor registered under name.
func GetCustomScanMethods(name string) (CustomScanMethods, error) {
	return customScanMethods.Lookup(name)
}
