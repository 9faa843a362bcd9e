package zero100

import (
	"github.com/pkg/errors"

	"mit.edu/dsg/zero100/common"
	"mit.edu/dsg/zero100/extensible"
	"mit.edu/dsg/zero100/planner"
)

const (
	ScanName  = "Zero100"
	FusedName = "Zero100Sum"
)

// scanPrivate travels from the scan path to its plan node.
type scanPrivate struct {
	Capacity int
}

// fusedPrivate travels from the fused path to its plan node.
type fusedPrivate struct {
	TableName string
}

// state is the closed set of runtime states this extension creates. A fused
// parent matches on it to reach the scan-only Buffer capability.
type state interface {
	extensible.CustomScanState
	zero100State()
}

var (
	_ state = (*ScanState)(nil)
	_ state = (*FusedSumState)(nil)
)

// descriptor binds one operator kind to its plan- and state-building steps.
// Descriptors are compared by pointer identity.
type descriptor struct {
	name       string
	plan       func(m *descriptor, path *planner.CustomPath, tlist []common.Type, customPlans []planner.PlanNode) (planner.PlanNode, error)
	buildState func(node *planner.CustomScanNode) (state, error)
}

func (d *descriptor) Name() string {
	return d.name
}

func (d *descriptor) PlanCustomPath(root *planner.PlannerInfo, rel *planner.RelOptInfo, path *planner.CustomPath, tlist []common.Type, customPlans []planner.PlanNode) (planner.PlanNode, error) {
	return d.plan(d, path, tlist, customPlans)
}

func (d *descriptor) CreateCustomScanState(node *planner.CustomScanNode) (extensible.CustomScanState, error) {
	st, err := d.buildState(node)
	if err != nil {
		return nil, err
	}
	return st, nil
}

var (
	scanDescriptor = &descriptor{
		name:       ScanName,
		plan:       planCustomNode,
		buildState: createScanState,
	}
	fusedDescriptor = &descriptor{
		name:       FusedName,
		plan:       planFusedNode,
		buildState: createFusedState,
	}
)

// ScanMethods returns the descriptor of the Zero100 scan.
func ScanMethods() planner.CustomScanMethods {
	return scanDescriptor
}

// FusedMethods returns the descriptor of the fused sum.
func FusedMethods() planner.CustomScanMethods {
	return fusedDescriptor
}

func planCustomNode(d *descriptor, path *planner.CustomPath, tlist []common.Type, customPlans []planner.PlanNode) (planner.PlanNode, error) {
	node := planner.NewCustomScanNode(d, tlist, customPlans, path.CustomPrivate)
	node.Flags = path.Flags
	node.ParallelAware = path.ParallelAware
	return node, nil
}

func planFusedNode(d *descriptor, path *planner.CustomPath, tlist []common.Type, customPlans []planner.PlanNode) (planner.PlanNode, error) {
	if len(customPlans) != 1 {
		return nil, common.Errorf(common.InvalidPlanError, "%s expects one child plan, got %d", d.name, len(customPlans))
	}
	if child, ok := customPlans[0].(*planner.CustomScanNode); !ok || child.Methods != planner.CustomScanMethods(scanDescriptor) {
		return nil, common.Errorf(common.InvalidPlanError, "%s child must be a %s scan, got %s", d.name, ScanName, customPlans[0])
	}
	return planCustomNode(d, path, tlist, customPlans)
}

func createScanState(node *planner.CustomScanNode) (state, error) {
	priv, ok := node.CustomPrivate.(*scanPrivate)
	if !ok || priv.Capacity <= 0 {
		return nil, common.Errorf(common.InvalidPlanError, "%s node carries no valid block capacity", ScanName)
	}
	return newScanState(priv.Capacity), nil
}

// createFusedState builds the child state through the child's own descriptor
// and accepts it only if it is a Zero100 scan.
func createFusedState(node *planner.CustomScanNode) (state, error) {
	priv, ok := node.CustomPrivate.(*fusedPrivate)
	if !ok {
		return nil, common.Errorf(common.InvalidPlanError, "%s node carries no private data", FusedName)
	}
	if len(node.CustomPlans) != 1 {
		return nil, common.Errorf(common.InvalidPlanError, "%s expects one child plan, got %d", FusedName, len(node.CustomPlans))
	}
	childNode, ok := node.CustomPlans[0].(*planner.CustomScanNode)
	if !ok {
		return nil, common.Errorf(common.InvalidPlanError, "%s child is not a custom scan: %s", FusedName, node.CustomPlans[0])
	}
	childState, err := childNode.Methods.CreateCustomScanState(childNode)
	if err != nil {
		return nil, errors.Wrapf(err, "%s child", FusedName)
	}

	var scan *ScanState
	switch cs := childState.(type) {
	case *ScanState:
		scan = cs
	case *FusedSumState:
		return nil, common.Errorf(common.InvalidPlanError, "%s cannot aggregate over another %s", FusedName, FusedName)
	default:
		return nil, common.Errorf(common.InvalidPlanError, "%s child %s is not a %s scan", FusedName, childNode, ScanName)
	}
	return &FusedSumState{tableName: priv.TableName, child: scan}, nil
}
