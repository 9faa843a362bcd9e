package execution

import (
	"github.com/pkg/errors"

	"mit.edu/dsg/zero100/common"
	"mit.edu/dsg/zero100/planner"
)

// BuildExecutor instantiates the executor tree of a plan.
func BuildExecutor(plan planner.PlanNode, tables *TableManager) (Executor, error) {
	switch node := plan.(type) {
	case *planner.SeqScanNode:
		heap, err := tables.GetTable(node.TableOid)
		if err != nil {
			return nil, err
		}
		return NewSeqScanExecutor(node, heap), nil
	case *planner.ResultNode:
		return NewResultExecutor(node), nil
	case *planner.AggregateNode:
		child, err := BuildExecutor(node.Child, tables)
		if err != nil {
			return nil, err
		}
		return NewAggregateExecutor(node, child), nil
	case *planner.CustomScanNode:
		return buildCustomScan(node)
	}
	return nil, common.Errorf(common.InvalidPlanError, "no executor for plan node %T", plan)
}

// buildCustomScan resolves the node's descriptor through the registry, so
// only operators whose extension has been loaded can run.
func buildCustomScan(node *planner.CustomScanNode) (Executor, error) {
	if node.Methods == nil {
		return nil, common.Errorf(common.InvalidPlanError, "custom scan node without methods")
	}
	methods, err := planner.GetCustomScanMethods(node.Methods.Name())
	if err != nil {
		return nil, err
	}
	if methods != node.Methods {
		return nil, common.Errorf(common.InvalidPlanError, "custom scan %q does not match the registered descriptor", node.Methods.Name())
	}
	state, err := methods.CreateCustomScanState(node)
	if err != nil {
		return nil, errors.Wrapf(err, "creating state for custom scan %q", methods.Name())
	}
	return NewCustomScanExecutor(node, state), nil
}
