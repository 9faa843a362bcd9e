package planner

import (
	"github.com/pkg/errors"

	"mit.edu/dsg/zero100/common"
)

// createPlan converts the chosen path tree into a plan tree.
func createPlan(root *PlannerInfo, path Path) (PlanNode, error) {
	switch p := path.(type) {
	case *SeqScanPath:
		return NewSeqScanNode(p.Relid, p.Target), nil
	case *ResultPath:
		return NewResultNode(p.Target), nil
	case *AggPath:
		child, err := createPlan(root, p.Subpath)
		if err != nil {
			return nil, err
		}
		return NewAggregateNode(child, p.GroupBy, p.AggClauses), nil
	case *CustomPath:
		return createCustomPlan(root, p)
	case nil:
		return nil, common.Errorf(common.InvalidPlanError, "no path to plan")
	}
	return nil, common.Errorf(common.InvalidPlanError, "unknown path type %T", path)
}

func createCustomPlan(root *PlannerInfo, path *CustomPath) (PlanNode, error) {
	if path.Methods == nil {
		return nil, common.Errorf(common.InvalidPlanError, "custom path without methods")
	}
	customPlans := make([]PlanNode, 0, len(path.CustomPaths))
	for _, child := range path.CustomPaths {
		plan, err := createPlan(root, child)
		if err != nil {
			return nil, errors.Wrapf(err, "planning child of custom path %q", path.Methods.Name())
		}
		customPlans = append(customPlans, plan)
	}
	plan, err := path.Methods.PlanCustomPath(root, path.Parent, path, path.Target, customPlans)
	if err != nil {
		return nil, errors.Wrapf(err, "custom path %q", path.Methods.Name())
	}
	return plan, nil
}
