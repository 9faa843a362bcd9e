package planner

import (
	"fmt"
	"strings"

	"mit.edu/dsg/zero100/common"
)

type AggregatorType int

const (
	AggCount AggregatorType = iota
	AggSum
	AggMin
	AggMax
)

func (a AggregatorType) String() string {
	switch a {
	case AggCount:
		return "count"
	case AggSum:
		return "sum"
	case AggMin:
		return "min"
	case AggMax:
		return "max"
	}
	return "???"
}

type AggregateClause struct {
	Type AggregatorType
	Expr Expr
}

// OutputType is the type of the aggregate's result column. Sums and counts
// are widened to 64 bits regardless of the input width.
func (c AggregateClause) OutputType() common.Type {
	switch c.Type {
	case AggCount, AggSum:
		return common.IntType
	}
	return c.Expr.OutputType()
}

func (c AggregateClause) String() string {
	return fmt.Sprintf("%s(%s)", c.Type, c.Expr)
}

// AggregateNode represents a group-by and aggregation operation.
type AggregateNode struct {
	Child         PlanNode
	GroupByClause []Expr
	AggClauses    []AggregateClause
	outputSchema  []common.Type
}

func NewAggregateNode(child PlanNode, groupBy []Expr, aggregates []AggregateClause) *AggregateNode {
	outputSchema := make([]common.Type, len(groupBy)+len(aggregates))
	for i, expr := range groupBy {
		outputSchema[i] = expr.OutputType()
	}
	for i, agg := range aggregates {
		outputSchema[len(groupBy)+i] = agg.OutputType()
	}

	return &AggregateNode{
		Child:         child,
		GroupByClause: groupBy,
		AggClauses:    aggregates,
		outputSchema:  outputSchema,
	}
}

func (n *AggregateNode) OutputSchema() []common.Type {
	return n.outputSchema
}

func (n *AggregateNode) Children() []PlanNode {
	return []PlanNode{n.Child}
}

func (n *AggregateNode) String() string {
	aggs := make([]string, len(n.AggClauses))
	for i, a := range n.AggClauses {
		aggs[i] = a.String()
	}
	if len(n.GroupByClause) == 0 {
		return fmt.Sprintf("Aggregate: %s", strings.Join(aggs, ", "))
	}
	return fmt.Sprintf("Aggregate: %s GroupBy(%v)", strings.Join(aggs, ", "), n.GroupByClause)
}
