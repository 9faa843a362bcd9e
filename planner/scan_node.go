package planner

import (
	"fmt"

	"mit.edu/dsg/zero100/common"
)

// SeqScanNode represents the built-in sequential scan over a table heap.
type SeqScanNode struct {
	TableOid     common.ObjectID
	outputSchema []common.Type
}

func NewSeqScanNode(tableOid common.ObjectID, outputSchema []common.Type) *SeqScanNode {
	return &SeqScanNode{
		TableOid:     tableOid,
		outputSchema: outputSchema,
	}
}

func (n *SeqScanNode) OutputSchema() []common.Type {
	return n.outputSchema
}

func (n *SeqScanNode) Children() []PlanNode {
	return nil
}

func (n *SeqScanNode) String() string {
	return fmt.Sprintf("SeqScan: TableOID(%d)", n.TableOid)
}

// ResultNode produces no rows. It replaces the scan of a relation the planner
// proved empty.
type ResultNode struct {
	outputSchema []common.Type
}

func NewResultNode(outputSchema []common.Type) *ResultNode {
	return &ResultNode{outputSchema: outputSchema}
}

func (n *ResultNode) OutputSchema() []common.Type {
	return n.outputSchema
}

func (n *ResultNode) Children() []PlanNode {
	return nil
}

func (n *ResultNode) String() string {
	return "Result: One-Time Filter(false)"
}
