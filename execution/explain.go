package execution

import (
	"mit.edu/dsg/zero100/extensible"
)

// Explain renders the executor tree. Extension states contribute their own
// properties through extensible.Explainer.
func Explain(e Executor) string {
	var es extensible.ExplainState
	explainNode(e, &es)
	return es.String()
}

func explainNode(e Executor, es *extensible.ExplainState) {
	es.OpenNode(e.PlanNode().String())
	defer es.CloseNode()

	if cs, ok := e.(*CustomScanExecutor); ok {
		if ex, ok := cs.state.(extensible.Explainer); ok {
			ex.Explain(es)
		}
	}
	if p, ok := e.(parentExecutor); ok {
		for _, c := range p.children() {
			explainNode(c, es)
		}
	}
}
