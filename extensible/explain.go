package extensible

import "strings"

// ExplainProperty is one label/value pair emitted under a plan node.
type ExplainProperty struct {
	Depth int
	Label string
	Value string
}

// ExplainState collects EXPLAIN output. Nodes open a new indentation level;
// properties attach to the innermost open node.
type ExplainState struct {
	depth int
	lines []ExplainProperty
}

// OpenNode starts a node heading and indents everything that follows.
func (es *ExplainState) OpenNode(heading string) {
	es.lines = append(es.lines, ExplainProperty{Depth: es.depth, Value: heading})
	es.depth++
}

// CloseNode ends the innermost node.
func (es *ExplainState) CloseNode() {
	if es.depth > 0 {
		es.depth--
	}
}

// PropertyText records a label/value pair under the current node.
func (es *ExplainState) PropertyText(label, value string) {
	es.lines = append(es.lines, ExplainProperty{Depth: es.depth, Label: label, Value: value})
}

// Properties returns the labelled pairs recorded so far, headings excluded.
func (es *ExplainState) Properties() []ExplainProperty {
	var out []ExplainProperty
	for _, l := range es.lines {
		if l.Label != "" {
			out = append(out, l)
		}
	}
	return out
}

func (es *ExplainState) String() string {
	var sb strings.Builder
	for _, l := range es.lines {
		sb.WriteString(strings.Repeat("  ", l.Depth))
		if l.Label != "" {
			sb.WriteString(l.Label)
			sb.WriteString(": ")
		}
		sb.WriteString(l.Value)
		sb.WriteByte('\n')
	}
	return sb.String()
}
