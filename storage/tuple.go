package storage

import (
	"strings"

	"mit.edu/dsg/zero100/common"
)

// Tuple represents the "Logical View" of a row exchanged between operators.
// Nothing in this engine is stored in a page layout, so a Tuple is simply the
// list of its values; operators that compute new rows (aggregates, custom
// scans) build them with FromValues.
type Tuple struct {
	values []common.Value
}

// FromValues creates a Tuple from a list of values.
func FromValues(values ...common.Value) Tuple {
	if values == nil {
		values = []common.Value{}
	}
	return Tuple{values: values}
}

// Extend returns a NEW Tuple consisting of the current tuple's fields
// followed by the provided newValues.
func (t *Tuple) Extend(newValues []common.Value) Tuple {
	values := make([]common.Value, 0, len(t.values)+len(newValues))
	values = append(values, t.values...)
	return Tuple{values: append(values, newValues...)}
}

// IsNil checks if the tuple is uninitialized.
func (t *Tuple) IsNil() bool {
	return t.values == nil
}

// NumColumns returns the number of fields in the tuple.
func (t *Tuple) NumColumns() int {
	return len(t.values)
}

// GetValue returns the value at column i.
func (t *Tuple) GetValue(i int) common.Value {
	common.Assert(i >= 0 && i < len(t.values), "column %d out of range [0, %d)", i, len(t.values))
	return t.values[i]
}

// Types returns the type of every column.
func (t *Tuple) Types() []common.Type {
	out := make([]common.Type, len(t.values))
	for i, v := range t.values {
		out[i] = v.Type()
	}
	return out
}

func (t Tuple) String() string {
	parts := make([]string, len(t.values))
	for i, v := range t.values {
		parts[i] = v.String()
	}
	return "(" + strings.Join(parts, ", ") + ")"
}
