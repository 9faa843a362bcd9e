package common

import (
	"fmt"
	"math"
)

type Type int8

const (
	// For uninitialized Values
	DefaultType Type = iota
	// Int32Type is the 32-bit signed column type produced by scans.
	Int32Type
	// IntType is the 64-bit signed type used for aggregate results.
	IntType
)

func (t Type) String() string {
	switch t {
	case Int32Type:
		return "int4"
	case IntType:
		return "int8"
	}
	return "unknown"
}

// ObjectID is a unique identifier for a table in the catalog.
type ObjectID uint32

const InvalidObjectID ObjectID = 0

// Value represents a single datum flowing between operators.
// Both integer widths share the same 64-bit storage; the Type decides how it is reported.
type Value struct {
	t    Type
	null bool
	v    int64
}

// NewInt32Value creates a new 32-bit integer Value.
func NewInt32Value(v int32) Value {
	return Value{t: Int32Type, v: int64(v)}
}

// NewIntValue creates a new 64-bit integer Value.
func NewIntValue(v int64) Value {
	return Value{t: IntType, v: v}
}

// NewNullInt creates a NULL 64-bit integer Value.
func NewNullInt() Value {
	return Value{t: IntType, null: true}
}

// NewNullInt32 creates a NULL 32-bit integer Value.
func NewNullInt32() Value {
	return Value{t: Int32Type, null: true}
}

// IsNil returns true if the Value is uninitialized. This is NOT to be confused with NULL values.
func (v Value) IsNil() bool {
	return v.t == DefaultType
}

// Type returns the type of the Value.
func (v Value) Type() Type {
	return v.t
}

// IsNull returns true if the Value is NULL.
func (v Value) IsNull() bool {
	return v.null
}

// IntValue returns the underlying (non-NULL) integer widened to 64 bits.
func (v Value) IntValue() int64 {
	Assert(v.t == IntType || v.t == Int32Type, "type mismatch in IntValue")
	Assert(!v.null, "accessing value of NULL int")
	return v.v
}

// Int32Value returns the underlying (non-NULL) 32-bit integer.
func (v Value) Int32Value() int32 {
	Assert(v.t == Int32Type, "type mismatch in Int32Value")
	Assert(!v.null, "accessing value of NULL int4")
	return int32(v.v)
}

// FitsInt32 reports whether n can be stored in an Int32Type column.
func FitsInt32(n int64) bool {
	return n >= math.MinInt32 && n <= math.MaxInt32
}

// Compare compares two Values.
// Returns -1 if v < other, 0 if v == other, 1 if v > other.
// NULL is considered less than non-NULL values. Integer widths compare freely.
func (v Value) Compare(other Value) int {
	Assert(!v.IsNil() && !other.IsNil(), "comparison of uninitialized values")

	if v.null && other.null {
		return 0
	}
	if v.null {
		return -1
	}
	if other.null {
		return 1
	}
	switch {
	case v.v < other.v:
		return -1
	case v.v > other.v:
		return 1
	}
	return 0
}

func (v Value) String() string {
	if v.IsNil() {
		return "<nil>"
	}
	if v.null {
		return "NULL"
	}
	return fmt.Sprintf("%d", v.v)
}
