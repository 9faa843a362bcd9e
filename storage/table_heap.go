package storage

import (
	"fmt"
	"sync"

	"mit.edu/dsg/zero100/common"
)

// TableHeap is the row store behind a catalog table. Rows are kept in memory
// in insertion order; a sequential scan reads them back by slot number.
type TableHeap struct {
	oid    common.ObjectID
	schema []common.Type

	mu   sync.RWMutex
	rows []Tuple
}

func NewTableHeap(oid common.ObjectID, schema []common.Type) *TableHeap {
	return &TableHeap{oid: oid, schema: schema}
}

func (h *TableHeap) Oid() common.ObjectID {
	return h.oid
}

func (h *TableHeap) Schema() []common.Type {
	return h.schema
}

// InsertTuple appends a row and returns its slot. The row must match the heap schema.
func (h *TableHeap) InsertTuple(t Tuple) (int, error) {
	if t.NumColumns() != len(h.schema) {
		return -1, fmt.Errorf("table %d expects %d columns, got %d", h.oid, len(h.schema), t.NumColumns())
	}
	for i, typ := range h.schema {
		if v := t.GetValue(i); v.Type() != typ {
			return -1, fmt.Errorf("table %d column %d expects %s, got %s", h.oid, i, typ, v.Type())
		}
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.rows = append(h.rows, t)
	return len(h.rows) - 1, nil
}

// NumRows returns the number of rows currently stored.
func (h *TableHeap) NumRows() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rows)
}

// Row returns the row stored in the given slot.
func (h *TableHeap) Row(slot int) Tuple {
	h.mu.RLock()
	defer h.mu.RUnlock()
	common.Assert(slot >= 0 && slot < len(h.rows), "slot %d out of range", slot)
	return h.rows[slot]
}
