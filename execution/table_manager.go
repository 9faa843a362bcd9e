package execution

import (
	"github.com/puzpuzpuz/xsync/v3"

	"mit.edu/dsg/zero100/catalog"
	"mit.edu/dsg/zero100/common"
	"mit.edu/dsg/zero100/storage"
)

// TableManager owns the TableHeap of every catalog table.
type TableManager struct {
	tables *xsync.MapOf[common.ObjectID, *storage.TableHeap]
}

// NewTableManager eagerly creates an empty heap for every table in the catalog.
func NewTableManager(cat *catalog.Catalog) *TableManager {
	tm := &TableManager{
		tables: xsync.NewMapOf[common.ObjectID, *storage.TableHeap](),
	}
	for _, t := range cat.Tables() {
		tm.AddTable(t)
	}
	return tm
}

// AddTable creates the heap for a table registered after the manager was built.
// An existing heap is kept.
func (tm *TableManager) AddTable(t *catalog.Table) *storage.TableHeap {
	heap, _ := tm.tables.LoadOrStore(t.Oid, storage.NewTableHeap(t.Oid, t.ColumnTypes()))
	return heap
}

// GetTable retrieves the TableHeap for a given table oid.
func (tm *TableManager) GetTable(oid common.ObjectID) (*storage.TableHeap, error) {
	if heap, ok := tm.tables.Load(oid); ok {
		return heap, nil
	}
	return nil, common.Errorf(common.NoSuchObjectError, "object '%d' not found", oid)
}
