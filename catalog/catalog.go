package catalog

import (
	"encoding/json"
	"fmt"
	"sync"

	"mit.edu/dsg/zero100/common"
)

// Catalog holds the table metadata the planner resolves relations against.
// It lives only in memory: tables are registered when an Engine is assembled
// and are never altered afterwards.
type Catalog struct {
	mu     sync.RWMutex
	nextID uint32
	tables []*Table

	// In-memory structures for fast lookups
	tableMap map[string]*Table          // TableName -> Table
	oidMap   map[common.ObjectID]*Table // Oid -> Table
}

// Column represents the basic unit of a table schema.
type Column struct {
	Name string      `json:"name"`
	Type common.Type `json:"type"`
}

// Table is the primary metadata structure. RowEstimate feeds the cost of the
// sequential scan path; it is a planner hint, not an exact count.
type Table struct {
	Oid         common.ObjectID `json:"oid"`
	Name        string          `json:"name"`
	Columns     []Column        `json:"columns"`
	RowEstimate float64         `json:"row_estimate"`
}

func (t *Table) String() string {
	b, _ := json.MarshalIndent(t, "", "  ")
	return string(b)
}

// ColumnTypes returns the column types in declaration order.
func (t *Table) ColumnTypes() []common.Type {
	out := make([]common.Type, len(t.Columns))
	for i, c := range t.Columns {
		out[i] = c.Type
	}
	return out
}

func NewCatalog() *Catalog {
	return &Catalog{
		tableMap: make(map[string]*Table),
		oidMap:   make(map[common.ObjectID]*Table),
	}
}

// AddTable registers a new table in the catalog and assigns it a unique ObjectID.
// If the table with that name already exists, it returns DuplicateObjectError.
func (c *Catalog) AddTable(tableName string, columns []Column, rowEstimate float64) (*Table, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.tableMap[tableName]; exists {
		return nil, common.EngineError{
			Code:      common.DuplicateObjectError,
			ErrString: fmt.Sprintf("table '%s' already exists", tableName),
		}
	}

	// oid 0 is reserved for INVALID
	c.nextID++
	t := &Table{
		Oid:         common.ObjectID(c.nextID),
		Name:        tableName,
		Columns:     columns,
		RowEstimate: rowEstimate,
	}
	c.tables = append(c.tables, t)
	c.tableMap[tableName] = t
	c.oidMap[t.Oid] = t
	return t, nil
}

// GetTableMetadata fetches the schema for a specific table name.
func (c *Catalog) GetTableMetadata(tableName string) (*Table, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	table, exists := c.tableMap[tableName]
	if !exists {
		return nil, common.EngineError{
			Code:      common.NoSuchObjectError,
			ErrString: fmt.Sprintf("table '%s' does not exist", tableName),
		}
	}
	return table, nil
}

// GetTableByOid fetches the schema for a table ObjectID.
func (c *Catalog) GetTableByOid(oid common.ObjectID) (*Table, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	table, exists := c.oidMap[oid]
	if !exists {
		return nil, common.EngineError{
			Code:      common.NoSuchObjectError,
			ErrString: fmt.Sprintf("relation with oid %d does not exist", oid),
		}
	}
	return table, nil
}

// RelName resolves a relation ObjectID to its name.
func (c *Catalog) RelName(oid common.ObjectID) (string, bool) {
	t, err := c.GetTableByOid(oid)
	if err != nil {
		return "", false
	}
	return t.Name, true
}

// Tables returns every registered table in creation order.
func (c *Catalog) Tables() []*Table {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]*Table(nil), c.tables...)
}
