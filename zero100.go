package zero100

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"mit.edu/dsg/zero100/catalog"
	"mit.edu/dsg/zero100/common"
	"mit.edu/dsg/zero100/config"
	"mit.edu/dsg/zero100/execution"
	"mit.edu/dsg/zero100/planner"
	"mit.edu/dsg/zero100/storage"
	zext "mit.edu/dsg/zero100/zero100"
)

// zeroTableRowEstimate is what the catalog claims for the synthetic table. It
// only costs the sequential scan; the custom scan path carries its own.
const zeroTableRowEstimate = 1000

// Engine is the top-level container: a catalog, the heaps behind it, and a
// planner whose hooks have the zero100 extension installed.
type Engine struct {
	Catalog      *catalog.Catalog
	TableManager *execution.TableManager
	Hooks        *planner.Hooks
	Planner      *planner.Planner
	Extension    *zext.Extension
}

// NewEngine creates an engine with the extension's table registered and the
// extension loaded into a private set of hooks.
func NewEngine(cfg config.Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cat := catalog.NewCatalog()
	if _, err := cat.AddTable(cfg.TableName, []catalog.Column{{Name: "v", Type: common.Int32Type}}, zeroTableRowEstimate); err != nil {
		return nil, err
	}

	hooks := &planner.Hooks{}
	ext, err := zext.Load(hooks, cfg)
	if err != nil {
		return nil, err
	}
	return &Engine{
		Catalog:      cat,
		TableManager: execution.NewTableManager(cat),
		Hooks:        hooks,
		Planner:      planner.NewPlanner(cat, hooks),
		Extension:    ext,
	}, nil
}

// CreateTable registers a table of int4 columns and loads rows into its heap.
func (e *Engine) CreateTable(name string, columns []string, rows [][]int32) (*catalog.Table, error) {
	cols := make([]catalog.Column, len(columns))
	for i, c := range columns {
		cols[i] = catalog.Column{Name: c, Type: common.Int32Type}
	}
	table, err := e.Catalog.AddTable(name, cols, float64(len(rows)))
	if err != nil {
		return nil, err
	}
	heap := e.TableManager.AddTable(table)
	for _, r := range rows {
		vals := make([]common.Value, len(r))
		for i, v := range r {
			vals[i] = common.NewInt32Value(v)
		}
		if _, err := heap.InsertTuple(storage.FromValues(vals...)); err != nil {
			return nil, errors.Wrapf(err, "loading %s", name)
		}
	}
	return table, nil
}

// ScanQuery selects every row of table.
func (e *Engine) ScanQuery(table string) (*planner.Query, error) {
	t, err := e.Catalog.GetTableMetadata(table)
	if err != nil {
		return nil, err
	}
	return &planner.Query{RangeTable: []*planner.RangeTblEntry{{Kind: planner.RTERelation, RelID: t.Oid, Alias: t.Name}}}, nil
}

// AggregateQuery computes agg over the first column of table.
func (e *Engine) AggregateQuery(table string, agg planner.AggregatorType) (*planner.Query, error) {
	q, err := e.ScanQuery(table)
	if err != nil {
		return nil, err
	}
	t, _ := e.Catalog.GetTableMetadata(table)
	if len(t.Columns) == 0 {
		return nil, common.Errorf(common.UnsupportedQueryError, "table '%s' has no columns", table)
	}
	col := planner.NewColumnValueExpression(0, t.ColumnTypes(), t.Columns[0].Name)
	q.AggClauses = []planner.AggregateClause{{Type: agg, Expr: col}}
	return q, nil
}

// Prepare plans q and builds its executor tree without running it.
func (e *Engine) Prepare(q *planner.Query) (execution.Executor, uuid.UUID, error) {
	stmt, err := e.Planner.Plan(q)
	if err != nil {
		return nil, uuid.Nil, err
	}
	exec, err := execution.BuildExecutor(stmt.PlanTree, e.TableManager)
	if err != nil {
		return nil, uuid.Nil, errors.Wrap(err, "building executor")
	}
	return exec, stmt.QueryID, nil
}

// Explain returns the plan of q as text.
func (e *Engine) Explain(q *planner.Query) (string, error) {
	exec, _, err := e.Prepare(q)
	if err != nil {
		return "", err
	}
	return execution.Explain(exec), nil
}

// Execute plans and runs q, returning every output row.
func (e *Engine) Execute(q *planner.Query) ([]storage.Tuple, error) {
	exec, id, err := e.Prepare(q)
	if err != nil {
		return nil, err
	}
	return execution.Run(exec, execution.NewExecutorContext(id))
}
