package execution

import (
	"github.com/pkg/errors"

	"mit.edu/dsg/zero100/storage"
)

// Run drives e to completion and returns every row it produced. The executor
// is closed even when initialization or iteration fails.
func Run(e Executor, ctx *ExecutorContext) (rows []storage.Tuple, err error) {
	defer func() {
		if cerr := e.Close(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, "closing executor")
		}
	}()

	if err := e.Init(ctx); err != nil {
		return nil, errors.Wrap(err, "initializing executor")
	}
	for e.Next() {
		rows = append(rows, e.Current())
	}
	if err := e.Error(); err != nil {
		return nil, err
	}
	ctx.Logger().WithField("rows", len(rows)).Debug("query finished")
	return rows, nil
}
