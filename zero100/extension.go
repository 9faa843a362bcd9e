// Package zero100 is a planner extension for the synthetic "zero100" table.
//
// It contributes two custom scan operators. The Zero100 scan replaces the
// sequential scan of the table with a block of the integers 0..n-1 generated
// in memory. The Zero100Sum operator replaces a plain sum() over that scan,
// summing the scan's block in one pass instead of pulling it row by row.
package zero100

import (
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"mit.edu/dsg/zero100/config"
	"mit.edu/dsg/zero100/planner"
	"mit.edu/dsg/zero100/util/logger"
)

// Extension holds the configuration its planner rules were installed with.
type Extension struct {
	cfg config.Config
}

func (x *Extension) Config() config.Config {
	return x.cfg
}

// Load registers the extension's operators and installs its rules on hooks.
// Rules are appended, so they run after anything already installed there.
func Load(hooks *planner.Hooks, cfg config.Config) (*Extension, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "zero100 config")
	}
	for _, d := range []*descriptor{scanDescriptor, fusedDescriptor} {
		if err := planner.RegisterCustomScanMethods(d); err != nil {
			return nil, errors.Wrapf(err, "registering %s", d.name)
		}
	}

	x := &Extension{cfg: cfg}
	hooks.RelPathlist.Install(x.setRelPathlist)
	hooks.UpperPaths.Install(x.createUpperPaths)

	logger.L.WithFields(logrus.Fields{
		"table":    cfg.TableName,
		"capacity": cfg.BlockCapacity,
	}).Info("zero100 loaded")
	return x, nil
}

var (
	initOnce sync.Once
	initErr  error
)

// Init loads the extension with the default configuration into
// planner.DefaultHooks. Only the first call does anything.
func Init() error {
	initOnce.Do(func() {
		_, initErr = Load(planner.DefaultHooks, config.Default())
	})
	return initErr
}
