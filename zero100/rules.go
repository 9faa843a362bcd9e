package zero100

import (
	"github.com/sirupsen/logrus"

	"mit.edu/dsg/zero100/common"
	"mit.edu/dsg/zero100/planner"
	"mit.edu/dsg/zero100/util/logger"
)

// setRelPathlist offers a Zero100 scan path for the configured table.
func (x *Extension) setRelPathlist(args planner.RelPathlistArgs) {
	rel := args.Rel
	if rel.IsDummy() || args.RTE.Kind != planner.RTERelation {
		return
	}
	name, ok := args.Root.RelName(args.RTE.RelID)
	if !ok || name != x.cfg.TableName {
		return
	}

	log := logger.L.WithFields(logrus.Fields{"query_id": args.Root.QueryID, "relation": name})
	if len(rel.Target) != 1 || rel.Target[0] != common.Int32Type {
		log.WithField("target", rel.Target).Warn("zero100: table must have exactly one int4 column, not proposing scan")
		return
	}

	rel.AddPath(&planner.CustomPath{
		PathBase: planner.PathBase{
			Parent: rel,
			Target: rel.Target,
			Rows:   x.cfg.ScanRows,
		},
		CustomPrivate: &scanPrivate{Capacity: x.cfg.BlockCapacity},
		Methods:       scanDescriptor,
	})
	log.WithField("rows", x.cfg.ScanRows).Debug("zero100: proposed custom scan path")
}

// createUpperPaths fuses a plain sum() sitting directly on a Zero100 scan.
// At most one aggregate path is rewritten per query.
func (x *Extension) createUpperPaths(args planner.UpperPathsArgs) {
	if args.Stage != planner.UpperRelGroupAgg {
		return
	}
	for _, p := range args.OutputRel.Pathlist() {
		agg, ok := p.(*planner.AggPath)
		if !ok || agg.Strategy != planner.AggPlain {
			continue
		}
		scan, ok := agg.Subpath.(*planner.CustomPath)
		if !ok || scan.Methods != planner.CustomPathMethods(scanDescriptor) {
			continue
		}

		log := logger.L.WithField("query_id", args.Root.QueryID)
		if !isSumOfScanColumn(agg) {
			log.WithField("aggregates", agg.AggClauses).Debug("zero100: aggregate is not sum over the scanned column, not fusing")
			return
		}
		name, _ := args.Root.RelName(scan.Parent.Relid)
		agg.Subpath = &planner.CustomPath{
			PathBase: planner.PathBase{
				Parent: scan.Parent,
				Target: scan.Target,
				Rows:   x.cfg.FusedRows,
			},
			CustomPaths:   []planner.Path{scan},
			CustomPrivate: &fusedPrivate{TableName: name},
			Methods:       fusedDescriptor,
		}
		log.WithField("relation", name).Debug("zero100: fused sum into custom scan")
		return
	}
}

func isSumOfScanColumn(agg *planner.AggPath) bool {
	if len(agg.GroupBy) != 0 || len(agg.AggClauses) != 1 {
		return false
	}
	clause := agg.AggClauses[0]
	if clause.Type != planner.AggSum {
		return false
	}
	col, ok := clause.Expr.(*planner.BoundValueExpr)
	return ok && col.FieldOffset() == 0
}
