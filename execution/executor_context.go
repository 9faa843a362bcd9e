package execution

import (
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"mit.edu/dsg/zero100/util/logger"
)

// ExecutorContext holds the per-query state shared by every executor of a plan.
type ExecutorContext struct {
	queryID uuid.UUID
	log     *logrus.Entry
}

func NewExecutorContext(queryID uuid.UUID) *ExecutorContext {
	return &ExecutorContext{
		queryID: queryID,
		log:     logger.L.WithField("query_id", queryID),
	}
}

func (ctx *ExecutorContext) QueryID() uuid.UUID {
	return ctx.queryID
}

// Logger returns a log entry tagged with the query id.
func (ctx *ExecutorContext) Logger() *logrus.Entry {
	return ctx.log
}
