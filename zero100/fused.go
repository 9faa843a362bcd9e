package zero100

import (
	"mit.edu/dsg/zero100/common"
	"mit.edu/dsg/zero100/extensible"
	"mit.edu/dsg/zero100/storage"
)

// FusedSumState computes sum() over a Zero100 scan by reading the scan's
// block directly instead of pulling its rows. It emits a single row.
type FusedSumState struct {
	tableName string
	// child is not owned beyond delegating End; only its buffer is read.
	child *ScanState

	sum    int64
	done   bool
	closed bool
}

func (*FusedSumState) zero100State() {}

// Begin resets the accumulator and opens the child scan.
func (s *FusedSumState) Begin() error {
	s.sum = 0
	s.done = false
	s.closed = false
	return s.child.Begin()
}

func (s *FusedSumState) Exec() (storage.Tuple, bool) {
	if s.done {
		return storage.Tuple{}, false
	}
	s.sum = storage.Sum(s.child.Buffer())
	common.Assert(common.FitsInt32(s.sum), "Zero100 sum %d overflows int4", s.sum)
	s.done = true
	return storage.FromValues(common.NewInt32Value(int32(s.sum))), true
}

// End closes the child. Only the first call has any effect.
func (s *FusedSumState) End() error {
	if s.closed {
		return nil
	}
	s.closed = true
	return s.child.End()
}

func (s *FusedSumState) Explain(es *extensible.ExplainState) {
	es.PropertyText("AAAAA", "BBBBB")
	if s.child != nil {
		es.PropertyText("->", "SIMD ON "+s.tableName)
	}
}
