package zero100

import (
	"mit.edu/dsg/zero100/common"
	"mit.edu/dsg/zero100/storage"
)

// ScanState is the runtime state of the Zero100 scan. It owns one DataBlock
// from Begin until End and emits its contents one int4 row at a time.
type ScanState struct {
	capacity int
	source   storage.DataBlockSource[int32]

	block *storage.DataBlock[int32]
	// index is the next position to emit; index == capacity means exhausted.
	index    int
	endCalls int
}

func newScanState(capacity int) *ScanState {
	return &ScanState{
		capacity: capacity,
		source:   storage.SequenceSource[int32]{},
	}
}

func (*ScanState) zero100State() {}

// Begin allocates the block and fills it with 0..capacity-1. A second Begin
// replaces the block and restarts the scan.
func (s *ScanState) Begin() error {
	if s.block != nil {
		s.block.Release()
	}
	s.block = storage.NewDataBlock[int32](s.capacity)
	s.source.Fill(s.block)
	s.index = 0
	return nil
}

func (s *ScanState) Exec() (storage.Tuple, bool) {
	common.Assert(s.block != nil, "Zero100 scan driven outside Begin/End")
	if s.index == s.block.Len() {
		return storage.Tuple{}, false
	}
	v := s.block.At(s.index)
	s.index++
	return storage.FromValues(common.NewInt32Value(v)), true
}

// End releases the block. It is a no-op when nothing is held.
func (s *ScanState) End() error {
	s.endCalls++
	if s.block != nil {
		s.block.Release()
		s.block = nil
	}
	return nil
}

// Buffer exposes the populated block to a fused parent without copying.
// The returned slice is only valid until End.
func (s *ScanState) Buffer() []int32 {
	common.Assert(s.block != nil, "Zero100 scan buffer read outside Begin/End")
	return s.block.Values()
}
