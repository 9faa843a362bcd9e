package storage

import (
	"golang.org/x/exp/constraints"

	"mit.edu/dsg/zero100/common"
)

// DataBlock is a fixed-capacity, ordered run of integers. Its length is set at
// construction and never changes; a block is owned by exactly one operator,
// which releases it when it closes.
type DataBlock[T constraints.Integer] struct {
	data []T
}

func NewDataBlock[T constraints.Integer](capacity int) *DataBlock[T] {
	common.Assert(capacity > 0, "data block capacity must be positive, got %d", capacity)
	return &DataBlock[T]{data: make([]T, capacity)}
}

// Len returns the fixed capacity of the block, or 0 once released.
func (b *DataBlock[T]) Len() int {
	return len(b.data)
}

// At returns the element in position i.
func (b *DataBlock[T]) At(i int) T {
	return b.data[i]
}

// Values returns a non-owning view of the block contents. The view must not be
// retained past Release.
func (b *DataBlock[T]) Values() []T {
	return b.data
}

// Released reports whether Release has been called.
func (b *DataBlock[T]) Released() bool {
	return b.data == nil
}

// Release drops the backing storage. Calling it twice is harmless.
func (b *DataBlock[T]) Release() {
	b.data = nil
}

// DataBlockSource populates a freshly allocated block.
type DataBlockSource[T constraints.Integer] interface {
	Fill(block *DataBlock[T])
}

// SequenceSource fills a block with 0, 1, ..., capacity-1.
type SequenceSource[T constraints.Integer] struct{}

func (SequenceSource[T]) Fill(block *DataBlock[T]) {
	for i := range block.data {
		block.data[i] = T(i)
	}
}

// Sum adds up vals in a single pass, widening to 64 bits.
func Sum[T constraints.Integer](vals []T) int64 {
	var total int64
	for _, v := range vals {
		total += int64(v)
	}
	return total
}
