package mempool

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDivider(t *testing.T) {
	assert := assert.New(t)

	// power of two: plain shift.
	s := segment{sizeBytes: 8}
	s.initDivider()
	assert.Equal(uint32(1), s.magic)
	assert.Equal(uint8(3), s.shift)

	// non power of two: ceil(65536/steps) reciprocal.
	s = segment{sizeBytes: 12}
	s.initDivider()
	assert.Equal(uint32(21846), s.magic)
	assert.Equal(uint8(16), s.shift)
}

func TestCellIndexExact(t *testing.T) {
	assert := assert.New(t)

	// every representable size, every cell index the summary can track.
	for steps := 1; steps <= MaxCellSize/SegmentStep; steps++ {
		s := segment{sizeBytes: steps * SegmentStep}
		s.initDivider()
		for i := 0; i < maxSegmentCells; i++ {
			assert.Equal(i, s.cellIndex(i*s.sizeBytes))
		}
	}
}

func TestPrepareMask(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(uint32(0), prepareMask(0))
	assert.Equal(uint32(0xFFFFFFFE), prepareMask(1))
	assert.Equal(uint32(0xFFFFFC00), prepareMask(10))
	assert.Equal(uint32(0x80000000), prepareMask(31))
	assert.Equal(uint32(0), prepareMask(32))
}

func TestFirstFree(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(0, firstFree(0))
	assert.Equal(1, firstFree(0b1))
	assert.Equal(4, firstFree(0b1111))
	assert.Equal(32, firstFree(fullGroup))
}
