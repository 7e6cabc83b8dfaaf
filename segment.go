package mempool

import "math/bits"

// Segment describes one size class handed to Begin: Count cells of Size
// allocation steps each.
type Segment struct {
	Count uint16 // number of cells
	Size  uint16 // cell size, in units of SegmentStep
}

// segment is one placed size class.
//
//	buffer: | ... |  cell 0  |  cell 1  |   ...   | cell n-1 | ... |
//	              ^ base
//	mask:   | ... | summary  |  group 0 |   ...   | group g-1 | ... |
//	              ^ maskBase
type segment struct {
	sizeBytes int // cell size in bytes
	cellCount int
	groups    int // 32-cell bitmap groups, ceil(cellCount/32)
	base      int // byte offset of cell 0 in the pool buffer
	maskBase  int // word offset of the summary word in the mask buffer

	// fast division pair, see cellIndex.
	magic uint32
	shift uint8
}

// initDivider precomputes the shift or fixed-point reciprocal that maps a
// byte offset back to its cell index without dividing.
func (s *segment) initDivider() {
	if s.sizeBytes&(s.sizeBytes-1) == 0 {
		s.magic = 1
		s.shift = uint8(bits.TrailingZeros32(uint32(s.sizeBytes)))
	} else {
		steps := s.sizeBytes >> stepShift
		s.magic = uint32((1<<16 + steps - 1) / steps)
		s.shift = 16
	}
}

// cellIndex recovers the cell index from a byte offset relative to base.
// Exact for every offset below 64 KB, which maxSegmentCells guarantees.
func (s *segment) cellIndex(offset int) int {
	if s.sizeBytes&(s.sizeBytes-1) != 0 {
		return int(uint32(offset>>stepShift) * s.magic >> s.shift)
	}
	return offset >> s.shift
}
