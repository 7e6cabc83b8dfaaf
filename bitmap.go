package mempool

import "math/bits"

// A set bit means occupied. Each segment owns one summary word, where bit g
// says group g is completely occupied, followed by one word per 32-cell
// group. Both claim and reclaim keep the summary in sync before returning.

// prepareMask returns a word whose low c bits are clear (free) and whose
// remaining bits are set, so slots past c can never be selected. c of 0
// means the whole word is valid.
func prepareMask(c int) uint32 {
	if c == 0 {
		return 0
	}
	return fullGroup << c
}

// firstFree returns the index of the lowest clear bit in w.
func firstFree(w uint32) int {
	return bits.TrailingZeros32(^w)
}

// summary returns the summary word of s.
func (p *Pool) summary(s *segment) *uint32 {
	return &p.mask[s.maskBase]
}

// group returns the occupancy word of group g of s.
func (p *Pool) group(s *segment, g int) *uint32 {
	return &p.mask[s.maskBase+1+g]
}
