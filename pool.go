package mempool

import (
	"errors"
	"sync"
)

const (
	// SegmentStep is the allocation granularity in bytes. Segment sizes
	// and request sizes are multiples of it.
	SegmentStep = 4

	// MaxCellSize is the largest serviceable request in bytes.
	MaxCellSize = 64

	// MaxSegments is the maximum number of segments per pool.
	MaxSegments = 64

	stepShift = 2 // log2(SegmentStep)
	groupBits = 32

	// fullGroup is a 32-cell group with every cell occupied.
	fullGroup = ^uint32(0)

	// maxSegmentCells keeps every segment within the 32 groups a single
	// summary word can track. Together with MaxCellSize it also caps a
	// segment's payload at 64 KB, the exact range of the 16-bit
	// reciprocal, see cellIndex.
	maxSegmentCells = groupBits * groupBits
)

var (
	ErrInitialized  = errors.New("mempool: already initialized")
	ErrSegmentCount = errors.New("mempool: invalid segment count")
	ErrSegmentSize  = errors.New("mempool: invalid segment size")
	ErrSegmentCells = errors.New("mempool: too many cells in segment")
)

// Pool is a fixed-segment memory pool. A single payload buffer is cut into
// segments of fixed-size cells; each segment tracks cell occupancy with a
// summary word plus one word per 32-cell group. Alloc and Release touch only
// the bitmap, never the payload.
//
// The zero Pool is not usable, construct with New and lay out with Begin.
// All methods are safe for concurrent use.
type Pool struct {
	mu      sync.Mutex
	options *Options

	initialized bool
	maxSize     int // cell size of the largest segment, in bytes

	segments []segment
	lookup   []int16  // rounded request steps -> first fitting segment, -1 none
	buffer   []byte   // payload cells of every segment, back to back
	mask     []uint32 // summary + group words of every segment, back to back

	stats *stats // nil unless Options.EnableStats
}

// New returns an uninitialized pool. Call Begin to lay out its segments.
func New(options Options) *Pool {
	return &Pool{options: &options}
}

// Begin lays out the pool from segs and allocates its buffers. Descriptors
// may arrive in any order; segments are placed by ascending cell size, with
// equal sizes kept in input order. Begin runs at most once per pool: a
// second call fails with ErrInitialized and leaves the pool untouched. Any
// other failure tears the pool back down to its uninitialized state.
func (p *Pool) Begin(segs []Segment) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return ErrInitialized
	}
	if len(segs) == 0 || len(segs) > MaxSegments {
		return ErrSegmentCount
	}

	p.initialized = true
	p.segments = make([]segment, len(segs))

	// place descriptors smallest first, first match wins on ties, so
	// duplicate sizes land adjacently and escalate into each other.
	var bufferSize, maskSize int
	placed := make([]bool, len(segs))

	for i := range p.segments {
		ix := -1
		for j, sg := range segs {
			if placed[j] {
				continue
			}
			if sg.Size == 0 {
				p.clean()
				return ErrSegmentSize
			}
			if ix < 0 || sg.Size < segs[ix].Size {
				ix = j
			}
		}
		placed[ix] = true

		s := &p.segments[i]
		s.sizeBytes = int(segs[ix].Size) * SegmentStep
		s.cellCount = int(segs[ix].Count)
		if s.sizeBytes > MaxCellSize {
			p.clean()
			return ErrSegmentSize
		}
		if s.cellCount > maxSegmentCells {
			p.clean()
			return ErrSegmentCells
		}
		s.groups = (s.cellCount + groupBits - 1) / groupBits
		s.base = bufferSize
		s.maskBase = maskSize
		s.initDivider()

		bufferSize += s.sizeBytes * s.cellCount
		maskSize += s.groups + 1
	}

	p.maxSize = p.segments[len(p.segments)-1].sizeBytes
	p.buffer = make([]byte, bufferSize)
	p.mask = make([]uint32, maskSize)

	// size lookup table: rounded request steps -> first fitting segment.
	p.lookup = make([]int16, p.maxSize>>stepShift)
	for i := range p.lookup {
		p.lookup[i] = p.lookupSegment((i + 1) << stepShift)
	}

	// prime the masks: nonexistent higher groups and the trailing cells
	// of the last group start occupied so they are never handed out.
	for i := range p.segments {
		s := &p.segments[i]
		p.mask[s.maskBase] = prepareMask(s.groups)
		p.mask[s.maskBase+s.groups] = prepareMask(s.cellCount % groupBits)
	}

	if p.options.EnableStats {
		p.stats = &stats{
			segAllocs: make([]uint64, len(p.segments)),
			maxUsed:   make([]int, len(p.segments)),
		}
	}
	return nil
}

// lookupSegment returns the first segment whose cells hold size bytes, or
// -1 if none does.
func (p *Pool) lookupSegment(size int) int16 {
	for i := range p.segments {
		if p.segments[i].sizeBytes >= size {
			return int16(i)
		}
	}
	return -1
}

// Clean releases the buffers and resets the pool to its uninitialized
// state. Safe to call at any time, any number of times.
func (p *Pool) Clean() {
	p.mu.Lock()
	p.clean()
	p.mu.Unlock()
}

func (p *Pool) clean() {
	p.initialized = false
	p.maxSize = 0
	p.segments = nil
	p.lookup = nil
	p.buffer = nil
	p.mask = nil
	p.stats = nil
}
