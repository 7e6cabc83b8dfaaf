package mempool

import "github.com/bytedance/sonic"

// SegmentStats are the counters of one segment.
type SegmentStats struct {
	SizeBytes    int
	CellCount    int
	Allocs       uint64
	MaxCellsUsed int // high-water mark of live cells
}

// PoolStats is a snapshot of the pool counters.
type PoolStats struct {
	Allocs   uint64
	Failed   uint64
	Segments []SegmentStats
}

type stats struct {
	allocs    uint64
	failed    uint64
	segAllocs []uint64
	maxUsed   []int
}

// Stats returns a snapshot of the counters. ok is false when the pool was
// built without Options.EnableStats.
func (p *Pool) Stats() (stat PoolStats, ok bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stats == nil {
		return
	}
	stat.Allocs = p.stats.allocs
	stat.Failed = p.stats.failed
	stat.Segments = make([]SegmentStats, len(p.segments))
	for i := range p.segments {
		stat.Segments[i] = SegmentStats{
			SizeBytes:    p.segments[i].sizeBytes,
			CellCount:    p.segments[i].cellCount,
			Allocs:       p.stats.segAllocs[i],
			MaxCellsUsed: p.stats.maxUsed[i],
		}
	}
	return stat, true
}

// MarshalJSON
func (s PoolStats) MarshalJSON() ([]byte, error) {
	type poolStatsJSON PoolStats
	return sonic.Marshal(poolStatsJSON(s))
}

func (p *Pool) countAlloc(sg, index int) {
	if p.stats == nil {
		return
	}
	p.stats.allocs++
	p.stats.segAllocs[sg]++
	// lowest-free selection means cells 0..index are live right now.
	if used := index + 1; used > p.stats.maxUsed[sg] {
		p.stats.maxUsed[sg] = used
	}
}

func (p *Pool) countFail() {
	if p.stats == nil {
		return
	}
	p.stats.failed++
}
