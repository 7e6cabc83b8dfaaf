package mempool

import (
	"fmt"
	"io"
	"strconv"

	"github.com/zeebo/xxh3"
)

// DumpBuffer writes every payload byte to w in the given base (2..36),
// space separated.
func (p *Pool) DumpBuffer(w io.Writer, base int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	buf := make([]byte, 0, len(p.buffer)*3)
	for _, v := range p.buffer {
		buf = strconv.AppendUint(buf, uint64(v), base)
		buf = append(buf, ' ')
	}
	w.Write(append(buf, '\n'))
}

// DumpMask writes every bitmap word to w in the given base.
func (p *Pool) DumpMask(w io.Writer, base int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	buf := make([]byte, 0, len(p.mask)*9)
	for _, v := range p.mask {
		buf = strconv.AppendUint(buf, uint64(v), base)
		buf = append(buf, ' ')
	}
	w.Write(append(buf, '\n'))
}

// DumpLookup writes the size lookup table to w in the given base, -1 marks
// a size no segment holds.
func (p *Pool) DumpLookup(w io.Writer, base int) {
	p.mu.Lock()
	defer p.mu.Unlock()

	buf := make([]byte, 0, len(p.lookup)*3)
	for _, v := range p.lookup {
		buf = strconv.AppendInt(buf, int64(v), base)
		buf = append(buf, ' ')
	}
	w.Write(append(buf, '\n'))
}

// DumpStats writes the allocation counters to w, or a notice when the pool
// was built without Options.EnableStats.
func (p *Pool) DumpStats(w io.Writer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.stats == nil {
		fmt.Fprintln(w, "stats not available, set Options.EnableStats to collect them")
		return
	}
	fmt.Fprintf(w, "total allocs: %d\n", p.stats.allocs)
	fmt.Fprintf(w, "failed allocs: %d\n", p.stats.failed)
	for i := range p.segments {
		fmt.Fprintf(w, "segment %d: max cells used = %d, allocs = %d\n",
			i, p.stats.maxUsed[i], p.stats.segAllocs[i])
	}
}

// Fingerprint returns the xxh3 hash of the payload buffer, handy for
// spotting cell mutation between two dumps.
func (p *Pool) Fingerprint() uint64 {
	p.mu.Lock()
	defer p.mu.Unlock()
	return xxh3.Hash(p.buffer)
}
