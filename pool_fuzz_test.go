package mempool

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func FuzzAllocRelease(f *testing.F) {
	p := New(DefaultOptions)
	if err := p.Begin([]Segment{
		{Count: 16, Size: 1},
		{Count: 8, Size: 3},
		{Count: 4, Size: 16},
	}); err != nil {
		f.Fatal(err)
	}
	var live [][]byte

	f.Add(uint16(4), false)
	f.Add(uint16(64), true)

	f.Fuzz(func(t *testing.T, size uint16, drop bool) {
		assert := assert.New(t)

		if drop && len(live) > 0 {
			p.Release(live[0])
			live = live[1:]
			return
		}

		b := p.Alloc(int(size))
		if size == 0 || size > MaxCellSize {
			assert.Nil(b)
			return
		}
		if b == nil {
			// exhausted, make room
			if len(live) > 0 {
				p.Release(live[0])
				live = live[1:]
			}
			return
		}
		assert.GreaterOrEqual(len(b), int(size))

		// no live cell aliases another.
		for _, o := range live {
			assert.NotSame(&o[0], &b[0])
		}
		live = append(live, b)
	})
}
