package mempool

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStats(t *testing.T) {
	assert := assert.New(t)

	p := New(Options{EnableStats: true})
	assert.Nil(p.Begin([]Segment{{Count: 4, Size: 1}, {Count: 2, Size: 2}}))

	a := p.Alloc(4)
	b := p.Alloc(4)
	p.Alloc(8)
	p.Alloc(MaxCellSize + 1)

	stat, ok := p.Stats()
	assert.True(ok)
	assert.Equal(uint64(3), stat.Allocs)
	assert.Equal(uint64(1), stat.Failed)

	assert.Equal(4, stat.Segments[0].SizeBytes)
	assert.Equal(4, stat.Segments[0].CellCount)
	assert.Equal(uint64(2), stat.Segments[0].Allocs)
	assert.Equal(2, stat.Segments[0].MaxCellsUsed)
	assert.Equal(uint64(1), stat.Segments[1].Allocs)
	assert.Equal(1, stat.Segments[1].MaxCellsUsed)

	// the high-water mark survives releases.
	p.Release(a)
	p.Release(b)
	stat, _ = p.Stats()
	assert.Equal(2, stat.Segments[0].MaxCellsUsed)

	// reallocating a freed cell does not raise it.
	p.Alloc(4)
	stat, _ = p.Stats()
	assert.Equal(2, stat.Segments[0].MaxCellsUsed)
	assert.Equal(uint64(4), stat.Allocs)
}

func TestStatsDisabled(t *testing.T) {
	assert := assert.New(t)

	p := New(DefaultOptions)
	assert.Nil(p.Begin([]Segment{{Count: 4, Size: 1}}))
	p.Alloc(4)

	_, ok := p.Stats()
	assert.False(ok)
}

func TestStatsJSON(t *testing.T) {
	assert := assert.New(t)

	p := New(Options{EnableStats: true})
	assert.Nil(p.Begin([]Segment{{Count: 4, Size: 1}}))
	p.Alloc(4)

	stat, _ := p.Stats()
	data, err := stat.MarshalJSON()
	assert.Nil(err)

	s := string(data)
	assert.True(strings.Contains(s, `"Allocs":1`))
	assert.True(strings.Contains(s, `"Failed":0`))
	assert.True(strings.Contains(s, `"SizeBytes":4`))
}
