package mempool

// Alloc returns a cell holding at least size bytes, or nil when size is out
// of range or every segment large enough is full. The slice spans the whole
// cell; its contents are whatever the previous occupant left behind.
func (p *Pool) Alloc(size int) []byte {
	p.mu.Lock()
	b := p.alloc(size)
	p.mu.Unlock()
	return b
}

func (p *Pool) alloc(size int) []byte {
	if !p.initialized || size <= 0 || size > p.maxSize {
		p.countFail()
		return nil
	}
	sg := p.lookup[((size+SegmentStep-1)>>stepShift)-1]
	if sg < 0 {
		p.countFail()
		return nil
	}
	return p.allocSegment(int(sg))
}

func (p *Pool) allocSegment(sg int) []byte {
	s := &p.segments[sg]

	if *p.summary(s) == fullGroup {
		// segment full, escalate to the next size class.
		if sg < len(p.segments)-1 {
			return p.allocSegment(sg + 1)
		}
		p.countFail()
		return nil
	}

	g := firstFree(*p.summary(s))
	if g >= s.groups {
		p.countFail()
		return nil
	}

	word := p.group(s, g)
	cell := firstFree(*word)
	*word |= 1 << cell
	if *word == fullGroup {
		*p.summary(s) |= 1 << g
	}

	index := g*groupBits + cell
	p.countAlloc(sg, index)

	off := s.base + index*s.sizeBytes
	return p.buffer[off : off+s.sizeBytes : off+s.sizeBytes]
}

// Release hands b's cell back to its segment. b must have been returned by
// Alloc on this pool; nil slices, foreign addresses and in-range addresses
// that are not a cell boundary are ignored. Nothing guards against
// releasing a cell twice while someone still writes through the first
// slice, that contract stays with the caller.
func (p *Pool) Release(b []byte) {
	p.mu.Lock()
	p.release(b)
	p.mu.Unlock()
}

func (p *Pool) release(b []byte) {
	if !p.initialized || len(b) == 0 {
		return
	}
	off, ok := p.offsetOf(&b[0])
	if !ok {
		return
	}

	// rightmost segment whose base is not past the address.
	sg := -1
	l, r := 0, len(p.segments)-1
	for l <= r {
		m := (l + r) >> 1
		if off < p.segments[m].base {
			r = m - 1
		} else {
			sg = m
			l = m + 1
		}
	}
	if sg < 0 {
		return
	}

	s := &p.segments[sg]
	offset := off - s.base
	index := s.cellIndex(offset)
	if index*s.sizeBytes != offset {
		// interior address, not a cell boundary
		return
	}

	g, cell := index>>5, index&(groupBits-1)
	*p.summary(s) &^= 1 << g
	*p.group(s, g) &^= 1 << cell
}
