package mempool

import "unsafe"

// offsetOf maps a pointer into the pool buffer to its byte offset.
func (p *Pool) offsetOf(ptr *byte) (int, bool) {
	base := uintptr(unsafe.Pointer(unsafe.SliceData(p.buffer)))
	a := uintptr(unsafe.Pointer(ptr))
	if a < base || a >= base+uintptr(len(p.buffer)) {
		return 0, false
	}
	return int(a - base), true
}
