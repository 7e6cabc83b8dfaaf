package mempool

import "unsafe"

// Make allocates n values of T from p and returns them as a slice, or
// nil, false when the pool cannot hold n*sizeof(T) bytes. The memory must
// be handed back with Drop and not used past it.
func Make[T any](p *Pool, n int) ([]T, bool) {
	var zero T
	b := p.Alloc(n * int(unsafe.Sizeof(zero)))
	if b == nil {
		return nil, false
	}
	return unsafe.Slice((*T)(unsafe.Pointer(unsafe.SliceData(b))), n), true
}

// Drop releases a slice obtained from Make.
func Drop[T any](p *Pool, s []T) {
	if cap(s) == 0 {
		return
	}
	b := unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), 1)
	p.Release(b)
}
