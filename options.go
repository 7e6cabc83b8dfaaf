package mempool

// Options is the configuration of Pool.
type Options struct {
	// EnableStats turns on the allocation counters reported by Stats and
	// DumpStats. Off by default, counting costs a few writes per Alloc.
	EnableStats bool
}

// DefaultOptions
var DefaultOptions = Options{
	EnableStats: false,
}
