package main

import (
	"flag"
	"fmt"
	"runtime"
	"runtime/debug"
	"time"

	"github.com/xgzlucario/mempool"
)

var previousPause time.Duration

func gcPause() time.Duration {
	runtime.GC()
	var stats debug.GCStats
	debug.ReadGCStats(&stats)
	pause := stats.PauseTotal - previousPause
	previousPause = stats.PauseTotal
	return pause
}

func main() {
	alloc := ""
	ops := 0
	flag.StringVar(&alloc, "alloc", "mempool", "allocator to bench (mempool/heap).")
	flag.IntVar(&ops, "ops", 2000*10000, "number of alloc/release pairs")
	flag.Parse()

	fmt.Println(alloc)
	fmt.Println("ops:", ops)

	const window = 512
	live := make([][]byte, window)

	start := time.Now()
	switch alloc {
	case "mempool":
		p := mempool.New(mempool.DefaultOptions)
		if err := p.Begin([]mempool.Segment{
			{Count: 1024, Size: 1},
			{Count: 1024, Size: 4},
			{Count: 1024, Size: 16},
		}); err != nil {
			panic(err)
		}
		for i := 0; i < ops; i++ {
			slot := i % window
			if live[slot] != nil {
				p.Release(live[slot])
			}
			live[slot] = p.Alloc(48)
		}
	case "heap":
		for i := 0; i < ops; i++ {
			live[i%window] = make([]byte, 48)
		}
	}
	cost := time.Since(start)

	var mem runtime.MemStats
	var stat debug.GCStats

	runtime.ReadMemStats(&mem)
	debug.ReadGCStats(&stat)

	fmt.Println("cost:", cost)
	fmt.Printf("alloced: %.0f mb\n", float64(mem.TotalAlloc)/1024/1024)
	fmt.Println("gc:", stat.NumGC)
	fmt.Println("gcpause:", gcPause())
}
