package main

import (
	"fmt"
	"os"

	"github.com/xgzlucario/mempool"
)

func main() {
	p := mempool.New(mempool.Options{EnableStats: true})
	err := p.Begin([]mempool.Segment{
		{Count: 10, Size: 1}, // 10 cells of 4 bytes
		{Count: 5, Size: 2},  // 5 cells of 8 bytes
	})
	if err != nil {
		fmt.Println("begin:", err)
		return
	}
	defer p.Clean()

	a := p.Alloc(4)
	copy(a, "abcd")

	b := p.Alloc(7) // rounds up to an 8-byte cell
	copy(b, "0123456")

	fmt.Println("payload:")
	p.DumpBuffer(os.Stdout, 16)

	fmt.Println("bitmap:")
	p.DumpMask(os.Stdout, 2)

	fmt.Println("lookup:")
	p.DumpLookup(os.Stdout, 10)

	p.Release(a)
	p.Release(b)

	// typed view over a pool cell.
	nums, _ := mempool.Make[uint16](p, 4)
	for i := range nums {
		nums[i] = uint16(i * i)
	}
	fmt.Println("nums:", nums)
	mempool.Drop(p, nums)

	p.DumpStats(os.Stdout)
}
