package main

import (
	"runtime"
	"time"

	"github.com/rawbytedev/strbuf"
)

type operation struct {
	name   string
	budget float64 // allocations per run before a warning is logged
	fn     func()
}

// operations builds the workload. The buffers are shared by the closures so
// that every run mutates the same storage, as firmware code would.
func operations() []operation {
	var (
		line  strbuf.String64
		pinA  strbuf.Fixed[[5]byte]
		pinB  strbuf.Fixed[[5]byte]
		frame = make([]byte, 96)
		field = strbuf.NewView(frame[16:48])
	)
	pinB.CopyAndPad("4711")
	return []operation{
		{"printf", 2, func() { line.Printf("T:%d /%d B:%d", 210, 215, 60) }},
		{"catf", 2, func() {
			line.Copy("X:")
			line.Catf("%d Y:%d", 10, 20)
		}},
		{"copy", 0, func() { line.Copy("extruder temperature reading") }},
		{"cat", 0, func() {
			line.Clear()
			line.Cat("heater ")
			line.Cat("fault ")
			line.Cat("on tool 0")
		}},
		{"cat-byte", 0, func() {
			line.Clear()
			for i := 0; i < 8; i++ {
				line.CatByte('0' + byte(i))
			}
		}},
		{"prepend", 0, func() {
			line.Copy("heater fault")
			line.Prepend("Error: ")
		}},
		{"strip", 0, func() {
			line.Copy("padded value      ")
			line.StripTrailingSpaces()
		}},
		{"view-copy", 0, func() { field.Copy("a field inside a larger frame buffer") }},
		{"copy-and-pad", 0, func() { pinA.CopyAndPad("4711") }},
		{"constant-time-equal", 0, func() { _ = pinA.ConstantTimeEqual(&pinB) }},
	}
}

type result struct {
	allocs  float64
	nsPerOp int64
}

// measure mirrors testing.AllocsPerRun: one warm-up call, then the mean
// mallocs over runs with GOMAXPROCS pinned to 1.
func measure(fn func(), runs int) result {
	defer runtime.GOMAXPROCS(runtime.GOMAXPROCS(1))
	fn()

	var before, after runtime.MemStats
	runtime.ReadMemStats(&before)
	start := time.Now()
	for i := 0; i < runs; i++ {
		fn()
	}
	elapsed := time.Since(start)
	runtime.ReadMemStats(&after)

	return result{
		allocs:  float64(after.Mallocs-before.Mallocs) / float64(runs),
		nsPerOp: elapsed.Nanoseconds() / int64(runs),
	}
}
