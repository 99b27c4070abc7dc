package profiler

import (
	"log"
	"runtime"
	"time"
)

// Profiler tracks tick rate, behavior dispatch timing, and memory statistics.
// Outputs stats to the log at a configurable interval.
type Profiler struct {
	tickCount      int
	lastTime       time.Time
	updateInterval time.Duration

	dispatchTotal time.Duration
	dispatchMax   time.Duration

	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64
}

// NewProfiler creates a new Profiler with default settings.
// Update interval defaults to 1 second.
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler() *Profiler {
	return &Profiler{
		tickCount:      0,
		lastTime:       time.Now(),
		updateInterval: time.Second,
		memStats:       runtime.MemStats{},
	}
}

// Tick should be called once per engine tick with the time spent dispatching
// scene behaviors that tick. Logs performance statistics when the update
// interval has elapsed. Statistics include: TPS, dispatch timing, heap usage,
// allocation rate, GC count/pause times, total memory.
//
// Parameters:
//   - dispatch: the wall time spent ticking scenes this cycle
//
// Returns:
//   - bool: true if stats were logged this tick, false otherwise
func (p *Profiler) Tick(dispatch time.Duration) bool {
	p.tickCount++
	p.dispatchTotal += dispatch
	if dispatch > p.dispatchMax {
		p.dispatchMax = dispatch
	}

	currentTime := time.Now()
	elapsed := currentTime.Sub(p.lastTime)

	if elapsed >= p.updateInterval {
		tps := float64(p.tickCount) / elapsed.Seconds()
		avgDispatchUs := p.dispatchTotal.Microseconds() / int64(p.tickCount)
		maxDispatchUs := p.dispatchMax.Microseconds()

		runtime.ReadMemStats(&p.memStats)
		// Alloc: Bytes of allocated heap objects (live memory)
		// TotalAlloc: Cumulative bytes allocated for heap objects (increases forever, tracks churn)
		// Sys: Total bytes of memory obtained from the OS (actual process footprint)
		allocMB := float64(p.memStats.Alloc) / 1024 / 1024
		sysMB := float64(p.memStats.Sys) / 1024 / 1024

		// Calculate allocation rate (MB/sec)
		allocDelta := p.memStats.TotalAlloc - p.lastTotalAlloc
		allocRateMB := float64(allocDelta) / 1024 / 1024 / elapsed.Seconds()

		// Calculate GC pause stats (last pause and max recent pause)
		gcCount := p.memStats.NumGC
		var lastPauseUs, maxPauseUs uint64
		if gcCount > 0 {
			// PauseNs is a circular buffer of last 256 GC pauses
			lastPauseUs = p.memStats.PauseNs[(gcCount-1)%256] / 1000

			// Find max pause since last tick
			startIdx := p.lastGCCount
			if gcCount-startIdx > 256 {
				startIdx = gcCount - 256
			}
			for i := startIdx; i < gcCount; i++ {
				pause := p.memStats.PauseNs[i%256] / 1000
				if pause > maxPauseUs {
					maxPauseUs = pause
				}
			}
		}

		log.Printf("[Profiler] TPS: %.2f | Dispatch: avg %d µs, max %d µs | Heap: %.2f MB | Alloc Rate: %.2f MB/s | GC: %d (last: %d µs, max: %d µs) | Sys: %.2f MB",
			tps, avgDispatchUs, maxDispatchUs, allocMB, allocRateMB, gcCount, lastPauseUs, maxPauseUs, sysMB)

		p.tickCount = 0
		p.dispatchTotal = 0
		p.dispatchMax = 0
		p.lastTime = currentTime
		p.lastGCCount = gcCount
		p.lastTotalAlloc = p.memStats.TotalAlloc
		return true
	}

	return false
}
