// Package timeline compacts execution traces produced by preemptive runs.
package timeline

import (
	"math"

	"github.com/taniabhat/OS-CA2-CPU-Scheduling-Simulator/internal/core"
)

// Merge joins each pair of back-to-back segments of the same process into a
// single segment. Adjacency is judged on the unmerged ends, and a gap within
// core.Residue of the clock counts as none. The input is left untouched.
func Merge(segments []core.Segment) []core.Segment {
	merged := make([]core.Segment, 0, len(segments))
	for i, segment := range segments {
		if n := len(merged); n > 0 {
			last := &merged[n-1]
			prevEnd := segments[i-1].End()
			if last.ProcessID == segment.ProcessID && math.Abs(segment.Start-prevEnd) <= core.Residue*math.Max(1, prevEnd) {
				last.Duration += segment.Duration
				continue
			}
		}
		merged = append(merged, segment)
	}
	return merged
}

// Span returns the first start and the last end of a trace.
func Span(segments []core.Segment) (start, end float64) {
	if len(segments) == 0 {
		return 0, 0
	}
	return segments[0].Start, segments[len(segments)-1].End()
}

// TotalByProcess sums segment durations per process.
func TotalByProcess(segments []core.Segment) map[string]float64 {
	totals := make(map[string]float64)
	for _, segment := range segments {
		totals[segment.ProcessID] += segment.Duration
	}
	return totals
}
