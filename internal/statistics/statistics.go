// Package statistics derives waiting, turnaround and response times from a
// finished run.
package statistics

import (
	"errors"
	"fmt"

	"github.com/taniabhat/OS-CA2-CPU-Scheduling-Simulator/internal/core"
)

var ErrNoCompletions = errors.New("no completed processes")

type ProcessStats struct {
	ProcessID  string
	Arrival    float64
	Burst      float64
	Priority   float64
	Completion float64
	Waiting    float64
	Turnaround float64
	// Response is the delay between arrival and first dispatch. It is only
	// set by WithResponse.
	Response float64
}

// Summarize computes per-process waiting and turnaround times in completion
// order, plus the average waiting time.
func Summarize(completions []core.Completion) ([]ProcessStats, float64, error) {
	if len(completions) == 0 {
		return nil, 0, ErrNoCompletions
	}

	stats := make([]ProcessStats, 0, len(completions))
	var waitingSum float64
	for _, c := range completions {
		s := ProcessStats{
			ProcessID:  c.ProcessID,
			Arrival:    c.Arrival,
			Burst:      c.Burst,
			Priority:   c.Priority,
			Completion: c.Completion,
			Waiting:    c.Waiting(),
			Turnaround: c.Turnaround(),
		}
		waitingSum += s.Waiting
		stats = append(stats, s)
	}
	return stats, waitingSum / float64(len(stats)), nil
}

// WithResponse fills Response from the first segment of each process.
func WithResponse(stats []ProcessStats, segments []core.Segment) ([]ProcessStats, error) {
	first := FirstDispatch(segments)
	out := make([]ProcessStats, len(stats))
	for i, s := range stats {
		start, ok := first[s.ProcessID]
		if !ok {
			return nil, fmt.Errorf("process %s never ran", s.ProcessID)
		}
		s.Response = start - s.Arrival
		out[i] = s
	}
	return out, nil
}

// FirstDispatch maps each process to the start of its first segment.
func FirstDispatch(segments []core.Segment) map[string]float64 {
	first := make(map[string]float64)
	for _, segment := range segments {
		if _, ok := first[segment.ProcessID]; !ok {
			first[segment.ProcessID] = segment.Start
		}
	}
	return first
}

func CalculateAverage(stats []ProcessStats) (averageWaitingTime, averageResponseTime, averageTurnAroundTime float64) {
	if len(stats) == 0 {
		return
	}
	var waitingTimeSum float64
	var responseTimeSum float64
	var turnAroundTimeSum float64

	for _, s := range stats {
		waitingTimeSum += s.Waiting
		responseTimeSum += s.Response
		turnAroundTimeSum += s.Turnaround
	}

	count := float64(len(stats))

	averageWaitingTime = waitingTimeSum / count
	averageResponseTime = responseTimeSum / count
	averageTurnAroundTime = turnAroundTimeSum / count
	return
}
