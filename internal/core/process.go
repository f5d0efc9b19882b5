package core

import (
	"fmt"
	"math"
)

const (
	MinPriority = -20
	MaxPriority = 20
)

// Process is a synthetic job submitted for one simulation run.
// Lower Priority values are scheduled first.
type Process struct {
	ID       string
	Arrival  float64
	Burst    float64
	Priority float64
}

// ValidationError reports a malformed input value before the engine runs.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Validate checks the process against the rules every run relies on.
func (p Process) Validate() error {
	if p.ID == "" {
		return &ValidationError{Field: "process_id", Reason: "process id cannot be empty"}
	}
	for _, f := range []struct {
		field string
		value float64
	}{{"arrival_time", p.Arrival}, {"burst_time", p.Burst}, {"priority", p.Priority}} {
		if math.IsNaN(f.value) || math.IsInf(f.value, 0) {
			return &ValidationError{Field: f.field, Reason: fmt.Sprintf("process %s: %v is not a finite number", p.ID, f.value)}
		}
	}
	if p.Burst <= 0 {
		return &ValidationError{Field: "burst_time", Reason: fmt.Sprintf("process %s: burst time must be greater than 0", p.ID)}
	}
	if p.Arrival < 0 {
		return &ValidationError{Field: "arrival_time", Reason: fmt.Sprintf("process %s: arrival time cannot be negative", p.ID)}
	}
	if p.Priority < MinPriority || p.Priority > MaxPriority {
		return &ValidationError{Field: "priority", Reason: fmt.Sprintf("process %s: priority must be between %d and %d", p.ID, MinPriority, MaxPriority)}
	}
	return nil
}

// Segment is one contiguous interval of CPU time given to a process.
type Segment struct {
	ProcessID string
	Start     float64
	Duration  float64
}

func (s Segment) End() float64 {
	return s.Start + s.Duration
}

// Completion is recorded once per process, when its remaining time reaches zero.
type Completion struct {
	ProcessID  string
	Arrival    float64
	Burst      float64
	Completion float64
	Priority   float64
}

func (c Completion) Waiting() float64 {
	return c.Completion - c.Arrival - c.Burst
}

func (c Completion) Turnaround() float64 {
	return c.Completion - c.Arrival
}
