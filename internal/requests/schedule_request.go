package requests

import (
	"math"
	"strings"

	"github.com/taniabhat/OS-CA2-CPU-Scheduling-Simulator/internal/core"
)

type Job struct {
	ProcessId   string  `json:"process_id"`
	ArrivalTime float64 `json:"arrival_time"`
	BurstTime   float64 `json:"burst_time"`
	Priority    float64 `json:"priority"`
}

func (j Job) Process() core.Process {
	return core.Process{
		ID:       strings.TrimSpace(j.ProcessId),
		Arrival:  j.ArrivalTime,
		Burst:    j.BurstTime,
		Priority: j.Priority,
	}
}

type ScheduleRequests struct {
	Algorithm  string `json:"algorithm"`
	Preemptive bool   `json:"preemptive"`
	// Quantum is only read for round robin; nil means "use the configured default".
	Quantum *float64 `json:"quantum,omitempty"`
	Jobs    []Job    `json:"jobs"`
}

// Validate rejects requests the engine would refuse, reporting the first
// offending field.
func (r *ScheduleRequests) Validate() error {
	if len(r.Jobs) == 0 {
		return &core.ValidationError{Field: "jobs", Reason: "no processes to simulate"}
	}
	for _, job := range r.Jobs {
		if err := job.Process().Validate(); err != nil {
			return err
		}
	}
	if r.Quantum != nil && (!(*r.Quantum > 0) || math.IsInf(*r.Quantum, 1)) {
		return &core.ValidationError{Field: "quantum", Reason: "time quantum must be a finite number greater than 0"}
	}
	return nil
}

func (r *ScheduleRequests) QuantumOr(fallback float64) float64 {
	if r.Quantum == nil {
		return fallback
	}
	return *r.Quantum
}
