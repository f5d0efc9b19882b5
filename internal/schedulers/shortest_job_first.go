package schedulers

import "github.com/taniabhat/OS-CA2-CPU-Scheduling-Simulator/internal/core"

// ShortestJobFirst dispatches the ready process with the least remaining time.
// When Preemptive is set, an arrival with strictly less work than the running
// process has left takes the CPU at the instant it arrives.
type ShortestJobFirst struct {
	Preemptive bool
}

func (s ShortestJobFirst) Variant() Variant {
	if s.Preemptive {
		return VariantSJFPreemptive
	}
	return VariantSJFNonPreemptive
}

func (s ShortestJobFirst) Name() string {
	if s.Preemptive {
		return "Shortest-job-first (preemptive)"
	}
	return "Shortest-job-first"
}

func (s ShortestJobFirst) IsPreemptive() bool { return s.Preemptive }

func (ShortestJobFirst) validate() error { return nil }

func (s ShortestJobFirst) schedule(sim *simulation) error {
	if s.Preemptive {
		return sim.runPreemptive(shortestRemaining, true)
	}
	return sim.runToCompletion(shortestRemaining)
}

func shortestRemaining(task *core.Task) float64 {
	return task.Remaining()
}
