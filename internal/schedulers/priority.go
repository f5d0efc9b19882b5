package schedulers

import "github.com/taniabhat/OS-CA2-CPU-Scheduling-Simulator/internal/core"

// Priority dispatches the ready process with the smallest priority value.
// When Preemptive is set, an arrival with a strictly smaller value takes the
// CPU at the instant it arrives.
type Priority struct {
	Preemptive bool
}

func (p Priority) Variant() Variant {
	if p.Preemptive {
		return VariantPriorityPreemptive
	}
	return VariantPriorityNonPreemptive
}

func (p Priority) Name() string {
	if p.Preemptive {
		return "Priority (preemptive)"
	}
	return "Priority"
}

func (p Priority) IsPreemptive() bool { return p.Preemptive }

func (Priority) validate() error { return nil }

func (p Priority) schedule(sim *simulation) error {
	if p.Preemptive {
		return sim.runPreemptive(highestPriority, false)
	}
	return sim.runToCompletion(highestPriority)
}

func highestPriority(task *core.Task) float64 {
	return task.Priority
}
