package schedulers

import "github.com/taniabhat/OS-CA2-CPU-Scheduling-Simulator/internal/core"

// FirstComeFirstServe runs processes to completion in arrival order; equal
// arrivals keep their submission order.
type FirstComeFirstServe struct{}

func (FirstComeFirstServe) Variant() Variant { return VariantFCFS }

func (FirstComeFirstServe) Name() string { return "First-come, first-serve" }

func (FirstComeFirstServe) IsPreemptive() bool { return false }

func (FirstComeFirstServe) validate() error { return nil }

func (FirstComeFirstServe) schedule(sim *simulation) error {
	return sim.runToCompletion(func(task *core.Task) float64 {
		return task.Arrival
	})
}
