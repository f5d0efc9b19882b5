package schedulers

import (
	"fmt"
	"math"
	"strconv"
)

// RoundRobin serves a FIFO ready queue, giving each dispatch at most Quantum
// time units. Processes that arrive during a slice join the queue before the
// interrupted process is requeued.
type RoundRobin struct {
	Quantum float64
}

func (RoundRobin) Variant() Variant { return VariantRoundRobin }

func (r RoundRobin) Name() string {
	return "Round-robin (quantum " + strconv.FormatFloat(r.Quantum, 'f', -1, 64) + ")"
}

func (RoundRobin) IsPreemptive() bool { return true }

func (r RoundRobin) validate() error {
	if !(r.Quantum > 0) || math.IsInf(r.Quantum, 1) {
		return fmt.Errorf("%w: round robin time quantum must be a finite number greater than 0, got %v", ErrInvalidParameter, r.Quantum)
	}
	return nil
}

func (r RoundRobin) schedule(sim *simulation) error {
	for !sim.done() {
		if err := sim.admit(); err != nil {
			return err
		}
		if len(sim.ready) == 0 {
			if err := sim.idle(); err != nil {
				return err
			}
			continue
		}

		task := sim.take(0)
		if err := task.Dispatch(); err != nil {
			return err
		}
		// the cpu trims the quantum to whatever the task has left
		segment, err := sim.cpu.Execute(task, r.Quantum)
		if err != nil {
			return err
		}

		// arrivals during the slice go ahead of the requeued process
		if err := sim.admit(); err != nil {
			return err
		}
		if task.Remaining() == 0 {
			if err := sim.complete(task, segment); err != nil {
				return err
			}
			continue
		}
		if err := task.Preempt(); err != nil {
			return err
		}
		sim.ready = append(sim.ready, task)
	}
	return nil
}
