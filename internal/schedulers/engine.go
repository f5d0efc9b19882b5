package schedulers

import (
	"fmt"
	"math"
	"sort"

	"github.com/taniabhat/OS-CA2-CPU-Scheduling-Simulator/internal/core"
)

// Result is the raw output of one engine run. Timeline is unmerged.
type Result struct {
	Variant     Variant
	Timeline    []core.Segment
	Completions []core.Completion
	Metric      core.CpuMetric
}

// Run selects the algorithm for discipline and executes it over processes.
func Run(discipline Discipline, preemptive bool, processes []core.Process, quantum float64) (Result, error) {
	algorithm, err := Select(discipline, preemptive, quantum)
	if err != nil {
		return Result{}, err
	}
	return Execute(algorithm, processes)
}

// Execute runs algorithm over private copies of processes. The same input
// always produces the same Result.
func Execute(algorithm Algorithm, processes []core.Process) (Result, error) {
	if algorithm == nil {
		return Result{}, fmt.Errorf("%w: no algorithm selected", ErrInvalidParameter)
	}
	if len(processes) == 0 {
		return Result{}, fmt.Errorf("%w: no processes to simulate", ErrEmptyInput)
	}
	if err := algorithm.validate(); err != nil {
		return Result{}, err
	}
	for _, p := range processes {
		if err := p.Validate(); err != nil {
			return Result{}, fmt.Errorf("%w: %w", ErrInvalidParameter, err)
		}
	}

	sim := newSimulation(processes)
	if err := algorithm.schedule(sim); err != nil {
		return Result{}, fmt.Errorf("%s: %w", algorithm.Name(), err)
	}
	return Result{
		Variant:     algorithm.Variant(),
		Timeline:    sim.cpu.Timeline(),
		Completions: sim.completions,
		Metric:      sim.cpu.Metric(),
	}, nil
}

// rankFunc orders ready tasks; the lowest rank is dispatched first.
type rankFunc func(task *core.Task) float64

type simulation struct {
	cpu *core.CPU
	// pending holds tasks that have not arrived yet, sorted by arrival.
	pending     []*core.Task
	ready       []*core.Task
	completions []core.Completion
}

func newSimulation(processes []core.Process) *simulation {
	tasks := make([]*core.Task, len(processes))
	for i, p := range processes {
		tasks[i] = core.NewTask(p, i)
	}
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].Arrival < tasks[j].Arrival
	})
	return &simulation{
		cpu:         core.NewCPU(),
		pending:     tasks,
		ready:       make([]*core.Task, 0, len(tasks)),
		completions: make([]core.Completion, 0, len(tasks)),
	}
}

func (s *simulation) done() bool {
	return len(s.pending) == 0 && len(s.ready) == 0
}

// admit appends every task that has arrived by now to the ready set, in
// arrival order. An arrival that the clock misses by a rounding error pulls
// the clock forward to it.
func (s *simulation) admit() error {
	now := s.cpu.Now()
	for len(s.pending) > 0 {
		task := s.pending[0]
		if task.Arrival > now {
			if task.Arrival-now > core.Residue*math.Max(1, now) {
				break
			}
			if err := s.cpu.IdleUntil(task.Arrival); err != nil {
				return err
			}
			now = task.Arrival
		}
		s.pending = s.pending[1:]
		if err := task.Arrive(); err != nil {
			return err
		}
		s.ready = append(s.ready, task)
	}
	return nil
}

// idle jumps the clock to the next arrival.
func (s *simulation) idle() error {
	if len(s.pending) == 0 {
		return fmt.Errorf("cpu idle with nothing left to arrive")
	}
	return s.cpu.IdleUntil(s.pending[0].Arrival)
}

func (s *simulation) take(i int) *core.Task {
	task := s.ready[i]
	s.ready = append(s.ready[:i], s.ready[i+1:]...)
	return task
}

// complete records task as finished at the end of its last segment.
func (s *simulation) complete(task *core.Task, last core.Segment) error {
	completion, err := task.Complete(last.End())
	if err != nil {
		return err
	}
	s.completions = append(s.completions, completion)
	return nil
}

// best returns the index of the lowest ranked ready task, or -1.
// Ties go to the earlier arrival, then to the earlier submission.
func (s *simulation) best(rank rankFunc) int {
	idx := -1
	for i, task := range s.ready {
		if idx == -1 || outranks(task, s.ready[idx], rank) {
			idx = i
		}
	}
	return idx
}

func outranks(a, b *core.Task, rank rankFunc) bool {
	ra, rb := rank(a), rank(b)
	if ra != rb {
		return ra < rb
	}
	if a.Arrival != b.Arrival {
		return a.Arrival < b.Arrival
	}
	return a.Index < b.Index
}

// runToCompletion dispatches the best ready task and never interrupts it.
func (s *simulation) runToCompletion(rank rankFunc) error {
	for !s.done() {
		if err := s.admit(); err != nil {
			return err
		}
		if len(s.ready) == 0 {
			if err := s.idle(); err != nil {
				return err
			}
			continue
		}

		task := s.take(s.best(rank))
		if err := task.Dispatch(); err != nil {
			return err
		}
		segment, err := s.cpu.Execute(task, task.Remaining())
		if err != nil {
			return err
		}
		if err := s.complete(task, segment); err != nil {
			return err
		}
	}
	return nil
}

// runPreemptive advances from one decision instant to the next: either the
// running task finishes or a task arrives that outranks it. decays marks
// ranks that shrink while the task runs (remaining time).
func (s *simulation) runPreemptive(rank rankFunc, decays bool) error {
	var running *core.Task
	for running != nil || !s.done() {
		if err := s.admit(); err != nil {
			return err
		}

		if running == nil {
			if len(s.ready) == 0 {
				if err := s.idle(); err != nil {
					return err
				}
				continue
			}
			running = s.take(s.best(rank))
			if err := running.Dispatch(); err != nil {
				return err
			}
		} else if i := s.best(rank); i >= 0 && rank(s.ready[i]) < rank(running) {
			next := s.take(i)
			if err := running.Preempt(); err != nil {
				return err
			}
			s.ready = append(s.ready, running)
			if err := next.Dispatch(); err != nil {
				return err
			}
			running = next
		}

		slice := running.Remaining()
		if at, ok := s.nextPreemption(running, rank, decays); ok {
			slice = at - s.cpu.Now()
		}
		segment, err := s.cpu.Execute(running, slice)
		if err != nil {
			return err
		}
		if running.Remaining() == 0 {
			if err := s.complete(running, segment); err != nil {
				return err
			}
			running = nil
		}
	}
	return nil
}

// nextPreemption finds the earliest arrival, before running finishes, of a
// task that strictly outranks running at its arrival instant.
func (s *simulation) nextPreemption(running *core.Task, rank rankFunc, decays bool) (float64, bool) {
	now := s.cpu.Now()
	finish := now + running.Remaining()
	for _, task := range s.pending {
		if task.Arrival >= finish {
			break
		}
		current := rank(running)
		if decays {
			current -= task.Arrival - now
		}
		if rank(task) < current {
			return task.Arrival, true
		}
	}
	return 0, false
}
