package core

import (
	"errors"
	"fmt"
	"math"
)

var ErrIllegalTransition = errors.New("illegal task transition")

type State int

const (
	Waiting State = iota
	Ready
	Running
	Completed
)

func (s State) String() string {
	switch s {
	case Waiting:
		return "waiting"
	case Ready:
		return "ready"
	case Running:
		return "running"
	case Completed:
		return "completed"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Task is the per-run simulation state of one process. It owns a copy of the
// process so a run never touches the caller's records.
type Task struct {
	Process
	// Index is the insertion order of the process, used as the last tie-break.
	Index int

	consumed  float64
	remaining float64
	state     State
}

// Residue is the relative gap below which two instants, or a remaining time
// and zero, are the same. Decimal slices such as 0.1 do not sum exactly in
// binary; without it a task could be left with a sliver of 1e-17 that costs
// an extra dispatch.
const Residue = 1e-9

func NewTask(p Process, index int) *Task {
	return &Task{Process: p, Index: index, remaining: p.Burst, state: Waiting}
}

func (t *Task) Remaining() float64 { return t.remaining }

func (t *Task) State() State { return t.state }

// Arrive moves a waiting task into the ready set.
func (t *Task) Arrive() error {
	return t.transition(Waiting, Ready)
}

func (t *Task) Dispatch() error {
	return t.transition(Ready, Running)
}

// Preempt returns a running task with work left to the ready set.
func (t *Task) Preempt() error {
	if t.remaining <= 0 {
		return fmt.Errorf("%w: process %s has no remaining time to preempt", ErrIllegalTransition, t.ID)
	}
	return t.transition(Running, Ready)
}

// Slice returns how long the task actually runs when offered d units. An
// offer that covers the remaining time, or falls short of it by no more than
// the residue, becomes the leftover so that the consumed slices add up to
// the burst.
func (t *Task) Slice(d float64) float64 {
	if t.finishes(d) {
		return t.leftover()
	}
	return d
}

// Run consumes d units of CPU time. A run that finishes the task leaves
// exactly zero remaining.
func (t *Task) Run(d float64) error {
	if t.state != Running {
		return fmt.Errorf("%w: process %s is %s, cannot run", ErrIllegalTransition, t.ID, t.state)
	}
	if !(d > 0) {
		return fmt.Errorf("process %s: non-positive run duration %v", t.ID, d)
	}
	if t.finishes(d) {
		t.consumed = t.Burst
		t.remaining = 0
		return nil
	}
	t.consumed += d
	t.remaining = t.Burst - t.consumed
	return nil
}

func (t *Task) finishes(d float64) bool {
	return d >= t.remaining-Residue*t.Burst
}

// leftover is the slice s that brings consumed up to the burst. Burst-consumed
// is usually exact already; otherwise a nudge of an ulp or two fixes it. For
// the rare consumed where no s hits the burst bit for bit, the closest one
// wins, which is off by at most an ulp.
func (t *Task) leftover() float64 {
	s := t.Burst - t.consumed
	best := s
	for i := 0; i < 4; i++ {
		sum := t.consumed + s
		if sum == t.Burst {
			return s
		}
		if math.Abs(sum-t.Burst) < math.Abs(t.consumed+best-t.Burst) {
			best = s
		}
		if sum < t.Burst {
			s = math.Nextafter(s, math.Inf(1))
		} else {
			s = math.Nextafter(s, math.Inf(-1))
		}
	}
	return best
}
