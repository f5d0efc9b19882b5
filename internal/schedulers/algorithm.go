package schedulers

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrEmptyInput       = errors.New("empty input")
	ErrInvalidParameter = errors.New("invalid parameter")
)

// Discipline is the user-facing algorithm selector.
type Discipline string

const (
	DisciplineFCFS       Discipline = "fcfs"
	DisciplineSJF        Discipline = "sjf"
	DisciplinePriority   Discipline = "priority"
	DisciplineRoundRobin Discipline = "rr"
)

// ParseDiscipline accepts the short names plus a few common spellings.
func ParseDiscipline(name string) (Discipline, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "fcfs", "first_come_first_serve":
		return DisciplineFCFS, nil
	case "sjf", "shortest_job_first":
		return DisciplineSJF, nil
	case "priority", "pp":
		return DisciplinePriority, nil
	case "rr", "round_robin":
		return DisciplineRoundRobin, nil
	}
	return "", fmt.Errorf("%w: unknown algorithm %q", ErrInvalidParameter, name)
}

// Variant enumerates the closed set of scheduling modes.
type Variant int

const (
	VariantFCFS Variant = iota
	VariantSJFNonPreemptive
	VariantSJFPreemptive
	VariantPriorityNonPreemptive
	VariantPriorityPreemptive
	VariantRoundRobin
)

// Variants lists every mode in declaration order.
var Variants = []Variant{
	VariantFCFS,
	VariantSJFNonPreemptive,
	VariantSJFPreemptive,
	VariantPriorityNonPreemptive,
	VariantPriorityPreemptive,
	VariantRoundRobin,
}

func (v Variant) String() string {
	switch v {
	case VariantFCFS:
		return "FCFS"
	case VariantSJFNonPreemptive:
		return "SJF Non-Preemptive"
	case VariantSJFPreemptive:
		return "SJF Preemptive"
	case VariantPriorityNonPreemptive:
		return "Priority Non-Preemptive"
	case VariantPriorityPreemptive:
		return "Priority Preemptive"
	case VariantRoundRobin:
		return "Round Robin"
	}
	return fmt.Sprintf("Variant(%d)", int(v))
}

// Algorithm is one scheduling mode. The unexported methods keep the set of
// implementations inside this package.
type Algorithm interface {
	Variant() Variant
	Name() string
	// IsPreemptive reports whether the running process can lose the CPU
	// before it finishes.
	IsPreemptive() bool
	validate() error
	schedule(sim *simulation) error
}

// Select builds the algorithm for a discipline. preemptive is ignored for
// FCFS and Round Robin; quantum is only read for Round Robin.
func Select(discipline Discipline, preemptive bool, quantum float64) (Algorithm, error) {
	switch discipline {
	case DisciplineFCFS:
		return FirstComeFirstServe{}, nil
	case DisciplineSJF:
		return ShortestJobFirst{Preemptive: preemptive}, nil
	case DisciplinePriority:
		return Priority{Preemptive: preemptive}, nil
	case DisciplineRoundRobin:
		rr := RoundRobin{Quantum: quantum}
		if err := rr.validate(); err != nil {
			return nil, err
		}
		return rr, nil
	}
	return nil, fmt.Errorf("%w: unknown algorithm %q", ErrInvalidParameter, discipline)
}

// ForVariant builds the algorithm of a specific mode.
func ForVariant(v Variant, quantum float64) (Algorithm, error) {
	switch v {
	case VariantFCFS:
		return Select(DisciplineFCFS, false, 0)
	case VariantSJFNonPreemptive:
		return Select(DisciplineSJF, false, 0)
	case VariantSJFPreemptive:
		return Select(DisciplineSJF, true, 0)
	case VariantPriorityNonPreemptive:
		return Select(DisciplinePriority, false, 0)
	case VariantPriorityPreemptive:
		return Select(DisciplinePriority, true, 0)
	case VariantRoundRobin:
		return Select(DisciplineRoundRobin, false, quantum)
	}
	return nil, fmt.Errorf("%w: unknown variant %d", ErrInvalidParameter, int(v))
}
