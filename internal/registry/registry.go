// Package registry holds the pending processes of one simulation run.
package registry

import "github.com/taniabhat/OS-CA2-CPU-Scheduling-Simulator/internal/core"

// Registry is not safe for concurrent use; build one per run.
type Registry struct {
	processes []core.Process
}

func New() *Registry {
	return &Registry{processes: make([]core.Process, 0)}
}

// Add validates p and appends it in submission order.
func (r *Registry) Add(p core.Process) error {
	if err := p.Validate(); err != nil {
		return err
	}
	r.processes = append(r.processes, p)
	return nil
}

// Processes returns a copy of the registered processes in submission order.
func (r *Registry) Processes() []core.Process {
	out := make([]core.Process, len(r.processes))
	copy(out, r.processes)
	return out
}

func (r *Registry) Len() int { return len(r.processes) }
