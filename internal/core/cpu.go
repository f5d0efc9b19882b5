package core

import "fmt"

type CpuMetric struct {
	TotalTime       float64
	UtilizationTime float64
	IdleTime        float64
}

// CPU is a single simulated core. It owns the clock and the execution trace
// of one run; the clock only moves forward.
type CPU struct {
	clock    float64
	timeline []Segment
	metric   CpuMetric
}

func NewCPU() *CPU {
	return &CPU{timeline: make([]Segment, 0)}
}

func (c *CPU) Now() float64 { return c.clock }

// IdleUntil jumps the clock to t without emitting a segment.
func (c *CPU) IdleUntil(t float64) error {
	if t < c.clock {
		return fmt.Errorf("cpu clock cannot move back from %v to %v", c.clock, t)
	}
	c.metric.IdleTime += t - c.clock
	c.clock = t
	c.metric.TotalTime = c.clock
	return nil
}

// Execute runs a dispatched task for d time units starting at the current
// clock, records the segment and advances the clock to its end.
func (c *CPU) Execute(task *Task, d float64) (Segment, error) {
	if task.Arrival > c.clock {
		return Segment{}, fmt.Errorf("process %s cannot start at %v before its arrival %v", task.ID, c.clock, task.Arrival)
	}
	d = task.Slice(d)
	if err := task.Run(d); err != nil {
		return Segment{}, err
	}
	segment := Segment{ProcessID: task.ID, Start: c.clock, Duration: d}
	c.timeline = append(c.timeline, segment)

	c.clock += d
	c.metric.UtilizationTime += d
	c.metric.TotalTime = c.clock
	return segment, nil
}

// Timeline returns a copy of the recorded segments in start order.
func (c *CPU) Timeline() []Segment {
	out := make([]Segment, len(c.timeline))
	copy(out, c.timeline)
	return out
}

func (c *CPU) Metric() CpuMetric { return c.metric }
