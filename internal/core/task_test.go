package core

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskLifecycle(t *testing.T) {
	task := NewTask(Process{ID: "A", Arrival: 1, Burst: 5, Priority: 2}, 0)
	assert.Equal(t, Waiting, task.State())
	assert.Equal(t, 5.0, task.Remaining())

	require.NoError(t, task.Arrive())
	require.NoError(t, task.Dispatch())
	require.NoError(t, task.Run(2))
	assert.Equal(t, 3.0, task.Remaining())

	require.NoError(t, task.Preempt())
	assert.Equal(t, Ready, task.State())

	require.NoError(t, task.Dispatch())
	require.NoError(t, task.Run(10))
	assert.Equal(t, 0.0, task.Remaining(), "remaining never goes negative")

	c, err := task.Complete(9)
	require.NoError(t, err)
	assert.Equal(t, Completion{ProcessID: "A", Arrival: 1, Burst: 5, Completion: 9, Priority: 2}, c)
	assert.Equal(t, Completed, task.State())
	assert.Equal(t, 3.0, c.Waiting())
	assert.Equal(t, 8.0, c.Turnaround())
}

func TestTaskIllegalTransitions(t *testing.T) {
	tests := []struct {
		name string
		run  func(task *Task) error
	}{
		{"dispatch before arrival", func(task *Task) error { return task.Dispatch() }},
		{"run while waiting", func(task *Task) error { return task.Run(1) }},
		{"preempt while ready", func(task *Task) error {
			_ = task.Arrive()
			return task.Preempt()
		}},
		{"arrive twice", func(task *Task) error {
			_ = task.Arrive()
			return task.Arrive()
		}},
		{"complete with work left", func(task *Task) error {
			_ = task.Arrive()
			_ = task.Dispatch()
			_, err := task.Complete(1)
			return err
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			task := NewTask(Process{ID: "A", Burst: 2}, 0)
			assert.ErrorIs(t, tt.run(task), ErrIllegalTransition)
		})
	}
}

func TestTaskRunRejectsNonPositiveDuration(t *testing.T) {
	task := NewTask(Process{ID: "A", Burst: 2}, 0)
	require.NoError(t, task.Arrive())
	require.NoError(t, task.Dispatch())
	assert.Error(t, task.Run(0))
	assert.Equal(t, 2.0, task.Remaining())
}

func TestTaskDecimalSlicesAddUpToBurst(t *testing.T) {
	for _, burst := range []float64{0.7, 0.3, 1.1, 2.9, 12.3} {
		task := dispatched(t, Process{ID: "A", Burst: burst})
		var total float64
		runs := 0
		for task.Remaining() > 0 {
			d := task.Slice(0.1)
			require.Greater(t, d, Residue, "burst %v run %d", burst, runs)
			require.NoError(t, task.Run(d))
			total += d
			runs++
			require.LessOrEqual(t, runs, 1000)
		}
		assert.Equal(t, int(math.Round(burst*10)), runs, "burst %v", burst)
		assert.Equal(t, burst, total, "burst %v", burst)
		assert.Equal(t, 0.0, task.Remaining())
	}
}

func TestTaskSlice(t *testing.T) {
	task := dispatched(t, Process{ID: "A", Burst: 1})
	assert.Equal(t, 0.25, task.Slice(0.25), "short offers are kept")
	assert.Equal(t, 1.0, task.Slice(5), "long offers shrink to the remainder")
	assert.Equal(t, 1.0, task.Slice(1-1e-12), "a shortfall within the residue finishes the task")

	require.NoError(t, task.Run(task.Slice(1-1e-12)))
	assert.Equal(t, 0.0, task.Remaining())
}

func TestTaskRunRejectsNaNDuration(t *testing.T) {
	task := dispatched(t, Process{ID: "A", Burst: 2})
	assert.Error(t, task.Run(math.NaN()))
	assert.Equal(t, 2.0, task.Remaining())
}

func TestProcessValidate(t *testing.T) {
	tests := []struct {
		name    string
		process Process
		field   string
	}{
		{"valid", Process{ID: "A", Arrival: 0, Burst: 1, Priority: -20}, ""},
		{"valid upper priority", Process{ID: "A", Arrival: 2.5, Burst: 0.1, Priority: 20}, ""},
		{"empty id", Process{Burst: 1}, "process_id"},
		{"zero burst", Process{ID: "A"}, "burst_time"},
		{"negative burst", Process{ID: "A", Burst: -1}, "burst_time"},
		{"negative arrival", Process{ID: "A", Burst: 1, Arrival: -0.5}, "arrival_time"},
		{"priority too low", Process{ID: "A", Burst: 1, Priority: -21}, "priority"},
		{"priority too high", Process{ID: "A", Burst: 1, Priority: 20.5}, "priority"},
		{"NaN burst", Process{ID: "A", Burst: math.NaN()}, "burst_time"},
		{"infinite burst", Process{ID: "A", Burst: math.Inf(1)}, "burst_time"},
		{"NaN arrival", Process{ID: "A", Burst: 1, Arrival: math.NaN()}, "arrival_time"},
		{"infinite arrival", Process{ID: "A", Burst: 1, Arrival: math.Inf(1)}, "arrival_time"},
		{"NaN priority", Process{ID: "A", Burst: 1, Priority: math.NaN()}, "priority"},
		{"infinite priority", Process{ID: "A", Burst: 1, Priority: math.Inf(-1)}, "priority"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.process.Validate()
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}
			var validation *ValidationError
			require.ErrorAs(t, err, &validation)
			assert.Equal(t, tt.field, validation.Field)
		})
	}
}
