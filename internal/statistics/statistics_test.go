package statistics

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taniabhat/OS-CA2-CPU-Scheduling-Simulator/internal/core"
)

var roundRobinCompletions = []core.Completion{
	{ProcessID: "B", Arrival: 1, Burst: 3, Completion: 9, Priority: 2},
	{ProcessID: "A", Arrival: 0, Burst: 5, Completion: 12, Priority: 1},
	{ProcessID: "C", Arrival: 2, Burst: 8, Completion: 16, Priority: 3},
}

func TestSummarize(t *testing.T) {
	stats, averageWaiting, err := Summarize(roundRobinCompletions)
	require.NoError(t, err)
	require.Len(t, stats, 3)

	assert.Equal(t, ProcessStats{ProcessID: "B", Arrival: 1, Burst: 3, Priority: 2, Completion: 9, Waiting: 5, Turnaround: 8}, stats[0])
	assert.Equal(t, 7.0, stats[1].Waiting)
	assert.Equal(t, 12.0, stats[1].Turnaround)
	assert.Equal(t, 6.0, stats[2].Waiting)
	assert.Equal(t, 14.0, stats[2].Turnaround)
	assert.Equal(t, 6.0, averageWaiting)
}

func TestSummarizeRejectsEmpty(t *testing.T) {
	_, _, err := Summarize(nil)
	assert.ErrorIs(t, err, ErrNoCompletions)
}

func TestWithResponse(t *testing.T) {
	stats, _, err := Summarize(roundRobinCompletions)
	require.NoError(t, err)

	segments := []core.Segment{
		{ProcessID: "A", Start: 0, Duration: 2},
		{ProcessID: "B", Start: 2, Duration: 2},
		{ProcessID: "C", Start: 4, Duration: 2},
		{ProcessID: "A", Start: 6, Duration: 2},
	}
	withResponse, err := WithResponse(stats, segments)
	require.NoError(t, err)
	assert.Equal(t, 1.0, withResponse[0].Response)
	assert.Equal(t, 0.0, withResponse[1].Response)
	assert.Equal(t, 2.0, withResponse[2].Response)
	assert.Zero(t, stats[0].Response, "input stats are not modified")

	_, err = WithResponse(stats, segments[:1])
	assert.Error(t, err)
}

func TestCalculateAverage(t *testing.T) {
	stats := []ProcessStats{
		{Waiting: 2, Response: 1, Turnaround: 4},
		{Waiting: 4, Response: 3, Turnaround: 8},
	}
	waiting, response, turnaround := CalculateAverage(stats)
	assert.Equal(t, 3.0, waiting)
	assert.Equal(t, 2.0, response)
	assert.Equal(t, 6.0, turnaround)

	waiting, response, turnaround = CalculateAverage(nil)
	assert.Zero(t, waiting+response+turnaround)
}

func TestFirstDispatch(t *testing.T) {
	first := FirstDispatch([]core.Segment{
		{ProcessID: "A", Start: 1, Duration: 1},
		{ProcessID: "B", Start: 2, Duration: 1},
		{ProcessID: "A", Start: 3, Duration: 1},
	})
	assert.Equal(t, map[string]float64{"A": 1, "B": 2}, first)
}
