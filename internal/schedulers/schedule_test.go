package schedulers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taniabhat/OS-CA2-CPU-Scheduling-Simulator/internal/core"
	"github.com/taniabhat/OS-CA2-CPU-Scheduling-Simulator/internal/requests"
	"github.com/taniabhat/OS-CA2-CPU-Scheduling-Simulator/internal/responses"
)

func quantum(q float64) *float64 { return &q }

func scenarioJobs() []requests.Job {
	return []requests.Job{
		{ProcessId: "A", ArrivalTime: 0, BurstTime: 5, Priority: 1},
		{ProcessId: "B", ArrivalTime: 1, BurstTime: 3, Priority: 2},
		{ProcessId: "C", ArrivalTime: 2, BurstTime: 8, Priority: 3},
	}
}

func TestScheduleRoundRobin(t *testing.T) {
	response, err := Schedule(&requests.ScheduleRequests{Algorithm: "rr", Quantum: quantum(2), Jobs: scenarioJobs()})
	require.NoError(t, err)

	assert.True(t, response.Preemptive)
	assert.Equal(t, 2.0, response.Quantum)
	assert.Equal(t, 9, response.RawSegmentCount)
	require.Len(t, response.Timeline, 8)
	assert.Equal(t, responses.SegmentResponse{ProcessId: "C", Start: 12, Duration: 4, End: 16}, response.Timeline[7])

	assert.Equal(t, 6.0, response.AverageWaitingTime)
	assert.InDelta(t, 34.0/3, response.AverageTurnAroundTime, 1e-9)
	assert.Equal(t, 1.0, response.AverageResponseTime)
	assert.Equal(t, 16.0, response.TotalTime)
	assert.Equal(t, 0.0, response.IdleTime)
	assert.Equal(t, 1.0, response.CpuUtilization)
	assert.InDelta(t, 3.0/16, response.CpuThroughput, 1e-9)

	require.Len(t, response.Details, 3)
	assert.Equal(t, responses.ProcessResponse{
		ProcessId: "B", ArrivalTime: 1, BurstTime: 3, Priority: 2,
		CompletionTime: 9, ResponseTime: 1, TurnAroundTime: 8, WaitingTime: 5,
	}, response.Details[0])
}

func TestScheduleNonPreemptiveKeepsRawTimeline(t *testing.T) {
	response, err := Schedule(&requests.ScheduleRequests{Algorithm: "sjf", Jobs: scenarioJobs()})
	require.NoError(t, err)
	assert.False(t, response.Preemptive)
	assert.Zero(t, response.Quantum)
	assert.Equal(t, response.RawSegmentCount, len(response.Timeline))
	assert.Equal(t, []string{"A", "B", "C"}, []string{
		response.Timeline[0].ProcessId, response.Timeline[1].ProcessId, response.Timeline[2].ProcessId,
	})
}

func TestSchedulePriorityPreemptive(t *testing.T) {
	response, err := Schedule(&requests.ScheduleRequests{
		Algorithm:  "priority",
		Preemptive: true,
		Jobs: []requests.Job{
			{ProcessId: "A", ArrivalTime: 0, BurstTime: 6, Priority: 5},
			{ProcessId: "B", ArrivalTime: 3, BurstTime: 2, Priority: 1},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, []responses.SegmentResponse{
		{ProcessId: "A", Start: 0, Duration: 3, End: 3},
		{ProcessId: "B", Start: 3, Duration: 2, End: 5},
		{ProcessId: "A", Start: 5, Duration: 3, End: 8},
	}, response.Timeline)
	assert.Equal(t, 1.0, response.AverageWaitingTime)
}

func TestScheduleErrors(t *testing.T) {
	var validation *core.ValidationError

	_, err := Schedule(&requests.ScheduleRequests{Algorithm: "fcfs"})
	assert.ErrorAs(t, err, &validation)

	_, err = Schedule(&requests.ScheduleRequests{Algorithm: "fcfs", Jobs: []requests.Job{{ProcessId: "", BurstTime: 1}}})
	assert.ErrorAs(t, err, &validation)

	_, err = Schedule(&requests.ScheduleRequests{Algorithm: "lottery", Jobs: scenarioJobs()})
	assert.ErrorIs(t, err, ErrInvalidParameter)

	_, err = Schedule(&requests.ScheduleRequests{Algorithm: "rr", Jobs: scenarioJobs()})
	assert.ErrorIs(t, err, ErrInvalidParameter)
}

func TestScheduleAll(t *testing.T) {
	all, err := ScheduleAll(&requests.ScheduleRequests{Quantum: quantum(2), Jobs: scenarioJobs()})
	require.NoError(t, err)
	require.Len(t, all, len(Variants))
	for i, v := range Variants {
		algorithm, err := ForVariant(v, 2)
		require.NoError(t, err)
		assert.Equal(t, algorithm.Name(), all[i].Algorithm)
		assert.Len(t, all[i].Details, 3)
	}

	_, err = ScheduleAll(&requests.ScheduleRequests{Jobs: scenarioJobs()})
	assert.ErrorIs(t, err, ErrInvalidParameter)
}
