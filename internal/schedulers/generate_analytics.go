package schedulers

import (
	"github.com/taniabhat/OS-CA2-CPU-Scheduling-Simulator/internal/core"
	"github.com/taniabhat/OS-CA2-CPU-Scheduling-Simulator/internal/responses"
	"github.com/taniabhat/OS-CA2-CPU-Scheduling-Simulator/internal/statistics"
)

func generateResponse(algorithm Algorithm, quantum float64, result Result, trace []core.Segment, stats []statistics.ProcessStats) responses.ScheduleResponse {
	averageWaitingTime, averageResponseTime, averageTimeAroundTime := statistics.CalculateAverage(stats)

	metric := result.Metric
	var utilization, throughput float64
	if metric.TotalTime > 0 {
		utilization = metric.UtilizationTime / metric.TotalTime
		throughput = float64(len(stats)) / metric.TotalTime
	}

	response := responses.ScheduleResponse{
		Algorithm:             algorithm.Name(),
		Preemptive:            algorithm.IsPreemptive(),
		Timeline:              generateTimeline(trace),
		RawSegmentCount:       len(result.Timeline),
		TotalTime:             metric.TotalTime,
		IdleTime:              metric.IdleTime,
		CpuUtilization:        utilization,
		CpuThroughput:         throughput,
		AverageWaitingTime:    averageWaitingTime,
		AverageResponseTime:   averageResponseTime,
		AverageTurnAroundTime: averageTimeAroundTime,
		Details:               generateProcessDetails(stats),
	}
	if algorithm.Variant() == VariantRoundRobin {
		response.Quantum = quantum
	}
	return response
}

func generateTimeline(trace []core.Segment) []responses.SegmentResponse {
	segments := make([]responses.SegmentResponse, 0, len(trace))
	for _, s := range trace {
		segments = append(segments, responses.SegmentResponse{
			ProcessId: s.ProcessID,
			Start:     s.Start,
			Duration:  s.Duration,
			End:       s.End(),
		})
	}
	return segments
}

func generateProcessDetails(stats []statistics.ProcessStats) []responses.ProcessResponse {
	details := make([]responses.ProcessResponse, 0, len(stats))
	for _, s := range stats {
		details = append(details, responses.ProcessResponse{
			ProcessId:      s.ProcessID,
			ArrivalTime:    s.Arrival,
			BurstTime:      s.Burst,
			Priority:       s.Priority,
			CompletionTime: s.Completion,
			ResponseTime:   s.Response,
			TurnAroundTime: s.Turnaround,
			WaitingTime:    s.Waiting,
		})
	}
	return details
}
