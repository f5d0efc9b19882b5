package schedulers

import (
	"log"

	"github.com/taniabhat/OS-CA2-CPU-Scheduling-Simulator/internal/core"
	"github.com/taniabhat/OS-CA2-CPU-Scheduling-Simulator/internal/registry"
	"github.com/taniabhat/OS-CA2-CPU-Scheduling-Simulator/internal/requests"
	"github.com/taniabhat/OS-CA2-CPU-Scheduling-Simulator/internal/responses"
	"github.com/taniabhat/OS-CA2-CPU-Scheduling-Simulator/internal/statistics"
	"github.com/taniabhat/OS-CA2-CPU-Scheduling-Simulator/internal/timeline"
)

// Schedule validates request, runs the selected algorithm and returns the
// merged timeline with its statistics.
func Schedule(request *requests.ScheduleRequests) (responses.ScheduleResponse, error) {
	discipline, err := ParseDiscipline(request.Algorithm)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	processes, err := register(request)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	quantum := request.QuantumOr(0)
	algorithm, err := Select(discipline, request.Preemptive, quantum)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	return schedule(algorithm, processes, quantum)
}

// ScheduleAll runs every variant over the same jobs, in Variants order.
func ScheduleAll(request *requests.ScheduleRequests) ([]responses.ScheduleResponse, error) {
	processes, err := register(request)
	if err != nil {
		return nil, err
	}
	quantum := request.QuantumOr(0)
	all := make([]responses.ScheduleResponse, 0, len(Variants))
	for _, v := range Variants {
		algorithm, err := ForVariant(v, quantum)
		if err != nil {
			return nil, err
		}
		response, err := schedule(algorithm, processes, quantum)
		if err != nil {
			return nil, err
		}
		all = append(all, response)
	}
	return all, nil
}

func register(request *requests.ScheduleRequests) ([]core.Process, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}
	reg := registry.New()
	for _, job := range request.Jobs {
		if err := reg.Add(job.Process()); err != nil {
			return nil, err
		}
	}
	log.Println("registered", reg.Len(), "processes")
	return reg.Processes(), nil
}

func schedule(algorithm Algorithm, processes []core.Process, quantum float64) (responses.ScheduleResponse, error) {
	log.Println("running", algorithm.Name(), "algorithm over", len(processes), "processes")
	result, err := Execute(algorithm, processes)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}

	trace := result.Timeline
	if algorithm.IsPreemptive() {
		trace = timeline.Merge(result.Timeline)
	}

	stats, _, err := statistics.Summarize(result.Completions)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	stats, err = statistics.WithResponse(stats, trace)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	for _, s := range stats {
		log.Printf("pid: %s completed at %.2f, waiting %.2f, turnaround %.2f", s.ProcessID, s.Completion, s.Waiting, s.Turnaround)
	}

	response := generateResponse(algorithm, quantum, result, trace, stats)
	log.Printf("response is: %+v", response)
	return response, nil
}
