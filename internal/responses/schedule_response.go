package responses

type SegmentResponse struct {
	ProcessId string  `json:"process_id"`
	Start     float64 `json:"start"`
	Duration  float64 `json:"duration"`
	End       float64 `json:"end"`
}

type ProcessResponse struct {
	ProcessId      string  `json:"process_id"`
	ArrivalTime    float64 `json:"arrival_time"`
	BurstTime      float64 `json:"burst_time"`
	Priority       float64 `json:"priority"`
	CompletionTime float64 `json:"completion_time"`
	ResponseTime   float64 `json:"response_time"`
	TurnAroundTime float64 `json:"turn_around_time"`
	WaitingTime    float64 `json:"waiting_time"`
}

type ScheduleResponse struct {
	Algorithm             string            `json:"algorithm"`
	Preemptive            bool              `json:"preemptive"`
	Quantum               float64           `json:"quantum,omitempty"`
	Timeline              []SegmentResponse `json:"timeline"`
	RawSegmentCount       int               `json:"raw_segment_count"`
	TotalTime             float64           `json:"total_time"`
	IdleTime              float64           `json:"idle_time"`
	AverageWaitingTime    float64           `json:"average_waiting_time"`
	AverageResponseTime   float64           `json:"average_response_time"`
	AverageTurnAroundTime float64           `json:"average_turn_around_time"`
	CpuUtilization        float64           `json:"cpu_utilization"`
	CpuThroughput         float64           `json:"cpu_throughput"`
	Details               []ProcessResponse `json:"details"`
}
