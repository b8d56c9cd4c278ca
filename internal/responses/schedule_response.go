package responses

import "cpusched/internal/core"

type ScheduleResponse struct {
	Algorithm             string                 `json:"algorithm"`
	TotalTime             int                    `json:"total_time"`
	IdleTime              int                    `json:"idle_time"`
	AverageWaitingTime    float64                `json:"average_waiting_time"`
	AverageResponseTime   float64                `json:"average_response_time"`
	AverageTurnAroundTime float64                `json:"average_turn_around_time"`
	CpuUtilization        float64                `json:"cpu_utilization"`
	CpuThroughput         float64                `json:"cpu_throughput"`
	Timeline              []core.TimelineSegment `json:"timeline"`
	Details               []core.ProcessResult   `json:"details"`
}
