package schedulers

import (
	"sort"

	"cpusched/internal/core"
	"cpusched/internal/responses"
	"cpusched/internal/util"
)

// GenerateResponse aggregates a schedule into the response shape served to
// callers. Details are sorted by process id for stable display.
func GenerateResponse(schedule Schedule) responses.ScheduleResponse {
	details := append([]core.ProcessResult(nil), schedule.Results...)
	sort.Slice(details, func(i, j int) bool {
		return details[i].ID < details[j].ID
	})

	averageWaitingTime, averageResponseTime, averageTurnAroundTime := util.CalculateAverage(details)

	var utilization, throughput float64
	if total := schedule.Metric.TotalTime; total > 0 {
		utilization = float64(schedule.Metric.UtilizationTime) / float64(total)
		throughput = float64(len(details)) / float64(total)
	}

	return responses.ScheduleResponse{
		Algorithm:             string(schedule.Algorithm),
		TotalTime:             schedule.Metric.TotalTime,
		IdleTime:              schedule.Metric.IdleTime,
		CpuUtilization:        utilization,
		CpuThroughput:         throughput,
		AverageWaitingTime:    averageWaitingTime,
		AverageResponseTime:   averageResponseTime,
		AverageTurnAroundTime: averageTurnAroundTime,
		Timeline:              schedule.Timeline,
		Details:               details,
	}
}
