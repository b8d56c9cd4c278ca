package util

import "cpusched/internal/core"

// CalculateAverage returns the mean waiting, response and turnaround time.
// An empty slice yields zeros.
func CalculateAverage(results []core.ProcessResult) (averageWaitingTime, averageResponseTime, averageTurnAroundTime float64) {
	if len(results) == 0 {
		return
	}

	var waitingTimeSum, responseTimeSum, turnAroundTimeSum int
	for _, result := range results {
		waitingTimeSum += result.Waiting
		responseTimeSum += result.Response
		turnAroundTimeSum += result.Turnaround
	}

	count := float64(len(results))
	averageWaitingTime = float64(waitingTimeSum) / count
	averageResponseTime = float64(responseTimeSum) / count
	averageTurnAroundTime = float64(turnAroundTimeSum) / count
	return
}
