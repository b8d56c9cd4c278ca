package schedulers

import (
	"cpusched/internal/core"
)

// ShortestRemainingTimeFirst is the preemptive variant of SJF. The ready set
// is re-evaluated every time unit, so a shorter arrival preempts the running
// process immediately.
type ShortestRemainingTimeFirst struct{}

func (ShortestRemainingTimeFirst) Algorithm() Algorithm { return SRTF }

func (ShortestRemainingTimeFirst) Run(processes []core.Process) ([]core.Occupant, []core.ProcessResult) {
	cpu := core.NewCPU()
	remaining := make([]int, len(processes))
	for i, p := range processes {
		remaining[i] = p.Burst
	}
	results := make([]core.ProcessResult, 0, len(processes))

	for len(results) < len(processes) {
		now := cpu.Clock()
		next := -1
		for i, p := range processes {
			if remaining[i] == 0 || p.Arrival > now {
				continue
			}
			if next == -1 || shorterJob(p, remaining[i], processes[next], remaining[next]) {
				next = i
			}
		}
		if next == -1 {
			cpu.Idle(1)
			continue
		}

		job := processes[next]
		cpu.Execute(job.ID, 1)
		remaining[next]--
		if remaining[next] == 0 {
			first, _ := cpu.FirstRun(job.ID)
			results = append(results, core.NewProcessResult(job, first, cpu.Clock()))
		}
	}
	return cpu.Trace(), results
}
