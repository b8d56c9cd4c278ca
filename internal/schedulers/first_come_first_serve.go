package schedulers

import (
	"sort"

	"cpusched/internal/core"
)

// FirstComeFirstServe runs processes to completion in (arrival, id) order.
type FirstComeFirstServe struct{}

func (FirstComeFirstServe) Algorithm() Algorithm { return FCFS }

func (FirstComeFirstServe) Run(processes []core.Process) ([]core.Occupant, []core.ProcessResult) {
	// sort jobs by arrival time, id breaks ties
	jobs := append([]core.Process(nil), processes...)
	sort.SliceStable(jobs, func(i, j int) bool {
		return arrivesBefore(jobs[i], jobs[j])
	})

	cpu := core.NewCPU()
	results := make([]core.ProcessResult, 0, len(jobs))
	for _, job := range jobs {
		if job.Arrival > cpu.Clock() {
			cpu.Idle(job.Arrival - cpu.Clock())
		}
		start := cpu.Clock()
		cpu.Execute(job.ID, job.Burst)
		results = append(results, core.NewProcessResult(job, start, cpu.Clock()))
	}
	return cpu.Trace(), results
}
