package schedulers

import (
	"sort"

	"cpusched/internal/core"
)

// RoundRobin hands out the processor in fixed time slices, cycling through a
// FIFO ready queue.
type RoundRobin struct {
	TimeQuantum int
}

func (RoundRobin) Algorithm() Algorithm { return RR }

func (r RoundRobin) Run(processes []core.Process) ([]core.Occupant, []core.ProcessResult) {
	jobs := append([]core.Process(nil), processes...)
	sort.SliceStable(jobs, func(i, j int) bool {
		return arrivesBefore(jobs[i], jobs[j])
	})

	cpu := core.NewCPU()
	remaining := make([]int, len(jobs))
	for i, job := range jobs {
		remaining[i] = job.Burst
	}
	results := make([]core.ProcessResult, 0, len(jobs))

	var readyQueue []int
	admitted := 0
	admit := func(now int) {
		for admitted < len(jobs) && jobs[admitted].Arrival <= now {
			readyQueue = append(readyQueue, admitted)
			admitted++
		}
	}

	admit(cpu.Clock())
	for len(results) < len(jobs) {
		if len(readyQueue) == 0 {
			cpu.Idle(jobs[admitted].Arrival - cpu.Clock())
			admit(cpu.Clock())
			continue
		}

		i := readyQueue[0]
		readyQueue = readyQueue[1:]
		slice := min(r.TimeQuantum, remaining[i])
		cpu.Execute(jobs[i].ID, slice)
		remaining[i] -= slice

		// arrivals during the slice queue ahead of the preempted process
		admit(cpu.Clock())
		if remaining[i] > 0 {
			readyQueue = append(readyQueue, i)
			continue
		}
		first, _ := cpu.FirstRun(jobs[i].ID)
		results = append(results, core.NewProcessResult(jobs[i], first, cpu.Clock()))
	}
	return cpu.Trace(), results
}
