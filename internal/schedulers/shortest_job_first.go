package schedulers

import (
	"cpusched/internal/core"
)

// ShortestJobFirst is non-preemptive: among arrived processes the shortest
// burst is dispatched and runs to completion.
type ShortestJobFirst struct{}

func (ShortestJobFirst) Algorithm() Algorithm { return SJFNP }

func (ShortestJobFirst) Run(processes []core.Process) ([]core.Occupant, []core.ProcessResult) {
	cpu := core.NewCPU()
	done := make([]bool, len(processes))
	results := make([]core.ProcessResult, 0, len(processes))

	for len(results) < len(processes) {
		next := pickShortestJob(processes, done, cpu.Clock())
		if next == -1 {
			// nothing is ready, jump straight to the next arrival
			arrival, ok := nextArrival(processes, done)
			if !ok {
				break
			}
			cpu.Idle(arrival - cpu.Clock())
			continue
		}

		job := processes[next]
		start := cpu.Clock()
		cpu.Execute(job.ID, job.Burst)
		done[next] = true
		results = append(results, core.NewProcessResult(job, start, cpu.Clock()))
	}
	return cpu.Trace(), results
}

func pickShortestJob(processes []core.Process, done []bool, now int) int {
	shortest := -1
	for i, p := range processes {
		if done[i] || p.Arrival > now {
			continue
		}
		if shortest == -1 || shorterJob(p, p.Burst, processes[shortest], processes[shortest].Burst) {
			shortest = i
		}
	}
	return shortest
}

func nextArrival(processes []core.Process, done []bool) (int, bool) {
	earliest, found := 0, false
	for i, p := range processes {
		if done[i] {
			continue
		}
		if !found || p.Arrival < earliest {
			earliest, found = p.Arrival, true
		}
	}
	return earliest, found
}
