package core

// Process is a unit of work handed to a scheduler. It is never mutated by
// the strategies; per-run bookkeeping lives in call-scoped slices.
type Process struct {
	ID      string `json:"id" yaml:"id"`
	Arrival int    `json:"arrival" yaml:"arrival"`
	Burst   int    `json:"burst" yaml:"burst"`
}

// ProcessResult is a Process together with the timing it received.
type ProcessResult struct {
	Process
	Completion int `json:"completion"`
	Turnaround int `json:"turnaround"`
	Waiting    int `json:"waiting"`
	Response   int `json:"response"`
}

// NewProcessResult derives turnaround, waiting and response time from the
// first time the process ran and the time it completed.
func NewProcessResult(p Process, firstRun, completion int) ProcessResult {
	turnaround := completion - p.Arrival
	return ProcessResult{
		Process:    p,
		Completion: completion,
		Turnaround: turnaround,
		Waiting:    turnaround - p.Burst,
		Response:   firstRun - p.Arrival,
	}
}
