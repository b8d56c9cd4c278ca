package schedulers

import (
	"errors"
	"fmt"
	"strings"

	"cpusched/internal/core"
)

// Algorithm selects a scheduling discipline.
type Algorithm string

const (
	FCFS  Algorithm = "FCFS"
	SJFNP Algorithm = "SJF_NP"
	SRTF  Algorithm = "SRTF"
	RR    Algorithm = "RR"
)

// Algorithms lists every supported discipline in display order.
var Algorithms = []Algorithm{FCFS, SJFNP, SRTF, RR}

var (
	// ErrInvalidInput is returned when a simulation is requested with no processes.
	ErrInvalidInput = errors.New("invalid input: at least one process is required")
	// ErrUnknownAlgorithm is returned for an unrecognised algorithm selector.
	ErrUnknownAlgorithm = errors.New("unknown algorithm")
)

// ParseAlgorithm accepts the canonical names and their common lowercase aliases.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fcfs":
		return FCFS, nil
	case "sjf", "sjf_np", "sjf-np", "sjfnp":
		return SJFNP, nil
	case "srtf":
		return SRTF, nil
	case "rr", "round_robin", "round-robin":
		return RR, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// Strategy is a scheduling discipline. Run receives its own copy of the
// process list and returns the unit-resolution trace together with one result
// per process. Implementations hold no state between calls.
type Strategy interface {
	Algorithm() Algorithm
	Run(processes []core.Process) ([]core.Occupant, []core.ProcessResult)
}

// Options carries the tunables a strategy may need.
type Options struct {
	TimeQuantum int
}

// New returns the strategy for alg.
func New(alg Algorithm, opts Options) (Strategy, error) {
	switch alg {
	case FCFS:
		return FirstComeFirstServe{}, nil
	case SJFNP:
		return ShortestJobFirst{}, nil
	case SRTF:
		return ShortestRemainingTimeFirst{}, nil
	case RR:
		if opts.TimeQuantum < 1 {
			return nil, fmt.Errorf("round robin: time quantum must be at least 1, got %d", opts.TimeQuantum)
		}
		return RoundRobin{TimeQuantum: opts.TimeQuantum}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, alg)
}

// Schedule is the outcome of one simulation.
type Schedule struct {
	Algorithm Algorithm
	Timeline  []core.TimelineSegment
	Results   []core.ProcessResult
	Metric    core.CpuMetric
}

// Simulate runs s over processes and compresses the resulting trace. The
// caller's slice is copied, so the same input can be reused across calls.
func Simulate(s Strategy, processes []core.Process) (Schedule, error) {
	if len(processes) == 0 {
		return Schedule{}, ErrInvalidInput
	}
	jobs := make([]core.Process, len(processes))
	copy(jobs, processes)

	trace, results := s.Run(jobs)
	return Schedule{
		Algorithm: s.Algorithm(),
		Timeline:  core.Compress(trace),
		Results:   results,
		Metric:    core.MeasureCPU(trace),
	}, nil
}

// arrivesBefore orders processes by arrival, then by id.
func arrivesBefore(a, b core.Process) bool {
	if a.Arrival != b.Arrival {
		return a.Arrival < b.Arrival
	}
	return a.ID < b.ID
}

// shorterJob is the shortest-job comparator shared by SJF and SRTF: smaller
// length wins, then earlier arrival, then smaller id. For SJF the length is
// the burst, for SRTF the remaining time.
func shorterJob(a core.Process, aLength int, b core.Process, bLength int) bool {
	if aLength != bLength {
		return aLength < bLength
	}
	return arrivesBefore(a, b)
}
