package schedulers

import (
	"errors"
	"fmt"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"

	"cpusched/internal/core"
)

func simulate(t *testing.T, alg Algorithm, processes []core.Process) Schedule {
	t.Helper()
	strategy, err := New(alg, Options{TimeQuantum: 2})
	if err != nil {
		t.Fatalf("New(%s): %v", alg, err)
	}
	schedule, err := Simulate(strategy, processes)
	if err != nil {
		t.Fatalf("Simulate(%s): %v", alg, err)
	}
	return schedule
}

func segment(id string, start, duration int) core.TimelineSegment {
	return core.TimelineSegment{Occupant: core.Occupant(id), Start: start, Duration: duration}
}

func idle(start, duration int) core.TimelineSegment {
	return core.TimelineSegment{Occupant: core.Idle, Idle: true, Start: start, Duration: duration}
}

func result(p core.Process, firstRun, completion int) core.ProcessResult {
	return core.NewProcessResult(p, firstRun, completion)
}

func TestFCFS_IdleGap(t *testing.T) {
	p := core.Process{ID: "P1", Arrival: 5, Burst: 3}
	got := simulate(t, FCFS, []core.Process{p})

	wantTimeline := []core.TimelineSegment{idle(0, 5), segment("P1", 5, 3)}
	if diff := cmp.Diff(wantTimeline, got.Timeline); diff != "" {
		t.Errorf("timeline mismatch (-want +got):\n%s", diff)
	}
	want := []core.ProcessResult{{Process: p, Completion: 8, Turnaround: 3, Waiting: 0, Response: 0}}
	if diff := cmp.Diff(want, got.Results); diff != "" {
		t.Errorf("results mismatch (-want +got):\n%s", diff)
	}
}

func TestFCFS_TieBreakByID(t *testing.T) {
	b := core.Process{ID: "B", Arrival: 0, Burst: 2}
	a := core.Process{ID: "A", Arrival: 0, Burst: 3}
	c := core.Process{ID: "C", Arrival: 1, Burst: 1}
	got := simulate(t, FCFS, []core.Process{c, b, a})

	wantTimeline := []core.TimelineSegment{segment("A", 0, 3), segment("B", 3, 2), segment("C", 5, 1)}
	if diff := cmp.Diff(wantTimeline, got.Timeline); diff != "" {
		t.Errorf("timeline mismatch (-want +got):\n%s", diff)
	}
	want := []core.ProcessResult{result(a, 0, 3), result(b, 3, 5), result(c, 5, 6)}
	if diff := cmp.Diff(want, got.Results); diff != "" {
		t.Errorf("results mismatch (-want +got):\n%s", diff)
	}
}

func TestFCFS_OrderIndependent(t *testing.T) {
	processes := []core.Process{
		{ID: "P3", Arrival: 4, Burst: 2},
		{ID: "P1", Arrival: 0, Burst: 5},
		{ID: "P2", Arrival: 0, Burst: 1},
		{ID: "P4", Arrival: 20, Burst: 3},
	}
	reversed := make([]core.Process, len(processes))
	for i, p := range processes {
		reversed[len(processes)-1-i] = p
	}

	first := simulate(t, FCFS, processes)
	second := simulate(t, FCFS, reversed)
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("FCFS depends on input order (-first +second):\n%s", diff)
	}
}

func TestSJF_TieBreakAndNoPreemption(t *testing.T) {
	p2 := core.Process{ID: "P2", Arrival: 0, Burst: 4}
	p1 := core.Process{ID: "P1", Arrival: 0, Burst: 4}
	p3 := core.Process{ID: "P3", Arrival: 1, Burst: 1}
	got := simulate(t, SJFNP, []core.Process{p2, p1, p3})

	wantTimeline := []core.TimelineSegment{segment("P1", 0, 4), segment("P3", 4, 1), segment("P2", 5, 4)}
	if diff := cmp.Diff(wantTimeline, got.Timeline); diff != "" {
		t.Errorf("timeline mismatch (-want +got):\n%s", diff)
	}
	want := []core.ProcessResult{result(p1, 0, 4), result(p3, 4, 5), result(p2, 5, 9)}
	if diff := cmp.Diff(want, got.Results); diff != "" {
		t.Errorf("results mismatch (-want +got):\n%s", diff)
	}
}

func TestSJF_TieBreakByArrival(t *testing.T) {
	a := core.Process{ID: "A", Arrival: 0, Burst: 5}
	b := core.Process{ID: "B", Arrival: 2, Burst: 3}
	c := core.Process{ID: "C", Arrival: 1, Burst: 3}
	got := simulate(t, SJFNP, []core.Process{a, b, c})

	wantTimeline := []core.TimelineSegment{segment("A", 0, 5), segment("C", 5, 3), segment("B", 8, 3)}
	if diff := cmp.Diff(wantTimeline, got.Timeline); diff != "" {
		t.Errorf("timeline mismatch (-want +got):\n%s", diff)
	}
}

func TestSJF_JumpsIdleGap(t *testing.T) {
	a := core.Process{ID: "A", Arrival: 0, Burst: 2}
	b := core.Process{ID: "B", Arrival: 10, Burst: 1}
	got := simulate(t, SJFNP, []core.Process{b, a})

	wantTimeline := []core.TimelineSegment{segment("A", 0, 2), idle(2, 8), segment("B", 10, 1)}
	if diff := cmp.Diff(wantTimeline, got.Timeline); diff != "" {
		t.Errorf("timeline mismatch (-want +got):\n%s", diff)
	}
	want := []core.ProcessResult{result(a, 0, 2), result(b, 10, 11)}
	if diff := cmp.Diff(want, got.Results); diff != "" {
		t.Errorf("results mismatch (-want +got):\n%s", diff)
	}
}

func TestSRTF_Preemption(t *testing.T) {
	a := core.Process{ID: "A", Arrival: 0, Burst: 5}
	b := core.Process{ID: "B", Arrival: 2, Burst: 2}
	got := simulate(t, SRTF, []core.Process{a, b})

	wantTimeline := []core.TimelineSegment{segment("A", 0, 2), segment("B", 2, 2), segment("A", 4, 3)}
	if diff := cmp.Diff(wantTimeline, got.Timeline); diff != "" {
		t.Errorf("timeline mismatch (-want +got):\n%s", diff)
	}
	want := []core.ProcessResult{
		{Process: b, Completion: 4, Turnaround: 2, Waiting: 0, Response: 0},
		{Process: a, Completion: 7, Turnaround: 7, Waiting: 2, Response: 0},
	}
	if diff := cmp.Diff(want, got.Results); diff != "" {
		t.Errorf("results mismatch (-want +got):\n%s", diff)
	}
}

func TestSRTF_EqualRemainingDoesNotPreempt(t *testing.T) {
	// At t=1 A has 2 left and B needs 2; A arrived first and keeps the CPU.
	a := core.Process{ID: "A", Arrival: 0, Burst: 3}
	b := core.Process{ID: "B", Arrival: 1, Burst: 2}
	got := simulate(t, SRTF, []core.Process{b, a})

	wantTimeline := []core.TimelineSegment{segment("A", 0, 3), segment("B", 3, 2)}
	if diff := cmp.Diff(wantTimeline, got.Timeline); diff != "" {
		t.Errorf("timeline mismatch (-want +got):\n%s", diff)
	}
}

func TestSRTF_EqualRemainingAndArrivalPicksSmallerID(t *testing.T) {
	b := core.Process{ID: "B", Arrival: 0, Burst: 2}
	a := core.Process{ID: "A", Arrival: 0, Burst: 2}
	got := simulate(t, SRTF, []core.Process{b, a})

	wantTimeline := []core.TimelineSegment{segment("A", 0, 2), segment("B", 2, 2)}
	if diff := cmp.Diff(wantTimeline, got.Timeline); diff != "" {
		t.Errorf("timeline mismatch (-want +got):\n%s", diff)
	}
	want := []core.ProcessResult{result(a, 0, 2), result(b, 2, 4)}
	if diff := cmp.Diff(want, got.Results); diff != "" {
		t.Errorf("results mismatch (-want +got):\n%s", diff)
	}
}

func TestSRTF_IdleUnits(t *testing.T) {
	p := core.Process{ID: "P", Arrival: 3, Burst: 2}
	got := simulate(t, SRTF, []core.Process{p})

	wantTimeline := []core.TimelineSegment{idle(0, 3), segment("P", 3, 2)}
	if diff := cmp.Diff(wantTimeline, got.Timeline); diff != "" {
		t.Errorf("timeline mismatch (-want +got):\n%s", diff)
	}
}

func TestRoundRobin(t *testing.T) {
	a := core.Process{ID: "A", Arrival: 0, Burst: 5}
	b := core.Process{ID: "B", Arrival: 1, Burst: 3}
	got := simulate(t, RR, []core.Process{b, a})

	wantTimeline := []core.TimelineSegment{
		segment("A", 0, 2),
		segment("B", 2, 2),
		segment("A", 4, 2),
		segment("B", 6, 1),
		segment("A", 7, 1),
	}
	if diff := cmp.Diff(wantTimeline, got.Timeline); diff != "" {
		t.Errorf("timeline mismatch (-want +got):\n%s", diff)
	}
	want := []core.ProcessResult{
		{Process: b, Completion: 7, Turnaround: 6, Waiting: 3, Response: 1},
		{Process: a, Completion: 8, Turnaround: 8, Waiting: 3, Response: 0},
	}
	if diff := cmp.Diff(want, got.Results); diff != "" {
		t.Errorf("results mismatch (-want +got):\n%s", diff)
	}
}

func TestRoundRobin_IdleGap(t *testing.T) {
	a := core.Process{ID: "A", Arrival: 2, Burst: 1}
	b := core.Process{ID: "B", Arrival: 6, Burst: 3}
	got := simulate(t, RR, []core.Process{a, b})

	wantTimeline := []core.TimelineSegment{idle(0, 2), segment("A", 2, 1), idle(3, 3), segment("B", 6, 3)}
	if diff := cmp.Diff(wantTimeline, got.Timeline); diff != "" {
		t.Errorf("timeline mismatch (-want +got):\n%s", diff)
	}
}

func TestBoundary_MaxTimeUnit(t *testing.T) {
	const maxTimeUnit = 500
	p := core.Process{ID: "P1", Arrival: maxTimeUnit, Burst: maxTimeUnit}

	for _, alg := range Algorithms {
		t.Run(string(alg), func(t *testing.T) {
			got := simulate(t, alg, []core.Process{p})
			if len(got.Results) != 1 || got.Results[0].Completion != 2*maxTimeUnit {
				t.Fatalf("results = %+v, want completion %d", got.Results, 2*maxTimeUnit)
			}
			wantTimeline := []core.TimelineSegment{idle(0, maxTimeUnit), segment("P1", maxTimeUnit, maxTimeUnit)}
			if diff := cmp.Diff(wantTimeline, got.Timeline); diff != "" {
				t.Errorf("timeline mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func randomProcesses(rng *rand.Rand, n int) []core.Process {
	processes := make([]core.Process, n)
	for i := range processes {
		processes[i] = core.Process{
			ID:      fmt.Sprintf("P%02d", i),
			Arrival: rng.Intn(30),
			Burst:   1 + rng.Intn(10),
		}
	}
	return processes
}

func TestSimulate_Invariants(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for round := 0; round < 50; round++ {
		processes := randomProcesses(rng, 1+rng.Intn(8))
		for _, alg := range Algorithms {
			got := simulate(t, alg, processes)

			if len(got.Results) != len(processes) {
				t.Fatalf("%s round %d: %d results for %d processes", alg, round, len(got.Results), len(processes))
			}
			seen := make(map[string]bool)
			lastCompletion := 0
			busy := 0
			for _, r := range got.Results {
				if seen[r.ID] {
					t.Errorf("%s round %d: duplicate result for %s", alg, round, r.ID)
				}
				seen[r.ID] = true
				if r.Waiting < 0 {
					t.Errorf("%s round %d: %s waiting = %d", alg, round, r.ID, r.Waiting)
				}
				if r.Turnaround != r.Waiting+r.Burst {
					t.Errorf("%s round %d: %s turnaround %d != waiting %d + burst %d", alg, round, r.ID, r.Turnaround, r.Waiting, r.Burst)
				}
				if r.Response < 0 || r.Response > r.Waiting {
					t.Errorf("%s round %d: %s response = %d, waiting = %d", alg, round, r.ID, r.Response, r.Waiting)
				}
				lastCompletion = max(lastCompletion, r.Completion)
				busy += r.Burst
			}

			total := 0
			for i, s := range got.Timeline {
				if i > 0 && got.Timeline[i-1].Occupant == s.Occupant {
					t.Errorf("%s round %d: adjacent segments share occupant %q", alg, round, s.Occupant)
				}
				total += s.Duration
			}
			if total != lastCompletion {
				t.Errorf("%s round %d: timeline covers %d units, last completion %d", alg, round, total, lastCompletion)
			}
			if got.Metric.UtilizationTime != busy {
				t.Errorf("%s round %d: utilization %d, want %d", alg, round, got.Metric.UtilizationTime, busy)
			}
		}
	}
}

func TestSimulate_DoesNotMutateInput(t *testing.T) {
	processes := []core.Process{
		{ID: "B", Arrival: 3, Burst: 2},
		{ID: "A", Arrival: 0, Burst: 4},
	}
	before := append([]core.Process(nil), processes...)

	for _, alg := range Algorithms {
		simulate(t, alg, processes)
	}
	if diff := cmp.Diff(before, processes); diff != "" {
		t.Errorf("input mutated (-before +after):\n%s", diff)
	}
}

func TestSimulate_EmptyInput(t *testing.T) {
	for _, alg := range Algorithms {
		strategy, err := New(alg, Options{TimeQuantum: 1})
		if err != nil {
			t.Fatalf("New(%s): %v", alg, err)
		}
		if _, err := Simulate(strategy, nil); !errors.Is(err, ErrInvalidInput) {
			t.Errorf("Simulate(%s, nil) error = %v, want ErrInvalidInput", alg, err)
		}
	}
}

func TestNew(t *testing.T) {
	if _, err := New("LOTTERY", Options{}); !errors.Is(err, ErrUnknownAlgorithm) {
		t.Errorf("New(LOTTERY) error = %v, want ErrUnknownAlgorithm", err)
	}
	if _, err := New(RR, Options{TimeQuantum: 0}); err == nil {
		t.Error("New(RR) with zero quantum should fail")
	}
	s, err := New(SRTF, Options{})
	if err != nil {
		t.Fatalf("New(SRTF): %v", err)
	}
	if s.Algorithm() != SRTF {
		t.Errorf("Algorithm() = %s, want SRTF", s.Algorithm())
	}
}

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		input string
		want  Algorithm
	}{
		{"fcfs", FCFS},
		{"FCFS", FCFS},
		{"sjf", SJFNP},
		{"SJF_NP", SJFNP},
		{"sjf-np", SJFNP},
		{" srtf ", SRTF},
		{"rr", RR},
		{"round-robin", RR},
	}
	for _, tt := range tests {
		got, err := ParseAlgorithm(tt.input)
		if err != nil {
			t.Errorf("ParseAlgorithm(%q): %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseAlgorithm(%q) = %s, want %s", tt.input, got, tt.want)
		}
	}

	if _, err := ParseAlgorithm("mlfq"); !errors.Is(err, ErrUnknownAlgorithm) {
		t.Errorf("ParseAlgorithm(mlfq) error = %v, want ErrUnknownAlgorithm", err)
	}
}
