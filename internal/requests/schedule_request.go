package requests

import (
	"fmt"
	"strings"

	"cpusched/internal/core"
)

// Job is a process as submitted by a caller. Numeric fields are pointers so a
// missing value can be told apart from zero.
type Job struct {
	ProcessId   string `json:"id" yaml:"id"`
	ArrivalTime *int   `json:"arrival" yaml:"arrival"`
	BurstTime   *int   `json:"burst" yaml:"burst"`
}

type ScheduleRequests struct {
	Jobs []Job `json:"processes" yaml:"processes"`
}

// FieldError describes one problem with one submitted process.
type FieldError struct {
	ProcessId string `json:"process_id,omitempty"`
	Field     string `json:"field,omitempty"`
	Message   string `json:"message"`
}

// ValidationError collects every problem found in a request.
type ValidationError struct {
	Details []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Details))
	for _, d := range e.Details {
		if d.ProcessId != "" {
			msgs = append(msgs, fmt.Sprintf("process %q: %s", d.ProcessId, d.Message))
			continue
		}
		msgs = append(msgs, d.Message)
	}
	return "invalid processes: " + strings.Join(msgs, "; ")
}

// Validate checks the request against the engine's preconditions and returns
// the processes ready to simulate. Every problem is reported, not just the
// first; the returned error is a *ValidationError.
func (r ScheduleRequests) Validate(maxTimeUnit int) ([]core.Process, error) {
	var errs []FieldError
	if len(r.Jobs) == 0 {
		errs = append(errs, FieldError{Field: "processes", Message: "at least one process is required"})
	}

	seen := make(map[string]bool, len(r.Jobs))
	processes := make([]core.Process, 0, len(r.Jobs))
	for i, job := range r.Jobs {
		id := strings.TrimSpace(job.ProcessId)
		label := id
		if id == "" {
			label = fmt.Sprintf("#%d", i+1)
			errs = append(errs, FieldError{ProcessId: label, Field: "id", Message: "id must not be empty"})
		} else if seen[id] {
			errs = append(errs, FieldError{ProcessId: id, Field: "id", Message: "duplicate id"})
		}
		seen[id] = true

		errs = append(errs, checkRange(label, "arrival", job.ArrivalTime, 0, maxTimeUnit)...)
		errs = append(errs, checkRange(label, "burst", job.BurstTime, 1, maxTimeUnit)...)

		if job.ArrivalTime != nil && job.BurstTime != nil {
			processes = append(processes, core.Process{ID: id, Arrival: *job.ArrivalTime, Burst: *job.BurstTime})
		}
	}

	if len(errs) > 0 {
		return nil, &ValidationError{Details: errs}
	}
	return processes, nil
}

func checkRange(id, field string, value *int, lo, hi int) []FieldError {
	if value == nil {
		return []FieldError{{ProcessId: id, Field: field, Message: field + " is required"}}
	}
	if *value < lo || *value > hi {
		return []FieldError{{
			ProcessId: id,
			Field:     field,
			Message:   fmt.Sprintf("%s must be between %d and %d, got %d", field, lo, hi, *value),
		}}
	}
	return nil
}
