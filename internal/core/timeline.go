package core

// Occupant identifies what held the processor during a time unit: a process
// id, or Idle.
type Occupant string

// Idle marks a time unit in which no process was eligible to run. Process ids
// are never empty, so the zero value cannot collide with one.
const Idle Occupant = ""

func (o Occupant) IsIdle() bool {
	return o == Idle
}

func (o Occupant) String() string {
	if o.IsIdle() {
		return "IDLE"
	}
	return string(o)
}

// TimelineSegment is a run of consecutive time units held by one occupant.
type TimelineSegment struct {
	Occupant Occupant `json:"occupant,omitempty"`
	Idle     bool     `json:"idle"`
	Start    int      `json:"start"`
	Duration int      `json:"duration"`
}

// End returns the first time unit after the segment.
func (s TimelineSegment) End() int {
	return s.Start + s.Duration
}

// Compress merges consecutive identical occupants of a unit trace into
// segments. The durations sum to len(trace) and no two adjacent segments
// share an occupant.
func Compress(trace []Occupant) []TimelineSegment {
	segments := make([]TimelineSegment, 0)
	for t, occ := range trace {
		if n := len(segments); n > 0 && segments[n-1].Occupant == occ {
			segments[n-1].Duration++
			continue
		}
		segments = append(segments, TimelineSegment{
			Occupant: occ,
			Idle:     occ.IsIdle(),
			Start:    t,
			Duration: 1,
		})
	}
	return segments
}
