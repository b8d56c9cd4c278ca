package core

// CPU records which process occupies the processor for every simulated
// time unit. The clock is the length of the recorded trace.
type CPU struct {
	trace    []Occupant
	firstRun map[string]int
}

type CpuMetric struct {
	TotalTime       int `json:"total_time"`
	UtilizationTime int `json:"utilization_time"`
	IdleTime        int `json:"idle_time"`
}

func NewCPU() *CPU {
	return &CPU{firstRun: make(map[string]int)}
}

// Clock returns the current simulated time.
func (c *CPU) Clock() int {
	return len(c.trace)
}

// Execute runs process id for the given number of units.
func (c *CPU) Execute(id string, units int) {
	if units <= 0 {
		return
	}
	if _, ok := c.firstRun[id]; !ok {
		c.firstRun[id] = c.Clock()
	}
	for i := 0; i < units; i++ {
		c.trace = append(c.trace, Occupant(id))
	}
}

// Idle leaves the processor unused for the given number of units.
func (c *CPU) Idle(units int) {
	for i := 0; i < units; i++ {
		c.trace = append(c.trace, Idle)
	}
}

// FirstRun reports the time process id was first dispatched.
func (c *CPU) FirstRun(id string) (int, bool) {
	t, ok := c.firstRun[id]
	return t, ok
}

// Trace returns the unit-resolution execution trace recorded so far.
func (c *CPU) Trace() []Occupant {
	return c.trace
}

// MeasureCPU summarises busy and idle time over a unit trace.
func MeasureCPU(trace []Occupant) CpuMetric {
	var idle int
	for _, occ := range trace {
		if occ.IsIdle() {
			idle++
		}
	}
	return CpuMetric{
		TotalTime:       len(trace),
		UtilizationTime: len(trace) - idle,
		IdleTime:        idle,
	}
}
