// Package render prints simulation results as a Gantt chart and a table.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"cpusched/internal/core"
	"cpusched/internal/responses"
)

const cellWidth = 8

// Schedule writes a titled Gantt chart and results table for one response.
func Schedule(w io.Writer, title string, response responses.ScheduleResponse) {
	Title(w, title)
	Gantt(w, response.Timeline)
	Table(w, response)
}

func Title(w io.Writer, title string) {
	_, _ = fmt.Fprintf(w, "%s\n%s\n", title, strings.Repeat("=", len(title)))
}

// Gantt writes one cell per segment with start times beneath each boundary.
func Gantt(w io.Writer, timeline []core.TimelineSegment) {
	if len(timeline) == 0 {
		_, _ = fmt.Fprintln(w, "(empty timeline)")
		return
	}

	var bars, scale strings.Builder
	bars.WriteString("|")
	for _, s := range timeline {
		bars.WriteString(center(s.Occupant.String(), cellWidth))
		bars.WriteString("|")
		scale.WriteString(fmt.Sprintf("%-*d", cellWidth+1, s.Start))
	}
	scale.WriteString(strconv.Itoa(timeline[len(timeline)-1].End()))

	_, _ = fmt.Fprintln(w, "Gantt schedule")
	_, _ = fmt.Fprintln(w, bars.String())
	_, _ = fmt.Fprintln(w, scale.String())
	_, _ = fmt.Fprintln(w)
}

// Table writes per-process results with averages and throughput in the footer.
func Table(w io.Writer, response responses.ScheduleResponse) {
	rows := make([][]string, 0, len(response.Details))
	for _, d := range response.Details {
		rows = append(rows, []string{
			d.ID,
			strconv.Itoa(d.Arrival),
			strconv.Itoa(d.Burst),
			strconv.Itoa(d.Completion),
			strconv.Itoa(d.Turnaround),
			strconv.Itoa(d.Waiting),
			strconv.Itoa(d.Response),
		})
	}

	_, _ = fmt.Fprintln(w, "Schedule table")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Arrival", "Burst", "Completion", "Turnaround", "Waiting", "Response"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "",
		fmt.Sprintf("Throughput\n%.2f/t", response.CpuThroughput),
		fmt.Sprintf("Average\n%.2f", response.AverageTurnAroundTime),
		fmt.Sprintf("Average\n%.2f", response.AverageWaitingTime),
		fmt.Sprintf("Average\n%.2f", response.AverageResponseTime)})
	table.Render()
	_, _ = fmt.Fprintf(w, "CPU utilization %.1f%%, idle %d of %d units\n\n",
		response.CpuUtilization*100, response.IdleTime, response.TotalTime)
}

func center(s string, width int) string {
	runes := []rune(s)
	if len(runes) >= width {
		return string(runes[:width])
	}
	left := (width - len(runes)) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-len(runes)-left)
}
