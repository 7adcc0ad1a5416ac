package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"

	"github.com/os-algorithms/schedsim/sim"
)

const (
	formatText = "text"
	formatJSON = "json"
	formatYAML = "yaml"
)

// writeResult renders res in the requested format.
func writeResult(w io.Writer, res *sim.SimulationResult, format string) error {
	switch format {
	case formatText:
		renderText(w, res)
		return nil
	case formatJSON:
		data, err := json.MarshalIndent(res, "", "  ")
		if err != nil {
			return fmt.Errorf("encoding result: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case formatYAML:
		data, err := yaml.Marshal(res)
		if err != nil {
			return fmt.Errorf("encoding result: %w", err)
		}
		_, err = w.Write(data)
		return err
	default:
		return fmt.Errorf("unknown output format %q (one of %s, %s, %s)", format, formatText, formatJSON, formatYAML)
	}
}

func renderText(w io.Writer, res *sim.SimulationResult) {
	_, _ = fmt.Fprintf(w, "Policy: %s\n\n", res.Policy())
	if seek, ok := res.Seek(); ok {
		outputSeek(w, seek)
		return
	}
	outputGantt(w, res.Timeline())
	outputMetrics(w, res.Metrics())
	if sum := res.TraceSummary(); sum != nil {
		_, _ = fmt.Fprintf(w, "Dispatches: %d  Preemptions: %d  Quantum expirations: %d  Context switches: %d\n",
			sum.TotalDispatches, sum.Preemptions, sum.QuantumExpirations, sum.ContextSwitches)
	}
}

// outputGantt draws one cell per interval with the boundary times beneath.
func outputGantt(w io.Writer, gantt []sim.GanttInterval) {
	const cell = 8
	_, _ = fmt.Fprintln(w, "Gantt chart")
	_, _ = fmt.Fprint(w, "|")
	for _, g := range gantt {
		left := (cell - len(g.Owner)) / 2
		right := cell - len(g.Owner) - left
		_, _ = fmt.Fprint(w, strings.Repeat(" ", max(left, 1)), g.Owner, strings.Repeat(" ", max(right, 1)), "|")
	}
	_, _ = fmt.Fprintln(w)
	for i, g := range gantt {
		width := max(cell, len(g.Owner)+2) + 1
		_, _ = fmt.Fprintf(w, "%-*d", width, g.Start)
		if i == len(gantt)-1 {
			_, _ = fmt.Fprint(w, g.End)
		}
	}
	_, _ = fmt.Fprintf(w, "\n\n")
}

func outputMetrics(w io.Writer, m sim.Metrics) {
	_, _ = fmt.Fprintln(w, "Metrics")
	rows := make([][]string, 0, len(m.Processes))
	for _, p := range m.Processes {
		rows = append(rows, []string{
			p.ID,
			fmt.Sprint(p.ArrivalTime),
			fmt.Sprint(p.BurstTime),
			fmt.Sprint(p.Priority),
			fmt.Sprint(p.CompletionTime),
			fmt.Sprint(p.TurnaroundTime),
			fmt.Sprint(p.WaitingTime),
			fmt.Sprint(p.ResponseTime),
		})
	}
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Arrival", "Burst", "Priority", "Completion", "Turnaround", "Waiting", "Response"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "", "Average",
		fmt.Sprintf("%.2f", m.AvgTurnaround),
		fmt.Sprintf("%.2f", m.AvgWaiting),
		fmt.Sprintf("%.2f", m.AvgResponse)})
	table.Render()
	_, _ = fmt.Fprintf(w, "Span: [%d,%d)  Idle: %d  Utilization: %.2f%%  Throughput: %.3f/t\n",
		m.Start, m.Makespan, m.IdleTime, 100*m.Utilization, m.Throughput)
}

func outputSeek(w io.Writer, seek sim.SeekResult) {
	_, _ = fmt.Fprintf(w, "Head start: %d  Max cylinder: %d\n", seek.HeadStart, seek.MaxCylinder)
	_, _ = fmt.Fprintf(w, "Service order: %s\n", joinTracks(seek.Sequence))
	_, _ = fmt.Fprintf(w, "Head path: %s\n\n", joinTracks(seek.Path))

	rows := make([][]string, 0, len(seek.Path))
	for i := 1; i < len(seek.Path); i++ {
		from, to := seek.Path[i-1], seek.Path[i]
		rows = append(rows, []string{fmt.Sprint(i), fmt.Sprint(from), fmt.Sprint(to), fmt.Sprint(abs(to - from))})
	}
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Step", "From", "To", "Distance"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "Total", fmt.Sprint(seek.TotalHeadMovement)})
	table.Render()
}

// renderComparison prints one aggregate row per CPU policy.
func renderComparison(w io.Writer, results []*sim.SimulationResult) {
	rows := make([][]string, 0, len(results))
	for _, res := range results {
		m := res.Metrics()
		switches := 0
		if sum := res.TraceSummary(); sum != nil {
			switches = sum.ContextSwitches
		}
		rows = append(rows, []string{
			res.Policy(),
			fmt.Sprintf("%.2f", m.AvgTurnaround),
			fmt.Sprintf("%.2f", m.AvgWaiting),
			fmt.Sprintf("%.2f", m.AvgResponse),
			fmt.Sprintf("%.2f%%", 100*m.Utilization),
			fmt.Sprint(switches),
		})
	}
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Policy", "Avg Turnaround", "Avg Waiting", "Avg Response", "Utilization", "Context Switches"})
	table.AppendBulk(rows)
	table.Render()
}

func joinTracks(tracks []int64) string {
	parts := make([]string, len(tracks))
	for i, t := range tracks {
		parts[i] = fmt.Sprint(t)
	}
	return strings.Join(parts, " -> ")
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}
