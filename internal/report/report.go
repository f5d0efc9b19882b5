// Package report renders a finished schedule as plain text: a Gantt line,
// the execution log and a per-process table.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/taniabhat/OS-CA2-CPU-Scheduling-Simulator/internal/responses"
)

func Render(w io.Writer, response responses.ScheduleResponse) {
	outputTitle(w, response.Algorithm)
	outputGantt(w, response.Timeline)
	outputLog(w, response.Timeline)
	outputSchedule(w, response)
}

// RenderAll writes one report per response, separated by a blank line.
func RenderAll(w io.Writer, all []responses.ScheduleResponse) {
	for i, response := range all {
		if i > 0 {
			_, _ = fmt.Fprintln(w)
		}
		Render(w, response)
	}
}

func outputTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

func outputGantt(w io.Writer, gantt []responses.SegmentResponse) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	_, _ = fmt.Fprint(w, "|")
	for i := range gantt {
		pid := gantt[i].ProcessId
		padding := strings.Repeat(" ", max(0, (8-len(pid))/2))
		_, _ = fmt.Fprint(w, padding, pid, padding, "|")
	}
	_, _ = fmt.Fprintln(w)
	for i := range gantt {
		_, _ = fmt.Fprint(w, formatTime(gantt[i].Start), "\t")
		if len(gantt)-1 == i {
			_, _ = fmt.Fprint(w, formatTime(gantt[i].End))
		}
	}
	_, _ = fmt.Fprintf(w, "\n\n")
}

func outputLog(w io.Writer, gantt []responses.SegmentResponse) {
	for _, s := range gantt {
		_, _ = fmt.Fprintf(w, "Time %s-%s: Process %s executing\n", formatTime(s.Start), formatTime(s.End), s.ProcessId)
	}
	_, _ = fmt.Fprintln(w)
}

func outputSchedule(w io.Writer, response responses.ScheduleResponse) {
	_, _ = fmt.Fprintln(w, "Schedule table")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Priority", "Burst", "Arrival", "Wait", "Turnaround", "Response", "Exit"})
	for _, d := range response.Details {
		table.Append([]string{
			d.ProcessId,
			formatTime(d.Priority),
			formatTime(d.BurstTime),
			formatTime(d.ArrivalTime),
			formatTime(d.WaitingTime),
			formatTime(d.TurnAroundTime),
			formatTime(d.ResponseTime),
			formatTime(d.CompletionTime),
		})
	}
	table.SetFooter([]string{"", "", "", "",
		fmt.Sprintf("Average\n%.2f", response.AverageWaitingTime),
		fmt.Sprintf("Average\n%.2f", response.AverageTurnAroundTime),
		fmt.Sprintf("Average\n%.2f", response.AverageResponseTime),
		fmt.Sprintf("Throughput\n%.2f/t", response.CpuThroughput)})
	table.Render()
	_, _ = fmt.Fprintf(w, "CPU utilization: %.2f%%  idle time: %s\n", response.CpuUtilization*100, formatTime(response.IdleTime))
}

func formatTime(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
