// Package chart draws schedules as PNG images. Segment colours come from a
// caller-supplied random source so the same seed always yields the same picture.
package chart

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"math/rand"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/taniabhat/OS-CA2-CPU-Scheduling-Simulator/internal/responses"
)

var ErrEmptyTimeline = errors.New("nothing to draw")

// Pastel is the palette segment colours are drawn from.
var Pastel = []color.Color{
	color.RGBA{R: 0xFF, G: 0xB6, B: 0xC1, A: 0xFF},
	color.RGBA{R: 0x87, G: 0xCE, B: 0xEB, A: 0xFF},
	color.RGBA{R: 0x98, G: 0xFB, B: 0x98, A: 0xFF},
	color.RGBA{R: 0xDD, G: 0xA0, B: 0xDD, A: 0xFF},
	color.RGBA{R: 0xF0, G: 0xE6, B: 0x8C, A: 0xFF},
}

const barHeight = 0.8

// Colors picks n colours from Pastel using rng.
func Colors(n int, rng *rand.Rand) []color.Color {
	out := make([]color.Color, n)
	for i := range out {
		out[i] = Pastel[rng.Intn(len(Pastel))]
	}
	return out
}

// Gantt draws one row per process, in order of first dispatch, with a bar
// for every segment of the timeline.
func Gantt(response responses.ScheduleResponse, rng *rand.Rand) (*plot.Plot, error) {
	if len(response.Timeline) == 0 {
		return nil, ErrEmptyTimeline
	}

	p := plot.New()
	p.Title.Text = response.Algorithm
	p.X.Label.Text = "Time"
	p.X.Min = 0

	rows := make(map[string]float64)
	ticks := make([]plot.Tick, 0)
	for _, s := range response.Timeline {
		if _, ok := rows[s.ProcessId]; !ok {
			rows[s.ProcessId] = float64(len(rows))
			ticks = append(ticks, plot.Tick{Value: rows[s.ProcessId], Label: s.ProcessId})
		}
	}

	colors := Colors(len(response.Timeline), rng)
	labels := plotter.XYLabels{
		XYs:    make(plotter.XYs, 0, len(response.Timeline)),
		Labels: make([]string, 0, len(response.Timeline)),
	}
	for i, s := range response.Timeline {
		y := rows[s.ProcessId]
		bar, err := plotter.NewPolygon(plotter.XYs{
			{X: s.Start, Y: y - barHeight/2},
			{X: s.End, Y: y - barHeight/2},
			{X: s.End, Y: y + barHeight/2},
			{X: s.Start, Y: y + barHeight/2},
		})
		if err != nil {
			return nil, fmt.Errorf("segment %d of %s: %w", i, s.ProcessId, err)
		}
		bar.Color = colors[i]
		bar.LineStyle.Width = vg.Points(0.5)
		p.Add(bar)

		labels.XYs = append(labels.XYs, plotter.XY{X: s.Start + s.Duration/2, Y: y})
		labels.Labels = append(labels.Labels, s.ProcessId)
	}

	text, err := plotter.NewLabels(labels)
	if err != nil {
		return nil, err
	}
	p.Add(text)

	p.Y.Min = -barHeight
	p.Y.Max = float64(len(rows)-1) + barHeight
	p.Y.Tick.Marker = plot.ConstantTicks(ticks)
	return p, nil
}

// Metrics draws the average waiting, turnaround and response times as bars.
func Metrics(response responses.ScheduleResponse) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = response.Algorithm
	p.Y.Label.Text = "Time"
	p.X.Label.Text = "Metrics"

	values := plotter.Values{response.AverageWaitingTime, response.AverageTurnAroundTime, response.AverageResponseTime}
	barChart, err := plotter.NewBarChart(values, vg.Points(50))
	if err != nil {
		return nil, err
	}
	barChart.Color = Pastel[1]
	p.Add(barChart)
	p.NominalX("Waiting", "Turnaround", "Response")
	return p, nil
}

// WritePNG encodes p at the given size in inches.
func WritePNG(w io.Writer, p *plot.Plot, widthInches, heightInches float64) error {
	wt, err := p.WriterTo(vg.Length(widthInches)*vg.Inch, vg.Length(heightInches)*vg.Inch, "png")
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}
