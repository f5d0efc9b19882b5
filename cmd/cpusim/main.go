// Command cpusim schedules the processes of a CSV file and prints the
// resulting Gantt chart and statistics.
//
//	cpusim [-config dir] [-algorithm fcfs|sjf|priority|rr|all] [-preemptive] [-quantum q] [-chart out.png] [-metrics out.png] processes.csv
//
// Each CSV row is "id,burst,arrival[,priority]".
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"

	"gonum.org/v1/plot"

	"github.com/taniabhat/OS-CA2-CPU-Scheduling-Simulator/config"
	"github.com/taniabhat/OS-CA2-CPU-Scheduling-Simulator/internal/chart"
	"github.com/taniabhat/OS-CA2-CPU-Scheduling-Simulator/internal/report"
	"github.com/taniabhat/OS-CA2-CPU-Scheduling-Simulator/internal/requests"
	"github.com/taniabhat/OS-CA2-CPU-Scheduling-Simulator/internal/schedulers"
)

var ErrInvalidArgs = errors.New("invalid args")

type options struct {
	configDir   string
	algorithm   string
	preemptive  bool
	quantum     float64
	chartPath   string
	metricsPath string
	file        string
}

func main() {
	opts, err := parseArgs(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}
	if err := run(os.Stdout, opts); err != nil {
		log.Fatal(err)
	}
}

func parseArgs(args []string) (options, error) {
	var opts options
	fs := flag.NewFlagSet("cpusim", flag.ContinueOnError)
	fs.StringVar(&opts.configDir, "config", ".", "directory holding config.yaml")
	fs.StringVar(&opts.algorithm, "algorithm", "all", "fcfs, sjf, priority, rr or all")
	fs.BoolVar(&opts.preemptive, "preemptive", false, "preempt for sjf and priority")
	fs.Float64Var(&opts.quantum, "quantum", 0, "round robin time quantum (default from config)")
	fs.StringVar(&opts.chartPath, "chart", "", "write a PNG Gantt chart to this path")
	fs.StringVar(&opts.metricsPath, "metrics", "", "write a PNG bar chart of the average times to this path")
	if err := fs.Parse(args); err != nil {
		return options{}, fmt.Errorf("%w: %v", ErrInvalidArgs, err)
	}
	if fs.NArg() != 1 {
		return options{}, fmt.Errorf("%w: must give a scheduling file to process", ErrInvalidArgs)
	}
	opts.file = fs.Arg(0)
	return opts, nil
}

func run(w io.Writer, opts options) error {
	cfg, err := config.LoadSchedulerConfig(opts.configDir)
	if err != nil {
		return err
	}

	f, err := os.Open(opts.file)
	if err != nil {
		return fmt.Errorf("%v: error opening scheduling file", err)
	}
	defer func() {
		if err := f.Close(); err != nil {
			log.Printf("%v: error closing scheduling file", err)
		}
	}()

	jobs, err := requests.LoadJobs(f)
	if err != nil {
		return err
	}
	quantum := cfg.RoundRobinTimeQuantum
	if opts.quantum != 0 {
		quantum = opts.quantum
	}
	request := &requests.ScheduleRequests{
		Algorithm:  opts.algorithm,
		Preemptive: opts.preemptive || cfg.Preemptive,
		Quantum:    &quantum,
		Jobs:       jobs,
	}

	if opts.algorithm == "all" {
		all, err := schedulers.ScheduleAll(request)
		if err != nil {
			return err
		}
		report.RenderAll(w, all)
		return nil
	}

	response, err := schedulers.Schedule(request)
	if err != nil {
		return err
	}
	report.Render(w, response)

	if opts.chartPath != "" {
		p, err := chart.Gantt(response, rand.New(rand.NewSource(cfg.ChartColorSeed)))
		if err != nil {
			return err
		}
		if err := writeChart(opts.chartPath, p, cfg); err != nil {
			return err
		}
	}
	if opts.metricsPath != "" {
		p, err := chart.Metrics(response)
		if err != nil {
			return err
		}
		if err := writeChart(opts.metricsPath, p, cfg); err != nil {
			return err
		}
	}
	return nil
}

func writeChart(path string, p *plot.Plot, cfg *config.SchedulerConfig) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := chart.WritePNG(out, p, cfg.ChartWidthInches, cfg.ChartHeightInches); err != nil {
		_ = out.Close()
		return err
	}
	return out.Close()
}
