package api

import (
	"bytes"
	"errors"
	"fmt"
	"math/rand"

	"github.com/gofiber/fiber/v2"
	"gonum.org/v1/plot"

	"github.com/taniabhat/OS-CA2-CPU-Scheduling-Simulator/config"
	"github.com/taniabhat/OS-CA2-CPU-Scheduling-Simulator/internal/chart"
	"github.com/taniabhat/OS-CA2-CPU-Scheduling-Simulator/internal/core"
	"github.com/taniabhat/OS-CA2-CPU-Scheduling-Simulator/internal/requests"
	"github.com/taniabhat/OS-CA2-CPU-Scheduling-Simulator/internal/schedulers"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	Priority(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	Simulate(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	Chart(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config}
}

// Register mounts the handler under router.
func Register(router fiber.Router, handler SchedulerHandler) {
	router.Post("/fcfs", handler.FirstComeFirstServe)
	router.Post("/sjf", handler.ShortestJobFirst)
	router.Post("/priority", handler.Priority)
	router.Post("/rr", handler.RoundRobin)
	router.Post("/simulate", handler.Simulate)
	router.Post("/all", handler.AllAlgorithms)
	router.Post("/chart", handler.Chart)
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.DisciplineFCFS)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.DisciplineSJF)
}

func (s *SchedulerHandlerImpl) Priority(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.DisciplinePriority)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.DisciplineRoundRobin)
}

// Simulate takes the algorithm from the request body.
func (s *SchedulerHandlerImpl) Simulate(ctx *fiber.Ctx) error {
	return s.schedule(ctx, "")
}

func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	request, err := s.parse(ctx, "")
	if err != nil {
		return badRequest(ctx, err)
	}
	all, err := schedulers.ScheduleAll(request)
	if err != nil {
		return failure(ctx, err)
	}
	return ctx.JSON(all)
}

// Chart responds with a PNG of the scheduled request: the Gantt chart, or
// the average times with ?kind=metrics.
func (s *SchedulerHandlerImpl) Chart(ctx *fiber.Ctx) error {
	kind := ctx.Query("kind", "gantt")
	if kind != "gantt" && kind != "metrics" {
		return badRequest(ctx, fmt.Errorf("unknown chart kind %q", kind))
	}
	request, err := s.parse(ctx, "")
	if err != nil {
		return badRequest(ctx, err)
	}
	response, err := schedulers.Schedule(request)
	if err != nil {
		return failure(ctx, err)
	}

	var p *plot.Plot
	if kind == "metrics" {
		p, err = chart.Metrics(response)
	} else {
		p, err = chart.Gantt(response, rand.New(rand.NewSource(s.config.ChartColorSeed)))
	}
	if err != nil {
		return failure(ctx, err)
	}
	var buf bytes.Buffer
	if err := chart.WritePNG(&buf, p, s.config.ChartWidthInches, s.config.ChartHeightInches); err != nil {
		return failure(ctx, err)
	}
	ctx.Set(fiber.HeaderContentType, "image/png")
	return ctx.Send(buf.Bytes())
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, discipline schedulers.Discipline) error {
	request, err := s.parse(ctx, discipline)
	if err != nil {
		return badRequest(ctx, err)
	}
	response, err := schedulers.Schedule(request)
	if err != nil {
		return failure(ctx, err)
	}
	return ctx.JSON(response)
}

// parse decodes the body and fills in what the route and the config imply.
func (s *SchedulerHandlerImpl) parse(ctx *fiber.Ctx, discipline schedulers.Discipline) (*requests.ScheduleRequests, error) {
	request := new(requests.ScheduleRequests)
	if err := ctx.BodyParser(request); err != nil {
		return nil, errors.New("invalid request format")
	}
	if discipline != "" {
		request.Algorithm = string(discipline)
	}
	// the config can switch preemption on for every request, never off
	request.Preemptive = request.Preemptive || s.config.Preemptive
	if request.Quantum == nil {
		quantum := s.config.RoundRobinTimeQuantum
		request.Quantum = &quantum
	}
	return request, nil
}

func badRequest(ctx *fiber.Ctx, err error) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
}

func failure(ctx *fiber.Ctx, err error) error {
	var validation *core.ValidationError
	if errors.As(err, &validation) ||
		errors.Is(err, schedulers.ErrEmptyInput) ||
		errors.Is(err, schedulers.ErrInvalidParameter) {
		return badRequest(ctx, err)
	}
	return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
}
