// Package api exposes the scheduling policies over HTTP. Every request runs
// its own simulation; handlers share nothing but their read-only Config.
package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sirupsen/logrus"

	"github.com/os-algorithms/schedsim/sim"
)

// Config holds the defaults applied to requests that omit them.
type Config struct {
	DefaultQuantum     int64 // round-robin quantum when a request sends none
	DefaultMaxCylinder int64 // C-SCAN cylinder bound when a request sends none
}

// CPURequest is the body of the CPU policy endpoints.
type CPURequest struct {
	Processes []sim.ProcessSpec `json:"processes"`
	Quantum   int64             `json:"quantum"`
}

// DiskRequest is the body of the C-SCAN endpoint. MaxCylinder is a pointer so
// that an explicit 0 can be told apart from an omitted field.
type DiskRequest struct {
	HeadStart       int64   `json:"head_start"`
	MaxCylinder     *int64  `json:"max_cylinder"`
	Requests        []int64 `json:"requests"`
	SweepToBoundary bool    `json:"sweep_to_boundary"`
}

// SchedulerHandler serves one endpoint per policy.
type SchedulerHandler interface {
	PriorityPreemptive(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	CircularScan(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	Policies(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config Config
}

func NewSchedulerHandlerImpl(config Config) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config}
}

// NewApp builds a fiber app with the v1 routes registered.
func NewApp(config Config) *fiber.App {
	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	Register(app, NewSchedulerHandlerImpl(config))
	return app
}

// Register mounts h under /api/v1.
func Register(app *fiber.App, h SchedulerHandler) {
	v1 := app.Group("/api").Group("/v1")
	v1.Post("/priority", h.PriorityPreemptive)
	v1.Post("/rr", h.RoundRobin)
	v1.Post("/cscan", h.CircularScan)
	v1.Post("/all", h.AllAlgorithms)
	v1.Get("/policies", h.Policies)
}

func (s *SchedulerHandlerImpl) PriorityPreemptive(ctx *fiber.Ctx) error {
	var request CPURequest
	if err := ctx.BodyParser(&request); err != nil {
		return badRequest(ctx, errInvalidFormat)
	}
	result, err := sim.RunPriorityPreemptive(request.Processes)
	if err != nil {
		return badRequest(ctx, err)
	}
	return ctx.JSON(result)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	var request CPURequest
	if err := ctx.BodyParser(&request); err != nil {
		return badRequest(ctx, errInvalidFormat)
	}
	result, err := sim.RunRoundRobin(request.Processes, s.quantum(request.Quantum))
	if err != nil {
		return badRequest(ctx, err)
	}
	return ctx.JSON(result)
}

func (s *SchedulerHandlerImpl) CircularScan(ctx *fiber.Ctx) error {
	var request DiskRequest
	if err := ctx.BodyParser(&request); err != nil {
		return badRequest(ctx, errInvalidFormat)
	}
	w := sim.DiskWorkload{
		HeadStart:       request.HeadStart,
		MaxCylinder:     s.config.DefaultMaxCylinder,
		Requests:        request.Requests,
		SweepToBoundary: request.SweepToBoundary,
	}
	if request.MaxCylinder != nil {
		w.MaxCylinder = *request.MaxCylinder
	}
	result, err := sim.RunCircularScan(w)
	if err != nil {
		return badRequest(ctx, err)
	}
	return ctx.JSON(result)
}

// AllAlgorithms runs every CPU policy on the same process set.
func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	var request CPURequest
	if err := ctx.BodyParser(&request); err != nil {
		return badRequest(ctx, errInvalidFormat)
	}
	w := sim.Workload{Processes: request.Processes, Quantum: s.quantum(request.Quantum)}
	results := make(map[string]*sim.SimulationResult)
	for _, name := range sim.CPUSchedulerNames() {
		result, err := sim.NewScheduler(name).Run(w)
		if err != nil {
			return badRequest(ctx, err)
		}
		results[name] = result
	}
	return ctx.JSON(fiber.Map{"results": results})
}

func (s *SchedulerHandlerImpl) Policies(ctx *fiber.Ctx) error {
	return ctx.JSON(fiber.Map{
		"policies": sim.ValidSchedulerNames(),
		"defaults": fiber.Map{
			"quantum":      s.config.DefaultQuantum,
			"max_cylinder": s.config.DefaultMaxCylinder,
		},
	})
}

func (s *SchedulerHandlerImpl) quantum(q int64) int64 {
	if q == 0 {
		return s.config.DefaultQuantum
	}
	return q
}

var errInvalidFormat = errors.New("invalid request format")

func badRequest(ctx *fiber.Ctx, err error) error {
	logrus.Debugf("%s %s: %v", ctx.Method(), ctx.Path(), err)
	return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
}
