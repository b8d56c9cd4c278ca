package api

import (
	"errors"
	"log/slog"
	"sync"

	"github.com/gofiber/fiber/v2"

	"cpusched/config"
	"cpusched/internal/core"
	"cpusched/internal/logging"
	"cpusched/internal/requests"
	"cpusched/internal/responses"
	"cpusched/internal/schedulers"
)

type SchedulerHandler interface {
	FirstComeFirstServe(ctx *fiber.Ctx) error
	ShortestJobFirst(ctx *fiber.Ctx) error
	ShortestRemainingTimeFirst(ctx *fiber.Ctx) error
	RoundRobin(ctx *fiber.Ctx) error
	AllAlgorithms(ctx *fiber.Ctx) error
	Health(ctx *fiber.Ctx) error
}

type SchedulerHandlerImpl struct {
	config *config.SchedulerConfig
	logger *slog.Logger
}

func NewSchedulerHandlerImpl(config *config.SchedulerConfig, logger *slog.Logger) *SchedulerHandlerImpl {
	return &SchedulerHandlerImpl{config: config, logger: logging.Component(logger, "handler")}
}

func (s *SchedulerHandlerImpl) FirstComeFirstServe(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.FCFS)
}

func (s *SchedulerHandlerImpl) ShortestJobFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.SJFNP)
}

func (s *SchedulerHandlerImpl) ShortestRemainingTimeFirst(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.SRTF)
}

func (s *SchedulerHandlerImpl) RoundRobin(ctx *fiber.Ctx) error {
	return s.schedule(ctx, schedulers.RR)
}

// AllAlgorithms runs every discipline over the same processes. The strategies
// share no state, so they run concurrently.
func (s *SchedulerHandlerImpl) AllAlgorithms(ctx *fiber.Ctx) error {
	processes, ok, err := s.parseRequest(ctx)
	if !ok {
		return err
	}

	all := make([]responses.ScheduleResponse, len(schedulers.Algorithms))
	errs := make([]error, len(schedulers.Algorithms))
	var wg sync.WaitGroup
	for i, alg := range schedulers.Algorithms {
		wg.Add(1)
		go func(i int, alg schedulers.Algorithm) {
			defer wg.Done()
			all[i], errs[i] = s.run(alg, processes)
		}(i, alg)
	}
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		s.logger.Error("simulation failed", "request_id", requestID(ctx), "error", err)
		return respondError(ctx, fiber.StatusInternalServerError, &APIError{Code: codeInternal, Message: err.Error()})
	}
	return respondOK(ctx, all)
}

func (s *SchedulerHandlerImpl) Health(ctx *fiber.Ctx) error {
	return respondOK(ctx, fiber.Map{"status": "healthy"})
}

func (s *SchedulerHandlerImpl) schedule(ctx *fiber.Ctx, alg schedulers.Algorithm) error {
	processes, ok, err := s.parseRequest(ctx)
	if !ok {
		return err
	}

	response, err := s.run(alg, processes)
	if err != nil {
		s.logger.Error("simulation failed", "request_id", requestID(ctx), "algorithm", alg, "error", err)
		return respondError(ctx, fiber.StatusInternalServerError, &APIError{Code: codeInternal, Message: err.Error()})
	}
	return respondOK(ctx, response)
}

// parseRequest decodes and validates the body. When ok is false the error
// response has already been written and err is what the handler returns.
func (s *SchedulerHandlerImpl) parseRequest(ctx *fiber.Ctx) (processes []core.Process, ok bool, err error) {
	var request requests.ScheduleRequests
	if err := ctx.BodyParser(&request); err != nil {
		return nil, false, respondError(ctx, fiber.StatusBadRequest, &APIError{
			Code:    codeBadRequest,
			Message: "invalid request format",
		})
	}

	processes, err = request.Validate(s.config.MaxTimeUnit)
	if err != nil {
		var verr *requests.ValidationError
		if errors.As(err, &verr) {
			return nil, false, respondError(ctx, fiber.StatusBadRequest, &APIError{
				Code:    codeValidation,
				Message: "invalid processes",
				Details: verr.Details,
			})
		}
		return nil, false, err
	}
	return processes, true, nil
}

func (s *SchedulerHandlerImpl) run(alg schedulers.Algorithm, processes []core.Process) (responses.ScheduleResponse, error) {
	strategy, err := schedulers.New(alg, schedulers.Options{TimeQuantum: s.config.RoundRobinTimeQuantum})
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	schedule, err := schedulers.Simulate(strategy, processes)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	s.logger.Debug("simulated", "algorithm", alg, "processes", len(processes), "total_time", schedule.Metric.TotalTime)
	return schedulers.GenerateResponse(schedule), nil
}
