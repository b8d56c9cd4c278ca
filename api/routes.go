package api

import (
	"errors"
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/google/uuid"

	"cpusched/config"
	"cpusched/internal/logging"
)

// NewApp builds the HTTP application serving the scheduler endpoints.
func NewApp(cfg *config.SchedulerConfig, logger *slog.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
	})
	app.Use(requestid.New(requestid.Config{
		Header:     fiber.HeaderXRequestID,
		Generator:  func() string { return "req_" + uuid.NewString()[:8] },
		ContextKey: requestIDKey,
	}))
	app.Use(requestLogger(logging.Component(logger, "http")))

	handler := NewSchedulerHandlerImpl(cfg, logger)

	api := app.Group("/api")
	v1 := api.Group("/v1")
	{
		v1.Get("/health", handler.Health)
		v1.Post("/fcfs", handler.FirstComeFirstServe)
		v1.Post("/sjf", handler.ShortestJobFirst)
		v1.Post("/srtf", handler.ShortestRemainingTimeFirst)
		v1.Post("/rr", handler.RoundRobin)
		v1.Post("/all", handler.AllAlgorithms)
	}

	// unmatched routes and methods go through errorHandler for the envelope
	app.Use(func(ctx *fiber.Ctx) error {
		return fiber.ErrNotFound
	})
	return app
}

func requestLogger(logger *slog.Logger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		start := time.Now()
		err := ctx.Next()

		status := ctx.Response().StatusCode()
		if err != nil {
			status = fiber.StatusInternalServerError
			var fe *fiber.Error
			if errors.As(err, &fe) {
				status = fe.Code
			}
		}
		logger.Info("request",
			"method", ctx.Method(),
			"path", ctx.Path(),
			"status", status,
			"duration", time.Since(start),
			"request_id", requestID(ctx),
		)
		return err
	}
}

func errorHandler(ctx *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		status = fe.Code
	}
	return respondError(ctx, status, &APIError{Code: errorCode(status), Message: err.Error()})
}
