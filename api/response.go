package api

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"cpusched/internal/requests"
)

const requestIDKey = "requestid"

// Envelope wraps every response body.
type Envelope struct {
	Status    string      `json:"status"`
	RequestID string      `json:"request_id"`
	Timestamp time.Time   `json:"timestamp"`
	Data      interface{} `json:"data,omitempty"`
	Error     *APIError   `json:"error,omitempty"`
}

type APIError struct {
	Code    string                `json:"code"`
	Message string                `json:"message"`
	Details []requests.FieldError `json:"details,omitempty"`
}

const (
	codeBadRequest = "BAD_REQUEST"
	codeValidation = "VALIDATION_ERROR"
	codeNotFound   = "NOT_FOUND"
	codeInternal   = "INTERNAL"
)

func requestID(ctx *fiber.Ctx) string {
	id, _ := ctx.Locals(requestIDKey).(string)
	return id
}

func respondOK(ctx *fiber.Ctx, data interface{}) error {
	return ctx.Status(fiber.StatusOK).JSON(Envelope{
		Status:    "ok",
		RequestID: requestID(ctx),
		Timestamp: time.Now().UTC(),
		Data:      data,
	})
}

func respondError(ctx *fiber.Ctx, status int, apiErr *APIError) error {
	return ctx.Status(status).JSON(Envelope{
		Status:    "error",
		RequestID: requestID(ctx),
		Timestamp: time.Now().UTC(),
		Error:     apiErr,
	})
}

func errorCode(status int) string {
	switch status {
	case fiber.StatusNotFound:
		return codeNotFound
	case fiber.StatusBadRequest, fiber.StatusUnprocessableEntity, fiber.StatusMethodNotAllowed:
		return codeBadRequest
	}
	return codeInternal
}
