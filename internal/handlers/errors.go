package handlers

import (
	"errors"
	"log/slog"

	"github.com/ahmetcoskunkizilkaya/portfolio-backend/internal/dto"
	"github.com/getsentry/sentry-go"
	sentryfiber "github.com/getsentry/sentry-go/fiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"github.com/google/uuid"
)

const msgDatabaseFailed = "Database operation failed"

// ErrorHandler is the Fiber error handler. Client errors keep their message;
// server errors are logged and replaced by a generic one.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal server error"
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
		message = fe.Message
	}

	if code >= fiber.StatusInternalServerError {
		logServerError(c, "unhandled server error", err)
		message = "Internal server error"
	}

	return c.Status(code).JSON(dto.ErrorResponse{Error: message})
}

func respond(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(dto.ErrorResponse{Error: message})
}

// serverError logs err with request context, reports it to Sentry and
// responds with a 500 carrying message.
func serverError(c *fiber.Ctx, message string, err error) error {
	logServerError(c, message, err)
	return respond(c, fiber.StatusInternalServerError, message)
}

func logServerError(c *fiber.Ctx, msg string, err error) {
	// the log sink outlives the request, so detach from fasthttp's buffers
	requestID, _ := c.Locals("requestid").(string)
	requestID = utils.CopyString(requestID)
	slog.Error(msg,
		"request_id", requestID,
		"method", utils.CopyString(c.Method()),
		"path", utils.CopyString(c.Path()),
		"error", err.Error(),
	)
	if hub := sentryfiber.GetHubFromContext(c); hub != nil {
		hub.WithScope(func(scope *sentry.Scope) {
			scope.SetTag("request_id", requestID)
			hub.CaptureException(err)
		})
	}
}

// pathID parses a uuid route parameter. A malformed id cannot name a row, so
// callers answer it like a missing one.
func pathID(c *fiber.Ctx, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Params(name))
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

func invalidBody(c *fiber.Ctx) error {
	return respond(c, fiber.StatusBadRequest, "Invalid request body")
}
