package utils

import (
	"time"

	"github.com/gofiber/fiber/v2"
)

// ResponseDto is the body of operations that return no resource.
type ResponseDto struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
}

// ErrorDto is the body of every non-validation error response.
type ErrorDto struct {
	APIPath    string    `json:"apiPath"`
	StatusCode int       `json:"statusCode"`
	Message    string    `json:"message"`
	Timestamp  time.Time `json:"timestamp"`
}

// Respond sends a JSON response with the specified status code.
func Respond(c *fiber.Ctx, status int, data interface{}) error {
	return c.Status(status).JSON(data)
}

// Success sends a successful JSON response.
func Success(c *fiber.Ctx, data interface{}) error {
	return Respond(c, fiber.StatusOK, data)
}

func Created(c *fiber.Ctx, data interface{}) error {
	return Respond(c, fiber.StatusCreated, data)
}

// Message sends a ResponseDto with the given status.
func Message(c *fiber.Ctx, status int, message string) error {
	return Respond(c, status, ResponseDto{StatusCode: status, Message: message})
}

// Error sends an ErrorDto for the current request path.
func Error(c *fiber.Ctx, status int, message string) error {
	return Respond(c, status, ErrorDto{
		APIPath:    c.Path(),
		StatusCode: status,
		Message:    message,
		Timestamp:  time.Now().UTC(),
	})
}

// ValidationFailed sends a field to message map with status 400.
func ValidationFailed(c *fiber.Ctx, errs map[string]string) error {
	return Respond(c, fiber.StatusBadRequest, errs)
}

// BadRequest sends an error response with status 400.
func BadRequest(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadRequest, message)
}

// Unauthorized sends an error response with status 401.
func Unauthorized(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusUnauthorized, message)
}

// Forbidden sends an error response with status 403.
func Forbidden(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusForbidden, message)
}

// NotFound sends an error response with status 404.
func NotFound(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusNotFound, message)
}

// InternalError sends an error response with status 500.
func InternalError(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusInternalServerError, message)
}
