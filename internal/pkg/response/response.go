package response

import "github.com/gofiber/fiber/v2"

// The wire contract is fixed: success bodies are the raw row or array,
// confirmation bodies are {"message": ...}, every error is {"error": ...}.

// OK sends a 200 response with the payload as the body
func OK(c *fiber.Ctx, data interface{}) error {
	return c.JSON(data)
}

// Created sends a 201 response with the created row as the body
func Created(c *fiber.Ctx, data interface{}) error {
	return c.Status(fiber.StatusCreated).JSON(data)
}

// Message sends a 200 confirmation message
func Message(c *fiber.Ctx, message string) error {
	return c.JSON(fiber.Map{"message": message})
}

// Error sends an error response
func Error(c *fiber.Ctx, statusCode int, message string) error {
	return c.Status(statusCode).JSON(fiber.Map{"error": message})
}

// BadRequest sends a 400 bad request response
func BadRequest(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusBadRequest, message)
}

// Unauthorized sends a 401 unauthorized response
func Unauthorized(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusUnauthorized, message)
}

// Forbidden sends a 403 forbidden response
func Forbidden(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusForbidden, message)
}

// NotFound sends a 404 not found response
func NotFound(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusNotFound, message)
}

// InternalServerError sends a 500 internal server error response
func InternalServerError(c *fiber.Ctx, message string) error {
	return Error(c, fiber.StatusInternalServerError, message)
}
