package utils

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

// Success sends the standard success envelope: success:true plus any
// payload fields.
func Success(c *fiber.Ctx, fields fiber.Map) error {
	body := fiber.Map{"success": true}
	for k, v := range fields {
		body[k] = v
	}
	return c.Status(fiber.StatusOK).JSON(body)
}

// Fail sends the standard failure envelope with the given status.
func Fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"errors":  message,
	})
}

// SoftFail sends a failure envelope with HTTP 200. Login uses this: wrong
// credentials are an application-level failure, not an HTTP one.
func SoftFail(c *fiber.Ctx, message string) error {
	return Fail(c, fiber.StatusOK, message)
}

// ServerError logs the underlying error and sends an opaque 500 envelope.
func ServerError(c *fiber.Ctx, err error) error {
	log.Printf("%s %s: %v", c.Method(), c.Path(), err)
	return Fail(c, fiber.StatusInternalServerError, "Server error")
}

// ErrorResponseStruct defines the schema for error responses
type ErrorResponseStruct struct {
	Success bool   `json:"success"`
	Errors  string `json:"errors"`
}

// TokenResponseStruct defines the schema for signup/login responses
type TokenResponseStruct struct {
	Success bool   `json:"success"`
	Token   string `json:"token"`
}

// MessageResponseStruct defines the schema for mutation success responses
type MessageResponseStruct struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
