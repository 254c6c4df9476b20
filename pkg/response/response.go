package response

import "github.com/gofiber/fiber/v2"

// Body is the success envelope
type Body struct {
	StatusCode int         `json:"statusCode"`
	Data       interface{} `json:"data"`
	Message    string      `json:"message"`
	Success    bool        `json:"success"`
}

// JSON write a success envelope with the given status
func JSON(c *fiber.Ctx, statusCode int, data interface{}, message string) error {
	if data == nil {
		data = fiber.Map{}
	}
	return c.Status(statusCode).JSON(Body{
		StatusCode: statusCode,
		Data:       data,
		Message:    message,
		Success:    statusCode < 400,
	})
}

// OK 200
func OK(c *fiber.Ctx, data interface{}, message string) error {
	return JSON(c, fiber.StatusOK, data, message)
}

// Created 201
func Created(c *fiber.Ctx, data interface{}, message string) error {
	return JSON(c, fiber.StatusCreated, data, message)
}
