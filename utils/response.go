package utils

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// APIResponse defines the common structure returned by the API.
type APIResponse struct {
	Status  string      `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
	Meta    interface{} `json:"meta,omitempty"`
}

type PaginationMeta struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
}

// SuccessResponse sends a successful JSON response with the provided status code, message and data.
func SuccessResponse(c *fiber.Ctx, statusCode int, message string, data interface{}) error {
	if statusCode == 0 {
		statusCode = fiber.StatusOK
	}

	response := APIResponse{
		Status:  "success",
		Message: message,
		Data:    data,
	}

	return c.Status(statusCode).JSON(response)
}

// PaginatedResponse sends a successful JSON response with pagination metadata.
func PaginatedResponse(c *fiber.Ctx, statusCode int, message string, data interface{}, meta PaginationMeta) error {
	if statusCode == 0 {
		statusCode = fiber.StatusOK
	}

	response := APIResponse{
		Status:  "success",
		Message: message,
		Data:    data,
		Meta:    meta,
	}

	return c.Status(statusCode).JSON(response)
}

// ErrorResponse sends an error JSON response with the provided status code, message and error details.
func ErrorResponse(c *fiber.Ctx, statusCode int, message string, errDetail interface{}) error {
	if statusCode == 0 {
		statusCode = fiber.StatusInternalServerError
	}

	response := APIResponse{
		Status:  "error",
		Message: message,
		Errors:  errDetail,
	}

	return c.Status(statusCode).JSON(response)
}

// IsDuplicateError reports whether err is a unique constraint violation
// (MySQL error 1062 text atau sqlite "UNIQUE constraint failed").
func IsDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate entry") || strings.Contains(msg, "unique constraint")
}
