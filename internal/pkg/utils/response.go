package utils

import (
	"github.com/gofiber/fiber/v2"
	"github.com/places-microservice/internal/domain"
	"github.com/places-microservice/internal/pkg/errors"
)

// SuccessResponse - конверт успешного ответа {success, data, pagination?}
type SuccessResponse struct {
	Success    bool               `json:"success"`
	Data       interface{}        `json:"data"`
	Pagination *domain.Pagination `json:"pagination,omitempty"`
}

// ErrorResponse - конверт ошибки {success, error}
type ErrorResponse struct {
	Success bool             `json:"success"`
	Error   *errors.AppError `json:"error"`
}

func SendSuccess(c *fiber.Ctx, data interface{}, pagination *domain.Pagination) error {
	return c.JSON(SuccessResponse{
		Success:    true,
		Data:       data,
		Pagination: pagination,
	})
}

func SendError(c *fiber.Ctx, err error) error {
	if appErr, ok := err.(*errors.AppError); ok {
		return c.Status(appErr.StatusCode).JSON(ErrorResponse{
			Success: false,
			Error:   appErr,
		})
	}

	// Unknown error - return 500
	return c.Status(500).JSON(ErrorResponse{
		Success: false,
		Error:   errors.ErrInternalServer,
	})
}
