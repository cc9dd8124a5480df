package middleware

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// RequestIDKey - ключ request id в locals и заголовках
const RequestIDKey = "request_id"

const requestIDHeader = "X-Request-ID"

// RequestID - middleware, проставляющий каждому запросу идентификатор.
// Клиентский X-Request-ID переиспользуется, иначе генерируется UUID.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		c.Locals(RequestIDKey, requestID)
		c.Set(requestIDHeader, requestID)

		return c.Next()
	}
}
