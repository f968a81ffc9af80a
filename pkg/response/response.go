package response

import "github.com/labstack/echo/v4"

// Envelope is the uniform wrapper around every response body
type Envelope struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// Success writes a success envelope with a fixed per-operation message
func Success(c echo.Context, statusCode int, message string, data interface{}) error {
	return c.JSON(statusCode, Envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Error writes a failure envelope. Message must never carry internal error
// text for store failures.
func Error(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, Envelope{
		Success: false,
		Message: message,
	})
}
