package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Response unified API response structure
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"` // User-friendly message
	Data    any    `json:"data,omitempty"`
	Token   string `json:"token,omitempty"` // Signed access token, auth endpoints only
}

// Data successful response carrying a payload
func Data(c echo.Context, statusCode int, data any) error {
	return c.JSON(statusCode, Response{
		Success: true,
		Data:    data,
	})
}

// Token successful response carrying a signed access token
func Token(c echo.Context, statusCode int, token string) error {
	return c.JSON(statusCode, Response{
		Success: true,
		Token:   token,
	})
}

// Message successful response carrying only a message
func Message(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, Response{
		Success: true,
		Message: message,
	})
}

// Error error response
func Error(c echo.Context, statusCode int, message string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, Response{
		Success: false,
		Message: message,
	})
}

// BadRequest 400 error
func BadRequest(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, message)
}

// BindingError binding error response
func BindingError(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, message)
}

// Unauthorized 401 error
func Unauthorized(c echo.Context, message string) error {
	return Error(c, http.StatusUnauthorized, message)
}

// NotFound 404 error
func NotFound(c echo.Context, message string) error {
	return Error(c, http.StatusNotFound, message)
}

// InternalServerError 500 error
func InternalServerError(c echo.Context, message string) error {
	return Error(c, http.StatusInternalServerError, message)
}
