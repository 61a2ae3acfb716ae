// Package response defines the unified JSON envelope returned by the API.
package response

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Envelope is the unified API response structure. Error denials carry the
// business error code in Error plus optional context fields describing why
// the request was rejected.
type Envelope struct {
	Success       bool     `json:"success"`
	Error         string   `json:"error,omitempty"`
	Message       string   `json:"message,omitempty"`
	Data          any      `json:"data,omitempty"`
	Details       string   `json:"details,omitempty"`
	RequiredRole  string   `json:"requiredRole,omitempty"`
	YourRole      string   `json:"yourRole,omitempty"`
	AllowedRoles  []string `json:"allowedRoles,omitempty"`
	ResourceOwner string   `json:"resourceOwner,omitempty"`
	CurrentUser   string   `json:"currentUser,omitempty"`
}

// Success writes a successful response.
func Success(c echo.Context, statusCode int, data any, message string) error {
	if message == "" {
		message = "Success"
	}

	return c.JSON(statusCode, Envelope{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// Fail writes a denial envelope. The caller fills the error code, message
// and any context fields; Success is forced to false.
func Fail(c echo.Context, statusCode int, env Envelope) error {
	env.Success = false
	env.Data = nil
	if env.Message == "" {
		env.Message = http.StatusText(statusCode)
	}

	return c.JSON(statusCode, env)
}

// Error writes a plain denial with just a code and message.
func Error(c echo.Context, statusCode int, errorCode, message string) error {
	return Fail(c, statusCode, Envelope{Error: errorCode, Message: message})
}

// BindingError reports a malformed request body.
func BindingError(c echo.Context, message string) error {
	return Error(c, http.StatusBadRequest, "VALIDATION_FAILED", message)
}
