package gen

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// Envelope wraps every response body sent by the API.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func OK(ec echo.Context, message string, data any) error {
	return ec.JSON(http.StatusOK, Envelope{Success: true, Message: message, Data: data})
}

func Created(ec echo.Context, message string, data any) error {
	return ec.JSON(http.StatusCreated, Envelope{Success: true, Message: message, Data: data})
}

// Message responds with a successful envelope carrying only a message.
func Message(ec echo.Context, message string) error {
	return ec.JSON(http.StatusOK, Envelope{Success: true, Message: message})
}
