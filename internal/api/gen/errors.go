package gen

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/hbomb79/Marquee/internal/fault"
	"github.com/hbomb79/Marquee/pkg/logger"
	"github.com/labstack/echo/v4"
)

type APIError struct {
	// Human readable error display message
	Message string `json:"message"`

	// A machine readable and stable identifier for the error case being represented
	Code string `json:"code"`

	// Used to alter the HTTP response status in accordance with the error
	Status int `json:"-"`

	// Additional message for internal logging only. Will not be included in the message
	// sent to the user.
	InternalMessage string `json:"-"`
}

// Error satisifies the Go error interface and simply exposes the
// message contained by this APIError.
func (err APIError) Error() string {
	return fmt.Sprintf("api error: %s", err.Message)
}

var ErrAPIUnauthorized APIError = APIError{Status: http.StatusUnauthorized}

// GetHTTPErrorHandler returns an echo HTTP error handler which writes every
// failure as an error envelope. fault errors carry their own status and
// user-facing message, APIError and echo HTTP errors are converted as-is.
// Anything else is logged and reported as an internal server error.
func GetHTTPErrorHandler(fallbackHandler echo.HTTPErrorHandler) echo.HTTPErrorHandler {
	logger := logger.Get("API")
	return func(err error, ctx echo.Context) {
		if ctx.Response().Committed {
			return
		}

		apiErr := toAPIError(err)
		if apiErr.Status == 0 {
			apiErr.Status = http.StatusInternalServerError
		}
		if len(apiErr.Message) == 0 {
			apiErr.Message = http.StatusText(apiErr.Status)
		}
		if len(apiErr.Code) == 0 {
			apiErr.Code = http.StatusText(apiErr.Status)
		}
		if len(apiErr.InternalMessage) > 0 {
			logger.Errorf("%s %s failed (%d): %s\n", ctx.Request().Method, ctx.Request().URL.Path, apiErr.Status, apiErr.InternalMessage)
		}

		if writeErr := ctx.JSON(apiErr.Status, Envelope{Message: apiErr.Message, Code: apiErr.Code}); writeErr != nil {
			logger.Warnf("Failed to write error envelope for %s: %v. Falling back to default HTTP error handling\n", ctx.Request().RequestURI, writeErr)
			fallbackHandler(err, ctx)
		}
	}
}

func toAPIError(err error) APIError {
	var apiErr APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	var faultErr *fault.Error
	if errors.As(err, &faultErr) {
		out := APIError{Message: faultErr.Message, Code: faultErr.Kind.String(), Status: faultErr.Kind.Status()}
		if faultErr.Err != nil {
			out.InternalMessage = faultErr.Error()
		}
		return out
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		out := APIError{Status: httpErr.Code}
		if msg, ok := httpErr.Message.(string); ok {
			out.Message = msg
		}
		if httpErr.Internal != nil {
			out.InternalMessage = httpErr.Internal.Error()
		}
		return out
	}

	return APIError{Status: http.StatusInternalServerError, InternalMessage: err.Error()}
}
