package api

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// Envelope is the response shape shared by every endpoint. Payload
// fields (appointments, profile, doctors, ...) ride alongside it in the
// handler's JSON map.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// OK writes a success envelope merged with the given payload fields.
func OK(c echo.Context, status int, message string, fields map[string]interface{}) error {
	body := map[string]interface{}{"success": true}
	if message != "" {
		body["message"] = message
	}
	for k, v := range fields {
		body[k] = v
	}
	return c.JSON(status, body)
}

// Fail writes a failure envelope.
func Fail(c echo.Context, status int, message string) error {
	return c.JSON(status, Envelope{Success: false, Message: message})
}

// ErrorHandler converts every error that escapes a handler into the
// failure envelope. *Error values keep their status and message; echo
// HTTP errors keep their status; anything else becomes an opaque 500.
func ErrorHandler(logger zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		status := http.StatusInternalServerError
		message := "Something went wrong!"

		if apiErr := AsError(err); apiErr != nil {
			status = apiErr.StatusCode()
			message = apiErr.Message
			if apiErr.Kind == KindUnexpected {
				rid, _ := c.Get("request_id").(string)
				logger.Error().
					Err(apiErr.Err).
					Str("request_id", rid).
					Str("path", c.Request().URL.Path).
					Msg(apiErr.Message)
			}
		} else if httpErr, ok := err.(*echo.HTTPError); ok {
			status = httpErr.Code
			if m, ok := httpErr.Message.(string); ok {
				message = m
			}
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(status)
			return
		}
		_ = Fail(c, status, message)
	}
}
