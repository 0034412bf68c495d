package web

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// ValidationError marks an error as caller-caused. Handlers translate these
// to 400 with the specific message; everything else from the data layer
// collapses to the uniform database error.
type ValidationError string

func (e ValidationError) Error() string { return string(e) }

// Invalid builds a ValidationError.
func Invalid(format string, args ...interface{}) ValidationError {
	return ValidationError(fmt.Sprintf(format, args...))
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var v ValidationError
	return errors.As(err, &v)
}

// DatabaseErrorMessage is the uniform message returned for any store failure.
// Callers get the same body whether the connection dropped or a query failed;
// the detail goes to the log, not the wire.
const DatabaseErrorMessage = "Database error"

const databaseErrorHint = "verify the database is reachable and migrations have been applied"

// DatabaseError wraps a store failure into a 500 with the uniform message.
// The original error is kept as Internal so the logger can still see it.
func DatabaseError(err error) *echo.HTTPError {
	he := echo.NewHTTPError(http.StatusInternalServerError, DatabaseErrorMessage)
	he.Internal = err
	return he
}

// HTTPErrorHandler renders every error as the dashboard's JSON error shape:
// {"error": "<message>"}, plus a remediation hint on server errors.
func HTTPErrorHandler(logger zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		msg := "internal server error"

		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			switch m := he.Message.(type) {
			case string:
				msg = m
			case error:
				msg = m.Error()
			default:
				msg = fmt.Sprintf("%v", m)
			}
			if he.Internal != nil {
				logger.Error().Err(he.Internal).Int("status", code).Str("path", c.Request().URL.Path).Msg("request failed")
			}
		} else {
			logger.Error().Err(err).Str("path", c.Request().URL.Path).Msg("unhandled error")
		}

		if code == http.StatusNotFound && msg == "Not Found" {
			msg = "not found"
		}

		body := map[string]string{"error": msg}
		if code >= http.StatusInternalServerError {
			body["hint"] = databaseErrorHint
		}

		var writeErr error
		if c.Request().Method == http.MethodHead {
			writeErr = c.NoContent(code)
		} else {
			writeErr = c.JSON(code, body)
		}
		if writeErr != nil {
			logger.Error().Err(writeErr).Msg("failed to write error response")
		}
	}
}
