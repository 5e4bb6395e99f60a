package httperr

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/labstack/echo/v4"
)

// ErrorHandler returns the echo.HTTPErrorHandler used as the single error
// funnel.  Tagged *Error values map to their status and shape; Echo's own
// routing errors keep their status with the conventional bodies; anything
// else is an unexpected failure answered with 500 and the raw error
// message.  When logErrors is true, unexpected failures are logged.
func ErrorHandler(logErrors bool) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		var apiErr *Error
		if errors.As(err, &apiErr) {
			if len(apiErr.Details) > 0 {
				_ = c.JSON(apiErr.Status, echo.Map{"errors": apiErr.Details})
				return
			}
			_ = c.JSON(apiErr.Status, echo.Map{"message": apiErr.Message})
			return
		}

		var echoErr *echo.HTTPError
		if errors.As(err, &echoErr) {
			msg := fmt.Sprint(echoErr.Message)
			if echoErr.Code == http.StatusNotFound {
				msg = "Route Not Found"
			}
			_ = c.JSON(echoErr.Code, echo.Map{"message": msg})
			return
		}

		if logErrors {
			log.Printf("global error handler: %v", err)
		}
		_ = c.JSON(http.StatusInternalServerError, echo.Map{"message": err.Error()})
	}
}
