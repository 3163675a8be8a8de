package server

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	log "github.com/sirupsen/logrus"
)

// handleError is the last stop for any error a handler or middleware returns.
// Every error leaves as a JSON body, never echo's default HTML or text.
func (s *Server) handleError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	status := http.StatusInternalServerError
	message := internalErrorMsg

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) && httpErr.Code < http.StatusInternalServerError {
		status = httpErr.Code
		switch status {
		case http.StatusNotFound:
			message = notFoundMsg
		case http.StatusMethodNotAllowed:
			message = methodNotAllowedMsg
		default:
			message = http.StatusText(status)
		}
	}

	if status >= http.StatusInternalServerError {
		log.WithField("requestID", c.Response().Header().Get(echo.HeaderXRequestID)).
			WithField("path", c.Request().URL.Path).
			Errorf("internal error: %v", err)
	}

	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(status)
	} else {
		writeErr = c.JSON(status, ErrorResponse{Error: message})
	}
	if writeErr != nil {
		log.Warnf("failed to write error response: %v", writeErr)
	}
}
