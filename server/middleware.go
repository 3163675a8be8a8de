package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/truemediaorg/emotiondetector/metrics"

	log "github.com/sirupsen/logrus"
)

// requestLogger logs and counts every request once its response is written.
// Errors are handed to the error handler here so the final status is known.
func requestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			if err := next(c); err != nil {
				c.Error(err)
			}
			elapsed := time.Since(start)

			req := c.Request()
			status := c.Response().Status
			route := c.Path()
			if route == "" || status == http.StatusNotFound {
				route = "unmatched"
			}

			metrics.HTTPRequestsTotal.WithLabelValues(req.Method, route, strconv.Itoa(status)).Inc()
			metrics.HTTPRequestDuration.WithLabelValues(req.Method, route).Observe(elapsed.Seconds())

			log.WithField("requestID", c.Response().Header().Get(echo.HeaderXRequestID)).
				WithField("method", req.Method).
				WithField("path", req.URL.Path).
				WithField("status", status).
				WithField("latencyMs", elapsed.Milliseconds()).
				Info("handled request")
			return nil
		}
	}
}
