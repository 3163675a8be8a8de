package server

import (
	"net/http"

	"github.com/labstack/echo/v4"

	log "github.com/sirupsen/logrus"
)

func (s *Server) handleHealthcheck(c echo.Context) error {
	log.Debug("received healthcheck request")
	return c.String(http.StatusOK, "ok")
}
