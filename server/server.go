package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/lucsky/cuid"
	"github.com/truemediaorg/emotiondetector/config"
	"github.com/truemediaorg/emotiondetector/model"

	log "github.com/sirupsen/logrus"
)

const maxRequestBody = "1M"

type Classifier interface {
	Classify(ctx context.Context, text string) (model.EmotionResult, error)
}

// Server is the HTTP front for the emotion detector. One is built at startup
// and shared by every request, so it must not carry per-request state.
type Server struct {
	echo       *echo.Echo
	config     config.ServerConfig
	classifier Classifier
}

func NewServer(cfg config.ServerConfig, classifier Classifier) *Server {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Debug = cfg.Debug

	s := &Server{
		echo:       e,
		config:     cfg,
		classifier: classifier,
	}

	e.HTTPErrorHandler = s.handleError
	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: cuid.New}))
	e.Use(requestLogger())
	e.Use(middleware.Recover())
	e.Use(middleware.BodyLimit(maxRequestBody))

	s.registerRoutes()

	return s
}

func (s *Server) Start() error {
	log.WithField("address", s.config.Address()).Info("starting emotion detector server")
	if err := s.echo.Start(s.config.Address()); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.echo.ServeHTTP(w, r)
}
