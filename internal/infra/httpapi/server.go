package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// Server runs the HTTP API in the background.
type Server struct {
	srv    *http.Server
	logger *logrus.Entry
}

func NewServer(addr string, handler http.Handler, logger *logrus.Entry) *Server {
	return &Server{
		srv: &http.Server{
			Addr:              addr,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: logger.WithField("component", "http_server"),
	}
}

func (s *Server) Start() {
	go func() {
		s.logger.WithField("addr", s.srv.Addr).Info("HTTP API listening")
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.WithError(err).Error("HTTP API stopped unexpectedly")
		}
	}()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.srv.Shutdown(ctx)
}
