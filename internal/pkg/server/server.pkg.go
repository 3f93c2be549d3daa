package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"timeservice/internal/pkg/helper"
	"timeservice/internal/pkg/logger"
)

// Server is a named HTTP listener. Start reports its own fatal error on a
// shared channel so a process running more than one listener can see which
// one died instead of silently losing it.
type Server struct {
	name     string
	instance string
	log      *logger.Logger
	srv      *http.Server
}

func New(name string, port int, handler http.Handler, log *logger.Logger) *Server {
	instance, err := helper.GenerateID()
	if err != nil {
		instance = "-"
	}
	return &Server{
		name:     name,
		instance: instance,
		log:      log,
		srv: &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: handler,
		},
	}
}

func (s *Server) Start(errs chan<- error) {
	s.log.Info.Printf("%s starting on %s (instance %s)", s.name, s.srv.Addr, s.instance)
	go func() {
		if err := s.srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- fmt.Errorf("%s: %w", s.name, err)
		}
	}()
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info.Printf("%s shutting down", s.name)
	return s.srv.Shutdown(ctx)
}

func (s *Server) Name() string {
	return s.name
}
