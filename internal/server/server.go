package server

import (
	"context"

	"github.com/MKhiriev/ynab-payee-manager/internal/config"
	"github.com/MKhiriev/ynab-payee-manager/internal/handler"
	"github.com/MKhiriev/ynab-payee-manager/internal/logger"
)

type server struct {
	httpServer *httpServer
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.ClientServer, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := new(server)

	if cfg.HTTPAddress != "" && handlers != nil && handlers.HTTP != nil {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}

	if servers.httpServer == nil {
		return nil, errNoServersAreCreated
	}

	servers.logger = logger

	return servers, nil
}

func (s *server) Run(ctx context.Context) error {
	s.logger.Info().Msg("Launching HTTP server")
	if err := s.httpServer.Run(ctx); err != nil {
		s.logger.Err(err).Msg("error running server")
		return err
	}
	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}
