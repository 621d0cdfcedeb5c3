package handler

import (
	"github.com/MKhiriev/ynab-payee-manager/internal/config"
	"github.com/MKhiriev/ynab-payee-manager/internal/handler/http"
	"github.com/MKhiriev/ynab-payee-manager/internal/logger"
	"github.com/MKhiriev/ynab-payee-manager/internal/service"
)

// Handlers groups the transport handlers enabled by the configuration.
type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.ClientServices, cfg config.ClientServer, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	handlers := &Handlers{}

	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, logger)
	}

	if handlers.HTTP == nil {
		return nil, errNoHandlersAreCreated
	}

	return handlers, nil
}
