package http

import (
	"time"

	"github.com/MKhiriev/go-intern-verify/internal/config"
	"github.com/MKhiriev/go-intern-verify/internal/logger"
	"github.com/MKhiriev/go-intern-verify/internal/service"
	"github.com/MKhiriev/go-intern-verify/internal/utils"
)

type Handler struct {
	services *service.Services

	// signer is nil when no hash key is configured.
	signer         *utils.Signer
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.ServerConfig, logger *logger.Logger) *Handler {
	h := &Handler{
		services:       services,
		requestTimeout: cfg.Server.RequestTimeout,
		logger:         logger,
	}
	if cfg.App.HashKey != "" {
		h.signer = utils.NewSigner(cfg.App.HashKey)
	}

	logger.Info().
		Bool("signing", h.signer != nil).
		Dur("request_timeout", h.requestTimeout).
		Msg("http handler created")
	return h
}
