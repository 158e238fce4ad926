package http

import (
	"time"

	"github.com/MKhiriev/go-derma-records/internal/logger"
	"github.com/MKhiriev/go-derma-records/internal/metrics"
	"github.com/MKhiriev/go-derma-records/internal/service"
)

type Handler struct {
	services *service.Services
	metrics  *metrics.Metrics

	// requestTimeout bounds every request; zero disables the limit.
	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, m *metrics.Metrics, requestTimeout time.Duration, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		metrics:        m,
		requestTimeout: requestTimeout,
		logger:         logger,
	}
}
