package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/go-derma-records/internal/logger"
	"github.com/MKhiriev/go-derma-records/internal/service"
)

// ServiceName is the name under which the record store reports its health
// in addition to the overall "" service.
const ServiceName = "derma.records.v1.RecordStore"

// Handler is the root gRPC transport handler.
//
// It serves the standard grpc.health.v1 service. The reported status
// follows the database: SERVING while pings succeed, NOT_SERVING otherwise.
type Handler struct {
	// services provides the health check of the storage.
	services *service.Services

	health *health.Server

	// logger is used for diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler]. The health status starts as
// NOT_SERVING until the first probe.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	h := &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}
	h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)

	return h
}

// Register attaches the handler's services to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// Watch probes the storage every interval until ctx is cancelled, then
// marks every service as NOT_SERVING for good.
func (h *Handler) Watch(ctx context.Context, interval time.Duration) {
	h.Probe(ctx)

	t := time.NewTicker(interval)
	defer t.Stop()

	for {
		select {
		case <-ctx.Done():
			h.health.Shutdown()
			return
		case <-t.C:
			h.Probe(ctx)
		}
	}
}

// Probe pings the storage once and updates the reported status.
func (h *Handler) Probe(ctx context.Context) {
	if err := h.services.HealthService.Ping(ctx); err != nil {
		h.logger.Warn().Err(err).Str("func", "*Handler.Probe").Msg("storage ping failed")
		h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)
		return
	}
	h.setStatus(healthpb.HealthCheckResponse_SERVING)
}

func (h *Handler) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)
}
