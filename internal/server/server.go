package server

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-derma-records/internal/config"
	"github.com/MKhiriev/go-derma-records/internal/handler"
	"github.com/MKhiriev/go-derma-records/internal/logger"
	"github.com/MKhiriev/go-derma-records/internal/workers"
)

type server struct {
	transports []transport
	workers    *workers.Workers
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, ws *workers.Workers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{workers: ws, logger: logger}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		servers.transports = append(servers.transports,
			transport{name: "HTTP", Server: newHTTPServer(handlers.HTTP.Init(), cfg, logger)})
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		gRPCServer, err := newGRPCServer(handlers.GRPC, cfg, logger)
		if err != nil {
			return nil, err
		}
		servers.transports = append(servers.transports, transport{name: "gRPC", Server: gRPCServer})
	}

	if len(servers.transports) == 0 {
		return nil, errNoTransports
	}

	return servers, nil
}

func (s *server) RunServer() {
	if err := s.run(); err != nil {
		s.logger.Error().Err(err).Msg("error running server")
	}
}

func (s *server) Shutdown() {
	for _, t := range s.transports {
		s.logger.Info().Str("transport", t.name).Msg("stopping server")
		t.Shutdown()
	}
}

func (s *server) run() error {
	if len(s.transports) == 0 {
		return errNoTransports
	}

	idleConnectionsClosed := make(chan struct{})
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	// listen for stop signals
	go func() {
		<-ctx.Done()

		// finish started servers
		s.Shutdown()

		close(idleConnectionsClosed)
	}()

	if s.workers != nil {
		s.logger.Info().Msg("Launching background workers")
		s.workers.Run(ctx)
	}

	for _, t := range s.transports {
		s.logger.Info().Str("transport", t.name).Msg("launching server")
		go t.RunServer()
	}

	<-idleConnectionsClosed
	if s.workers != nil {
		s.workers.Wait()
	}
	s.logger.Info().Msg("server Shutdown gracefully")

	return nil
}
