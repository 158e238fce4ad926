package server

import (
	"context"
	"fmt"
	"net"
	"time"

	"google.golang.org/grpc"

	"github.com/MKhiriev/go-derma-records/internal/config"
	myGRPC "github.com/MKhiriev/go-derma-records/internal/handler/grpc"
	"github.com/MKhiriev/go-derma-records/internal/logger"
)

// healthProbeInterval is how often the gRPC health status is refreshed
// from the database.
const healthProbeInterval = 10 * time.Second

type grpcServer struct {
	handler *myGRPC.Handler

	server          *grpc.Server
	gRPCNetListener net.Listener

	probeCtx  context.Context
	stopProbe context.CancelFunc

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) (*grpcServer, error) {
	listener, err := net.Listen("tcp", cfg.GRPCAddress)
	if err != nil {
		return nil, fmt.Errorf("listening on %s: %w", cfg.GRPCAddress, err)
	}

	server := grpc.NewServer()
	handler.Register(server)

	probeCtx, stopProbe := context.WithCancel(context.Background())

	return &grpcServer{
		handler:         handler,
		server:          server,
		gRPCNetListener: listener,
		probeCtx:        probeCtx,
		stopProbe:       stopProbe,
		logger:          logger,
	}, nil
}

func (g *grpcServer) RunServer() {
	go g.handler.Watch(g.probeCtx, healthProbeInterval)

	g.logger.Info().Str("address", g.gRPCNetListener.Addr().String()).Msg("gRPC server listening")
	if err := g.server.Serve(g.gRPCNetListener); err != nil {
		g.logger.Error().Err(err).Msg("gRPC server Serve")
	}
}

func (g *grpcServer) Shutdown() {
	g.logger.Info().Msg("gRPC server Shutdown")
	g.stopProbe()
	g.server.GracefulStop()
}
