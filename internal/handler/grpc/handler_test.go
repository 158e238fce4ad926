package grpc

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/go-derma-records/internal/logger"
	"github.com/MKhiriev/go-derma-records/internal/service"
)

type switchablePinger struct {
	err error
}

func (p *switchablePinger) Ping(context.Context) error { return p.err }

func newTestHandler(p *switchablePinger) *Handler {
	return NewHandler(&service.Services{HealthService: p}, logger.Nop())
}

func checkStatus(t *testing.T, h *Handler, name string) healthpb.HealthCheckResponse_ServingStatus {
	t.Helper()

	resp, err := h.health.Check(context.Background(), &healthpb.HealthCheckRequest{Service: name})
	require.NoError(t, err)
	return resp.GetStatus()
}

func TestHandler_StartsNotServing(t *testing.T) {
	h := newTestHandler(&switchablePinger{})

	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, checkStatus(t, h, ""))
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, checkStatus(t, h, ServiceName))
}

func TestHandler_ProbeFollowsStorage(t *testing.T) {
	pinger := &switchablePinger{}
	h := newTestHandler(pinger)
	ctx := context.Background()

	h.Probe(ctx)
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, checkStatus(t, h, ""))
	assert.Equal(t, healthpb.HealthCheckResponse_SERVING, checkStatus(t, h, ServiceName))

	pinger.err = errors.New("database is locked")
	h.Probe(ctx)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, checkStatus(t, h, ServiceName))
}

func TestHandler_WatchStopsOnCancel(t *testing.T) {
	h := newTestHandler(&switchablePinger{})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		h.Watch(ctx, 10*time.Millisecond)
		close(done)
	}()

	assert.Eventually(t, func() bool {
		return checkStatus(t, h, "") == healthpb.HealthCheckResponse_SERVING
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("watch did not stop after cancellation")
	}

	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, checkStatus(t, h, ""))
}
