package http

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-derma-records/internal/logger"
	"github.com/MKhiriev/go-derma-records/internal/metrics"
	"github.com/MKhiriev/go-derma-records/internal/service"
)

func TestNewHandler_StoresDependencies(t *testing.T) {
	svc := &service.Services{}
	m := metrics.New()
	log := logger.Nop()

	h := NewHandler(svc, m, 5*time.Second, log)

	require.NotNil(t, h)
	assert.Same(t, svc, h.services)
	assert.Same(t, m, h.metrics)
	assert.Equal(t, 5*time.Second, h.requestTimeout)
	assert.Same(t, log, h.logger)
}

func TestNewHandler_IndependentInstances(t *testing.T) {
	h1 := NewHandler(&service.Services{}, nil, 0, logger.Nop())
	h2 := NewHandler(&service.Services{}, nil, 0, logger.Nop())

	assert.NotSame(t, h1, h2)
}
