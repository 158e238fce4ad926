package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-derma-records/internal/logger"
	"github.com/MKhiriev/go-derma-records/internal/metrics"
)

func serve(router http.Handler, method, path, body, authHeader string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func validAuthHeader() string { return "Bearer " + validToken }

func TestInit_PublicRoutes(t *testing.T) {
	router := newFakeServices().handler().Init()

	tests := []struct {
		method string
		path   string
		body   string
		want   int
	}{
		{http.MethodGet, "/api/version", "", http.StatusOK},
		{http.MethodPost, "/api/analyses", `{}`, http.StatusCreated},
		{http.MethodGet, "/api/analyses/a-1", "", http.StatusOK},
		{http.MethodPut, "/api/analyses/a-1/symptoms", `{"symptoms":"itching"}`, http.StatusOK},
		{http.MethodPut, "/api/analyses/a-1/local-inference", `{"result":{},"confidence":0.5}`, http.StatusOK},
		{http.MethodPut, "/api/analyses/a-1/notes", `{"notes":"n"}`, http.StatusOK},
		{http.MethodPut, "/api/analyses/a-1/retention", `{"data_retention_policy":"retain"}`, http.StatusOK},
		{http.MethodPost, "/api/analyses/a-1/encrypt", "", http.StatusOK},
		{http.MethodPut, "/api/analyses/a-1/status", `{"status":"processing"}`, http.StatusOK},
		{http.MethodGet, "/api/analyses/a-1/logs", "", http.StatusOK},
		{http.MethodGet, "/api/red-flags", "", http.StatusOK},
		{http.MethodPost, "/api/red-flags", `{"text":"Itches at night"}`, http.StatusCreated},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rr := serve(router, tt.method, tt.path, tt.body, "")
			assert.Equal(t, tt.want, rr.Code, rr.Body.String())
		})
	}
}

func TestInit_AdminRoutes(t *testing.T) {
	router := newFakeServices().handler().Init()

	tests := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodDelete, "/api/analyses/a-1", http.StatusOK},
		{http.MethodGet, "/api/admin/analyses", http.StatusOK},
		{http.MethodGet, "/api/admin/analyses/status/pending", http.StatusOK},
		{http.MethodGet, "/api/admin/stats", http.StatusOK},
		{http.MethodGet, "/api/admin/expiring", http.StatusOK},
		{http.MethodPost, "/api/admin/purge", http.StatusOK},
		{http.MethodPost, "/api/admin/analyses/a-1/deletion-requests", http.StatusCreated},
		{http.MethodPost, "/api/admin/analyses/a-1/deletion-requests/complete", http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rr := serve(router, tt.method, tt.path, "", "")
			assert.Equal(t, http.StatusUnauthorized, rr.Code, "admin route must require a token")

			rr = serve(router, tt.method, tt.path, "", validAuthHeader())
			assert.Equal(t, tt.want, rr.Code, rr.Body.String())
		})
	}
}

func TestInit_UnsupportedMethodIsNotFound(t *testing.T) {
	router := newFakeServices().handler().Init()

	rr := serve(router, http.MethodPatch, "/api/analyses/a-1/notes", "", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestInit_Metrics(t *testing.T) {
	fakes := newFakeServices()
	h := NewHandler(fakes.services(), metrics.New(), 0, logger.Nop())
	router := h.Init()

	rr := serve(router, http.MethodGet, "/metrics", "", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "derma_records_records_created_total")
}

func TestInit_NoMetricsRouteWithoutRegistry(t *testing.T) {
	router := newFakeServices().handler().Init()

	rr := serve(router, http.MethodGet, "/metrics", "", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
