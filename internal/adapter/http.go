package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-derma-records/internal/config"
	"github.com/MKhiriev/go-derma-records/internal/logger"
	"github.com/MKhiriev/go-derma-records/internal/utils"
	"github.com/MKhiriev/go-derma-records/models"
)

type httpAdminAdapter struct {
	client *utils.HTTPClient
	token  string

	logger *logger.Logger
}

// NewHTTPAdminAdapter constructs an HTTP/REST implementation of
// [AdminAdapter] talking to cfg.BaseURL. A base URL without a scheme is
// treated as plain http.
//
// Returns an error if cfg.BaseURL is empty or cannot be parsed as a URL.
func NewHTTPAdminAdapter(cfg config.ClientAdapter, logger *logger.Logger) (AdminAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	return &httpAdminAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpAdminAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

func (h *httpAdminAdapter) Token() string {
	return h.token
}

func (h *httpAdminAdapter) List(ctx context.Context, query models.ListQuery) (models.ListResult, error) {
	var result models.ListResult

	req := h.authedRequest(ctx).
		SetQueryParam("page", strconv.Itoa(query.Page)).
		SetQueryParam("limit", strconv.Itoa(query.Limit)).
		SetResult(&result)
	if query.RiskLevel != nil {
		req.SetQueryParam("risk_level", string(*query.RiskLevel))
	}

	resp, err := req.Get("/api/admin/analyses")
	if err != nil {
		return models.ListResult{}, fmt.Errorf("list request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ListResult{}, err
	}

	return result, nil
}

func (h *httpAdminAdapter) ListByStatus(ctx context.Context, status models.CloudStatus, limit int) ([]models.AnalysisRecord, error) {
	var records []models.AnalysisRecord

	resp, err := h.authedRequest(ctx).
		SetPathParam("status", string(status)).
		SetQueryParam("limit", strconv.Itoa(limit)).
		SetResult(&records).
		Get("/api/admin/analyses/status/{status}")
	if err != nil {
		return nil, fmt.Errorf("list by status request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return records, nil
}

func (h *httpAdminAdapter) Stats(ctx context.Context) (models.Stats, error) {
	var stats models.Stats

	resp, err := h.authedRequest(ctx).
		SetResult(&stats).
		Get("/api/admin/stats")
	if err != nil {
		return models.Stats{}, fmt.Errorf("stats request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Stats{}, err
	}

	return stats, nil
}

func (h *httpAdminAdapter) Expiring(ctx context.Context) ([]models.AnalysisRecord, error) {
	var records []models.AnalysisRecord

	resp, err := h.authedRequest(ctx).
		SetResult(&records).
		Get("/api/admin/expiring")
	if err != nil {
		return nil, fmt.Errorf("expiring request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return records, nil
}

func (h *httpAdminAdapter) Purge(ctx context.Context) (int, error) {
	var result models.PurgeResult

	resp, err := h.authedRequest(ctx).
		SetResult(&result).
		Post("/api/admin/purge")
	if err != nil {
		return 0, fmt.Errorf("purge request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}

	h.logger.Debug().Int("purged", result.Purged).Msg("purge finished")
	return result.Purged, nil
}

func (h *httpAdminAdapter) RequestDeletion(ctx context.Context, analysisID string) (models.DeletionRecord, error) {
	return h.deletionRequest(ctx, "/api/admin/analyses/{id}/deletion-requests", analysisID)
}

func (h *httpAdminAdapter) CompleteDeletion(ctx context.Context, analysisID string) (models.DeletionRecord, error) {
	return h.deletionRequest(ctx, "/api/admin/analyses/{id}/deletion-requests/complete", analysisID)
}

func (h *httpAdminAdapter) deletionRequest(ctx context.Context, path, analysisID string) (models.DeletionRecord, error) {
	var rec models.DeletionRecord

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", analysisID).
		SetResult(&rec).
		Post(path)
	if err != nil {
		return models.DeletionRecord{}, fmt.Errorf("deletion request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.DeletionRecord{}, err
	}

	return rec, nil
}

func (h *httpAdminAdapter) Delete(ctx context.Context, analysisID string) (bool, error) {
	var result models.DeleteResult

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", analysisID).
		SetResult(&result).
		Delete("/api/analyses/{id}")
	if err != nil {
		return false, fmt.Errorf("delete request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return false, err
	}

	return result.Deleted, nil
}

func (h *httpAdminAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if h.token != "" {
		req.SetAuthToken(h.token)
	}
	return req
}
