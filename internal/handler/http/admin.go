package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-derma-records/internal/logger"
	"github.com/MKhiriev/go-derma-records/internal/utils"
	"github.com/MKhiriev/go-derma-records/models"
)

// Query defaults of the admin listings.
const (
	defaultPage        = 1
	defaultPageLimit   = 20
	defaultStatusLimit = 50
)

// intQueryParam reads an integer query parameter, falling back to def when
// it is absent.
func intQueryParam(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, ErrInvalidQueryParam
	}
	return v, nil
}

func (h *Handler) listAnalyses(w http.ResponseWriter, r *http.Request) {
	page, err := intQueryParam(r, "page", defaultPage)
	if err != nil {
		writeError(w, r, "*Handler.listAnalyses", err)
		return
	}
	limit, err := intQueryParam(r, "limit", defaultPageLimit)
	if err != nil {
		writeError(w, r, "*Handler.listAnalyses", err)
		return
	}

	query := models.ListQuery{Page: page, Limit: limit}
	if riskLevel := r.URL.Query().Get("risk_level"); riskLevel != "" {
		level := models.RiskLevel(riskLevel)
		query.RiskLevel = &level
	}

	result, err := h.services.QueryService.List(r.Context(), query)
	if err != nil {
		writeError(w, r, "*Handler.listAnalyses", err)
		return
	}

	utils.WriteJSON(w, result, http.StatusOK)
}

func (h *Handler) listAnalysesByStatus(w http.ResponseWriter, r *http.Request) {
	limit, err := intQueryParam(r, "limit", defaultStatusLimit)
	if err != nil {
		writeError(w, r, "*Handler.listAnalysesByStatus", err)
		return
	}

	status := models.CloudStatus(chi.URLParam(r, "status"))
	records, err := h.services.QueryService.ListByStatus(r.Context(), status, limit)
	if err != nil {
		writeError(w, r, "*Handler.listAnalysesByStatus", err)
		return
	}

	utils.WriteJSON(w, records, http.StatusOK)
}

func (h *Handler) stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.services.QueryService.Stats(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.stats", err)
		return
	}

	utils.WriteJSON(w, stats, http.StatusOK)
}

func (h *Handler) listExpiring(w http.ResponseWriter, r *http.Request) {
	records, err := h.services.RetentionService.ListExpiring(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.listExpiring", err)
		return
	}

	utils.WriteJSON(w, records, http.StatusOK)
}

// purgeExpired runs one purge pass on demand. Records purged before a
// failure stay purged; the failure is reported with its status code.
func (h *Handler) purgeExpired(w http.ResponseWriter, r *http.Request) {
	purged, err := h.services.RetentionService.PurgeExpired(r.Context())
	if err != nil {
		writeError(w, r, "*Handler.purgeExpired", err)
		return
	}

	operator, _ := utils.GetOperatorFromContext(r.Context())
	logger.FromRequest(r).Info().Str("operator", operator).Int("purged", purged).Msg("expired records purged on demand")

	utils.WriteJSON(w, models.PurgeResult{Purged: purged}, http.StatusOK)
}

func (h *Handler) requestDeletion(w http.ResponseWriter, r *http.Request) {
	rec, err := h.services.RetentionService.RequestDeletion(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, "*Handler.requestDeletion", err)
		return
	}

	utils.WriteJSON(w, rec, http.StatusCreated)
}

func (h *Handler) completeDeletion(w http.ResponseWriter, r *http.Request) {
	rec, err := h.services.RetentionService.CompleteDeletion(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, "*Handler.completeDeletion", err)
		return
	}

	utils.WriteJSON(w, rec, http.StatusOK)
}
