// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-derma-records/internal/logger"
	"github.com/MKhiriev/go-derma-records/internal/utils"
	"github.com/MKhiriev/go-derma-records/models"
)

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return ErrInvalidJSON
	}
	return nil
}

func (h *Handler) createAnalysis(w http.ResponseWriter, r *http.Request) {
	var in models.NewAnalysis
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, r, "*Handler.createAnalysis", err)
		return
	}

	rec, err := h.services.AnalysisService.Create(r.Context(), in)
	if err != nil {
		writeError(w, r, "*Handler.createAnalysis", err)
		return
	}

	logger.FromRequest(r).Info().Str("analysis_id", rec.ID).Msg("analysis record created")
	utils.WriteJSON(w, rec, http.StatusCreated)
}

func (h *Handler) getAnalysis(w http.ResponseWriter, r *http.Request) {
	rec, err := h.services.AnalysisService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, "*Handler.getAnalysis", err)
		return
	}

	utils.WriteJSON(w, rec, http.StatusOK)
}

func (h *Handler) updateSymptoms(w http.ResponseWriter, r *http.Request) {
	var body models.SymptomsUpdate
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, r, "*Handler.updateSymptoms", err)
		return
	}

	rec, err := h.services.AnalysisService.UpdateSymptoms(r.Context(), chi.URLParam(r, "id"), body.Symptoms, body.RedFlagSymptoms)
	if err != nil {
		writeError(w, r, "*Handler.updateSymptoms", err)
		return
	}

	utils.WriteJSON(w, rec, http.StatusOK)
}

func (h *Handler) updateLocalInference(w http.ResponseWriter, r *http.Request) {
	var body models.LocalInferenceUpdate
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, r, "*Handler.updateLocalInference", err)
		return
	}

	rec, err := h.services.AnalysisService.UpdateLocalInferenceResult(r.Context(), chi.URLParam(r, "id"), body)
	if err != nil {
		writeError(w, r, "*Handler.updateLocalInference", err)
		return
	}

	utils.WriteJSON(w, rec, http.StatusOK)
}

func (h *Handler) updateNotes(w http.ResponseWriter, r *http.Request) {
	var body models.NotesUpdate
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, r, "*Handler.updateNotes", err)
		return
	}

	rec, err := h.services.AnalysisService.UpdateNotes(r.Context(), chi.URLParam(r, "id"), body.Notes)
	if err != nil {
		writeError(w, r, "*Handler.updateNotes", err)
		return
	}

	utils.WriteJSON(w, rec, http.StatusOK)
}

func (h *Handler) setRetentionPolicy(w http.ResponseWriter, r *http.Request) {
	var body models.RetentionUpdate
	if err := decodeJSON(r, &body); err != nil {
		writeError(w, r, "*Handler.setRetentionPolicy", err)
		return
	}

	rec, err := h.services.AnalysisService.SetRetentionPolicy(r.Context(), chi.URLParam(r, "id"), body.Policy)
	if err != nil {
		writeError(w, r, "*Handler.setRetentionPolicy", err)
		return
	}

	utils.WriteJSON(w, rec, http.StatusOK)
}

func (h *Handler) markEncrypted(w http.ResponseWriter, r *http.Request) {
	rec, err := h.services.AnalysisService.MarkEncrypted(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, "*Handler.markEncrypted", err)
		return
	}

	utils.WriteJSON(w, rec, http.StatusOK)
}

func (h *Handler) setStatus(w http.ResponseWriter, r *http.Request) {
	var change models.StatusChange
	if err := decodeJSON(r, &change); err != nil {
		writeError(w, r, "*Handler.setStatus", err)
		return
	}

	rec, err := h.services.StatusService.SetStatus(r.Context(), chi.URLParam(r, "id"), change)
	if err != nil {
		writeError(w, r, "*Handler.setStatus", err)
		return
	}

	utils.WriteJSON(w, rec, http.StatusOK)
}

func (h *Handler) listLogs(w http.ResponseWriter, r *http.Request) {
	entries, err := h.services.AnalysisService.ListLogs(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, "*Handler.listLogs", err)
		return
	}

	utils.WriteJSON(w, entries, http.StatusOK)
}

// deleteAnalysis is an admin operation. Deleting an unknown id is not an
// error; the body reports whether anything was removed.
func (h *Handler) deleteAnalysis(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	deleted, err := h.services.AnalysisService.Delete(r.Context(), id)
	if err != nil {
		writeError(w, r, "*Handler.deleteAnalysis", err)
		return
	}

	operator, _ := utils.GetOperatorFromContext(r.Context())
	logger.FromRequest(r).Info().
		Str("analysis_id", id).
		Str("operator", operator).
		Bool("deleted", deleted).
		Msg("analysis delete requested")

	utils.WriteJSON(w, models.DeleteResult{Deleted: deleted}, http.StatusOK)
}
