package http

import (
	"net/http"

	"github.com/MKhiriev/go-derma-records/internal/utils"
	"github.com/MKhiriev/go-derma-records/models"
)

func (h *Handler) listRedFlags(w http.ResponseWriter, r *http.Request) {
	symptoms, err := h.services.ReferenceService.List(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		writeError(w, r, "*Handler.listRedFlags", err)
		return
	}

	utils.WriteJSON(w, symptoms, http.StatusOK)
}

func (h *Handler) addCustomRedFlag(w http.ResponseWriter, r *http.Request) {
	var in models.CustomSymptom
	if err := decodeJSON(r, &in); err != nil {
		writeError(w, r, "*Handler.addCustomRedFlag", err)
		return
	}

	symptom, err := h.services.ReferenceService.AddCustom(r.Context(), in)
	if err != nil {
		writeError(w, r, "*Handler.addCustomRedFlag", err)
		return
	}

	utils.WriteJSON(w, symptom, http.StatusCreated)
}
