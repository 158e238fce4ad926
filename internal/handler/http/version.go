package http

import (
	"net/http"

	"github.com/MKhiriev/go-derma-records/internal/utils"
)

// getServerVersion answers with the build information of the running
// server, doubling as a liveness probe.
func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	buildInfo := h.services.AppInfoService.GetBuildInfo(r.Context())

	utils.WriteJSON(w, buildInfo, http.StatusOK)
}
