package http

import (
	"net/http"

	"github.com/MKhiriev/addrway/internal/logger"
	"github.com/MKhiriev/addrway/internal/utils"
	"github.com/MKhiriev/addrway/models"
)

func (h *Handler) getServiceInfo(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	info := models.StatusResponse{
		OK:      true,
		Service: h.services.AppInfoService.GetAppName(ctx),
		Version: h.services.AppInfoService.GetAppVersion(ctx),
	}

	if _, err := utils.WriteJSON(w, info, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing service info")
	}
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	if _, err := utils.WriteJSON(w, models.StatusResponse{OK: true}, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Msg("error writing health status")
	}
}
