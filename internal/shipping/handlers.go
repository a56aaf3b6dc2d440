package shipping

import (
	"encoding/json"
	"net/http"

	"github.com/silvergold-id/backend-silvergold/internal/common"
)

// Handler exposes the three shipping endpoints.
type Handler struct {
	Svc *Service
}

// CheckRates handles POST /v1/check-ongkir.
func (h *Handler) CheckRates(w http.ResponseWriter, r *http.Request) {
	if h.Svc == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "shipping service not configured", nil)
		return
	}
	var req RateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid payload", nil)
		return
	}
	offers, err := h.Svc.CheckRates(r.Context(), req)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.JSON(w, http.StatusOK, offers)
}

type locationRequest struct {
	SearchStr string `json:"searchstr"`
}

// ListLocation handles POST /v1/list-location.
func (h *Handler) ListLocation(w http.ResponseWriter, r *http.Request) {
	if h.Svc == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "shipping service not configured", nil)
		return
	}
	var req locationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid payload", nil)
		return
	}
	result, err := h.Svc.AutocompleteLocation(r.Context(), req.SearchStr)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	writePassthrough(w, result)
}

type trackingRequest struct {
	ShipmentCode string `json:"shipment_code"`
}

// TrackShipment handles POST /v1/check-resi.
func (h *Handler) TrackShipment(w http.ResponseWriter, r *http.Request) {
	if h.Svc == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "shipping service not configured", nil)
		return
	}
	var req trackingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid payload", nil)
		return
	}
	result, err := h.Svc.TrackShipment(r.Context(), req.ShipmentCode)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	writePassthrough(w, result)
}

func writePassthrough(w http.ResponseWriter, p Passthrough) {
	contentType := p.ContentType
	if contentType == "" {
		contentType = "application/json"
	}
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(p.Body)
}
