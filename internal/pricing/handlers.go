package pricing

import (
	"encoding/json"
	"net/http"

	validator "github.com/go-playground/validator/v10"

	"github.com/silvergold-id/backend-silvergold/internal/common"
)

// Handler exposes the market price endpoints.
type Handler struct {
	Service  *Service
	Validate *validator.Validate
}

type updateRequest struct {
	Gold   int64 `json:"gold" validate:"required,gt=0"`
	Silver int64 `json:"silver" validate:"required,gt=0"`
}

// Get handles GET /v1/market-prices.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	if h.Service == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "pricing service not configured", nil)
		return
	}
	price, err := h.Service.Get(r.Context())
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.JSON(w, http.StatusOK, price)
}

// Update handles PUT /v1/market-prices.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	if h.Service == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "pricing service not configured", nil)
		return
	}
	var req updateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		common.JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "invalid payload", nil)
		return
	}
	if h.Validate != nil {
		if err := h.Validate.Struct(req); err != nil {
			var fields []string
			if verrs, ok := err.(validator.ValidationErrors); ok {
				for _, fe := range verrs {
					fields = append(fields, fe.Field())
				}
			}
			common.JSONError(w, http.StatusBadRequest, "VALIDATION_ERROR", "gold and silver prices are required and must be positive", map[string]any{"fields": fields})
			return
		}
	}
	price, err := h.Service.Update(r.Context(), req.Gold, req.Silver)
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.JSON(w, http.StatusOK, map[string]any{
		"message": "Prices updated successfully",
		"data":    price,
	})
}
