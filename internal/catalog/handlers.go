package catalog

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/silvergold-id/backend-silvergold/internal/common"
)

// Handler exposes public catalogue endpoints.
type Handler struct {
	Service *Service
}

// Products handles GET /v1/products.
func (h *Handler) Products(w http.ResponseWriter, r *http.Request) {
	if h.Service == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "catalog service not configured", nil)
		return
	}
	products, err := h.Service.ListProducts(r.Context())
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.JSON(w, http.StatusOK, products)
}

// Featured handles GET /v1/product, the landing page selection.
func (h *Handler) Featured(w http.ResponseWriter, r *http.Request) {
	if h.Service == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "catalog service not configured", nil)
		return
	}
	products, err := h.Service.ListFeatured(r.Context())
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.JSON(w, http.StatusOK, products)
}

// Warehouse handles GET /v1/warehouse/{id}.
func (h *Handler) Warehouse(w http.ResponseWriter, r *http.Request) {
	if h.Service == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "catalog service not configured", nil)
		return
	}
	stock, err := h.Service.WarehouseStock(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.JSON(w, http.StatusOK, stock)
}

// Knowledge handles GET /v1/knowledge.
func (h *Handler) Knowledge(w http.ResponseWriter, r *http.Request) {
	if h.Service == nil {
		common.JSONError(w, http.StatusInternalServerError, "INTERNAL", "catalog service not configured", nil)
		return
	}
	articles, err := h.Service.ListKnowledge(r.Context())
	if err != nil {
		common.WriteError(w, err)
		return
	}
	common.JSON(w, http.StatusOK, articles)
}
