package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/forgetrack/forgetrack-backend-go/internal/domain/catalog"
	"github.com/forgetrack/forgetrack-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type CatalogHandler interface {
	CreateProduct(w http.ResponseWriter, r *http.Request)
	ListProducts(w http.ResponseWriter, r *http.Request)
	UpdateProduct(w http.ResponseWriter, r *http.Request)
	DeleteProduct(w http.ResponseWriter, r *http.Request)

	CreateJobRate(w http.ResponseWriter, r *http.Request)
	ListJobRates(w http.ResponseWriter, r *http.Request)
	UpdateJobRate(w http.ResponseWriter, r *http.Request)
	DeleteJobRate(w http.ResponseWriter, r *http.Request)
}

type CatalogHandlerImpl struct {
	catalogService catalog.CatalogService
}

func NewCatalogHandler(catalogService catalog.CatalogService) CatalogHandler {
	return &CatalogHandlerImpl{catalogService: catalogService}
}

// partTypeFilter reads the optional ?part_type= query filter.
func partTypeFilter(r *http.Request) *catalog.PartType {
	raw := r.URL.Query().Get("part_type")
	if raw == "" {
		return nil
	}
	pt := catalog.PartType(raw)
	return &pt
}

// CreateProduct implements CatalogHandler.
func (h *CatalogHandlerImpl) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var createReq catalog.CreateProductRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create product decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.catalogService.CreateProduct(r.Context(), createReq)
	if err != nil {
		slog.Error("Create product service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Product created successfully", created)
}

// ListProducts implements CatalogHandler.
func (h *CatalogHandlerImpl) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.catalogService.ListProducts(r.Context(), partTypeFilter(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, products)
}

// UpdateProduct implements CatalogHandler.
func (h *CatalogHandlerImpl) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var updateReq catalog.UpdateProductRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update product decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = id

	if err := h.catalogService.UpdateProduct(r.Context(), updateReq); err != nil {
		slog.Error("Update product service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Product updated successfully", nil)
}

// DeleteProduct implements CatalogHandler.
func (h *CatalogHandlerImpl) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.catalogService.DeleteProduct(r.Context(), id); err != nil {
		slog.Error("Delete product service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Product deleted successfully", nil)
}

// CreateJobRate implements CatalogHandler.
func (h *CatalogHandlerImpl) CreateJobRate(w http.ResponseWriter, r *http.Request) {
	var createReq catalog.CreateJobRateRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create job rate decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.catalogService.CreateJobRate(r.Context(), createReq)
	if err != nil {
		slog.Error("Create job rate service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Job rate created successfully", created)
}

// ListJobRates implements CatalogHandler.
func (h *CatalogHandlerImpl) ListJobRates(w http.ResponseWriter, r *http.Request) {
	rates, err := h.catalogService.ListJobRates(r.Context(), partTypeFilter(r))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, rates)
}

// UpdateJobRate implements CatalogHandler.
func (h *CatalogHandlerImpl) UpdateJobRate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var updateReq catalog.UpdateJobRateRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update job rate decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = id

	if err := h.catalogService.UpdateJobRate(r.Context(), updateReq); err != nil {
		slog.Error("Update job rate service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Job rate updated successfully", nil)
}

// DeleteJobRate implements CatalogHandler.
func (h *CatalogHandlerImpl) DeleteJobRate(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.catalogService.DeleteJobRate(r.Context(), id); err != nil {
		slog.Error("Delete job rate service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Job rate deleted successfully", nil)
}
