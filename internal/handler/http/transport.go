package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/forgetrack/forgetrack-backend-go/internal/domain/transport"
	"github.com/forgetrack/forgetrack-backend-go/internal/handler/http/response"
	"github.com/forgetrack/forgetrack-backend-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

type TransporterLogHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	ListByEmployeeMonth(w http.ResponseWriter, r *http.Request)
	ListByDate(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
}

type TransporterLogHandlerImpl struct {
	transportService transport.TransporterLogService
}

func NewTransporterLogHandler(transportService transport.TransporterLogService) TransporterLogHandler {
	return &TransporterLogHandlerImpl{transportService: transportService}
}

// Create implements TransporterLogHandler.
func (h *TransporterLogHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq transport.CreateTransporterLogRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create transporter log decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if createReq.EmployeeID == "" {
		createReq.EmployeeID = claimEmployeeID(r)
	}

	created, err := h.transportService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create transporter log service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Transporter log created successfully", created)
}

// GetByID implements TransporterLogHandler.
func (h *TransporterLogHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	entry, err := h.transportService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, entry)
}

// Update implements TransporterLogHandler.
func (h *TransporterLogHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var updateReq transport.UpdateTransporterLogRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update transporter log decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = id

	updated, err := h.transportService.Update(r.Context(), updateReq)
	if err != nil {
		slog.Error("Update transporter log service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Transporter log updated successfully", updated)
}

// Delete implements TransporterLogHandler.
func (h *TransporterLogHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.transportService.Delete(r.Context(), id); err != nil {
		slog.Error("Delete transporter log service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Transporter log deleted successfully", nil)
}

// ListByEmployeeMonth implements TransporterLogHandler.
func (h *TransporterLogHandlerImpl) ListByEmployeeMonth(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeId")
	month, year := monthYearParams(r)

	entries, err := h.transportService.ListByEmployeeMonth(r.Context(), employeeID, month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, entries)
}

// ListByDate implements TransporterLogHandler.
func (h *TransporterLogHandlerImpl) ListByDate(w http.ResponseWriter, r *http.Request) {
	workDate := r.URL.Query().Get("date")

	entries, err := h.transportService.ListByDate(r.Context(), workDate)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, entries)
}

// ListMine implements TransporterLogHandler.
func (h *TransporterLogHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	employeeID := claimEmployeeID(r)
	if employeeID == "" {
		response.HandleError(w, validator.ValidationErrors{
			{Field: "employee_id", Message: "no employee linked to this account"},
		})
		return
	}
	month, year := monthYearParams(r)

	entries, err := h.transportService.ListByEmployeeMonth(r.Context(), employeeID, month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, entries)
}
