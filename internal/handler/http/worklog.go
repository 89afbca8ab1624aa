package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/forgetrack/forgetrack-backend-go/internal/domain/worklog"
	"github.com/forgetrack/forgetrack-backend-go/internal/handler/http/response"
	"github.com/forgetrack/forgetrack-backend-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
)

type WorkLogHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	GetByID(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	ListByEmployeeMonth(w http.ResponseWriter, r *http.Request)
	ListByDate(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
}

type WorkLogHandlerImpl struct {
	workLogService worklog.WorkLogService
}

func NewWorkLogHandler(workLogService worklog.WorkLogService) WorkLogHandler {
	return &WorkLogHandlerImpl{workLogService: workLogService}
}

// claimEmployeeID pulls the linked employee id out of the access token.
func claimEmployeeID(r *http.Request) string {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return ""
	}
	employeeID, _ := claims["employee_id"].(string)
	return employeeID
}

// monthYearParams reads the ?month= and ?year= query parameters. A
// missing or malformed value maps to zero; range validation happens in
// the service.
func monthYearParams(r *http.Request) (int, int) {
	month, _ := strconv.Atoi(r.URL.Query().Get("month"))
	year, _ := strconv.Atoi(r.URL.Query().Get("year"))
	return month, year
}

// Create implements WorkLogHandler. Workers log for themselves; the
// employee id in the body is only honored for admins, everyone else
// gets the id bound to their token.
func (h *WorkLogHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var createReq worklog.CreateWorkLogRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create work log decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if createReq.EmployeeID == "" {
		createReq.EmployeeID = claimEmployeeID(r)
	}

	created, err := h.workLogService.Create(r.Context(), createReq)
	if err != nil {
		slog.Error("Create work log service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Work log created successfully", created)
}

// GetByID implements WorkLogHandler.
func (h *WorkLogHandlerImpl) GetByID(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	entry, err := h.workLogService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, entry)
}

// Update implements WorkLogHandler.
func (h *WorkLogHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var updateReq worklog.UpdateWorkLogRequest
	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update work log decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	updateReq.ID = id

	updated, err := h.workLogService.Update(r.Context(), updateReq)
	if err != nil {
		slog.Error("Update work log service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Work log updated successfully", updated)
}

// Delete implements WorkLogHandler.
func (h *WorkLogHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.workLogService.Delete(r.Context(), id); err != nil {
		slog.Error("Delete work log service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Work log deleted successfully", nil)
}

// ListByEmployeeMonth implements WorkLogHandler.
func (h *WorkLogHandlerImpl) ListByEmployeeMonth(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeId")
	month, year := monthYearParams(r)

	entries, err := h.workLogService.ListByEmployeeMonth(r.Context(), employeeID, month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, entries)
}

// ListByDate implements WorkLogHandler.
func (h *WorkLogHandlerImpl) ListByDate(w http.ResponseWriter, r *http.Request) {
	workDate := r.URL.Query().Get("date")

	entries, err := h.workLogService.ListByDate(r.Context(), workDate)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, entries)
}

// ListMine implements WorkLogHandler. Workers see their own month of
// entries, resolved from the token.
func (h *WorkLogHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	employeeID := claimEmployeeID(r)
	if employeeID == "" {
		response.HandleError(w, validator.ValidationErrors{
			{Field: "employee_id", Message: "no employee linked to this account"},
		})
		return
	}
	month, year := monthYearParams(r)

	entries, err := h.workLogService.ListByEmployeeMonth(r.Context(), employeeID, month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, entries)
}
