package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/forgetrack/forgetrack-backend-go/internal/domain/ledger"
	"github.com/forgetrack/forgetrack-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type LedgerHandler interface {
	CreateUpad(w http.ResponseWriter, r *http.Request)
	ListUpads(w http.ResponseWriter, r *http.Request)
	DeleteUpad(w http.ResponseWriter, r *http.Request)

	CreateLoan(w http.ResponseWriter, r *http.Request)
	GetLoan(w http.ResponseWriter, r *http.Request)
	ListLoans(w http.ResponseWriter, r *http.Request)
	UpdateLoanStatus(w http.ResponseWriter, r *http.Request)
	CreateLoanTransaction(w http.ResponseWriter, r *http.Request)
	ListLoanTransactions(w http.ResponseWriter, r *http.Request)

	LoanSummary(w http.ResponseWriter, r *http.Request)
}

type LedgerHandlerImpl struct {
	ledgerService ledger.LedgerService
}

func NewLedgerHandler(ledgerService ledger.LedgerService) LedgerHandler {
	return &LedgerHandlerImpl{ledgerService: ledgerService}
}

// CreateUpad implements LedgerHandler.
func (h *LedgerHandlerImpl) CreateUpad(w http.ResponseWriter, r *http.Request) {
	var createReq ledger.CreateUpadRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create upad decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.ledgerService.CreateUpad(r.Context(), createReq)
	if err != nil {
		slog.Error("Create upad service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Upad entry created successfully", created)
}

// ListUpads implements LedgerHandler.
func (h *LedgerHandlerImpl) ListUpads(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeId")

	var year *int
	if raw := r.URL.Query().Get("year"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil {
			year = &parsed
		}
	}

	entries, err := h.ledgerService.ListUpads(r.Context(), employeeID, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, entries)
}

// DeleteUpad implements LedgerHandler.
func (h *LedgerHandlerImpl) DeleteUpad(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.ledgerService.DeleteUpad(r.Context(), id); err != nil {
		slog.Error("Delete upad service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Upad entry deleted successfully", nil)
}

// CreateLoan implements LedgerHandler.
func (h *LedgerHandlerImpl) CreateLoan(w http.ResponseWriter, r *http.Request) {
	var createReq ledger.CreateLoanRequest

	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create loan decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.ledgerService.CreateLoan(r.Context(), createReq)
	if err != nil {
		slog.Error("Create loan service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Loan created successfully", created)
}

// GetLoan implements LedgerHandler.
func (h *LedgerHandlerImpl) GetLoan(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	loan, err := h.ledgerService.GetLoan(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, loan)
}

// ListLoans implements LedgerHandler.
func (h *LedgerHandlerImpl) ListLoans(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeId")

	var status *ledger.LoanStatus
	if raw := r.URL.Query().Get("status"); raw != "" {
		st := ledger.LoanStatus(raw)
		status = &st
	}

	loans, err := h.ledgerService.ListLoans(r.Context(), employeeID, status)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, loans)
}

// UpdateLoanStatus implements LedgerHandler.
func (h *LedgerHandlerImpl) UpdateLoanStatus(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var statusReq struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&statusReq); err != nil {
		slog.Error("Update loan status decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.ledgerService.UpdateLoanStatus(r.Context(), id, ledger.LoanStatus(statusReq.Status)); err != nil {
		slog.Error("Update loan status service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Loan status updated successfully", nil)
}

// CreateLoanTransaction implements LedgerHandler.
func (h *LedgerHandlerImpl) CreateLoanTransaction(w http.ResponseWriter, r *http.Request) {
	loanID := chi.URLParam(r, "id")

	var createReq ledger.CreateLoanTransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&createReq); err != nil {
		slog.Error("Create loan transaction decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	createReq.LoanID = loanID

	created, err := h.ledgerService.CreateLoanTransaction(r.Context(), createReq)
	if err != nil {
		slog.Error("Create loan transaction service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Loan transaction recorded successfully", created)
}

// ListLoanTransactions implements LedgerHandler.
func (h *LedgerHandlerImpl) ListLoanTransactions(w http.ResponseWriter, r *http.Request) {
	loanID := chi.URLParam(r, "id")

	txns, err := h.ledgerService.ListLoanTransactions(r.Context(), loanID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, txns)
}

// LoanSummary implements LedgerHandler. Preview only; nothing is
// recorded.
func (h *LedgerHandlerImpl) LoanSummary(w http.ResponseWriter, r *http.Request) {
	employeeID := chi.URLParam(r, "employeeId")
	month, year := monthYearParams(r)

	summary, err := h.ledgerService.LoanSummary(r.Context(), employeeID, month, year)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, summary)
}
