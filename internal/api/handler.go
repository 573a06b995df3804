package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/eugenenazirov/loan-tracker/internal/dates"
	"github.com/eugenenazirov/loan-tracker/internal/loans"
	"github.com/eugenenazirov/loan-tracker/internal/storage"
)

type contextKey string

const requestIDContextKey contextKey = "requestID"

// Handler wires storage into HTTP handlers.
type Handler struct {
	storage     storage.Storage
	environment string

	clock func() time.Time
}

// HandlerOption configures Handler behaviour.
type HandlerOption func(*Handler)

// WithClock overrides the time source, primarily for tests.
func WithClock(clock func() time.Time) HandlerOption {
	return func(h *Handler) {
		h.clock = clock
	}
}

// WithEnvironment records the active configuration variant name, reported by
// the health and introspection endpoints.
func WithEnvironment(name string) HandlerOption {
	return func(h *Handler) {
		h.environment = name
	}
}

// NewHandler constructs a Handler with the provided dependencies.
func NewHandler(store storage.Storage, opts ...HandlerOption) *Handler {
	h := &Handler{
		storage: store,
		clock: func() time.Time {
			return time.Now().UTC()
		},
	}

	for _, opt := range opts {
		opt(h)
	}

	return h
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	_ = r
	resp := healthResponse{
		Status:      "ok",
		Environment: h.environment,
		Timestamp:   h.clock(),
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleListLoans(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var field loans.SortField
	if raw := query.Get("sort"); raw != "" {
		f, ok := loans.ParseSortField(raw)
		if !ok {
			writeError(w, http.StatusBadRequest, "Invalid request", "unknown sort field "+strconv.Quote(raw))
			return
		}
		field = f
	}

	var direction loans.Direction
	if raw := query.Get("direction"); raw != "" {
		d, ok := loans.ParseDirection(raw)
		if !ok {
			writeError(w, http.StatusBadRequest, "Invalid request", "direction must be asc or desc")
			return
		}
		direction = d
	} else if field != "" {
		direction = loans.Ascending
	}

	all, err := h.storage.ListLoans()
	if err != nil {
		writeInternalError(w, err)
		return
	}

	sorted := loans.Sort(all, field, direction)
	resp := loansResponse{Loans: make([]loanResponse, 0, len(sorted))}
	for _, loan := range sorted {
		resp.Loans = append(resp.Loans, newLoanResponse(loan))
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleGetLoan(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, "Invalid request", "loan id must be a positive integer")
		return
	}

	loan, err := h.storage.GetLoan(id)
	if err != nil {
		if errors.Is(err, storage.ErrLoanNotFound) {
			writeError(w, http.StatusNotFound, "Loan not found", err.Error())
			return
		}
		writeInternalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, newLoanResponse(loan))
}

func (h *Handler) handleCreateLoan(w http.ResponseWriter, r *http.Request) {
	var req loans.LoanInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request", "unable to parse JSON payload")
		return
	}

	loan, err := req.Normalize()
	if err != nil {
		writeValidationError(w, "Invalid loan", err)
		return
	}

	stored, err := h.storage.CreateLoan(loan)
	if err != nil {
		if errors.Is(err, storage.ErrInvalidLoan) {
			writeError(w, http.StatusBadRequest, "Invalid loan", err.Error())
			return
		}
		writeInternalError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, newLoanResponse(stored))
}

func (h *Handler) handleCreatePayment(w http.ResponseWriter, r *http.Request) {
	var req loans.PaymentInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request", "unable to parse JSON payload")
		return
	}

	payment, err := req.Normalize()
	if err != nil {
		writeValidationError(w, "Invalid payment", err)
		return
	}

	stored, err := h.storage.AddPayment(payment.LoanID, payment)
	if err != nil {
		if errors.Is(err, storage.ErrLoanNotFound) {
			writeError(w, http.StatusNotFound, "Loan not found", err.Error())
			return
		}
		writeInternalError(w, err)
		return
	}

	loan, err := h.storage.GetLoan(stored.LoanID)
	if err != nil {
		writeInternalError(w, err)
		return
	}

	resp := paymentResponse{
		Payment: stored,
		Status:  loans.CategorizePayment(loan.DueDate, stored.PaymentDate),
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (h *Handler) handleCategorizedPayments(w http.ResponseWriter, r *http.Request) {
	_ = r
	all, err := h.storage.ListLoans()
	if err != nil {
		writeInternalError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, categorizedResponse{Payments: loans.CategorizeLoanPayments(all)})
}

func (h *Handler) handleIntrospection(routes []string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_ = r
		resp := introspectionResponse{
			Environment: h.environment,
			Routes:      routes,
			DateFormat:  dates.FormatName,
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

func requestIDFromContext(ctx context.Context) string {
	if v := ctx.Value(requestIDContextKey); v != nil {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

type loanResponse struct {
	loans.Loan
	DueDateDisplay string       `json:"dueDateDisplay"`
	Status         loans.Status `json:"status"`
}

func newLoanResponse(loan loans.Loan) loanResponse {
	if loan.Payments == nil {
		loan.Payments = []loans.Payment{}
	}
	due := loan.DueDate.String()
	return loanResponse{
		Loan:           loan,
		DueDateDisplay: dates.Display(&due),
		Status:         loans.LoanStatus(loan),
	}
}

type loansResponse struct {
	Loans []loanResponse `json:"loans"`
}

type paymentResponse struct {
	loans.Payment
	Status loans.Status `json:"status"`
}

type categorizedResponse struct {
	Payments []loans.CategorizedPayment `json:"payments"`
}

type introspectionResponse struct {
	Environment string   `json:"environment"`
	Routes      []string `json:"routes"`
	DateFormat  string   `json:"dateFormat"`
}

type healthResponse struct {
	Status      string    `json:"status"`
	Environment string    `json:"environment,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}

type errorResponse struct {
	Error   string            `json:"error"`
	Details string            `json:"details,omitempty"`
	Fields  map[string]string `json:"fields,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if status != 0 {
		w.WriteHeader(status)
	}
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message, details string) {
	writeJSON(w, status, errorResponse{
		Error:   message,
		Details: details,
	})
}

// writeValidationError reports field-level failures as a 400. Errors that
// carry no field breakdown are reported by message only.
func writeValidationError(w http.ResponseWriter, message string, err error) {
	resp := errorResponse{
		Error:   message,
		Details: err.Error(),
	}

	var fieldErrs validation.Errors
	if errors.As(err, &fieldErrs) {
		resp.Fields = make(map[string]string, len(fieldErrs))
		for field, fieldErr := range fieldErrs {
			resp.Fields[field] = fieldErr.Error()
		}
	}

	writeJSON(w, http.StatusBadRequest, resp)
}

func writeInternalError(w http.ResponseWriter, err error) {
	writeError(w, http.StatusInternalServerError, "Internal error", err.Error())
}
