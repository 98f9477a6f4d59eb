package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopvui/backoffice-go/internal/domain/payroll"
	"github.com/shopvui/backoffice-go/internal/handler/http/response"
)

type PayrollHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Reload(w http.ResponseWriter, r *http.Request)
	Finalize(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Export(w http.ResponseWriter, r *http.Request)

	UpdatePayslip(w http.ResponseWriter, r *http.Request)
	Breakdown(w http.ResponseWriter, r *http.Request)
	RecordPayment(w http.ResponseWriter, r *http.Request)
	ListPayments(w http.ResponseWriter, r *http.Request)
}

type payrollHandlerImpl struct {
	payrollService payroll.Service
}

func NewPayrollHandler(payrollService payroll.Service) PayrollHandler {
	return &payrollHandlerImpl{payrollService: payrollService}
}

func (h *payrollHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := payroll.PayrollFilter{Page: 1, Limit: 20}
	if v, err := strconv.Atoi(query.Get("page")); err == nil {
		filter.Page = v
	}
	if v, err := strconv.Atoi(query.Get("limit")); err == nil {
		filter.Limit = v
	}
	if v, err := strconv.Atoi(query.Get("month")); err == nil {
		filter.Month = &v
	}
	if v, err := strconv.Atoi(query.Get("year")); err == nil {
		filter.Year = &v
	}
	if v := query.Get("status"); v != "" {
		filter.Status = &v
	}

	result, err := h.payrollService.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	totalPages := int((result.TotalCount + int64(result.Limit) - 1) / int64(result.Limit))
	response.SuccessWithMeta(w, result.Data, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
		TotalPages: totalPages,
	})
}

func (h *payrollHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req payroll.CreatePayrollRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.payrollService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payroll created", result)
}

func (h *payrollHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Payroll ID is required", nil)
		return
	}

	result, err := h.payrollService.Get(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) Reload(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Payroll ID is required", nil)
		return
	}

	result, err := h.payrollService.Reload(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Base salaries reloaded", result)
}

func (h *payrollHandlerImpl) Finalize(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Payroll ID is required", nil)
		return
	}

	if err := h.payrollService.Finalize(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll finalized", nil)
}

func (h *payrollHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Payroll ID is required", nil)
		return
	}

	if err := h.payrollService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payroll deleted", nil)
}

func (h *payrollHandlerImpl) Export(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Payroll ID is required", nil)
		return
	}

	doc, err := h.payrollService.Export(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="payroll-%s.pdf"`, id))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc)
}

func (h *payrollHandlerImpl) UpdatePayslip(w http.ResponseWriter, r *http.Request) {
	var req payroll.UpdatePayslipRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.PayrollID = chi.URLParam(r, "id")
	req.StaffID = chi.URLParam(r, "staffID")

	result, err := h.payrollService.UpdatePayslip(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) Breakdown(w http.ResponseWriter, r *http.Request) {
	payrollID := chi.URLParam(r, "id")
	staffID := chi.URLParam(r, "staffID")

	result, err := h.payrollService.Breakdown(r.Context(), payrollID, staffID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *payrollHandlerImpl) RecordPayment(w http.ResponseWriter, r *http.Request) {
	var req payroll.RecordPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	req.PayrollID = chi.URLParam(r, "id")
	req.StaffID = chi.URLParam(r, "staffID")

	result, err := h.payrollService.RecordPayment(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payment recorded", result)
}

func (h *payrollHandlerImpl) ListPayments(w http.ResponseWriter, r *http.Request) {
	payrollID := chi.URLParam(r, "id")
	staffID := chi.URLParam(r, "staffID")

	result, err := h.payrollService.ListPayments(r.Context(), payrollID, staffID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
