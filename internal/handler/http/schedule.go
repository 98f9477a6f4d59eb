package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopvui/backoffice-go/internal/domain/schedule"
	"github.com/shopvui/backoffice-go/internal/handler/http/response"
)

type ScheduleHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	CreateAssignments(w http.ResponseWriter, r *http.Request)
	DeleteAssignment(w http.ResponseWriter, r *http.Request)
	Swap(w http.ResponseWriter, r *http.Request)
	BulkRegister(w http.ResponseWriter, r *http.Request)
}

type scheduleHandlerImpl struct {
	scheduleService schedule.Service
}

func NewScheduleHandler(scheduleService schedule.Service) ScheduleHandler {
	return &scheduleHandlerImpl{scheduleService: scheduleService}
}

func (h *scheduleHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var staffID *string
	if v := query.Get("staff_id"); v != "" {
		staffID = &v
	}

	result, err := h.scheduleService.List(r.Context(), staffID, query.Get("start_date"), query.Get("end_date"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *scheduleHandlerImpl) CreateAssignments(w http.ResponseWriter, r *http.Request) {
	var req schedule.CreateAssignmentsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.scheduleService.CreateAssignments(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Shift assignments created", result)
}

func (h *scheduleHandlerImpl) DeleteAssignment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Assignment ID is required", nil)
		return
	}

	if err := h.scheduleService.DeleteAssignment(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift assignment deleted", nil)
}

func (h *scheduleHandlerImpl) Swap(w http.ResponseWriter, r *http.Request) {
	var req schedule.SwapRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	if err := h.scheduleService.Swap(r.Context(), req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shifts swapped", nil)
}

func (h *scheduleHandlerImpl) BulkRegister(w http.ResponseWriter, r *http.Request) {
	var req schedule.BulkRegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.scheduleService.BulkRegister(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
