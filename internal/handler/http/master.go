package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopvui/backoffice-go/internal/handler/http/response"
	"github.com/shopvui/backoffice-go/internal/service/master"
)

type MasterHandler interface {
	ListStaff(w http.ResponseWriter, r *http.Request)
	GetStaff(w http.ResponseWriter, r *http.Request)
	ListShifts(w http.ResponseWriter, r *http.Request)
	GetShift(w http.ResponseWriter, r *http.Request)
}

type masterHandlerImpl struct {
	masterService master.Service
}

func NewMasterHandler(masterService master.Service) MasterHandler {
	return &masterHandlerImpl{masterService: masterService}
}

func (h *masterHandlerImpl) ListStaff(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active_only") == "true"

	result, err := h.masterService.ListStaff(r.Context(), activeOnly)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *masterHandlerImpl) GetStaff(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Staff ID is required", nil)
		return
	}

	result, err := h.masterService.GetStaff(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *masterHandlerImpl) ListShifts(w http.ResponseWriter, r *http.Request) {
	activeOnly := r.URL.Query().Get("active_only") == "true"

	result, err := h.masterService.ListShifts(r.Context(), activeOnly)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *masterHandlerImpl) GetShift(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Shift ID is required", nil)
		return
	}

	result, err := h.masterService.GetShift(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
