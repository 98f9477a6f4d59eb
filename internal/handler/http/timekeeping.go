package http

import (
	"encoding/json"
	"net/http"

	"github.com/shopvui/backoffice-go/internal/domain/timekeeping"
	"github.com/shopvui/backoffice-go/internal/handler/http/response"
)

type TimekeepingHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Record(w http.ResponseWriter, r *http.Request)
}

type timekeepingHandlerImpl struct {
	timekeepingService timekeeping.Service
}

func NewTimekeepingHandler(timekeepingService timekeeping.Service) TimekeepingHandler {
	return &timekeepingHandlerImpl{timekeepingService: timekeepingService}
}

func (h *timekeepingHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	result, err := h.timekeepingService.List(r.Context(), query.Get("start_date"), query.Get("end_date"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

func (h *timekeepingHandlerImpl) Record(w http.ResponseWriter, r *http.Request) {
	var req timekeeping.RecordEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.timekeepingService.Record(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
