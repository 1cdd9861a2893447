package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"calproxy/internal/entities"
	apperrors "calproxy/internal/errors"
	"calproxy/internal/service"
)

type SchedulingHandler struct {
	Service *service.SchedulingService
}

func NewSchedulingHandler(svc *service.SchedulingService) *SchedulingHandler {
	return &SchedulingHandler{Service: svc}
}

func (h *SchedulingHandler) Availability(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	res, err := h.Service.GetAvailability(r.Context(), q.Get(paramStartDate), q.Get(paramEndDate))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *SchedulingHandler) Book(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxBookingBodyBytes)
	var req entities.BookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperrors.ErrInternal(fmt.Errorf("invalid JSON body: %w", err)))
		return
	}
	if req == nil {
		writeError(w, apperrors.ErrInternal(errors.New("invalid JSON body: expected an object")))
		return
	}
	res, err := h.Service.CreateBooking(r.Context(), req)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func (h *SchedulingHandler) TestConnection(w http.ResponseWriter, r *http.Request) {
	res, err := h.Service.TestConnection(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}
