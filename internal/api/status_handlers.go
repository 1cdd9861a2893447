package api

import (
	"net/http"
	"time"

	"calproxy/internal/entities"
)

const serviceMessage = "Calendly API Proxy Server"

// Health timestamps are ISO-8601 local time without a zone. The fraction is
// left off entirely when it is zero.
const (
	healthTimestampLayout      = "2006-01-02T15:04:05"
	healthTimestampMicroLayout = "2006-01-02T15:04:05.000000"
)

func isoTimestamp(t time.Time) string {
	if t.Nanosecond()/int(time.Microsecond) == 0 {
		return t.Format(healthTimestampLayout)
	}
	return t.Format(healthTimestampMicroLayout)
}

type StatusHandler struct {
	now func() time.Time
}

func NewStatusHandler() *StatusHandler {
	return &StatusHandler{now: time.Now}
}

func (h *StatusHandler) Index(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, entities.StatusResponse{
		Message:   serviceMessage,
		Status:    "running",
		Endpoints: publicEndpoints,
	})
}

func (h *StatusHandler) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, entities.HealthResponse{
		Status:    "healthy",
		Timestamp: isoTimestamp(h.now()),
	})
}
