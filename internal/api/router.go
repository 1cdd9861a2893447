package api

import (
	"net/http"

	"calproxy/internal/config"
	"calproxy/internal/service"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

// NewRouter wires every route and the shared middleware. CORS is what lets
// the browser call the proxy at all.
func NewRouter(cfg config.Config, svc *service.SchedulingService, log *zap.Logger) http.Handler {
	status := NewStatusHandler()
	scheduling := NewSchedulingHandler(svc)

	r := mux.NewRouter()
	r.HandleFunc(pathIndex, status.Index).Methods(http.MethodGet)
	r.HandleFunc(pathHealth, status.Health).Methods(http.MethodGet)

	r.HandleFunc(pathAvailability, scheduling.Availability).Methods(http.MethodGet)
	r.HandleFunc(pathBook, scheduling.Book).Methods(http.MethodPost)
	r.HandleFunc(pathTest, scheduling.TestConnection).Methods(http.MethodGet)

	var h http.Handler = r
	h = handlers.CORS(
		handlers.AllowedOrigins(cfg.AllowedOrigins),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodOptions}),
		handlers.AllowedHeaders([]string{"Content-Type", requestIDHeader}),
		handlers.ExposedHeaders([]string{requestIDHeader}),
	)(h)
	h = handlers.RecoveryHandler(
		handlers.RecoveryLogger(zap.NewStdLog(log)),
		handlers.PrintRecoveryStack(!cfg.IsProduction()),
	)(h)
	h = accessLog(log, h)
	return requestID(h)
}
