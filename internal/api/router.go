package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/wonny/divscreen/internal/api/handlers"
	"github.com/wonny/divscreen/pkg/logger"
)

// NewRouter creates and configures the HTTP router
func NewRouter(screenHandler *handlers.ScreenHandler, recordsHandler *handlers.RecordsHandler, log *logger.Logger) http.Handler {
	r := mux.NewRouter()

	// Health check
	r.HandleFunc("/health", healthCheckHandler).Methods("GET")

	// API v1
	api := r.PathPrefix("/api").Subrouter()

	// Screening endpoints
	api.HandleFunc("/screen", screenHandler.Screen).Methods("GET")
	api.HandleFunc("/summary", screenHandler.Summary).Methods("GET")
	api.HandleFunc("/calendar", screenHandler.Calendar).Methods("GET")
	api.HandleFunc("/presets", screenHandler.Presets).Methods("GET")

	// Fundamentals record management
	api.HandleFunc("/records", recordsHandler.List).Methods("GET")
	api.HandleFunc("/records", recordsHandler.Upsert).Methods("POST")
	api.HandleFunc("/records/import", recordsHandler.Import).Methods("POST")
	api.HandleFunc("/records/export", recordsHandler.Export).Methods("GET")
	api.HandleFunc("/records/{ticker}", recordsHandler.Get).Methods("GET")
	api.HandleFunc("/records/{ticker}", recordsHandler.Delete).Methods("DELETE")

	// Apply middleware
	r.Use(loggingMiddleware(log))
	r.Use(recoveryMiddleware(log))

	return r
}

// healthCheckHandler returns server health status
func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status":  "ok",
		"service": "divscreen-api",
	})
}

// loggingMiddleware logs HTTP requests
func loggingMiddleware(log *logger.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			next.ServeHTTP(w, r)

			log.WithFields(map[string]interface{}{
				"method":   r.Method,
				"path":     r.URL.Path,
				"duration": time.Since(start),
			}).Debug("HTTP request")
		})
	}
}

// recoveryMiddleware recovers from panics
func recoveryMiddleware(log *logger.Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if err := recover(); err != nil {
					log.WithFields(map[string]interface{}{
						"error": err,
						"path":  r.URL.Path,
					}).Error("Panic recovered")

					w.Header().Set("Content-Type", "application/json")
					w.WriteHeader(http.StatusInternalServerError)
					json.NewEncoder(w).Encode(map[string]string{
						"error": "Internal server error",
					})
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
