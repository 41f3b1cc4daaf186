package api

import (
	"landmark-explorer/internal/api/controllers"
	"landmark-explorer/internal/api/handlers"
	"landmark-explorer/internal/middleware"
	"landmark-explorer/internal/services"
	"net/http"

	"github.com/gorilla/mux"
)

const apiPrefix = "/api/v1"

// Dependencies are built by the composition root. AuditLogService is nil
// when no database is configured, LastChangeReader when Redis is not.
type Dependencies struct {
	LandmarkService      services.LandmarkService
	LandmarkStatsService services.LandmarkStatsService
	AuditLogService      services.AuditLogService
	LastChangeReader     handlers.LastChangeReader
	HealthBackends       map[string]controllers.Pinger
}

// SetupRoutes registers every route on the root router with its full path.
// A PathPrefix subrouter would drop the 405 for a wrong method once a later
// sibling route matches the prefix.
func SetupRoutes(deps Dependencies) *mux.Router {
	router := mux.NewRouter()
	router.Use(middleware.RequestIDMiddleware)
	router.Use(middleware.LoggingMiddleware)

	landmarkHandler := handlers.NewLandmarkHandler(deps.LandmarkService)
	statsHandler := handlers.NewLandmarkStatsHandler(deps.LandmarkStatsService)

	router.HandleFunc("/health", controllers.HealthCheckHandler(deps.LandmarkService, deps.HealthBackends)).Methods(http.MethodGet)

	router.HandleFunc(apiPrefix+"/landmarks", landmarkHandler.ListLandmarks).Methods(http.MethodGet)
	// Registered before /landmarks/{id} so "stats" is not read as an id.
	router.HandleFunc(apiPrefix+"/landmarks/stats", statsHandler.GetLandmarkStats).Methods(http.MethodGet)
	router.HandleFunc(apiPrefix+"/landmarks/{id}", landmarkHandler.GetLandmark).Methods(http.MethodGet)
	router.HandleFunc(apiPrefix+"/landmarks/{id}/favorite", landmarkHandler.SetFavorite).Methods(http.MethodPut)
	router.HandleFunc(apiPrefix+"/links", handlers.ListLinks).Methods(http.MethodGet)

	if deps.AuditLogService != nil {
		auditLogHandler := handlers.NewAuditLogHandler(deps.AuditLogService)
		router.HandleFunc(apiPrefix+"/audit-logs", auditLogHandler.ListAuditLogs).Methods(http.MethodGet)
		router.HandleFunc(apiPrefix+"/landmarks/{id}/audit-logs", auditLogHandler.ListLandmarkAuditLogs).Methods(http.MethodGet)
	}

	if deps.LastChangeReader != nil {
		lastChangeHandler := handlers.NewLastChangeHandler(deps.LastChangeReader)
		router.HandleFunc(apiPrefix+"/landmarks/{id}/last-change", lastChangeHandler.GetLastChange).Methods(http.MethodGet)
	}

	return router
}
