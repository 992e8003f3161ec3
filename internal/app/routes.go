package app

import (
	"github.com/gorilla/mux"
	"github.com/koinonia/koinonia/internal/config"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// Tasks
	r.HandleFunc("/api/task", deps.TaskHandler.GetVisibleTasks).Methods("GET")
	r.HandleFunc("/api/task", deps.TaskHandler.CreateTask).Methods("POST")
	r.HandleFunc("/api/task/{taskId}", deps.TaskHandler.UpdateTask).Methods("PUT")
	r.HandleFunc("/api/task/{taskId}", deps.TaskHandler.DeleteTask).Methods("DELETE")

	// Season calendar
	r.HandleFunc("/api/season/calendar", deps.CalendarViewHandler.GetCalendar).
		Queries("month", "{month}", "year", "{year}").Methods("GET")
	r.HandleFunc("/api/season/guide", deps.CalendarViewHandler.GetGuideEvents).
		Queries("month", "{month}", "year", "{year}").Methods("GET")
	r.HandleFunc("/api/season/export.ics", deps.CalendarViewHandler.ExportICS).Methods("GET")

	// Connections
	r.HandleFunc("/api/connection", deps.ConnectionHandler.ListConnections).Methods("GET")
	r.HandleFunc("/api/connection", deps.ConnectionHandler.RequestConnection).Methods("POST")
	r.HandleFunc("/api/connection/{connectionId}", deps.ConnectionHandler.AcceptConnection).Methods("PATCH")
	r.HandleFunc("/api/connection/{connectionId}", deps.ConnectionHandler.RemoveConnection).Methods("DELETE")

	// User management
	r.HandleFunc("/api/user/current", deps.UserHandler.CurrentUser).Methods("GET")
	r.HandleFunc("/api/user", deps.UserHandler.CreateUser).Methods("POST")
	r.HandleFunc("/api/user", deps.UserHandler.GetAvailableUsers).Methods("GET")
	r.HandleFunc("/api/user/name-availability", deps.UserHandler.IsUsernameAvailable).Methods("GET").Queries("username", "{username}")
}
