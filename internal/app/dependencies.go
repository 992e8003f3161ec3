package app

import (
	"database/sql"

	"github.com/koinonia/koinonia/internal/config"
	"github.com/koinonia/koinonia/internal/event_bus"
	"github.com/koinonia/koinonia/internal/utils"
	"github.com/koinonia/koinonia/pkg/calendar_view"
	"github.com/koinonia/koinonia/pkg/connection"
	"github.com/koinonia/koinonia/pkg/task"
	"github.com/koinonia/koinonia/pkg/user"
	log "github.com/sirupsen/logrus"
)

// Dependencies holds all services and handlers for the application.
type Dependencies struct {
	Bus *event_bus.Bus

	UserService user.Service
	UserHandler *user.Handler

	ConnectionRepo    connection.Repository
	ConnectionService connection.Service
	ConnectionHandler *connection.Handler

	TaskRepo    task.Repository
	TaskService task.Service
	TaskHandler *task.Handler

	CalendarViewHandler *calendar_view.Handler

	Clock utils.Clock
}

// BuildDependencies initializes and wires all application services and handlers.
func BuildDependencies(db *sql.DB, cfg config.Application) *Dependencies {
	deps := &Dependencies{}

	deps.Bus = event_bus.NewBus()
	registerAuditLog(deps.Bus)

	deps.Clock = &utils.SystemClock{}

	deps.UserService = user.NewUserService(user.NewUserRepo(db))
	deps.UserHandler = user.NewHandler(deps.UserService)

	deps.ConnectionRepo = connection.NewRepository(db)
	deps.ConnectionService = connection.NewService(deps.ConnectionRepo)
	deps.ConnectionHandler = connection.NewHandler(deps.ConnectionService)

	deps.TaskRepo = task.NewRepository(db)
	deps.TaskService = task.NewService(deps.TaskRepo, deps.ConnectionService, deps.Bus)
	deps.TaskHandler = task.NewHandler(deps.TaskService)

	deps.CalendarViewHandler = calendar_view.NewHandler(deps.TaskService, deps.Clock, calendar_view.Geometry{
		CellHeight: cfg.Calendar.CellHeight,
		RowMargin:  cfg.Calendar.RowMargin,
	})

	return deps
}

// registerAuditLog subscribes a logging consumer for every task mutation, so
// each create/update/delete leaves a trail with operation name and entity id.
func registerAuditLog(bus *event_bus.Bus) {
	auditHandler := func(event event_bus.Event) {
		mutation, ok := event.Data.(event_bus.TaskMutation)
		if !ok {
			return
		}
		log.WithFields(log.Fields{
			"operation": mutation.Operation,
			"taskId":    mutation.TaskID,
			"ownerUid":  mutation.OwnerUID,
		}).Info("task mutation")
	}
	bus.Subscribe(event_bus.TaskCreated, auditHandler)
	bus.Subscribe(event_bus.TaskUpdated, auditHandler)
	bus.Subscribe(event_bus.TaskDeleted, auditHandler)
}
