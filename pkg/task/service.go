package task

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/koinonia/koinonia/internal/event_bus"
	"github.com/koinonia/koinonia/internal/utils"
	"github.com/koinonia/koinonia/pkg/connection"
	"github.com/koinonia/koinonia/pkg/season"
	"github.com/koinonia/koinonia/pkg/user"
	log "github.com/sirupsen/logrus"
)

var (
	ErrValidation   = fmt.Errorf("validation failed")
	ErrTaskNotFound = fmt.Errorf("task not found")
	ErrNotOwner     = fmt.Errorf("task belongs to another user")
)

type Service interface {
	ListVisibleTasks(ctx context.Context) ([]Task, error)
	CreateTask(ctx context.Context, draft Draft) (Task, error)
	UpdateTask(ctx context.Context, id uuid.UUID, draft Draft) (Task, error)
	DeleteTask(ctx context.Context, id uuid.UUID) error
}

type ServiceImpl struct {
	repo      Repository
	directory connection.Directory
	clock     utils.Clock
	bus       *event_bus.Bus
}

func NewService(repo Repository, directory connection.Directory, bus *event_bus.Bus) *ServiceImpl {
	return &ServiceImpl{repo: repo, directory: directory, clock: &utils.SystemClock{}, bus: bus}
}

// ListVisibleTasks returns the current user's tasks plus the tasks of every
// accepted connection, newest first. Pending connections contribute nothing.
func (s *ServiceImpl) ListVisibleTasks(ctx context.Context) ([]Task, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get current user: %w", err)
	}

	peers, err := s.directory.ListAcceptedConnections(ctx, userId)
	if err != nil {
		return nil, fmt.Errorf("failed to list connections: %w", err)
	}

	return s.repo.ListByOwners(ctx, append(peers, userId))
}

func (s *ServiceImpl) CreateTask(ctx context.Context, draft Draft) (Task, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return Task{}, fmt.Errorf("failed to get current user: %w", err)
	}

	date, err := validateDraft(draft)
	if err != nil {
		return Task{}, err
	}

	task := Task{
		ID:          uuid.New(),
		OwnerUid:    userId,
		Title:       draft.Title,
		Description: draft.Description,
		Date:        date,
		CreatedAt:   s.clock.Now().UTC(),
	}
	if err := s.repo.StoreTask(ctx, task); err != nil {
		return Task{}, err
	}

	log.Debugf("Task %s created by %s", task.ID, userId)
	s.publish(ctx, event_bus.TaskCreated, "createTask", task)
	return task, nil
}

func (s *ServiceImpl) UpdateTask(ctx context.Context, id uuid.UUID, draft Draft) (Task, error) {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return Task{}, fmt.Errorf("failed to get current user: %w", err)
	}

	date, err := validateDraft(draft)
	if err != nil {
		return Task{}, err
	}

	existing, err := s.repo.GetTask(ctx, id)
	if err != nil {
		return Task{}, err
	}
	if existing == nil {
		return Task{}, ErrTaskNotFound
	}
	if existing.OwnerUid != userId {
		return Task{}, ErrNotOwner
	}

	// Owner and creation time are immutable; only the edited fields move.
	updated := *existing
	updated.Title = draft.Title
	updated.Description = draft.Description
	updated.Date = date

	if err := s.repo.UpdateTask(ctx, updated); err != nil {
		return Task{}, err
	}

	log.Debugf("Task %s updated by %s", id, userId)
	s.publish(ctx, event_bus.TaskUpdated, "updateTask", updated)
	return updated, nil
}

func (s *ServiceImpl) DeleteTask(ctx context.Context, id uuid.UUID) error {
	userId, err := user.CurrentId(ctx)
	if err != nil {
		return fmt.Errorf("failed to get current user: %w", err)
	}

	existing, err := s.repo.GetTask(ctx, id)
	if err != nil {
		return err
	}
	if existing == nil {
		return ErrTaskNotFound
	}
	if existing.OwnerUid != userId {
		return ErrNotOwner
	}

	if err := s.repo.DeleteTask(ctx, id); err != nil {
		return err
	}

	log.Debugf("Task %s deleted by %s", id, userId)
	s.publish(ctx, event_bus.TaskDeleted, "deleteTask", *existing)
	return nil
}

// validateDraft enforces the required fields and normalizes the picked date.
// Every failure is reported before any store call is made.
func validateDraft(draft Draft) (date time.Time, err error) {
	if draft.Title == "" {
		return time.Time{}, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if draft.Description == "" {
		return time.Time{}, fmt.Errorf("%w: description is required", ErrValidation)
	}
	if draft.Date == "" {
		return time.Time{}, fmt.Errorf("%w: date is required", ErrValidation)
	}

	picked, err := season.ParsePickedDate(draft.Date)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	return season.ToStorageDate(picked), nil
}

func (s *ServiceImpl) publish(ctx context.Context, eventType event_bus.EventType, operation string, task Task) {
	if s.bus == nil {
		return
	}
	s.bus.Publish(event_bus.NewEvent(ctx, eventType, event_bus.TaskMutation{
		Operation: operation,
		TaskID:    task.ID.String(),
		OwnerUID:  task.OwnerUid,
	}))
}
