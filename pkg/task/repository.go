package task

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

type Repository interface {
	StoreTask(ctx context.Context, task Task) error
	GetTask(ctx context.Context, id uuid.UUID) (*Task, error)
	UpdateTask(ctx context.Context, task Task) error
	DeleteTask(ctx context.Context, id uuid.UUID) error
	ListByOwners(ctx context.Context, ownerUids []string) ([]Task, error)
}

type RepositoryImpl struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) *RepositoryImpl {
	return &RepositoryImpl{db: db}
}

func (r *RepositoryImpl) StoreTask(ctx context.Context, task Task) error {
	query := `INSERT INTO task (id, owner_uid, title, description, task_date, created_at)
	          VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.ExecContext(ctx, query,
		task.ID.String(), task.OwnerUid, task.Title, task.Description,
		task.Date.Unix(), task.CreatedAt.Unix())
	if err != nil {
		err := fmt.Errorf("could not store task: %w", err)
		log.Error(err)
		return err
	}
	return nil
}

func (r *RepositoryImpl) GetTask(ctx context.Context, id uuid.UUID) (*Task, error) {
	query := `SELECT id, owner_uid, title, description, task_date, created_at
	          FROM task WHERE id = $1`
	row := r.db.QueryRowContext(ctx, query, id.String())

	task, err := scanTask(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		err := fmt.Errorf("failed to get task %s: %w", id, err)
		log.Error(err)
		return nil, err
	}
	return &task, nil
}

func (r *RepositoryImpl) UpdateTask(ctx context.Context, task Task) error {
	query := `UPDATE task SET title = $1, description = $2, task_date = $3 WHERE id = $4`
	_, err := r.db.ExecContext(ctx, query, task.Title, task.Description, task.Date.Unix(), task.ID.String())
	if err != nil {
		err := fmt.Errorf("could not update task %s: %w", task.ID, err)
		log.Error(err)
		return err
	}
	return nil
}

func (r *RepositoryImpl) DeleteTask(ctx context.Context, id uuid.UUID) error {
	query := "DELETE FROM task WHERE id = $1"
	_, err := r.db.ExecContext(ctx, query, id.String())
	if err != nil {
		err := fmt.Errorf("could not delete task %s: %w", id, err)
		log.Error(err)
		return err
	}
	return nil
}

// ListByOwners returns all tasks owned by the given identities, newest first.
// The descending creation order is what downstream color assignment keys on.
func (r *RepositoryImpl) ListByOwners(ctx context.Context, ownerUids []string) ([]Task, error) {
	if len(ownerUids) == 0 {
		return []Task{}, nil
	}

	placeholders := make([]string, len(ownerUids))
	args := make([]any, len(ownerUids))
	for i, uid := range ownerUids {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = uid
	}

	query := fmt.Sprintf(`SELECT id, owner_uid, title, description, task_date, created_at
	          FROM task
	          WHERE owner_uid IN (%s)
	          ORDER BY created_at DESC, id`, strings.Join(placeholders, ", "))

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		err := fmt.Errorf("failed to list tasks: %w", err)
		log.Error(err)
		return nil, err
	}
	defer rows.Close()

	tasks := make([]Task, 0)
	for rows.Next() {
		task, err := scanTask(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task row: %w", err)
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

func scanTask(scan func(dest ...any) error) (Task, error) {
	var task Task
	var idString string
	var dateUnix, createdAtUnix int64
	if err := scan(&idString, &task.OwnerUid, &task.Title, &task.Description, &dateUnix, &createdAtUnix); err != nil {
		return Task{}, err
	}

	id, err := uuid.Parse(idString)
	if err != nil {
		return Task{}, fmt.Errorf("invalid task id %q: %w", idString, err)
	}
	task.ID = id
	task.Date = time.Unix(dateUnix, 0).UTC()
	task.CreatedAt = time.Unix(createdAtUnix, 0).UTC()
	return task, nil
}
