package task

import (
	"context"
	"sort"

	"github.com/google/uuid"
)

type StubRepository struct {
	Tasks []Task
}

func (s *StubRepository) StoreTask(ctx context.Context, task Task) error {
	s.Tasks = append(s.Tasks, task)
	return nil
}

func (s *StubRepository) GetTask(ctx context.Context, id uuid.UUID) (*Task, error) {
	for i := range s.Tasks {
		if s.Tasks[i].ID == id {
			return &s.Tasks[i], nil
		}
	}
	return nil, nil
}

func (s *StubRepository) UpdateTask(ctx context.Context, task Task) error {
	for i := range s.Tasks {
		if s.Tasks[i].ID == task.ID {
			s.Tasks[i].Title = task.Title
			s.Tasks[i].Description = task.Description
			s.Tasks[i].Date = task.Date
		}
	}
	return nil
}

func (s *StubRepository) DeleteTask(ctx context.Context, id uuid.UUID) error {
	remaining := s.Tasks[:0]
	for _, t := range s.Tasks {
		if t.ID != id {
			remaining = append(remaining, t)
		}
	}
	s.Tasks = remaining
	return nil
}

func (s *StubRepository) ListByOwners(ctx context.Context, ownerUids []string) ([]Task, error) {
	owners := make(map[string]bool, len(ownerUids))
	for _, uid := range ownerUids {
		owners[uid] = true
	}

	result := make([]Task, 0)
	for _, t := range s.Tasks {
		if owners[t.OwnerUid] {
			result = append(result, t)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}
