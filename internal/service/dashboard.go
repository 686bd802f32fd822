package service

import (
	"context"

	"github.com/samandr77/crm/internal/entity"
)

// Dashboard is the landing page payload: per-model record counts and the
// task list, filterable by the same q parameter as the tasks page.
type Dashboard struct {
	Counts map[entity.Model]int `json:"counts"`
	Tasks  []entity.Task        `json:"tasks"`
}

func (s *Service) Dashboard(ctx context.Context, q string) (Dashboard, error) {
	counts, err := s.repo.RecordCounts(ctx)
	if err != nil {
		return Dashboard{}, err
	}

	tasks, err := s.repo.Tasks(ctx, q)
	if err != nil {
		return Dashboard{}, err
	}

	return Dashboard{Counts: counts, Tasks: tasks}, nil
}
