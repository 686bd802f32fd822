package service

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/crm/internal/entity"
)

type TaskDetail struct {
	Task entity.Task
	RecordDetail
}

func (s *Service) Tasks(ctx context.Context, q string) ([]entity.Task, error) {
	return s.repo.Tasks(ctx, q)
}

func (s *Service) Task(ctx context.Context, id uuid.UUID) (entity.Task, error) {
	return s.repo.Task(ctx, id)
}

func (s *Service) CreateTask(ctx context.Context, t entity.Task) (entity.Task, error) {
	if t.Description == "" {
		return entity.Task{}, fmt.Errorf("%w: description is required", entity.ErrInvalidArgument)
	}

	if t.RecordID.Valid {
		_, err := entity.ParseModel(t.Model.String())
		if err != nil {
			return entity.Task{}, err
		}
	}

	owner, err := ownerFromCtx(ctx)
	if err != nil {
		return entity.Task{}, err
	}

	t.ID = uuid.Must(uuid.NewV4())
	t.OwnerID = owner

	err = s.repo.CreateTask(ctx, t)
	if err != nil {
		return entity.Task{}, fmt.Errorf("create task: %w", err)
	}

	return t, nil
}

func (s *Service) TaskDetail(ctx context.Context, id uuid.UUID) (TaskDetail, error) {
	task, err := s.repo.Task(ctx, id)
	if err != nil {
		return TaskDetail{}, err
	}

	err = s.checkView(ctx, entity.ModelTask, task.ID, task.OwnerID)
	if err != nil {
		return TaskDetail{}, err
	}

	detail, err := s.recordDetail(ctx, entity.ModelTask, id)
	if err != nil {
		return TaskDetail{}, err
	}

	return TaskDetail{Task: task, RecordDetail: detail}, nil
}

func (s *Service) UpdateTask(ctx context.Context, t entity.Task) error {
	if t.Description == "" {
		return fmt.Errorf("%w: description is required", entity.ErrInvalidArgument)
	}

	return s.repo.UpdateTask(ctx, t)
}
