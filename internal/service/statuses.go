package service

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/crm/internal/entity"
)

// KanbanColumn is one board column: a status value and the records
// currently in it, reduced to the fields a card shows.
type KanbanColumn struct {
	Status string       `json:"status"`
	Cards  []KanbanCard `json:"cards"`
}

type KanbanCard struct {
	ID    uuid.UUID `json:"id"`
	Title string    `json:"title"`
	Path  string    `json:"path"`
}

// Kanban builds the status-grouped board for a model. Columns follow the
// admin-managed status options in their stored order; a record whose
// status matches no option simply does not appear.
func (s *Service) Kanban(ctx context.Context, model entity.Model) ([]KanbanColumn, error) {
	if !model.HasKanban() {
		return nil, fmt.Errorf("%w: no board for %q", entity.ErrUnknownModel, model)
	}

	options, err := s.repo.StatusOptions(ctx, model)
	if err != nil {
		return nil, err
	}

	columns := make([]KanbanColumn, 0, len(options))

	for _, option := range options {
		cards, err := s.kanbanCards(ctx, model, option.Value)
		if err != nil {
			return nil, err
		}

		columns = append(columns, KanbanColumn{Status: option.Value, Cards: cards})
	}

	return columns, nil
}

func (s *Service) kanbanCards(ctx context.Context, model entity.Model, status string) ([]KanbanCard, error) {
	cards := []KanbanCard{}

	switch model {
	case entity.ModelLead:
		leads, err := s.repo.LeadsByStatus(ctx, status)
		if err != nil {
			return nil, err
		}

		for _, l := range leads {
			card, err := newKanbanCard(model, l.ID, l.Name)
			if err != nil {
				return nil, err
			}

			cards = append(cards, card)
		}
	case entity.ModelDeal:
		deals, err := s.repo.DealsByStage(ctx, status)
		if err != nil {
			return nil, err
		}

		for _, d := range deals {
			card, err := newKanbanCard(model, d.ID, d.Name)
			if err != nil {
				return nil, err
			}

			cards = append(cards, card)
		}
	case entity.ModelTask:
		tasks, err := s.repo.TasksByStatus(ctx, status)
		if err != nil {
			return nil, err
		}

		for _, t := range tasks {
			card, err := newKanbanCard(model, t.ID, t.Description)
			if err != nil {
				return nil, err
			}

			cards = append(cards, card)
		}
	default:
		return nil, fmt.Errorf("%w: no board for %q", entity.ErrUnknownModel, model)
	}

	return cards, nil
}

func newKanbanCard(model entity.Model, id uuid.UUID, title string) (KanbanCard, error) {
	path, err := model.RoutePath(id)
	if err != nil {
		return KanbanCard{}, err
	}

	return KanbanCard{ID: id, Title: title, Path: path}, nil
}

// UpdateRecordStatus moves a record to a new status column. Only the
// board models carry a status-like column; the value is written as
// given, matching the drag-and-drop endpoint.
func (s *Service) UpdateRecordStatus(ctx context.Context, model entity.Model, id uuid.UUID, status string) error {
	switch model {
	case entity.ModelLead:
		return s.repo.UpdateLeadStatus(ctx, id, status)
	case entity.ModelDeal:
		return s.repo.UpdateDealStage(ctx, id, status)
	case entity.ModelTask:
		return s.repo.UpdateTaskStatus(ctx, id, status)
	default:
		return fmt.Errorf("%w: %q has no status", entity.ErrUnknownModel, model)
	}
}

func (s *Service) StatusOptions(ctx context.Context, model entity.Model) ([]entity.StatusOption, error) {
	return s.repo.StatusOptions(ctx, model)
}

func (s *Service) AllStatusOptions(ctx context.Context) ([]entity.StatusOption, error) {
	if err := requireAdmin(ctx); err != nil {
		return nil, err
	}

	return s.repo.AllStatusOptions(ctx)
}

func (s *Service) CreateStatusOption(ctx context.Context, model entity.Model, value string) (entity.StatusOption, error) {
	if err := requireAdmin(ctx); err != nil {
		return entity.StatusOption{}, err
	}

	if value == "" {
		return entity.StatusOption{}, fmt.Errorf("%w: empty status value", entity.ErrInvalidArgument)
	}

	if !model.HasKanban() {
		return entity.StatusOption{}, fmt.Errorf("%w: no statuses for %q", entity.ErrUnknownModel, model)
	}

	option := entity.StatusOption{
		ID:    uuid.Must(uuid.NewV4()),
		Model: model,
		Value: value,
	}

	err := s.repo.CreateStatusOption(ctx, option)
	if err != nil {
		return entity.StatusOption{}, fmt.Errorf("create status option: %w", err)
	}

	return option, nil
}

func (s *Service) UpdateStatusOption(ctx context.Context, id uuid.UUID, value string) error {
	if err := requireAdmin(ctx); err != nil {
		return err
	}

	if value == "" {
		return fmt.Errorf("%w: empty status value", entity.ErrInvalidArgument)
	}

	return s.repo.UpdateStatusOption(ctx, id, value)
}

func (s *Service) DeleteStatusOption(ctx context.Context, id uuid.UUID) error {
	if err := requireAdmin(ctx); err != nil {
		return err
	}

	return s.repo.DeleteStatusOption(ctx, id)
}
