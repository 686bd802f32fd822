package service

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/crm/internal/entity"
)

type DealDetail struct {
	Deal entity.Deal
	RecordDetail
}

func (s *Service) Deals(ctx context.Context, q string) ([]entity.Deal, error) {
	return s.repo.Deals(ctx, q)
}

func (s *Service) Deal(ctx context.Context, id uuid.UUID) (entity.Deal, error) {
	return s.repo.Deal(ctx, id)
}

func (s *Service) CreateDeal(ctx context.Context, d entity.Deal) (entity.Deal, error) {
	if d.Name == "" {
		return entity.Deal{}, fmt.Errorf("%w: name is required", entity.ErrInvalidArgument)
	}

	owner, err := ownerFromCtx(ctx)
	if err != nil {
		return entity.Deal{}, err
	}

	d.ID = uuid.Must(uuid.NewV4())
	d.OwnerID = owner

	err = s.repo.CreateDeal(ctx, d)
	if err != nil {
		return entity.Deal{}, fmt.Errorf("create deal: %w", err)
	}

	return d, nil
}

func (s *Service) DealDetail(ctx context.Context, id uuid.UUID) (DealDetail, error) {
	deal, err := s.repo.Deal(ctx, id)
	if err != nil {
		return DealDetail{}, err
	}

	err = s.checkView(ctx, entity.ModelDeal, deal.ID, deal.OwnerID)
	if err != nil {
		return DealDetail{}, err
	}

	detail, err := s.recordDetail(ctx, entity.ModelDeal, id)
	if err != nil {
		return DealDetail{}, err
	}

	return DealDetail{Deal: deal, RecordDetail: detail}, nil
}

func (s *Service) UpdateDeal(ctx context.Context, d entity.Deal) error {
	if d.Name == "" {
		return fmt.Errorf("%w: name is required", entity.ErrInvalidArgument)
	}

	return s.repo.UpdateDeal(ctx, d)
}
