package service

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/crm/internal/entity"
)

type PricebookDetail struct {
	Pricebook entity.Pricebook
	RecordDetail
}

type PricebookEntryDetail struct {
	Entry entity.PricebookEntry
	RecordDetail
}

func (s *Service) Pricebooks(ctx context.Context, q string) ([]entity.Pricebook, error) {
	return s.repo.Pricebooks(ctx, q)
}

func (s *Service) Pricebook(ctx context.Context, id uuid.UUID) (entity.Pricebook, error) {
	return s.repo.Pricebook(ctx, id)
}

func (s *Service) CreatePricebook(ctx context.Context, p entity.Pricebook) (entity.Pricebook, error) {
	if p.Name == "" {
		return entity.Pricebook{}, fmt.Errorf("%w: name is required", entity.ErrInvalidArgument)
	}

	owner, err := ownerFromCtx(ctx)
	if err != nil {
		return entity.Pricebook{}, err
	}

	p.ID = uuid.Must(uuid.NewV4())
	p.OwnerID = owner

	err = s.repo.CreatePricebook(ctx, p)
	if err != nil {
		return entity.Pricebook{}, fmt.Errorf("create pricebook: %w", err)
	}

	return p, nil
}

func (s *Service) PricebookDetail(ctx context.Context, id uuid.UUID) (PricebookDetail, error) {
	pricebook, err := s.repo.Pricebook(ctx, id)
	if err != nil {
		return PricebookDetail{}, err
	}

	err = s.checkView(ctx, entity.ModelPricebook, pricebook.ID, pricebook.OwnerID)
	if err != nil {
		return PricebookDetail{}, err
	}

	detail, err := s.recordDetail(ctx, entity.ModelPricebook, id)
	if err != nil {
		return PricebookDetail{}, err
	}

	return PricebookDetail{Pricebook: pricebook, RecordDetail: detail}, nil
}

func (s *Service) UpdatePricebook(ctx context.Context, p entity.Pricebook) error {
	if p.Name == "" {
		return fmt.Errorf("%w: name is required", entity.ErrInvalidArgument)
	}

	return s.repo.UpdatePricebook(ctx, p)
}

func (s *Service) PricebookEntries(ctx context.Context, q string) ([]entity.PricebookEntry, error) {
	return s.repo.PricebookEntries(ctx, q)
}

func (s *Service) PricebookEntry(ctx context.Context, id uuid.UUID) (entity.PricebookEntry, error) {
	return s.repo.PricebookEntry(ctx, id)
}

func (s *Service) CreatePricebookEntry(ctx context.Context, e entity.PricebookEntry) (entity.PricebookEntry, error) {
	owner, err := ownerFromCtx(ctx)
	if err != nil {
		return entity.PricebookEntry{}, err
	}

	e.ID = uuid.Must(uuid.NewV4())
	e.OwnerID = owner

	err = s.repo.CreatePricebookEntry(ctx, e)
	if err != nil {
		return entity.PricebookEntry{}, fmt.Errorf("create pricebook entry: %w", err)
	}

	return e, nil
}

func (s *Service) PricebookEntryDetail(ctx context.Context, id uuid.UUID) (PricebookEntryDetail, error) {
	entry, err := s.repo.PricebookEntry(ctx, id)
	if err != nil {
		return PricebookEntryDetail{}, err
	}

	err = s.checkView(ctx, entity.ModelPricebookEntry, entry.ID, entry.OwnerID)
	if err != nil {
		return PricebookEntryDetail{}, err
	}

	detail, err := s.recordDetail(ctx, entity.ModelPricebookEntry, id)
	if err != nil {
		return PricebookEntryDetail{}, err
	}

	return PricebookEntryDetail{Entry: entry, RecordDetail: detail}, nil
}

func (s *Service) UpdatePricebookEntry(ctx context.Context, e entity.PricebookEntry) error {
	return s.repo.UpdatePricebookEntry(ctx, e)
}
