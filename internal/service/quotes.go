package service

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/crm/internal/entity"
)

type QuoteDetail struct {
	Quote entity.Quote
	RecordDetail
}

type QuoteLineItemDetail struct {
	Item entity.QuoteLineItem
	RecordDetail
}

func (s *Service) Quotes(ctx context.Context, q string) ([]entity.Quote, error) {
	return s.repo.Quotes(ctx, q)
}

func (s *Service) Quote(ctx context.Context, id uuid.UUID) (entity.Quote, error) {
	return s.repo.Quote(ctx, id)
}

func (s *Service) CreateQuote(ctx context.Context, q entity.Quote) (entity.Quote, error) {
	owner, err := ownerFromCtx(ctx)
	if err != nil {
		return entity.Quote{}, err
	}

	q.ID = uuid.Must(uuid.NewV4())
	q.OwnerID = owner

	err = s.repo.CreateQuote(ctx, q)
	if err != nil {
		return entity.Quote{}, fmt.Errorf("create quote: %w", err)
	}

	return q, nil
}

func (s *Service) QuoteDetail(ctx context.Context, id uuid.UUID) (QuoteDetail, error) {
	quote, err := s.repo.Quote(ctx, id)
	if err != nil {
		return QuoteDetail{}, err
	}

	err = s.checkView(ctx, entity.ModelQuote, quote.ID, quote.OwnerID)
	if err != nil {
		return QuoteDetail{}, err
	}

	detail, err := s.recordDetail(ctx, entity.ModelQuote, id)
	if err != nil {
		return QuoteDetail{}, err
	}

	return QuoteDetail{Quote: quote, RecordDetail: detail}, nil
}

func (s *Service) UpdateQuote(ctx context.Context, q entity.Quote) error {
	return s.repo.UpdateQuote(ctx, q)
}

func (s *Service) QuoteLineItems(ctx context.Context, q string) ([]entity.QuoteLineItem, error) {
	return s.repo.QuoteLineItems(ctx, q)
}

func (s *Service) QuoteLineItem(ctx context.Context, id uuid.UUID) (entity.QuoteLineItem, error) {
	return s.repo.QuoteLineItem(ctx, id)
}

func (s *Service) CreateQuoteLineItem(ctx context.Context, i entity.QuoteLineItem) (entity.QuoteLineItem, error) {
	if i.Quantity < 0 {
		return entity.QuoteLineItem{}, fmt.Errorf("%w: negative quantity", entity.ErrInvalidArgument)
	}

	owner, err := ownerFromCtx(ctx)
	if err != nil {
		return entity.QuoteLineItem{}, err
	}

	i.ID = uuid.Must(uuid.NewV4())
	i.OwnerID = owner

	err = s.repo.CreateQuoteLineItem(ctx, i)
	if err != nil {
		return entity.QuoteLineItem{}, fmt.Errorf("create quote line item: %w", err)
	}

	return i, nil
}

func (s *Service) QuoteLineItemDetail(ctx context.Context, id uuid.UUID) (QuoteLineItemDetail, error) {
	item, err := s.repo.QuoteLineItem(ctx, id)
	if err != nil {
		return QuoteLineItemDetail{}, err
	}

	err = s.checkView(ctx, entity.ModelQuoteLineItem, item.ID, item.OwnerID)
	if err != nil {
		return QuoteLineItemDetail{}, err
	}

	detail, err := s.recordDetail(ctx, entity.ModelQuoteLineItem, id)
	if err != nil {
		return QuoteLineItemDetail{}, err
	}

	return QuoteLineItemDetail{Item: item, RecordDetail: detail}, nil
}

func (s *Service) UpdateQuoteLineItem(ctx context.Context, i entity.QuoteLineItem) error {
	if i.Quantity < 0 {
		return fmt.Errorf("%w: negative quantity", entity.ErrInvalidArgument)
	}

	return s.repo.UpdateQuoteLineItem(ctx, i)
}
