package service

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/crm/internal/entity"
)

type ProductDetail struct {
	Product entity.Product
	RecordDetail
}

func (s *Service) Products(ctx context.Context, q string) ([]entity.Product, error) {
	return s.repo.Products(ctx, q)
}

func (s *Service) Product(ctx context.Context, id uuid.UUID) (entity.Product, error) {
	return s.repo.Product(ctx, id)
}

func (s *Service) CreateProduct(ctx context.Context, p entity.Product) (entity.Product, error) {
	if p.Name == "" {
		return entity.Product{}, fmt.Errorf("%w: name is required", entity.ErrInvalidArgument)
	}

	owner, err := ownerFromCtx(ctx)
	if err != nil {
		return entity.Product{}, err
	}

	p.ID = uuid.Must(uuid.NewV4())
	p.OwnerID = owner

	err = s.repo.CreateProduct(ctx, p)
	if err != nil {
		return entity.Product{}, fmt.Errorf("create product: %w", err)
	}

	return p, nil
}

func (s *Service) ProductDetail(ctx context.Context, id uuid.UUID) (ProductDetail, error) {
	product, err := s.repo.Product(ctx, id)
	if err != nil {
		return ProductDetail{}, err
	}

	err = s.checkView(ctx, entity.ModelProduct, product.ID, product.OwnerID)
	if err != nil {
		return ProductDetail{}, err
	}

	detail, err := s.recordDetail(ctx, entity.ModelProduct, id)
	if err != nil {
		return ProductDetail{}, err
	}

	return ProductDetail{Product: product, RecordDetail: detail}, nil
}

func (s *Service) UpdateProduct(ctx context.Context, p entity.Product) error {
	if p.Name == "" {
		return fmt.Errorf("%w: name is required", entity.ErrInvalidArgument)
	}

	return s.repo.UpdateProduct(ctx, p)
}
