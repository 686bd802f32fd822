package service

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/crm/internal/entity"
)

type AccountDetail struct {
	Account entity.Account
	RecordDetail
}

func (s *Service) Accounts(ctx context.Context, q string) ([]entity.Account, error) {
	return s.repo.Accounts(ctx, q)
}

func (s *Service) Account(ctx context.Context, id uuid.UUID) (entity.Account, error) {
	return s.repo.Account(ctx, id)
}

func (s *Service) CreateAccount(ctx context.Context, a entity.Account) (entity.Account, error) {
	if a.Name == "" {
		return entity.Account{}, fmt.Errorf("%w: name is required", entity.ErrInvalidArgument)
	}

	owner, err := ownerFromCtx(ctx)
	if err != nil {
		return entity.Account{}, err
	}

	a.ID = uuid.Must(uuid.NewV4())
	a.OwnerID = owner

	err = s.repo.CreateAccount(ctx, a)
	if err != nil {
		return entity.Account{}, fmt.Errorf("create account: %w", err)
	}

	return a, nil
}

func (s *Service) AccountDetail(ctx context.Context, id uuid.UUID) (AccountDetail, error) {
	account, err := s.repo.Account(ctx, id)
	if err != nil {
		return AccountDetail{}, err
	}

	err = s.checkView(ctx, entity.ModelAccount, account.ID, account.OwnerID)
	if err != nil {
		return AccountDetail{}, err
	}

	detail, err := s.recordDetail(ctx, entity.ModelAccount, id)
	if err != nil {
		return AccountDetail{}, err
	}

	return AccountDetail{Account: account, RecordDetail: detail}, nil
}

func (s *Service) UpdateAccount(ctx context.Context, a entity.Account) error {
	if a.Name == "" {
		return fmt.Errorf("%w: name is required", entity.ErrInvalidArgument)
	}

	return s.repo.UpdateAccount(ctx, a)
}
