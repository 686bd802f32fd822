package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/crm/internal/entity"
)

// ShareRecord grants a user explicit access to one record. Any
// authenticated user may create a share; the form only gates on the
// target user existing.
func (s *Service) ShareRecord(
	ctx context.Context,
	model entity.Model,
	recordID uuid.UUID,
	username string,
	canRead, canWrite bool,
) (entity.Share, error) {
	_, err := entity.UserFromCtx(ctx)
	if err != nil {
		return entity.Share{}, err
	}

	target, err := s.repo.UserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, entity.ErrNotFound) {
			return entity.Share{}, fmt.Errorf("%w: no user %q", entity.ErrInvalidArgument, username)
		}

		return entity.Share{}, fmt.Errorf("look up user %q: %w", username, err)
	}

	share := entity.Share{
		ID:       uuid.Must(uuid.NewV4()),
		Model:    model,
		RecordID: recordID,
		UserID:   target.ID,
		CanRead:  canRead,
		CanWrite: canWrite,
	}

	err = s.repo.CreateShare(ctx, share)
	if err != nil {
		return entity.Share{}, fmt.Errorf("create share: %w", err)
	}

	return share, nil
}

func (s *Service) SharesFor(ctx context.Context, model entity.Model, recordID uuid.UUID) ([]entity.Share, error) {
	return s.repo.SharesFor(ctx, model, recordID)
}

func (s *Service) DeleteShare(ctx context.Context, id uuid.UUID) error {
	if err := requireAdmin(ctx); err != nil {
		return err
	}

	return s.repo.DeleteShare(ctx, id)
}
