package service

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/crm/internal/entity"
)

type ContactDetail struct {
	Contact entity.Contact
	RecordDetail
}

func (s *Service) Contacts(ctx context.Context, q string) ([]entity.Contact, error) {
	return s.repo.Contacts(ctx, q)
}

func (s *Service) Contact(ctx context.Context, id uuid.UUID) (entity.Contact, error) {
	return s.repo.Contact(ctx, id)
}

func (s *Service) CreateContact(ctx context.Context, c entity.Contact) (entity.Contact, error) {
	if c.Name == "" {
		return entity.Contact{}, fmt.Errorf("%w: name is required", entity.ErrInvalidArgument)
	}

	owner, err := ownerFromCtx(ctx)
	if err != nil {
		return entity.Contact{}, err
	}

	c.ID = uuid.Must(uuid.NewV4())
	c.OwnerID = owner

	err = s.repo.CreateContact(ctx, c)
	if err != nil {
		return entity.Contact{}, fmt.Errorf("create contact: %w", err)
	}

	return c, nil
}

func (s *Service) ContactDetail(ctx context.Context, id uuid.UUID) (ContactDetail, error) {
	contact, err := s.repo.Contact(ctx, id)
	if err != nil {
		return ContactDetail{}, err
	}

	err = s.checkView(ctx, entity.ModelContact, contact.ID, contact.OwnerID)
	if err != nil {
		return ContactDetail{}, err
	}

	detail, err := s.recordDetail(ctx, entity.ModelContact, id)
	if err != nil {
		return ContactDetail{}, err
	}

	return ContactDetail{Contact: contact, RecordDetail: detail}, nil
}

func (s *Service) UpdateContact(ctx context.Context, c entity.Contact) error {
	if c.Name == "" {
		return fmt.Errorf("%w: name is required", entity.ErrInvalidArgument)
	}

	return s.repo.UpdateContact(ctx, c)
}
