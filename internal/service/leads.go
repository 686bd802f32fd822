package service

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/crm/internal/entity"
	"github.com/samandr77/crm/internal/repository"
)

type LeadDetail struct {
	Lead entity.Lead
	RecordDetail
}

func (s *Service) Leads(ctx context.Context, q string) ([]entity.Lead, error) {
	return s.repo.Leads(ctx, q)
}

func (s *Service) Lead(ctx context.Context, id uuid.UUID) (entity.Lead, error) {
	return s.repo.Lead(ctx, id)
}

func (s *Service) CreateLead(ctx context.Context, l entity.Lead) (entity.Lead, error) {
	if l.Name == "" {
		return entity.Lead{}, fmt.Errorf("%w: name is required", entity.ErrInvalidArgument)
	}

	owner, err := ownerFromCtx(ctx)
	if err != nil {
		return entity.Lead{}, err
	}

	l.ID = uuid.Must(uuid.NewV4())
	l.OwnerID = owner

	err = s.repo.CreateLead(ctx, l)
	if err != nil {
		return entity.Lead{}, fmt.Errorf("create lead: %w", err)
	}

	return l, nil
}

func (s *Service) LeadDetail(ctx context.Context, id uuid.UUID) (LeadDetail, error) {
	lead, err := s.repo.Lead(ctx, id)
	if err != nil {
		return LeadDetail{}, err
	}

	err = s.checkView(ctx, entity.ModelLead, lead.ID, lead.OwnerID)
	if err != nil {
		return LeadDetail{}, err
	}

	detail, err := s.recordDetail(ctx, entity.ModelLead, id)
	if err != nil {
		return LeadDetail{}, err
	}

	return LeadDetail{Lead: lead, RecordDetail: detail}, nil
}

func (s *Service) UpdateLead(ctx context.Context, l entity.Lead) error {
	if l.Name == "" {
		return fmt.Errorf("%w: name is required", entity.ErrInvalidArgument)
	}

	return s.repo.UpdateLead(ctx, l)
}

// ConvertLead turns a lead into an account plus a contact and removes the
// lead, atomically. The account copies name/email/phone with a blank
// industry; the lead's notes are discarded.
func (s *Service) ConvertLead(ctx context.Context, id uuid.UUID) (uuid.UUID, error) {
	owner, err := ownerFromCtx(ctx)
	if err != nil {
		return uuid.Nil, err
	}

	accountID := uuid.Must(uuid.NewV4())

	err = s.repo.InTx(ctx, func(r *repository.Repository) error {
		lead, err := r.Lead(ctx, id)
		if err != nil {
			return err
		}

		account := entity.Account{
			ID:       accountID,
			Name:     lead.Name,
			Industry: "",
			Email:    lead.Email,
			Phone:    lead.Phone,
			OwnerID:  owner,
		}

		err = r.CreateAccount(ctx, account)
		if err != nil {
			return fmt.Errorf("create account: %w", err)
		}

		contact := entity.Contact{
			ID:        uuid.Must(uuid.NewV4()),
			Name:      lead.Name,
			Email:     lead.Email,
			Phone:     lead.Phone,
			AccountID: uuid.NullUUID{UUID: account.ID, Valid: true},
			OwnerID:   owner,
		}

		err = r.CreateContact(ctx, contact)
		if err != nil {
			return fmt.Errorf("create contact: %w", err)
		}

		err = r.DeleteLead(ctx, lead.ID)
		if err != nil {
			return fmt.Errorf("delete lead: %w", err)
		}

		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}

	return accountID, nil
}
