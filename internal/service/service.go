package service

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/samandr77/crm/internal/entity"
	"github.com/samandr77/crm/internal/repository"
	"github.com/samandr77/crm/pkg/i18n"
)

type Producer interface {
	SendNotificationCreated(
		ctx context.Context,
		notificationID, userID, messageID uuid.UUID,
		model string,
		recordID uuid.UUID,
	)
}

type Mailer interface {
	SendMessage(subject, message string, recipients []string) error
}

type Service struct {
	repo     *repository.Repository
	access   *Access
	sessions *SessionManager
	producer Producer
	mailer   Mailer // nil when outgoing mail is disabled
	langs    *i18n.Bundle
}

func New(repo *repository.Repository, sessions *SessionManager, producer Producer, mailer Mailer, langs *i18n.Bundle) *Service {
	return &Service{
		repo:     repo,
		access:   NewAccess(repo),
		sessions: sessions,
		producer: producer,
		mailer:   mailer,
		langs:    langs,
	}
}

// RecordDetail is the show-page payload shared by every entity: the
// record's attached tasks and messages.
type RecordDetail struct {
	Tasks    []entity.Task
	Messages []entity.Message
}

func (s *Service) recordDetail(ctx context.Context, model entity.Model, recordID uuid.UUID) (RecordDetail, error) {
	tasks, err := s.repo.TasksFor(ctx, model, recordID)
	if err != nil {
		return RecordDetail{}, err
	}

	messages, err := s.repo.MessagesFor(ctx, model, recordID)
	if err != nil {
		return RecordDetail{}, err
	}

	return RecordDetail{Tasks: tasks, Messages: messages}, nil
}

// checkView loads the record's shares and applies the access evaluator
// for the current user. Returns entity.ErrForbidden on denial.
func (s *Service) checkView(ctx context.Context, model entity.Model, recordID uuid.UUID, ownerID uuid.NullUUID) error {
	viewer, err := entity.UserFromCtx(ctx)
	if err != nil {
		return err
	}

	shares, err := s.repo.SharesFor(ctx, model, recordID)
	if err != nil {
		return err
	}

	ok, err := s.access.CanView(ctx, viewer, ownerID, shares)
	if err != nil {
		return err
	}

	if !ok {
		return entity.ErrForbidden
	}

	return nil
}

// ownerFromCtx returns the current user's id for stamping new records.
func ownerFromCtx(ctx context.Context) (uuid.NullUUID, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return uuid.NullUUID{}, err
	}

	return uuid.NullUUID{UUID: user.ID, Valid: true}, nil
}
