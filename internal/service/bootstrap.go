package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/gofrs/uuid/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/samandr77/crm/internal/entity"
	"github.com/samandr77/crm/internal/repository"
)

const (
	bootstrapAdminUsername = "admin"
	bootstrapAdminPassword = "admin"
)

// EnsureDefaults seeds a fresh database: the admin/admin user if no such
// username exists, and the default board columns if the status_options
// table is empty. Safe to run on every start.
func (s *Service) EnsureDefaults(ctx context.Context) error {
	return s.repo.InTx(ctx, func(r *repository.Repository) error {
		err := ensureAdmin(ctx, r)
		if err != nil {
			return err
		}

		return ensureStatusOptions(ctx, r)
	})
}

func ensureAdmin(ctx context.Context, r *repository.Repository) error {
	_, err := r.UserByUsername(ctx, bootstrapAdminUsername)
	if err == nil {
		return nil
	}

	if !errors.Is(err, entity.ErrNotFound) {
		return fmt.Errorf("look up admin user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(bootstrapAdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	admin := entity.User{
		ID:           uuid.Must(uuid.NewV4()),
		Username:     bootstrapAdminUsername,
		PasswordHash: string(hash),
		IsAdmin:      true,
		Language:     entity.DefaultLanguage,
		Timezone:     entity.DefaultTimezone,
		Currency:     entity.DefaultCurrency,
	}

	err = r.CreateUser(ctx, admin)
	if err != nil {
		return fmt.Errorf("create admin user: %w", err)
	}

	slog.InfoContext(ctx, "seeded default admin user", "username", bootstrapAdminUsername)

	return nil
}

func ensureStatusOptions(ctx context.Context, r *repository.Repository) error {
	seeded, err := r.HasStatusOptions(ctx)
	if err != nil {
		return fmt.Errorf("check status options: %w", err)
	}

	if seeded {
		return nil
	}

	for _, model := range entity.KanbanModels {
		for _, value := range entity.DefaultStatusOptions[model] {
			option := entity.StatusOption{
				ID:    uuid.Must(uuid.NewV4()),
				Model: model,
				Value: value,
			}

			err := r.CreateStatusOption(ctx, option)
			if err != nil {
				return fmt.Errorf("seed status option %s/%s: %w", model, value, err)
			}
		}
	}

	slog.InfoContext(ctx, "seeded default status options")

	return nil
}
