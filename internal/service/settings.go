package service

import (
	"context"
	"fmt"

	"github.com/samandr77/crm/internal/entity"
)

// Settings returns the current user's preferences alongside the choices
// the settings form offers.
type Settings struct {
	entity.UserSettings
	Languages  []string
	Currencies []string
}

func (s *Service) Settings(ctx context.Context) (Settings, error) {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return Settings{}, err
	}

	return Settings{
		UserSettings: entity.UserSettings{
			Language: user.Language,
			Timezone: user.Timezone,
			Country:  user.Country,
			Currency: user.Currency,
		},
		Languages:  s.langs.Languages(),
		Currencies: entity.SupportedCurrencies,
	}, nil
}

func (s *Service) UpdateSettings(ctx context.Context, settings entity.UserSettings) error {
	user, err := entity.UserFromCtx(ctx)
	if err != nil {
		return err
	}

	if !s.langs.Supported(settings.Language) {
		return fmt.Errorf("%w: unsupported language %q", entity.ErrInvalidArgument, settings.Language)
	}

	if !entity.CurrencySupported(settings.Currency) {
		return fmt.Errorf("%w: unsupported currency %q", entity.ErrInvalidArgument, settings.Currency)
	}

	return s.repo.UpdateUserSettings(ctx, user.ID, settings)
}

// Translate resolves a message key in the request language.
func (s *Service) Translate(ctx context.Context, key string) string {
	return s.langs.T(entity.LangFromCtx(ctx), key)
}
