package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/wb-go/wbf/zlog"

	"github.com/aliskhannn/keepsafe/internal/model"
)

// Keys used by Export and Import.
const (
	KeyNotificationsEnabled = "notifications_enabled"
	KeyLanguage             = "language"
	KeyDateFormat           = "date_format"
	KeySortPreference       = "sort_preference"
)

var ErrInvalidSetting = errors.New("invalid setting")

//go:generate mockgen -source=service.go -destination=../../mocks/service/settings/mock.go -package=mocks
type settingsRepository interface {
	Get(ctx context.Context) (model.Settings, error)
	Save(ctx context.Context, s model.Settings) error
}

// Service manages user preferences.
type Service struct {
	repo settingsRepository
}

// NewService creates a settings service.
func NewService(repo settingsRepository) *Service {
	return &Service{repo: repo}
}

// Get returns the current settings.
func (s *Service) Get(ctx context.Context) (model.Settings, error) {
	settings, err := s.repo.Get(ctx)
	if err != nil {
		return model.Settings{}, fmt.Errorf("get settings: %w", err)
	}

	return settings, nil
}

// NotificationsEnabled reports whether the user wants notifications delivered.
func (s *Service) NotificationsEnabled(ctx context.Context) (bool, error) {
	settings, err := s.Get(ctx)
	if err != nil {
		return false, err
	}

	return settings.NotificationsEnabled, nil
}

// Update validates and stores settings.
func (s *Service) Update(ctx context.Context, settings model.Settings) error {
	if err := validate(settings); err != nil {
		return err
	}

	if err := s.repo.Save(ctx, settings); err != nil {
		return fmt.Errorf("update settings: %w", err)
	}

	return nil
}

// Reset restores the defaults and returns them.
func (s *Service) Reset(ctx context.Context) (model.Settings, error) {
	defaults := model.DefaultSettings()

	if err := s.repo.Save(ctx, defaults); err != nil {
		return model.Settings{}, fmt.Errorf("reset settings: %w", err)
	}

	zlog.Logger.Info().Msg("settings reset to defaults")

	return defaults, nil
}

// Export returns the settings as a flat key/value map.
func (s *Service) Export(ctx context.Context) (map[string]any, error) {
	settings, err := s.Get(ctx)
	if err != nil {
		return nil, err
	}

	return map[string]any{
		KeyNotificationsEnabled: settings.NotificationsEnabled,
		KeyLanguage:             settings.Language,
		KeyDateFormat:           settings.DateFormat,
		KeySortPreference:       settings.SortPreference,
	}, nil
}

// Import applies the known keys of values on top of the current settings.
// Unknown keys are ignored; a known key with the wrong type fails the whole import.
func (s *Service) Import(ctx context.Context, values map[string]any) (model.Settings, error) {
	settings, err := s.Get(ctx)
	if err != nil {
		return model.Settings{}, err
	}

	for key, v := range values {
		switch key {
		case KeyNotificationsEnabled:
			b, ok := v.(bool)
			if !ok {
				return model.Settings{}, fmt.Errorf("%w: %s must be a boolean", ErrInvalidSetting, key)
			}
			settings.NotificationsEnabled = b
		case KeyLanguage, KeyDateFormat, KeySortPreference:
			str, ok := v.(string)
			if !ok {
				return model.Settings{}, fmt.Errorf("%w: %s must be a string", ErrInvalidSetting, key)
			}

			switch key {
			case KeyLanguage:
				settings.Language = str
			case KeyDateFormat:
				settings.DateFormat = str
			default:
				settings.SortPreference = str
			}
		}
	}

	if err := s.Update(ctx, settings); err != nil {
		return model.Settings{}, err
	}

	return settings, nil
}

func validate(s model.Settings) error {
	switch s.SortPreference {
	case model.SortByExpiration, model.SortByName, model.SortByCreated:
	default:
		return fmt.Errorf("%w: unknown sort preference %q", ErrInvalidSetting, s.SortPreference)
	}

	if s.Language == "" {
		return fmt.Errorf("%w: language is empty", ErrInvalidSetting)
	}

	if s.DateFormat == "" {
		return fmt.Errorf("%w: date format is empty", ErrInvalidSetting)
	}

	return nil
}
