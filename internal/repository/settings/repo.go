package settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/wb-go/wbf/dbpg"

	"github.com/aliskhannn/keepsafe/internal/model"
)

// The settings table holds a single row with id = 1.
const (
	getQuery = `
		SELECT notifications_enabled, language, date_format, sort_preference
		FROM settings
		WHERE id = 1;
	`

	upsertQuery = `
		INSERT INTO settings (id, notifications_enabled, language, date_format, sort_preference, updated_at)
		VALUES (1, $1, $2, $3, $4, now())
		ON CONFLICT (id) DO UPDATE
		SET notifications_enabled = EXCLUDED.notifications_enabled,
		    language = EXCLUDED.language,
		    date_format = EXCLUDED.date_format,
		    sort_preference = EXCLUDED.sort_preference,
		    updated_at = now();
	`

	getPremiumQuery = `
		SELECT premium_active
		FROM settings
		WHERE id = 1;
	`

	setPremiumQuery = `
		INSERT INTO settings (id, premium_active, updated_at)
		VALUES (1, $1, now())
		ON CONFLICT (id) DO UPDATE
		SET premium_active = EXCLUDED.premium_active,
		    updated_at = now();
	`
)

// Repository stores user preferences and the premium flag.
type Repository struct {
	db *dbpg.DB
}

// NewRepository creates a new settings repository.
func NewRepository(db *dbpg.DB) *Repository {
	return &Repository{db: db}
}

// Get returns the stored settings, or the defaults when none were saved yet.
func (r *Repository) Get(ctx context.Context) (model.Settings, error) {
	var s model.Settings

	err := r.db.Master.QueryRowContext(ctx, getQuery).Scan(
		&s.NotificationsEnabled, &s.Language, &s.DateFormat, &s.SortPreference,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.DefaultSettings(), nil
		}

		return model.Settings{}, fmt.Errorf("failed to get settings: %w", err)
	}

	return s, nil
}

// Save stores the settings.
func (r *Repository) Save(ctx context.Context, s model.Settings) error {
	_, err := r.db.ExecContext(ctx, upsertQuery, s.NotificationsEnabled, s.Language, s.DateFormat, s.SortPreference)
	if err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}

	return nil
}

// PremiumActive reports the stored premium flag.
func (r *Repository) PremiumActive(ctx context.Context) (bool, error) {
	var active bool

	err := r.db.Master.QueryRowContext(ctx, getPremiumQuery).Scan(&active)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}

		return false, fmt.Errorf("failed to get premium status: %w", err)
	}

	return active, nil
}

// SetPremiumActive stores the premium flag.
func (r *Repository) SetPremiumActive(ctx context.Context, active bool) error {
	if _, err := r.db.ExecContext(ctx, setPremiumQuery, active); err != nil {
		return fmt.Errorf("failed to set premium status: %w", err)
	}

	return nil
}
