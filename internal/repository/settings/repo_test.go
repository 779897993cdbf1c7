package settings

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/dbpg"

	"github.com/aliskhannn/keepsafe/internal/model"
)

func setupMockDB(t *testing.T) (*Repository, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open mock db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	return NewRepository(&dbpg.DB{Master: db}), mock
}

func TestGet(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(getQuery)).
		WillReturnRows(sqlmock.NewRows([]string{"notifications_enabled", "language", "date_format", "sort_preference"}).
			AddRow(false, "de", "short", model.SortByName))

	s, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.Settings{
		NotificationsEnabled: false,
		Language:             "de",
		DateFormat:           "short",
		SortPreference:       model.SortByName,
	}, s)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGet_NoRowReturnsDefaults(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(getQuery)).WillReturnError(sql.ErrNoRows)

	s, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, model.DefaultSettings(), s)
}

func TestSave(t *testing.T) {
	repo, mock := setupMockDB(t)

	s := model.DefaultSettings()
	mock.ExpectExec(regexp.QuoteMeta(upsertQuery)).
		WithArgs(s.NotificationsEnabled, s.Language, s.DateFormat, s.SortPreference).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Save(context.Background(), s))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPremium(t *testing.T) {
	repo, mock := setupMockDB(t)

	mock.ExpectQuery(regexp.QuoteMeta(getPremiumQuery)).
		WillReturnRows(sqlmock.NewRows([]string{"premium_active"}).AddRow(true))

	active, err := repo.PremiumActive(context.Background())
	require.NoError(t, err)
	assert.True(t, active)

	mock.ExpectExec(regexp.QuoteMeta(setPremiumQuery)).
		WithArgs(false).
		WillReturnError(errors.New("read-only transaction"))

	assert.Error(t, repo.SetPremiumActive(context.Background(), false))
	assert.NoError(t, mock.ExpectationsWereMet())
}
