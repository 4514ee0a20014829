package storage

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/fleetops/api/pipeline-admin/internal/apperrors"
)

func TestGetHelpContentNotFound(t *testing.T) {
	repo, mock, teardown := newMockDB(t)
	defer teardown()

	mock.ExpectQuery(`SELECT \* FROM "help_content" WHERE page_id`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "page_id", "content"}))

	_, err := repo.GetHelpContent(context.Background(), "prospects")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestSaveHelpContentUpdatesExistingRow(t *testing.T) {
	repo, mock, teardown := newMockDB(t)
	defer teardown()

	mock.ExpectExec(`UPDATE "help_content" SET`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.SaveHelpContent(context.Background(), "prospects", "<p>updated</p>")
	assert.NoError(t, err)
}

func TestSaveHelpContentInsertsWhenMissing(t *testing.T) {
	repo, mock, teardown := newMockDB(t)
	defer teardown()

	mock.ExpectExec(`UPDATE "help_content" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectQuery(`INSERT INTO "help_content"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	err := repo.SaveHelpContent(context.Background(), "drivers", "<p>first draft</p>")
	require.NoError(t, err)
}
