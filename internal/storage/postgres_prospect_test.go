package storage

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gitlab.com/fleetops/api/pipeline-admin/internal/apperrors"
	"gitlab.com/fleetops/api/pipeline-admin/internal/model"
)

func TestListProspects(t *testing.T) {
	repo, mock, teardown := newMockDB(t)
	defer teardown()

	rows := sqlmock.NewRows([]string{"id", "name"}).
		AddRow(1, "Acme Logistics").
		AddRow(2, "Globex Freight")
	mock.ExpectQuery(`SELECT \* FROM "prospects" ORDER BY name asc`).WillReturnRows(rows)

	prospects, err := repo.ListProspects(context.Background())
	require.NoError(t, err)
	require.Len(t, prospects, 2)
	assert.Equal(t, "Acme Logistics", prospects[0].Name)
}

func TestInsertProspectFillsID(t *testing.T) {
	repo, mock, teardown := newMockDB(t)
	defer teardown()

	mock.ExpectQuery(`INSERT INTO "prospects"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(42))

	prospect := model.Prospect{Name: "Acme Logistics"}
	err := repo.InsertProspect(context.Background(), &prospect)
	require.NoError(t, err)
	assert.Equal(t, int64(42), prospect.ID)
}

func TestUpdateProspectNotFound(t *testing.T) {
	repo, mock, teardown := newMockDB(t)
	defer teardown()

	mock.ExpectExec(`UPDATE "prospects" SET`).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.UpdateProspect(context.Background(), model.Prospect{ID: 99, Name: "Ghost"})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDeleteProspectCascades(t *testing.T) {
	repo, mock, teardown := newMockDB(t)
	defer teardown()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "prospect_route_drivers" SET "prospect_route_id"`).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM "prospect_routes" WHERE prospect_id`).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM "documents" WHERE prospect_id`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "contact_changes" WHERE prospect_id`).
		WillReturnResult(sqlmock.NewResult(0, 3))
	mock.ExpectExec(`DELETE FROM "contacts" WHERE prospect_id`).
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec(`DELETE FROM "prospects" WHERE`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	assert.NoError(t, repo.DeleteProspect(context.Background(), 1))
}

func TestDeleteProspectNotFoundRollsBack(t *testing.T) {
	repo, mock, teardown := newMockDB(t)
	defer teardown()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "prospect_route_drivers" SET "prospect_route_id"`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM "prospect_routes" WHERE prospect_id`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM "documents" WHERE prospect_id`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM "contact_changes" WHERE prospect_id`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM "contacts" WHERE prospect_id`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec(`DELETE FROM "prospects" WHERE`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectRollback()

	err := repo.DeleteProspect(context.Background(), 99)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
