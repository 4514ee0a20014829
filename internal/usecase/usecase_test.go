package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gitlab.com/fleetops/api/pipeline-admin/internal/apperrors"
	"gitlab.com/fleetops/api/pipeline-admin/internal/model"
	"gitlab.com/fleetops/api/pipeline-admin/internal/session"
	storagemock "gitlab.com/fleetops/api/pipeline-admin/internal/storage/mock"
	"gitlab.com/fleetops/api/pipeline-admin/pkg/logger"
)

func init() {
	logger.Log = zap.NewNop()
}

func ctxAs(role session.Role) context.Context {
	return session.WithUser(context.Background(), session.User{
		ID:    "user-1",
		Email: "user@example.com",
		Role:  role,
	})
}

func strPtr(s string) *string { return &s }

func fixedNow() time.Time {
	return time.Date(2024, time.May, 20, 12, 0, 0, 0, time.UTC)
}

func TestProspectSaveRejectsViewer(t *testing.T) {
	prospects := new(storagemock.ProspectRepoMock)
	svc := NewProspectService(prospects)

	_, err := svc.Save(ctxAs(session.RoleViewer), model.ProspectForm{Name: "Acme"})
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
	prospects.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestProspectSaveRejectsMissingName(t *testing.T) {
	prospects := new(storagemock.ProspectRepoMock)
	svc := NewProspectService(prospects)

	_, err := svc.Save(ctxAs(session.RoleEditor), model.ProspectForm{})
	assert.ErrorIs(t, err, apperrors.ErrValidation)
}

func TestProspectDeleteIsAdminOnly(t *testing.T) {
	prospects := new(storagemock.ProspectRepoMock)
	svc := NewProspectService(prospects)

	err := svc.Delete(ctxAs(session.RoleEditor), 7)
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	prospects.On("Delete", mock.Anything, int64(7)).Return(nil)
	err = svc.Delete(ctxAs(session.RoleAdmin), 7)
	require.NoError(t, err)
	prospects.AssertExpectations(t)
}

func TestProspectSaveInsertsWhenIDZero(t *testing.T) {
	prospects := new(storagemock.ProspectRepoMock)
	svc := NewProspectService(prospects)

	prospects.On("Insert", mock.Anything, mock.AnythingOfType("*model.Prospect")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*model.Prospect).ID = 42
		}).
		Return(nil)

	saved, err := svc.Save(ctxAs(session.RoleDispatcher), model.ProspectForm{Name: "Acme Logistics"})
	require.NoError(t, err)
	assert.Equal(t, int64(42), saved.ID)
	assert.Equal(t, "Acme Logistics", saved.Name)
}

func TestHelpGetReturnsEmptyRecordWhenMissing(t *testing.T) {
	help := new(storagemock.HelpRepoMock)
	svc := NewHelpService(help)

	help.On("Get", mock.Anything, "drivers").Return(nil, apperrors.ErrNotFound)

	content, err := svc.Get(context.Background(), "drivers")
	require.NoError(t, err)
	assert.Equal(t, "drivers", content.PageID)
	assert.Empty(t, content.Content)
}

func TestHelpSaveIsAdminOnly(t *testing.T) {
	help := new(storagemock.HelpRepoMock)
	svc := NewHelpService(help)

	err := svc.Save(ctxAs(session.RoleEditor), "drivers", "<p>hi</p>")
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	help.On("Save", mock.Anything, "drivers", "<p>hi</p>").Return(nil)
	require.NoError(t, svc.Save(ctxAs(session.RoleAdmin), "drivers", "<p>hi</p>"))
}
