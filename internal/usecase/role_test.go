package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"gitlab.com/fleetops/api/pipeline-admin/internal/apperrors"
	"gitlab.com/fleetops/api/pipeline-admin/internal/config"
	"gitlab.com/fleetops/api/pipeline-admin/internal/model"
	"gitlab.com/fleetops/api/pipeline-admin/internal/session"
	storagemock "gitlab.com/fleetops/api/pipeline-admin/internal/storage/mock"
)

func configWithOverride(emails ...string) *config.Config {
	cfg := &config.Config{}
	cfg.Access.AdminOverrideEmails = emails
	return cfg
}

func TestResolveOverrideEmailIsAlwaysAdmin(t *testing.T) {
	roles := new(storagemock.UserRoleRepoMock)
	svc := NewRoleService(roles, configWithOverride("owner@example.com"))

	role, err := svc.Resolve(context.Background(), "u-1", "Owner@Example.com")
	require.NoError(t, err)
	assert.Equal(t, session.RoleAdmin, role)
	roles.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestResolveMissingGrantDefaultsToViewer(t *testing.T) {
	roles := new(storagemock.UserRoleRepoMock)
	svc := NewRoleService(roles, configWithOverride())

	roles.On("Get", mock.Anything, "u-2").Return(nil, apperrors.ErrNotFound)

	role, err := svc.Resolve(context.Background(), "u-2", "someone@example.com")
	require.NoError(t, err)
	assert.Equal(t, session.RoleViewer, role)
}

func TestResolveUsesStoredGrant(t *testing.T) {
	roles := new(storagemock.UserRoleRepoMock)
	svc := NewRoleService(roles, configWithOverride())

	roles.On("Get", mock.Anything, "u-3").Return(&model.UserRole{
		UserID: "u-3",
		Email:  "ed@example.com",
		Role:   "editor",
	}, nil)

	role, err := svc.Resolve(context.Background(), "u-3", "ed@example.com")
	require.NoError(t, err)
	assert.Equal(t, session.RoleEditor, role)
}

func TestResolveUnknownStoredRoleDowngradesToViewer(t *testing.T) {
	roles := new(storagemock.UserRoleRepoMock)
	svc := NewRoleService(roles, configWithOverride())

	roles.On("Get", mock.Anything, "u-4").Return(&model.UserRole{
		UserID: "u-4",
		Email:  "x@example.com",
		Role:   "superuser",
	}, nil)

	role, err := svc.Resolve(context.Background(), "u-4", "x@example.com")
	require.NoError(t, err)
	assert.Equal(t, session.RoleViewer, role)
}

func TestGrantValidatesAndUpserts(t *testing.T) {
	roles := new(storagemock.UserRoleRepoMock)
	svc := NewRoleService(roles, configWithOverride())

	err := svc.Grant(ctxAs(session.RoleAdmin), model.UserRole{UserID: "u-5", Email: "bad", Role: "editor"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	err = svc.Grant(ctxAs(session.RoleAdmin), model.UserRole{UserID: "u-5", Email: "n@example.com", Role: "king"})
	assert.ErrorIs(t, err, apperrors.ErrValidation)

	roles.On("Upsert", mock.Anything, mock.AnythingOfType("model.UserRole")).Return(nil)
	err = svc.Grant(ctxAs(session.RoleAdmin), model.UserRole{UserID: "u-5", Email: "n@example.com", Role: "editor"})
	require.NoError(t, err)
}

func TestGrantAndRevokeAreAdminOnly(t *testing.T) {
	roles := new(storagemock.UserRoleRepoMock)
	svc := NewRoleService(roles, configWithOverride())

	err := svc.Grant(ctxAs(session.RoleDispatcher), model.UserRole{UserID: "u-6", Email: "n@example.com", Role: "viewer"})
	assert.ErrorIs(t, err, apperrors.ErrForbidden)

	err = svc.Revoke(ctxAs(session.RoleEditor), "u-6")
	assert.ErrorIs(t, err, apperrors.ErrForbidden)
}
