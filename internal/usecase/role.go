package usecase

import (
	"context"

	"go.uber.org/zap"

	"gitlab.com/fleetops/api/pipeline-admin/internal/apperrors"
	"gitlab.com/fleetops/api/pipeline-admin/internal/config"
	"gitlab.com/fleetops/api/pipeline-admin/internal/model"
	"gitlab.com/fleetops/api/pipeline-admin/internal/session"
	"gitlab.com/fleetops/api/pipeline-admin/internal/storage"
	"gitlab.com/fleetops/api/pipeline-admin/internal/validator"
	"gitlab.com/fleetops/api/pipeline-admin/pkg/logger"
)

// RoleService resolves caller roles and manages role grants. An identity
// without a grant is a viewer; identities on the configured admin override
// list are always admin regardless of any stored grant, so a bad grant edit
// can never lock every admin out.
type RoleService struct {
	roles storage.UserRoleRepo
	cfg   *config.Config
}

// NewRoleService creates a RoleService.
func NewRoleService(roles storage.UserRoleRepo, cfg *config.Config) *RoleService {
	return &RoleService{roles: roles, cfg: cfg}
}

// Resolve returns the role for an authenticated identity. Runs before the
// session user exists in context, so it takes the identity directly.
func (s *RoleService) Resolve(ctx context.Context, userID, email string) (session.Role, error) {
	if s.cfg.IsAdminOverride(email) {
		return session.RoleAdmin, nil
	}

	grant, err := s.roles.Get(ctx, userID)
	if apperrors.IsNotFoundError(err) {
		return session.RoleViewer, nil
	}
	if err != nil {
		return "", err
	}

	role := session.Role(grant.Role)
	if !role.Valid() {
		logger.FromContext(ctx).Warn("Stored role grant is not a known role, treating as viewer",
			zap.String("user_id", userID), zap.String("role", grant.Role))
		return session.RoleViewer, nil
	}
	return role, nil
}

// List returns every role grant.
func (s *RoleService) List(ctx context.Context) ([]model.UserRole, error) {
	if _, err := requireAdmin(ctx); err != nil {
		return nil, err
	}
	return s.roles.List(ctx)
}

// Grant creates or replaces the role grant for one identity.
func (s *RoleService) Grant(ctx context.Context, grant model.UserRole) error {
	user, err := requireAdmin(ctx)
	if err != nil {
		return err
	}
	if err := validator.Validate(grant); err != nil {
		return err
	}
	if err := s.roles.Upsert(ctx, grant); err != nil {
		return err
	}
	logger.FromContext(ctx).Info("Granted role",
		zap.String("grantee", grant.UserID), zap.String("role", grant.Role), zap.String("user_id", user.ID))
	return nil
}

// Revoke removes the role grant for one identity, dropping it to viewer.
func (s *RoleService) Revoke(ctx context.Context, userID string) error {
	user, err := requireAdmin(ctx)
	if err != nil {
		return err
	}
	if err := s.roles.Delete(ctx, userID); err != nil {
		return err
	}
	logger.FromContext(ctx).Info("Revoked role",
		zap.String("grantee", userID), zap.String("user_id", user.ID))
	return nil
}
