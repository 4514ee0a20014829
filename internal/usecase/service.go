// Package usecase implements the application's named commands: every
// mutation and query the HTTP layer exposes funnels through exactly one
// service method here. Services own validation, role gating, and the
// business rules around each save; persistence details stay behind the
// storage interfaces.
package usecase

import (
	"context"
	"fmt"

	"gitlab.com/fleetops/api/pipeline-admin/internal/apperrors"
	"gitlab.com/fleetops/api/pipeline-admin/internal/session"
)

// requireWrite returns the caller when its role may create or update records.
func requireWrite(ctx context.Context) (session.User, error) {
	user, err := session.FromContext(ctx)
	if err != nil {
		return session.User{}, fmt.Errorf("%w: %w", apperrors.ErrUnauthorized, err)
	}
	if !user.Role.CanWrite() {
		return session.User{}, fmt.Errorf("%w: role %s cannot modify records", apperrors.ErrForbidden, user.Role)
	}
	return user, nil
}

// requireDelete returns the caller when its role may delete records.
func requireDelete(ctx context.Context) (session.User, error) {
	user, err := session.FromContext(ctx)
	if err != nil {
		return session.User{}, fmt.Errorf("%w: %w", apperrors.ErrUnauthorized, err)
	}
	if !user.Role.CanDelete() {
		return session.User{}, fmt.Errorf("%w: role %s cannot delete records", apperrors.ErrForbidden, user.Role)
	}
	return user, nil
}

// requireAdmin returns the caller when it holds the admin role. Taxonomy,
// help, and role-grant management are admin surfaces.
func requireAdmin(ctx context.Context) (session.User, error) {
	user, err := session.FromContext(ctx)
	if err != nil {
		return session.User{}, fmt.Errorf("%w: %w", apperrors.ErrUnauthorized, err)
	}
	if user.Role != session.RoleAdmin {
		return session.User{}, fmt.Errorf("%w: role %s cannot manage admin settings", apperrors.ErrForbidden, user.Role)
	}
	return user, nil
}
