package session

import (
	"context"
	"errors"
)

// Role is the access level resolved for an authenticated identity.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleEditor     Role = "editor"
	RoleDispatcher Role = "dispatcher"
	RoleViewer     Role = "viewer"
)

// Valid reports whether r is one of the four known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleEditor, RoleDispatcher, RoleViewer:
		return true
	}
	return false
}

// CanWrite reports whether the role may create or update records.
func (r Role) CanWrite() bool {
	return r == RoleAdmin || r == RoleEditor || r == RoleDispatcher
}

// CanDelete reports whether the role may delete records.
func (r Role) CanDelete() bool {
	return r == RoleAdmin
}

// User identifies the authenticated caller for one request.
type User struct {
	ID    string
	Email string
	Role  Role
}

type contextKey string

const (
	userKey      contextKey = "user"
	requestIDKey contextKey = "requestID"
)

// ErrNoUserInContext is returned when no authenticated user is found in context.
var ErrNoUserInContext = errors.New("no user found in context")

// ErrNoRequestIDInContext is returned when no request ID is found in context.
var ErrNoRequestIDInContext = errors.New("no request ID found in context")

// WithUser attaches the authenticated user to the context.
func WithUser(ctx context.Context, user User) context.Context {
	return context.WithValue(ctx, userKey, user)
}

// FromContext extracts the authenticated user from the context.
func FromContext(ctx context.Context) (User, error) {
	user, ok := ctx.Value(userKey).(User)
	if !ok || user.ID == "" {
		return User{}, ErrNoUserInContext
	}
	return user, nil
}

// MustFromContext extracts the authenticated user from the context or panics.
func MustFromContext(ctx context.Context) User {
	user, err := FromContext(ctx)
	if err != nil {
		panic(err)
	}
	return user
}

// WithRequestID adds a request ID to the context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// FromRequestIDContext extracts the request ID from the context.
func FromRequestIDContext(ctx context.Context) (string, error) {
	requestID, ok := ctx.Value(requestIDKey).(string)
	if !ok || requestID == "" {
		return "", ErrNoRequestIDInContext
	}
	return requestID, nil
}
