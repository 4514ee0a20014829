package httpapi

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"gitlab.com/fleetops/api/pipeline-admin/internal/apperrors"
	"gitlab.com/fleetops/api/pipeline-admin/internal/observer"
	"gitlab.com/fleetops/api/pipeline-admin/internal/session"
	"gitlab.com/fleetops/api/pipeline-admin/pkg/logger"
	"gitlab.com/fleetops/api/pipeline-admin/pkg/utils"
)

// Identity headers set by the authenticating gateway in front of this
// service. The gateway owns the sign-in flow; this layer only reads the
// verified identity and resolves its role.
const (
	headerUserID    = "X-User-Id"
	headerUserEmail = "X-User-Email"
	headerRequestID = "X-Request-Id"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// withRecovery turns a handler panic into a 500 instead of tearing down the
// connection.
func withRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.FromContext(r.Context()).Error("Recovered from handler panic",
					zap.Any("panic", rec), zap.String("path", r.URL.Path))
				writeError(w, fmt.Errorf("internal error"))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// withRequestID tags each request with an ID, echoed in the response and
// carried in the request-scoped logger.
func withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(headerRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(headerRequestID, requestID)

		ctx := session.WithRequestID(r.Context(), requestID)
		ctx = logger.WithLogger(ctx, logger.Log.With(zap.String("request_id", requestID)))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// withIdentity reads the gateway identity headers, resolves the caller's
// role, and attaches the session user to the context. Requests without an
// identity are rejected.
func (s *Server) withIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := strings.TrimSpace(r.Header.Get(headerUserID))
		email := strings.TrimSpace(r.Header.Get(headerUserEmail))
		if userID == "" {
			writeError(w, fmt.Errorf("%w: missing identity headers", apperrors.ErrUnauthorized))
			return
		}

		role, err := s.roles.Resolve(r.Context(), userID, email)
		if err != nil {
			writeError(w, err)
			return
		}

		ctx := session.WithUser(r.Context(), session.User{ID: userID, Email: email, Role: role})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// withObservability logs each request and records its metrics under the
// route pattern, not the raw path, to keep label cardinality bounded.
func withObservability(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		startTime := utils.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(recorder, r)

		route := r.Pattern
		if route == "" {
			route = "unmatched"
		}
		duration := time.Since(startTime)
		observer.ObserveHTTPRequest(r.Method, route, recorder.status, duration)
		logger.FromContext(r.Context()).Info("Handled request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", recorder.status),
			zap.Duration("duration", duration))
	})
}

// requireOpportunityAccess hides the sales pipeline from dispatchers. They
// keep full access to routes, drivers, and recruiting views.
func requireOpportunityAccess(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		user, err := session.FromContext(r.Context())
		if err != nil {
			writeError(w, fmt.Errorf("%w: %w", apperrors.ErrUnauthorized, err))
			return
		}
		if user.Role == session.RoleDispatcher {
			writeError(w, fmt.Errorf("%w: dispatchers cannot access opportunities", apperrors.ErrForbidden))
			return
		}
		next(w, r)
	}
}
