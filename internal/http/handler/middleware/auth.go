package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"taskboard/internal/core"

	"go.uber.org/zap"
)

const bearerPrefix = "Bearer "

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name IdentityDecoder . IdentityDecoder
type IdentityDecoder interface {
	Identify(token string) (core.Identity, error)
}

// WithIdentity stores the caller identity in the context.
func WithIdentity(ctx context.Context, identity core.Identity) context.Context {
	return context.WithValue(ctx, identityKey, identity)
}

// IdentityFromContext returns the identity decoded for this request, if any.
func IdentityFromContext(ctx context.Context) (core.Identity, bool) {
	identity, ok := ctx.Value(identityKey).(core.Identity)
	return identity, ok
}

type tokenMiddleware struct {
	logs    *zap.SugaredLogger
	decoder IdentityDecoder
}

func NewTokenMiddleware(logger *zap.SugaredLogger, decoder IdentityDecoder) *tokenMiddleware {
	return &tokenMiddleware{
		logs:    logger,
		decoder: decoder,
	}
}

// DecodeToken attaches the identity carried by a bearer token to the request.
// A missing or invalid token never rejects the request; it only leaves it anonymous.
func (m *tokenMiddleware) DecodeToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, bearerPrefix) {
			next.ServeHTTP(w, r)
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
		identity, err := m.decoder.Identify(token)
		if err != nil {
			m.logs.Warnw("failed to decode access token",
				"error", err,
				"request_id", RequestIDFromContext(r.Context()))
			next.ServeHTTP(w, r)
			return
		}

		next.ServeHTTP(w, r.WithContext(WithIdentity(r.Context(), identity)))
	})
}

type roleGuard struct {
	logs *zap.SugaredLogger
}

func NewRoleGuard(logger *zap.SugaredLogger) *roleGuard {
	return &roleGuard{
		logs: logger,
	}
}

// Require lets the request through only when the caller holds role.
// An empty role means the route is public.
func (g *roleGuard) Require(role core.Role, next http.Handler) http.Handler {
	if role == "" {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identity, ok := IdentityFromContext(r.Context())
		if !ok {
			g.deny(w, r, http.StatusUnauthorized, "authentication required")
			return
		}

		if !identity.HasRole(role) {
			g.deny(w, r, http.StatusForbidden, "missing role "+string(role))
			return
		}

		next.ServeHTTP(w, r)
	})
}

func (g *roleGuard) deny(w http.ResponseWriter, r *http.Request, code int, reason string) {
	requestID := RequestIDFromContext(r.Context())
	g.logs.Warnw("request rejected by role guard",
		"path", r.URL.Path,
		"status", code,
		"reason", reason,
		"request_id", requestID)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	resp := map[string]string{
		"message": http.StatusText(code),
		"error":   reason,
	}
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		g.logs.Errorw("failed to encode response", "error", err, "request_id", requestID)
	}
}
