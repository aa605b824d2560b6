package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/quizmint/quizmint/pkg/http/respond"
)

type userCtxKey struct{}

// RequireAuth gates a handler chain behind bearer token verification. Every
// rejection is terminal for the request and answers 401 with a message
// naming the failure class: missing token, invalid or expired token, or a
// token whose subject no longer exists.
func RequireAuth(svc *Service, logger zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
				respond.Unauthorized(w, "Unauthorized: No token provided")
				return
			}

			token := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))
			if token == "" {
				respond.Unauthorized(w, "Unauthorized: Token missing")
				return
			}

			user, err := svc.VerifyToken(r.Context(), token)
			if err != nil {
				if errors.Is(err, ErrUserNotFound) {
					respond.Unauthorized(w, "Unauthorized: User not found")
					return
				}
				logger.Warn().Err(err).Msg("token verification failed")
				respond.Unauthorized(w, "Unauthorized: Invalid or expired token")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), user)))
		})
	}
}

// WithUser attaches a verified user to the context.
func WithUser(ctx context.Context, user *User) context.Context {
	return context.WithValue(ctx, userCtxKey{}, user)
}

// UserFromContext returns the verified user attached by RequireAuth.
func UserFromContext(ctx context.Context) (*User, bool) {
	user, ok := ctx.Value(userCtxKey{}).(*User)
	return user, ok && user != nil
}
