package common

import (
	"context"
	"net/http"
	"strings"
)

type contextKey string

// UserIDKey is the request-context key the auth middleware stores the
// authenticated user id under.
const UserIDKey contextKey = "user_id"

// UserIDFromContext recovers the caller identity placed by AuthMiddleware.
func UserIDFromContext(ctx context.Context) (uint64, bool) {
	id, ok := ctx.Value(UserIDKey).(uint64)
	return id, ok
}

// AuthMiddleware enforces a bearer session token on every wrapped route.
// On success the user id is injected into the request context; the handler
// never sees the raw token.
func AuthMiddleware(tokens *TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				WriteMessage(w, http.StatusUnauthorized, "authorization required")
				return
			}

			// expected shape: Bearer <token>
			parts := strings.Fields(header)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				WriteMessage(w, http.StatusUnauthorized, "invalid auth header")
				return
			}

			userID, err := tokens.Verify(parts[1])
			if err != nil {
				WriteError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
