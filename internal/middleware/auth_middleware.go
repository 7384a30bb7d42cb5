package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"social-go/internal/auth"

	"github.com/gorilla/mux"
)

// contextKey is a private type for context values to avoid key collisions.
type contextKey string

// UserIDKey is the context key under which the authenticated user's ID is stored.
const UserIDKey contextKey = "userID"

// UsernameKey is the context key under which the authenticated username is stored.
const UsernameKey contextKey = "username"

// ClaimsKey is the context key under which the full token claims are stored.
// Needed by the logout handler to reach the JTI and expiry.
const ClaimsKey contextKey = "claims"

// AuthMiddleware validates the bearer token and stores the caller's identity
// in the request context. Requests without a valid token get 401.
func AuthMiddleware(jwtSecretKey string, blacklist auth.TokenBlacklist) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeJSONError(w, "missing authorization token", http.StatusUnauthorized)
				return
			}

			headerParts := strings.Split(authHeader, " ")
			if len(headerParts) != 2 || strings.ToLower(headerParts[0]) != "bearer" {
				writeJSONError(w, "invalid authorization header, expected Bearer {token}", http.StatusUnauthorized)
				return
			}

			tokenString := headerParts[1]
			claims, err := auth.ValidateToken(r.Context(), tokenString, jwtSecretKey, blacklist)
			if err != nil {
				writeJSONError(w, "invalid token", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, claims.UserID)
			ctx = context.WithValue(ctx, UsernameKey, claims.Username)
			ctx = context.WithValue(ctx, ClaimsKey, claims)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserIDFromContext returns the authenticated user's ID from the context.
// Returns 0 and false when the request was not authenticated.
func GetUserIDFromContext(ctx context.Context) (uint, bool) {
	userID, ok := ctx.Value(UserIDKey).(uint)
	return userID, ok
}

// GetUsernameFromContext returns the authenticated username from the context.
func GetUsernameFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(UsernameKey).(string)
	return username, ok
}

// GetClaimsFromContext returns the full token claims from the context.
func GetClaimsFromContext(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(ClaimsKey).(*auth.Claims)
	return claims, ok
}

func writeJSONError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}
