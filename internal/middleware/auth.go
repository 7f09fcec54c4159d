package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/mkosinov/taskboard/internal/domain"
	"github.com/mkosinov/taskboard/internal/jwt"
	"github.com/mkosinov/taskboard/internal/utils"
)

// Key to store the user claims in the request context
type key int

const userClaimsKey key = 0

// NeedAuth verifies the Authorization bearer token and stores the
// resolved user in the request context.
func NeedAuth(jwtService jwt.JwtService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				http.Error(w, "Authorization header missing", http.StatusUnauthorized)
				return
			}
			tokenStr, ok := strings.CutPrefix(header, "Bearer ")
			if !ok {
				http.Error(w, "Authorization header must be a bearer token", http.StatusUnauthorized)
				return
			}

			user, err := jwtService.DecodeToken(tokenStr)
			if err != nil {
				utils.WriteErrorAndStatusCode(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), userClaimsKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUserFromContext retrieves the user stored by NeedAuth, nil if absent.
func GetUserFromContext(r *http.Request) *domain.User {
	user, ok := r.Context().Value(userClaimsKey).(*domain.User)
	if !ok {
		return nil
	}
	return user
}

// WithUser injects a user into the request context, for handler tests.
func WithUser(r *http.Request, user *domain.User) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), userClaimsKey, user))
}
