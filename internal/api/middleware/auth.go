package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/cookieter/cookieter-api/internal/api/shared"
	"github.com/cookieter/cookieter-api/internal/redact"
	"github.com/cookieter/cookieter-api/internal/service/auth"
)

// AuthMiddleware provides cookie-based credential authentication for routes.
type AuthMiddleware struct {
	tokenService auth.TokenService
	cookieName   string
}

// NewAuthMiddleware creates a new AuthMiddleware with the given dependencies.
func NewAuthMiddleware(tokenService auth.TokenService, cookieName string) *AuthMiddleware {
	return &AuthMiddleware{
		tokenService: tokenService,
		cookieName:   cookieName,
	}
}

// Authenticate reads the signed credential from the named cookie, verifies
// it, and adds the identity email to the request context for authorized
// requests. Requests without a valid credential are rejected with 401 and
// never reach the next handler.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(m.cookieName)
		if err != nil || cookie.Value == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "unauthorized access")
			return
		}

		claims, err := m.tokenService.ValidateToken(r.Context(), cookie.Value)
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrExpiredToken):
				shared.RespondWithError(w, r, http.StatusUnauthorized, "unauthorized access")
			case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrTokenNotYetValid):
				shared.RespondWithError(w, r, http.StatusUnauthorized, "unauthorized access")
			default:
				slog.Error("failed to validate credential", "error", redact.Error(err))
				shared.RespondWithError(w, r, http.StatusInternalServerError, "Authentication error")
			}
			return
		}

		ctx := context.WithValue(r.Context(), shared.IdentityEmailContextKey, claims.Email)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetIdentityEmail extracts the authenticated identity email from the
// request context. Returns the email and a boolean indicating if it was
// found.
func GetIdentityEmail(r *http.Request) (string, bool) {
	email, ok := r.Context().Value(shared.IdentityEmailContextKey).(string)
	if !ok || email == "" {
		return "", false
	}
	return email, true
}
