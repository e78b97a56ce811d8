package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cookieter/cookieter-api/internal/mocks"
	"github.com/cookieter/cookieter-api/internal/service/auth"
)

func TestAuthMiddleware_Authenticate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name           string
		cookie         *http.Cookie
		validateErr    error
		claims         *auth.Claims
		expectedStatus int
		expectedEmail  string
	}{
		{
			name:           "valid credential",
			cookie:         &http.Cookie{Name: "token", Value: "valid-token"},
			claims:         &auth.Claims{Email: "donor@example.com"},
			expectedStatus: http.StatusOK,
			expectedEmail:  "donor@example.com",
		},
		{
			name:           "missing cookie",
			cookie:         nil,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "empty cookie value",
			cookie:         &http.Cookie{Name: "token", Value: ""},
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "expired credential",
			cookie:         &http.Cookie{Name: "token", Value: "expired-token"},
			validateErr:    auth.ErrExpiredToken,
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "invalid credential",
			cookie:         &http.Cookie{Name: "token", Value: "invalid-token"},
			validateErr:    auth.ErrInvalidToken,
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenService := &mocks.MockTokenService{
				ValidateErr: tt.validateErr,
				Claims:      tt.claims,
			}

			authMiddleware := NewAuthMiddleware(tokenService, "token")

			var capturedEmail string
			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if email, ok := GetIdentityEmail(r); ok {
					capturedEmail = email
				}
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest("GET", "/manage-food", nil)
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}

			recorder := httptest.NewRecorder()
			authMiddleware.Authenticate(nextHandler).ServeHTTP(recorder, req)

			assert.Equal(t, tt.expectedStatus, recorder.Code)
			if tt.expectedStatus == http.StatusOK {
				assert.Equal(t, tt.expectedEmail, capturedEmail)
			}
		})
	}
}

func TestGetIdentityEmail_MissingFromContext(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest("GET", "/manage-food", nil)
	email, ok := GetIdentityEmail(req)
	assert.False(t, ok)
	assert.Empty(t, email)
}
