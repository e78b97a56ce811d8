package api

import (
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/cookieter/cookieter-api/internal/api/shared"
	"github.com/cookieter/cookieter-api/internal/config"
	"github.com/cookieter/cookieter-api/internal/redact"
	"github.com/cookieter/cookieter-api/internal/service/auth"
)

// AuthHandler handles credential issuance and termination.
type AuthHandler struct {
	tokenService auth.TokenService
	serverCfg    *config.ServerConfig
	authCfg      *config.AuthConfig
	validator    *validator.Validate
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(
	tokenService auth.TokenService,
	serverCfg *config.ServerConfig,
	authCfg *config.AuthConfig,
) *AuthHandler {
	return &AuthHandler{
		tokenService: tokenService,
		serverCfg:    serverCfg,
		authCfg:      authCfg,
		validator:    validator.New(),
	}
}

// IssueToken handles POST /jwt. It signs a credential for the submitted
// identity email and sets it as an HTTP-only cookie.
func (h *AuthHandler) IssueToken(w http.ResponseWriter, r *http.Request) {
	var req IssueTokenRequest

	if err := shared.DecodeJSON(r, &req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := h.validator.Struct(req); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "A valid email is required")
		return
	}

	token, err := h.tokenService.GenerateToken(r.Context(), req.Email)
	if err != nil {
		slog.Error("failed to generate credential", "error", redact.Error(err))
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to issue credential")
		return
	}

	http.SetCookie(w, h.credentialCookie(token, int(h.tokenService.Lifetime().Seconds())))
	shared.RespondWithJSON(w, r, http.StatusOK, SuccessResponse{Success: true})
}

// Logout handles GET and POST /logout. It clears the credential cookie.
// Terminating an already-absent credential still succeeds.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, h.credentialCookie("", -1))
	shared.RespondWithJSON(w, r, http.StatusOK, SuccessResponse{Success: true})
}

// credentialCookie builds the credential cookie with environment-dependent
// hardening: production gets Secure + SameSite=None so the cross-site web
// client can send it, development keeps SameSite=Strict without Secure.
func (h *AuthHandler) credentialCookie(value string, maxAge int) *http.Cookie {
	cookie := &http.Cookie{
		Name:     h.authCfg.CookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
	}

	if h.serverCfg.Environment == "production" {
		cookie.Secure = true
		cookie.SameSite = http.SameSiteNoneMode
	} else {
		cookie.SameSite = http.SameSiteStrictMode
	}

	return cookie
}
