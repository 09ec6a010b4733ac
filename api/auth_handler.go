package api

import (
	"crypto/subtle"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"

	"github.com/meridianmade/agency-site-backend/errs"
)

// tokenLifetime is how long an issued admin session token stays valid.
const tokenLifetime = 24 * time.Hour

// authSettings carries the admin credential configuration. PasswordHash is a
// bcrypt hash and takes precedence; Password is the plain-text fallback for
// local development.
type authSettings struct {
	PasswordHash string
	Password     string
	JWTSecret    string
}

// authHandler issues the admin session tokens checked by authMiddleware.
type authHandler struct {
	responder Responder
	logger    zerolog.Logger
	settings  authSettings
}

func newAuthHandler(settings authSettings) authHandler {
	logger := log.With().Str("handlerName", "authHandler").Logger()

	return authHandler{
		responder: NewResponder(logger),
		logger:    logger,
		settings:  settings,
	}
}

type loginInput struct {
	Password string `json:"password"`
}

func (h authHandler) login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input loginInput
		if err := decodeJSONBody(r, &input); err != nil {
			h.responder.WriteError(w, err)
			return
		}
		if input.Password == "" {
			h.responder.WriteError(w, errs.NewMissingRequiredFieldError("password"))
			return
		}

		if !h.checkPassword(input.Password) {
			h.responder.WriteError(w, errs.NewUnauthorizedError("invalid password"))
			return
		}

		expiresAt := time.Now().Add(tokenLifetime)
		claims := jwt.RegisteredClaims{
			Subject:   "admin",
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		}

		token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(h.settings.JWTSecret))
		if err != nil {
			h.responder.WriteError(w, errs.NewInternalError("failed to sign session token"))
			return
		}

		h.responder.WriteJSON(w, map[string]any{
			"success":    true,
			"token":      token,
			"expires_at": expiresAt.UTC(),
		})
	}
}

func (h authHandler) checkPassword(password string) bool {
	if h.settings.PasswordHash != "" {
		return bcrypt.CompareHashAndPassword([]byte(h.settings.PasswordHash), []byte(password)) == nil
	}
	if h.settings.Password != "" {
		return subtle.ConstantTimeCompare([]byte(h.settings.Password), []byte(password)) == 1
	}
	// No credential configured: admin surface is locked, not open.
	return false
}
