package auth

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/rs/zerolog"

	"github.com/quizmint/quizmint/pkg/http/respond"
)

// HTTPHandlers provides REST endpoints for authentication.
type HTTPHandlers struct {
	svc    *Service
	logger zerolog.Logger
}

// NewHTTPHandlers creates HTTP handlers for auth endpoints.
func NewHTTPHandlers(svc *Service, logger zerolog.Logger) *HTTPHandlers {
	return &HTTPHandlers{
		svc:    svc,
		logger: logger.With().Str("component", "auth_http").Logger(),
	}
}

// Register handles POST /api/auth/register.
func (h *HTTPHandlers) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.BadRequest(w, "Invalid JSON payload")
		return
	}

	user, token, err := h.svc.Register(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingFields), errors.Is(err, ErrInvalidEmail), errors.Is(err, ErrPasswordTooShort):
			respond.BadRequest(w, capitalized(err))
		case errors.Is(err, ErrEmailTaken):
			respond.Conflict(w, "Email already in use")
		default:
			h.logger.Error().Err(err).Msg("registration failed")
			respond.InternalError(w, "Server error during registration")
		}
		return
	}

	respond.Success(w, http.StatusCreated, respond.Envelope{
		"message": "User registered successfully",
		"token":   token,
		"user":    user,
	})
}

// Login handles POST /api/auth/login.
func (h *HTTPHandlers) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.BadRequest(w, "Invalid JSON payload")
		return
	}

	user, token, err := h.svc.Login(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingFields):
			respond.BadRequest(w, "Please provide all required fields")
		case errors.Is(err, ErrInvalidCredentials):
			respond.Unauthorized(w, "Invalid email or password")
		default:
			h.logger.Error().Err(err).Msg("login failed")
			respond.InternalError(w, "Server error during login")
		}
		return
	}

	respond.Success(w, http.StatusOK, respond.Envelope{
		"message": "Login successful",
		"token":   token,
		"user":    user,
	})
}

// capitalized upper-cases the first letter of an error message for the
// client-facing envelope.
func capitalized(err error) string {
	msg := err.Error()
	if msg == "" {
		return msg
	}
	return strings.ToUpper(msg[:1]) + msg[1:]
}
