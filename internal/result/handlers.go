package result

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/quizmint/quizmint/internal/auth"
	"github.com/quizmint/quizmint/pkg/http/respond"
)

// HTTPHandlers provides REST endpoints for attempt records. Both endpoints
// sit behind auth.RequireAuth; the handlers trust the user in context.
type HTTPHandlers struct {
	svc    *Service
	logger zerolog.Logger
}

// NewHTTPHandlers creates HTTP handlers for result endpoints.
func NewHTTPHandlers(svc *Service, logger zerolog.Logger) *HTTPHandlers {
	return &HTTPHandlers{
		svc:    svc,
		logger: logger.With().Str("component", "result_http").Logger(),
	}
}

// Create handles POST /api/results.
func (h *HTTPHandlers) Create(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		respond.Unauthorized(w, "Unauthorized")
		return
	}

	var req SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.BadRequest(w, "Invalid JSON payload")
		return
	}

	stored, err := h.svc.Submit(r.Context(), user.ID, req)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingFields):
			respond.BadRequest(w, "All fields are required")
		case errors.Is(err, ErrInvalidTechnology):
			respond.BadRequest(w, "Invalid technology")
		case errors.Is(err, ErrInvalidLevel):
			respond.BadRequest(w, "Invalid level")
		case errors.Is(err, ErrNegativeCount):
			respond.BadRequest(w, "Question counts cannot be negative")
		case errors.Is(err, ErrCorrectExceedsTotal):
			respond.BadRequest(w, "Correct answers cannot exceed total questions")
		default:
			h.logger.Error().Err(err).Msg("create result failed")
			respond.InternalError(w, "Server Error: Unable to create result")
		}
		return
	}

	respond.Success(w, http.StatusCreated, respond.Envelope{
		"message": "Result created successfully",
		"result":  stored,
	})
}

// List handles GET /api/results?technology=.
func (h *HTTPHandlers) List(w http.ResponseWriter, r *http.Request) {
	user, ok := auth.UserFromContext(r.Context())
	if !ok {
		respond.Unauthorized(w, "Unauthorized")
		return
	}

	items, err := h.svc.List(r.Context(), user.ID, r.URL.Query().Get("technology"))
	if err != nil {
		h.logger.Error().Err(err).Msg("list results failed")
		respond.InternalError(w, "Server Error: Unable to fetch results")
		return
	}

	respond.Success(w, http.StatusOK, respond.Envelope{
		"count":   len(items),
		"results": items,
	})
}
