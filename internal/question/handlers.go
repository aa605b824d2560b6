package question

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/quizmint/quizmint/pkg/http/respond"
)

// HTTPHandlers provides the question generation endpoint. Generation is
// open: it needs no identity and never reports provider outages as errors.
type HTTPHandlers struct {
	svc    *Service
	logger zerolog.Logger
}

// NewHTTPHandlers creates HTTP handlers for question endpoints.
func NewHTTPHandlers(svc *Service, logger zerolog.Logger) *HTTPHandlers {
	return &HTTPHandlers{
		svc:    svc,
		logger: logger.With().Str("component", "question_http").Logger(),
	}
}

// Generate handles POST /api/generate.
func (h *HTTPHandlers) Generate(w http.ResponseWriter, r *http.Request) {
	var req GenerateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.BadRequest(w, "Invalid JSON payload")
		return
	}

	pack, err := h.svc.Generate(r.Context(), req)
	if err != nil {
		if errors.Is(err, ErrTopicRequired) {
			respond.BadRequest(w, "Topic is required")
			return
		}
		h.logger.Error().Err(err).Msg("generate failed")
		respond.InternalError(w, "Server Error: Unable to generate questions")
		return
	}

	respond.Success(w, http.StatusOK, respond.Envelope{
		"topic":     pack.Topic,
		"source":    pack.Source,
		"questions": pack.Questions,
	})
}
