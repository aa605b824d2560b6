package question

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ErrTopicRequired is the only error Generate surfaces to callers. Every
// provider failure is absorbed into fallback content instead.
var ErrTopicRequired = errors.New("topic is required")

// Provider is the external text-completion collaborator. Its output is an
// opaque text blob with no structural contract.
type Provider interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// PackCache caches provider-sourced packs (implemented by the Redis-backed
// Cache). Optional; a nil cache means every request reaches the provider.
type PackCache interface {
	Get(ctx context.Context, req GenerateRequest) (*Pack, error)
	Set(ctx context.Context, req GenerateRequest, pack Pack) error
}

// Service orchestrates provider generation with fallback to the curated
// bank. It is independent of identity and scoring.
type Service struct {
	provider Provider
	bank     *FallbackBank
	cache    PackCache
	logger   zerolog.Logger
}

// NewService creates a question supply service. provider and cache may be
// nil; the bank must not be.
func NewService(provider Provider, bank *FallbackBank, cache PackCache, logger zerolog.Logger) *Service {
	return &Service{
		provider: provider,
		bank:     bank,
		cache:    cache,
		logger:   logger.With().Str("component", "question").Logger(),
	}
}

// Generate produces up to req.Count questions on req.Topic. Provider
// outages, timeouts and malformed output all degrade silently to the
// fallback bank; the returned pack's Source tells the two apart.
func (s *Service) Generate(ctx context.Context, req GenerateRequest) (Pack, error) {
	req.Topic = strings.TrimSpace(req.Topic)
	if req.Topic == "" {
		return Pack{}, ErrTopicRequired
	}
	if req.Count <= 0 {
		req.Count = DefaultCount
	}
	if req.Difficulty == "" {
		req.Difficulty = DefaultDifficulty
	}

	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, req); err == nil && cached != nil {
			packsServed.WithLabelValues(cached.Source).Inc()
			return *cached, nil
		}
	}

	questions, err := s.fromProvider(ctx, req)
	if err != nil {
		s.logger.Warn().Err(err).Str("topic", req.Topic).Msg("provider failed, serving fallback")
		pack := Pack{
			Topic:     req.Topic,
			Source:    SourceFallback,
			Questions: s.bank.Lookup(req.Topic, req.Count),
		}
		packsServed.WithLabelValues(SourceFallback).Inc()
		return pack, nil
	}

	pack := Pack{
		Topic:     req.Topic,
		Source:    SourceAI,
		Questions: questions,
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, req, pack); err != nil {
			s.logger.Warn().Err(err).Msg("pack cache write failed")
		}
	}

	packsServed.WithLabelValues(SourceAI).Inc()
	return pack, nil
}

func (s *Service) fromProvider(ctx context.Context, req GenerateRequest) ([]Question, error) {
	if s.provider == nil {
		providerFailures.WithLabelValues(failureRequest).Inc()
		return nil, errors.New("provider not configured")
	}

	raw, err := s.provider.Complete(ctx, buildPrompt(req))
	if err != nil {
		providerFailures.WithLabelValues(failureRequest).Inc()
		return nil, fmt.Errorf("complete: %w", err)
	}

	questions, err := parseQuestions(raw)
	if err != nil {
		providerFailures.WithLabelValues(failureMalformed).Inc()
		return nil, err
	}

	if len(questions) > req.Count {
		questions = questions[:req.Count]
	}
	for i := range questions {
		questions[i].ID = uuid.NewString()
	}
	return questions, nil
}

func buildPrompt(req GenerateRequest) string {
	return fmt.Sprintf(`Generate %d unique multiple-choice quiz questions on the topic "%s".
Each question must have 4 distinct options and mark the correct one clearly.
Aim for %s difficulty. Questions should not repeat across calls.
Vary the style and phrasing each time.
Return ONLY a valid JSON array in this format:
[
  { "question": "string", "options": ["A","B","C","D"], "correct": "A" }
]`, req.Count, req.Topic, req.Difficulty)
}
