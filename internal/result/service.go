package result

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrMissingFields       = errors.New("all fields are required")
	ErrInvalidTechnology   = errors.New("unknown technology tag")
	ErrInvalidLevel        = errors.New("unknown difficulty level")
	ErrNegativeCount       = errors.New("question counts cannot be negative")
	ErrCorrectExceedsTotal = errors.New("correct answers cannot exceed total questions")
)

// FilterAll is the sentinel technology filter meaning "no filter",
// compared case-insensitively.
const FilterAll = "all"

// ResultStore is the persistence surface for attempt records. Implemented
// by the Mongo-backed repository; stubbed in tests.
type ResultStore interface {
	Insert(ctx context.Context, rec *Result) (*Result, error)
	// ListByUser returns records owned by userID, newest first, optionally
	// restricted to one technology tag (empty string means no filter).
	ListByUser(ctx context.Context, userID primitive.ObjectID, technology string) ([]Result, error)
}

// Service persists scored attempts and lists them per owner.
type Service struct {
	store  ResultStore
	logger zerolog.Logger
}

// NewService creates an attempt record service.
func NewService(store ResultStore, logger zerolog.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger.With().Str("component", "result").Logger(),
	}
}

// Submit validates the attempt, derives score/wrong/performance and
// persists the record for ownerID in a single write.
func (s *Service) Submit(ctx context.Context, ownerID primitive.ObjectID, req SubmitRequest) (*Result, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" || req.Technology == "" || req.Level == "" || req.TotalQuestions == nil || req.Correct == nil {
		return nil, ErrMissingFields
	}
	if !ValidTechnology(req.Technology) {
		return nil, ErrInvalidTechnology
	}
	if !ValidLevel(req.Level) {
		return nil, ErrInvalidLevel
	}
	if *req.TotalQuestions < 0 || *req.Correct < 0 {
		return nil, ErrNegativeCount
	}
	// Keeps the stored score inside 0-100: more correct answers than
	// questions cannot round-trip through persistence.
	if *req.Correct > *req.TotalQuestions {
		return nil, ErrCorrectExceedsTotal
	}

	outcome := Score(*req.TotalQuestions, *req.Correct, req.Wrong)

	rec := &Result{
		UserID:         ownerID,
		Title:          title,
		Technology:     req.Technology,
		Level:          req.Level,
		TotalQuestions: *req.TotalQuestions,
		Correct:        *req.Correct,
		Wrong:          outcome.Wrong,
		Score:          outcome.Score,
		Performance:    outcome.Performance,
	}

	stored, err := s.store.Insert(ctx, rec)
	if err != nil {
		return nil, fmt.Errorf("insert result: %w", err)
	}

	s.logger.Info().
		Str("user_id", ownerID.Hex()).
		Str("technology", rec.Technology).
		Int("score", rec.Score).
		Msg("result recorded")

	return stored, nil
}

// List returns ownerID's records, newest first. An empty filter or the
// sentinel "all" (any case) means no technology restriction.
func (s *Service) List(ctx context.Context, ownerID primitive.ObjectID, technologyFilter string) ([]Result, error) {
	filter := technologyFilter
	if strings.EqualFold(filter, FilterAll) {
		filter = ""
	}

	items, err := s.store.ListByUser(ctx, ownerID, filter)
	if err != nil {
		return nil, fmt.Errorf("list results: %w", err)
	}
	if items == nil {
		items = []Result{}
	}
	return items, nil
}
