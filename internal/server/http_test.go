package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/quizmint/quizmint/internal/auth"
	"github.com/quizmint/quizmint/internal/auth/jwt"
	"github.com/quizmint/quizmint/internal/config"
	"github.com/quizmint/quizmint/internal/question"
	"github.com/quizmint/quizmint/internal/result"
)

type memUserStore struct {
	users map[string]*auth.User
}

func (s *memUserStore) Create(_ context.Context, user *auth.User) (*auth.User, error) {
	for _, existing := range s.users {
		if existing.Email == user.Email {
			return nil, auth.ErrEmailTaken
		}
	}
	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now().UTC()
	stored := *user
	s.users[user.ID.Hex()] = &stored
	return user, nil
}

func (s *memUserStore) FindByEmail(_ context.Context, email string) (*auth.User, error) {
	for _, user := range s.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, auth.ErrUserNotFound
}

func (s *memUserStore) FindByID(_ context.Context, id string) (*auth.User, error) {
	if user, ok := s.users[id]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, auth.ErrUserNotFound
}

type memResultStore struct {
	records []result.Result
}

func (s *memResultStore) Insert(_ context.Context, rec *result.Result) (*result.Result, error) {
	rec.ID = primitive.NewObjectID()
	rec.CreatedAt = time.Now().UTC()
	s.records = append(s.records, *rec)
	return rec, nil
}

func (s *memResultStore) ListByUser(_ context.Context, userID primitive.ObjectID, technology string) ([]result.Result, error) {
	var out []result.Result
	for i := len(s.records) - 1; i >= 0; i-- {
		rec := s.records[i]
		if rec.UserID != userID {
			continue
		}
		if technology != "" && rec.Technology != technology {
			continue
		}
		out = append(out, rec)
	}
	return out, nil
}

type failingProvider struct{}

func (failingProvider) Complete(context.Context, string) (string, error) {
	return "", errors.New("provider unreachable")
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	logger := zerolog.New(io.Discard)
	authSvc := auth.NewService(&memUserStore{users: map[string]*auth.User{}}, jwt.TokenConfig{
		Secret: []byte("test-secret"),
		TTL:    time.Hour,
	}, logger)
	questionSvc := question.NewService(failingProvider{}, question.NewFallbackBank(), nil, logger)
	resultSvc := result.NewService(&memResultStore{}, logger)

	srv := NewHTTPServer(&config.App{HTTPAddr: "127.0.0.1:0"}, logger, authSvc, Handlers{
		Auth:     auth.NewHTTPHandlers(authSvc, logger),
		Question: question.NewHTTPHandlers(questionSvc, logger),
		Result:   result.NewHTTPHandlers(resultSvc, logger),
	})
	return srv.Handler
}

func doJSON(t *testing.T, handler http.Handler, method, path, token string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	var body io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		require.NoError(t, err)
		body = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func envelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestUnmatchedAPIRouteReturnsEnvelope404(t *testing.T) {
	handler := newTestRouter(t)

	rec := doJSON(t, handler, http.MethodGet, "/api/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	body := envelope(t, rec)
	assert.Equal(t, false, body["success"])
	assert.NotEmpty(t, body["message"])
}

func TestResultsRequireAuth(t *testing.T) {
	handler := newTestRouter(t)

	rec := doJSON(t, handler, http.MethodGet, "/api/results", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "Unauthorized: No token provided", envelope(t, rec)["message"])

	rec = doJSON(t, handler, http.MethodPost, "/api/results", "", map[string]any{"title": "x"})
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestGenerateEndpoint(t *testing.T) {
	handler := newTestRouter(t)

	rec := doJSON(t, handler, http.MethodPost, "/api/generate", "", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Topic is required", envelope(t, rec)["message"])

	// Provider is down; the endpoint still answers 200 from the bank.
	rec = doJSON(t, handler, http.MethodPost, "/api/generate", "", map[string]any{"topic": "python"})
	require.Equal(t, http.StatusOK, rec.Code)
	body := envelope(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "fallback", body["source"])
	assert.NotEmpty(t, body["questions"])
}

func TestAttemptLifecycle(t *testing.T) {
	handler := newTestRouter(t)

	rec := doJSON(t, handler, http.MethodPost, "/api/auth/register", "", map[string]any{
		"name": "Asha", "email": "asha@example.com", "password": "hunter22",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	token, _ := envelope(t, rec)["token"].(string)
	require.NotEmpty(t, token)

	// Duplicate registration conflicts.
	rec = doJSON(t, handler, http.MethodPost, "/api/auth/register", "", map[string]any{
		"name": "Asha", "email": "asha@example.com", "password": "hunter22",
	})
	assert.Equal(t, http.StatusConflict, rec.Code)

	rec = doJSON(t, handler, http.MethodPost, "/api/results", token, map[string]any{
		"title": "React Basics", "technology": "react", "level": "basic",
		"totalQuestions": 10, "correct": 9,
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	created := envelope(t, rec)["result"].(map[string]any)
	assert.Equal(t, float64(90), created["score"])
	assert.Equal(t, "Excellent", created["performance"])
	assert.Equal(t, float64(1), created["wrong"])

	rec = doJSON(t, handler, http.MethodGet, "/api/results?technology=all", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	body := envelope(t, rec)
	assert.Equal(t, float64(1), body["count"])

	rec = doJSON(t, handler, http.MethodGet, "/api/results?technology=css", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(0), envelope(t, rec)["count"])

	// Missing required fields stay client errors.
	rec = doJSON(t, handler, http.MethodPost, "/api/results", token, map[string]any{
		"title": "No counters", "technology": "react", "level": "basic",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
