package auth

import (
	"context"
	"encoding/json"
	"io"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/quizmint/quizmint/internal/auth/jwt"
)

type stubUserStore struct {
	users map[string]*User // keyed by hex id
}

func newStubUserStore() *stubUserStore {
	return &stubUserStore{users: map[string]*User{}}
}

func (s *stubUserStore) Create(_ context.Context, user *User) (*User, error) {
	for _, existing := range s.users {
		if existing.Email == user.Email {
			return nil, ErrEmailTaken
		}
	}
	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now().UTC()
	stored := *user
	s.users[user.ID.Hex()] = &stored
	return user, nil
}

func (s *stubUserStore) FindByEmail(_ context.Context, email string) (*User, error) {
	for _, user := range s.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, ErrUserNotFound
}

func (s *stubUserStore) FindByID(_ context.Context, id string) (*User, error) {
	if user, ok := s.users[id]; ok {
		copied := *user
		return &copied, nil
	}
	return nil, ErrUserNotFound
}

func newTestAuthService(store UserStore) *Service {
	return NewService(store, jwt.TokenConfig{
		Secret: []byte("test-secret"),
		TTL:    time.Hour,
	}, zerolog.New(io.Discard))
}

// newExpiredTokenService issues tokens that are already expired, sharing
// the signing secret with newTestAuthService.
func newExpiredTokenService(store UserStore) *Service {
	return NewService(store, jwt.TokenConfig{
		Secret: []byte("test-secret"),
		TTL:    -time.Minute,
	}, zerolog.New(io.Discard))
}

func TestRegisterHappyPath(t *testing.T) {
	store := newStubUserStore()
	svc := newTestAuthService(store)

	user, token, err := svc.Register(context.Background(), RegisterRequest{
		Name:     "Asha",
		Email:    "Asha@Example.COM",
		Password: "hunter22",
	})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	assert.Equal(t, "asha@example.com", user.Email, "email is normalized")
	assert.Empty(t, user.PasswordHash, "returned user carries no hash")

	stored := store.users[user.ID.Hex()]
	require.NotNil(t, stored)
	assert.NotEmpty(t, stored.PasswordHash)
	assert.NotEqual(t, "hunter22", stored.PasswordHash)
}

func TestRegisterValidation(t *testing.T) {
	svc := newTestAuthService(newStubUserStore())

	tests := []struct {
		name    string
		req     RegisterRequest
		wantErr error
	}{
		{"missing name", RegisterRequest{Email: "a@b.co", Password: "secret1"}, ErrMissingFields},
		{"missing email", RegisterRequest{Name: "A", Password: "secret1"}, ErrMissingFields},
		{"missing password", RegisterRequest{Name: "A", Email: "a@b.co"}, ErrMissingFields},
		{"bad email", RegisterRequest{Name: "A", Email: "not-an-email", Password: "secret1"}, ErrInvalidEmail},
		{"no tld", RegisterRequest{Name: "A", Email: "a@b", Password: "secret1"}, ErrInvalidEmail},
		{"short password", RegisterRequest{Name: "A", Email: "a@b.co", Password: "abc"}, ErrPasswordTooShort},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := svc.Register(context.Background(), tc.req)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	store := newStubUserStore()
	svc := newTestAuthService(store)

	req := RegisterRequest{Name: "Asha", Email: "asha@example.com", Password: "hunter22"}
	_, _, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	// The same normalized email, cased differently, is still a duplicate.
	req.Email = "ASHA@example.com"
	_, _, err = svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, ErrEmailTaken)
	assert.Len(t, store.users, 1, "no duplicate identity persisted")
}

func TestLogin(t *testing.T) {
	store := newStubUserStore()
	svc := newTestAuthService(store)

	_, _, err := svc.Register(context.Background(), RegisterRequest{
		Name: "Asha", Email: "asha@example.com", Password: "hunter22",
	})
	require.NoError(t, err)

	user, token, err := svc.Login(context.Background(), LoginRequest{
		Email: "asha@example.com", Password: "hunter22",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Empty(t, user.PasswordHash)

	// Unknown email and wrong password produce the same error.
	_, _, err = svc.Login(context.Background(), LoginRequest{Email: "nobody@example.com", Password: "hunter22"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, _, err = svc.Login(context.Background(), LoginRequest{Email: "asha@example.com", Password: "wrong-pass"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestVerifyToken(t *testing.T) {
	store := newStubUserStore()
	svc := newTestAuthService(store)

	registered, token, err := svc.Register(context.Background(), RegisterRequest{
		Name: "Asha", Email: "asha@example.com", Password: "hunter22",
	})
	require.NoError(t, err)

	user, err := svc.VerifyToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, registered.ID, user.ID)
	assert.Empty(t, user.PasswordHash)
}

func TestVerifyTokenUnknownSubject(t *testing.T) {
	store := newStubUserStore()
	svc := newTestAuthService(store)

	_, token, err := svc.Register(context.Background(), RegisterRequest{
		Name: "Asha", Email: "asha@example.com", Password: "hunter22",
	})
	require.NoError(t, err)

	// Simulate account deletion after issuance.
	store.users = map[string]*User{}

	_, err = svc.VerifyToken(context.Background(), token)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserHashNeverSerialized(t *testing.T) {
	user := User{
		ID:           primitive.NewObjectID(),
		Name:         "Asha",
		Email:        "asha@example.com",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
	}

	data, err := json.Marshal(user)
	require.NoError(t, err)
	assert.NotContains(t, string(data), "$2a$10$")
	assert.NotContains(t, string(data), "password")
}
