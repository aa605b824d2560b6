package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/quizmint/quizmint/internal/auth/jwt"
)

var (
	ErrMissingFields      = errors.New("please provide all required fields")
	ErrInvalidEmail       = errors.New("please provide a valid email")
	ErrEmailTaken         = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
)

// UserStore is the persistence surface the auth service needs. Implemented
// by the Mongo-backed repository; stubbed in tests.
type UserStore interface {
	Create(ctx context.Context, user *User) (*User, error)
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindByID(ctx context.Context, id string) (*User, error)
}

// Service handles registration, login and token verification.
type Service struct {
	users    UserStore
	tokenMgr *jwt.Manager
	logger   zerolog.Logger
}

// NewService creates an authentication service.
func NewService(users UserStore, tokenCfg jwt.TokenConfig, logger zerolog.Logger) *Service {
	return &Service{
		users:    users,
		tokenMgr: jwt.NewManager(tokenCfg),
		logger:   logger.With().Str("component", "auth").Logger(),
	}
}

// Register creates a new account and issues a token for it.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*User, string, error) {
	if req.Name == "" || req.Email == "" || req.Password == "" {
		return nil, "", ErrMissingFields
	}

	email := NormalizeEmail(req.Email)
	if !ValidEmail(email) {
		return nil, "", ErrInvalidEmail
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, "", ErrEmailTaken
	} else if !errors.Is(err, ErrUserNotFound) {
		return nil, "", fmt.Errorf("lookup email: %w", err)
	}

	hash, err := HashPassword(req.Password)
	if err != nil {
		if errors.Is(err, ErrPasswordTooShort) {
			return nil, "", err
		}
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.Create(ctx, &User{
		Name:         req.Name,
		Email:        email,
		PasswordHash: hash,
	})
	if err != nil {
		// The unique index on email closes the race between the lookup
		// above and the insert.
		if errors.Is(err, ErrEmailTaken) {
			return nil, "", ErrEmailTaken
		}
		return nil, "", fmt.Errorf("create user: %w", err)
	}

	token, err := s.tokenMgr.Generate(user.ID.Hex())
	if err != nil {
		return nil, "", fmt.Errorf("generate token: %w", err)
	}

	s.logger.Info().Str("user_id", user.ID.Hex()).Str("email", email).Msg("user registered")

	pub := user.Public()
	return &pub, token, nil
}

// Login authenticates a user with email/password. Unknown email and wrong
// password are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*User, string, error) {
	if req.Email == "" || req.Password == "" {
		return nil, "", ErrMissingFields
	}

	user, err := s.users.FindByEmail(ctx, NormalizeEmail(req.Email))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, "", ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("lookup email: %w", err)
	}

	if err := VerifyPassword(user.PasswordHash, req.Password); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.tokenMgr.Generate(user.ID.Hex())
	if err != nil {
		return nil, "", fmt.Errorf("generate token: %w", err)
	}

	s.logger.Info().Str("user_id", user.ID.Hex()).Msg("user logged in")

	pub := user.Public()
	return &pub, token, nil
}

// VerifyToken validates a bearer token and resolves it to a stored user.
// The password hash is stripped before the user is returned.
func (s *Service) VerifyToken(ctx context.Context, token string) (*User, error) {
	claims, err := s.tokenMgr.Validate(token)
	if err != nil {
		return nil, err
	}

	user, err := s.users.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("lookup user: %w", err)
	}

	pub := user.Public()
	return &pub, nil
}
