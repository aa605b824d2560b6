package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/quizmint/quizmint/internal/auth"
)

// UserRepository is the Mongo-backed implementation of auth.UserStore.
type UserRepository struct {
	col *mongo.Collection
}

// NewUserRepository binds the repository to the users collection.
func NewUserRepository(database *mongo.Database) *UserRepository {
	return &UserRepository{col: database.Collection("users")}
}

var _ auth.UserStore = (*UserRepository)(nil)

// EnsureIndexes creates the unique index on email. Safe to call on every
// startup; index creation is idempotent.
func (r *UserRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("create email index: %w", err)
	}
	return nil
}

// Create inserts a user, stamping CreatedAt. A unique-index violation on
// email is reported as auth.ErrEmailTaken.
func (r *UserRepository) Create(ctx context.Context, user *auth.User) (*auth.User, error) {
	user.ID = primitive.NewObjectID()
	user.CreatedAt = time.Now().UTC()

	if _, err := r.col.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, auth.ErrEmailTaken
		}
		return nil, err
	}
	return user, nil
}

// FindByEmail looks up a user by normalized email.
func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*auth.User, error) {
	var user auth.User
	err := r.col.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, auth.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// FindByID looks up a user by its hex object id. A malformed id is treated
// the same as an unknown one.
func (r *UserRepository) FindByID(ctx context.Context, id string) (*auth.User, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, auth.ErrUserNotFound
	}

	var user auth.User
	err = r.col.FindOne(ctx, bson.M{"_id": oid}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, auth.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}
