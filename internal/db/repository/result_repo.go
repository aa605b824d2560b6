package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/quizmint/quizmint/internal/result"
)

// ResultRepository is the Mongo-backed implementation of result.ResultStore.
type ResultRepository struct {
	col *mongo.Collection
}

// NewResultRepository binds the repository to the results collection.
func NewResultRepository(database *mongo.Database) *ResultRepository {
	return &ResultRepository{col: database.Collection("results")}
}

var _ result.ResultStore = (*ResultRepository)(nil)

// EnsureIndexes creates the owner/createdAt index backing the list query.
func (r *ResultRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user", Value: 1}, {Key: "createdAt", Value: -1}},
	})
	return err
}

// Insert stores one attempt record atomically, stamping CreatedAt.
func (r *ResultRepository) Insert(ctx context.Context, rec *result.Result) (*result.Result, error) {
	rec.ID = primitive.NewObjectID()
	rec.CreatedAt = time.Now().UTC()

	if _, err := r.col.InsertOne(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// ListByUser returns records owned by userID, newest first. A non-empty
// technology narrows the query.
func (r *ResultRepository) ListByUser(ctx context.Context, userID primitive.ObjectID, technology string) ([]result.Result, error) {
	filter := bson.M{"user": userID}
	if technology != "" {
		filter["technology"] = technology
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var items []result.Result
	if err := cur.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}
