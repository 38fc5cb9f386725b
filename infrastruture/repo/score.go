package repo

import (
	"context"
	"errors"
	"time"

	"github.com/beka-birhanu/vinom-maze/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ScoreRepo handles the persistence of leaderboard scores.
type ScoreRepo struct {
	collection *mongo.Collection
}

// NewScoreRepo creates a new ScoreRepo with the given MongoDB client, database name, and collection name.
func NewScoreRepo(client *mongo.Client, dbName, collectionName string) *ScoreRepo {
	collection := client.Database(dbName).Collection(collectionName)
	return &ScoreRepo{
		collection: collection,
	}
}

// EnsureIndexes creates the index used by per-dimension rankings.
func (r *ScoreRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	_, err := r.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "dimension", Value: 1}, {Key: "time", Value: 1}},
	})
	return err
}

// Save inserts a score.
func (r *ScoreRepo) Save(ctx context.Context, score *domain.Score) error {
	ctx, cancel := context.WithTimeout(ctx, time.Second)
	defer cancel()

	if _, err := r.collection.InsertOne(ctx, score); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return errors.New("score already exists")
		}
		return errors.New("unexpected error: " + err.Error())
	}
	return nil
}

// All retrieves every score ordered by time, fastest first.
func (r *ScoreRepo) All(ctx context.Context) ([]domain.Score, error) {
	opts := options.Find().SetSort(bson.D{{Key: "time", Value: 1}})
	return r.find(ctx, bson.M{}, opts)
}

// ByDimension retrieves up to limit of the fastest scores for a dimension.
func (r *ScoreRepo) ByDimension(ctx context.Context, dimension int, limit int) ([]domain.Score, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "time", Value: 1}}).
		SetLimit(int64(limit))
	return r.find(ctx, bson.M{"dimension": dimension}, opts)
}

// Delete removes the scores with the given IDs.
func (r *ScoreRepo) Delete(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.collection.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": ids}}); err != nil {
		return errors.New("unexpected error: " + err.Error())
	}
	return nil
}

func (r *ScoreRepo) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]domain.Score, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, errors.New("unexpected error: " + err.Error())
	}

	scores := []domain.Score{}
	if err := cursor.All(ctx, &scores); err != nil {
		return nil, errors.New("unexpected error: " + err.Error())
	}
	return scores, nil
}
