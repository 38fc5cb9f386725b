package repo

import (
	"context"
	"errors"
	"time"

	"github.com/beka-birhanu/vinom-maze/domain"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// ArchiveRepo stores daily leaderboard snapshots keyed by day.
type ArchiveRepo struct {
	collection *mongo.Collection
}

// NewArchiveRepo creates a new ArchiveRepo with the given MongoDB client, database name, and collection name.
func NewArchiveRepo(client *mongo.Client, dbName, collectionName string) *ArchiveRepo {
	return &ArchiveRepo{
		collection: client.Database(dbName).Collection(collectionName),
	}
}

// Exists reports whether an archive for day is stored.
func (r *ArchiveRepo) Exists(ctx context.Context, day string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	count, err := r.collection.CountDocuments(ctx, bson.M{"_id": day})
	if err != nil {
		return false, errors.New("unexpected error: " + err.Error())
	}
	return count > 0, nil
}

// Save inserts an archive. The day is the document key, so a second archive
// for the same day is rejected by the database.
func (r *ArchiveRepo) Save(ctx context.Context, archive *domain.Archive) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if _, err := r.collection.InsertOne(ctx, archive); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return domain.ErrAlreadyArchived
		}
		return errors.New("unexpected error: " + err.Error())
	}
	return nil
}

// ByDay retrieves the archive of a day.
func (r *ArchiveRepo) ByDay(ctx context.Context, day string) (*domain.Archive, error) {
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	var archive domain.Archive
	if err := r.collection.FindOne(ctx, bson.M{"_id": day}).Decode(&archive); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrArchiveNotFound
		}
		return nil, errors.New("unexpected error: " + err.Error())
	}
	return &archive, nil
}
