package mongo

import (
	"context"
	"errors"
	"time"

	"micoach/coaching-app/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const stateCollectionName = "state"

// stateDocument holds one opaque blob per role key. The key is the document
// id, so upserts give last-write-wins for free.
type stateDocument struct {
	Key       string    `bson:"_id"`
	Value     []byte    `bson:"value"`
	UpdatedAt time.Time `bson:"updatedAt"`
}

// mongoKeyValueStore implements repository.KeyValueStore on a single
// collection of role-keyed documents.
type mongoKeyValueStore struct {
	collection *mongo.Collection
}

// NewMongoKeyValueStore creates the store. It expects a connected
// *mongo.Database instance.
func NewMongoKeyValueStore(db *mongo.Database) repository.KeyValueStore {
	return &mongoKeyValueStore{
		collection: db.Collection(stateCollectionName),
	}
}

func (s *mongoKeyValueStore) Get(ctx context.Context, key string) ([]byte, error) {
	var doc stateDocument
	err := s.collection.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return doc.Value, nil
}

func (s *mongoKeyValueStore) Set(ctx context.Context, key string, value []byte) error {
	doc := stateDocument{
		Key:       key,
		Value:     value,
		UpdatedAt: time.Now().UTC(),
	}
	_, err := s.collection.ReplaceOne(ctx, bson.M{"_id": key}, doc, options.Replace().SetUpsert(true))
	return err
}

func (s *mongoKeyValueStore) Remove(ctx context.Context, key string) error {
	// Removing an absent key is a no-op, so DeletedCount is not checked.
	_, err := s.collection.DeleteOne(ctx, bson.M{"_id": key})
	return err
}
