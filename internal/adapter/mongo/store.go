package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/app/config"
	"github.com/Abdurahmanit/GroupProject/storefront-service/internal/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const defaultCollectionName = "kv"

// kvDocument is one stored key. The key doubles as the document id.
type kvDocument struct {
	Key       string    `bson:"_id"`
	Value     string    `bson:"value"`
	UpdatedAt time.Time `bson:"updated_at"`
}

type store struct {
	collection *mongo.Collection
}

func NewStore(client *mongo.Client, cfg config.MongoDBConfig) repository.KeyValueStore {
	name := cfg.Collection
	if name == "" {
		name = defaultCollectionName
	}
	return &store{collection: client.Database(cfg.Database).Collection(name)}
}

func (s *store) Get(ctx context.Context, key string) (string, error) {
	var doc kvDocument
	err := s.collection.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", repository.ErrNotFound
		}
		return "", fmt.Errorf("failed to get key %s from mongodb: %w", key, err)
	}
	return doc.Value, nil
}

func (s *store) Set(ctx context.Context, key, value string) error {
	doc := kvDocument{Key: key, Value: value, UpdatedAt: time.Now().UTC()}
	_, err := s.collection.ReplaceOne(ctx, bson.M{"_id": key}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to set key %s in mongodb: %w", key, err)
	}
	return nil
}

func (s *store) Remove(ctx context.Context, key string) error {
	if _, err := s.collection.DeleteOne(ctx, bson.M{"_id": key}); err != nil {
		return fmt.Errorf("failed to delete key %s from mongodb: %w", key, err)
	}
	return nil
}
