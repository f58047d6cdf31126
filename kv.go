// kv.go

package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Store is the key-value persistence contract shared by every service.
// Get returns (nil, nil) for an absent key. GetByPrefix makes no ordering
// guarantee; callers needing a stable order sort explicitly.
type Store interface {
	Get(ctx context.Context, key string) (json.RawMessage, error)
	Set(ctx context.Context, key string, value any) error
	Delete(ctx context.Context, key string) error
	GetByPrefix(ctx context.Context, prefix string) ([]json.RawMessage, error)
}

// ----- Mongo-backed store -----

type kvDoc struct {
	Key   string `bson:"_id"`
	Value string `bson:"value"`
}

type mongoStore struct {
	coll *mongo.Collection
}

func newMongoStore(db *mongo.Database) *mongoStore {
	return &mongoStore{coll: db.Collection("kv_store")}
}

func (s *mongoStore) Get(ctx context.Context, key string) (json.RawMessage, error) {
	var doc kvDoc
	err := s.coll.FindOne(ctx, bson.M{"_id": key}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("kv get %q: %w", key, err)
	}
	return json.RawMessage(doc.Value), nil
}

func (s *mongoStore) Set(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("kv set %q: %w", key, err)
	}
	_, err = s.coll.UpdateOne(
		ctx,
		bson.M{"_id": key},
		bson.M{"$set": bson.M{"value": string(data)}},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		return fmt.Errorf("kv set %q: %w", key, err)
	}
	return nil
}

func (s *mongoStore) Delete(ctx context.Context, key string) error {
	if _, err := s.coll.DeleteOne(ctx, bson.M{"_id": key}); err != nil {
		return fmt.Errorf("kv delete %q: %w", key, err)
	}
	return nil
}

func (s *mongoStore) GetByPrefix(ctx context.Context, prefix string) ([]json.RawMessage, error) {
	filter := bson.M{"_id": primitive.Regex{Pattern: "^" + regexp.QuoteMeta(prefix)}}
	cur, err := s.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("kv scan %q: %w", prefix, err)
	}
	var docs []kvDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("kv scan %q: %w", prefix, err)
	}
	values := make([]json.RawMessage, 0, len(docs))
	for _, doc := range docs {
		values = append(values, json.RawMessage(doc.Value))
	}
	return values, nil
}

// ----- In-memory store -----

// memoryStore backs the server when Mongo is unavailable and all tests.
type memoryStore struct {
	mu   sync.RWMutex
	data map[string]json.RawMessage
}

func newMemoryStore() *memoryStore {
	return &memoryStore{data: make(map[string]json.RawMessage)}
}

func (s *memoryStore) Get(_ context.Context, key string) (json.RawMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	value, ok := s.data[key]
	if !ok {
		return nil, nil
	}
	return value, nil
}

func (s *memoryStore) Set(_ context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("kv set %q: %w", key, err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[key] = data
	return nil
}

func (s *memoryStore) Delete(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

func (s *memoryStore) GetByPrefix(_ context.Context, prefix string) ([]json.RawMessage, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var values []json.RawMessage
	for key, value := range s.data {
		if strings.HasPrefix(key, prefix) {
			values = append(values, value)
		}
	}
	return values, nil
}
