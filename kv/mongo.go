package kv

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Mongo stores every key as one document in a single collection.
type Mongo struct {
	col *mongo.Collection
}

type mongoEntry struct {
	Key       string    `bson:"key"`
	Value     []byte    `bson:"value"`
	UpdatedAt time.Time `bson:"updated_at"`
}

func NewMongo(col *mongo.Collection) *Mongo {
	return &Mongo{col: col}
}

// EnsureIndexes creates the unique key index.
func (m *Mongo) EnsureIndexes(ctx context.Context) error {
	_, err := m.col.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.M{"key": 1},
		Options: options.Index().SetUnique(true).SetName("unique_key"),
	})
	return err
}

func (m *Mongo) Get(ctx context.Context, key string) ([]byte, error) {
	var entry mongoEntry
	err := m.col.FindOne(ctx, bson.M{"key": key}).Decode(&entry)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return entry.Value, nil
}

func (m *Mongo) Set(ctx context.Context, key string, value []byte) error {
	update := bson.M{"$set": bson.M{"value": value, "updated_at": time.Now()}}
	opts := options.Update().SetUpsert(true)
	_, err := m.col.UpdateOne(ctx, bson.M{"key": key}, update, opts)
	return err
}

func (m *Mongo) Del(ctx context.Context, key string) error {
	_, err := m.col.DeleteOne(ctx, bson.M{"key": key})
	return err
}
