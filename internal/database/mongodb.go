package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ErrUnavailable is returned by every Store operation when no database is
// configured or the initial connection failed. It marks the absent state that
// callers resolve by falling back to the default catalog (reads) or the demo
// identifier (submissions). The absent state is never retried.
var ErrUnavailable = errors.New("store unavailable")

// Store wraps the single MongoDB connection held for the process lifetime.
// The zero value (see None) is the absent store: Available reports false and
// every operation returns ErrUnavailable. Store does no validation; decoding
// and schema checks are the caller's responsibility.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// Connect opens a connection and pings it. Caller should call Close(ctx) on shutdown.
func Connect(ctx context.Context, uri, name string, timeout time.Duration) (*Store, error) {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	clientOpts := options.Client().ApplyURI(uri)
	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return &Store{client: client, db: client.Database(name)}, nil
}

// None returns the absent store used when DATABASE_URL is not set or the
// connection attempt failed.
func None() *Store {
	return &Store{}
}

// Available reports whether the store holds a live connection.
func (s *Store) Available() bool {
	return s != nil && s.db != nil
}

// Name returns the connected database name, or "" when absent.
func (s *Store) Name() string {
	if !s.Available() {
		return ""
	}
	return s.db.Name()
}

func (s *Store) Close(ctx context.Context) error {
	if s == nil || s.client == nil {
		return nil
	}
	return s.client.Disconnect(ctx)
}

// CollectionNames lists the collection names in the connected database.
func (s *Store) CollectionNames(ctx context.Context) ([]string, error) {
	if !s.Available() {
		return nil, ErrUnavailable
	}
	return s.db.ListCollectionNames(ctx, bson.M{})
}

// Count returns the number of documents in the named collection.
func (s *Store) Count(ctx context.Context, col string) (int64, error) {
	if !s.Available() {
		return 0, ErrUnavailable
	}
	return s.db.Collection(col).CountDocuments(ctx, bson.M{})
}

// FindOne fetches the single document whose field equals value. A miss is
// reported as mongo.ErrNoDocuments.
func (s *Store) FindOne(ctx context.Context, col, field string, value interface{}) (bson.Raw, error) {
	if !s.Available() {
		return nil, ErrUnavailable
	}
	return s.db.Collection(col).FindOne(ctx, bson.M{field: value}).Raw()
}

// FindAll returns every document in the named collection in store order.
func (s *Store) FindAll(ctx context.Context, col string) ([]bson.Raw, error) {
	if !s.Available() {
		return nil, ErrUnavailable
	}
	cur, err := s.db.Collection(col).Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)
	out := []bson.Raw{}
	for cur.Next(ctx) {
		// cursor buffer is reused between Next calls
		out = append(out, append(bson.Raw(nil), cur.Current...))
	}
	if err := cur.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// InsertOne inserts a document and returns the generated identifier as a hex string.
func (s *Store) InsertOne(ctx context.Context, col string, doc interface{}) (string, error) {
	if !s.Available() {
		return "", ErrUnavailable
	}
	res, err := s.db.Collection(col).InsertOne(ctx, doc)
	if err != nil {
		return "", err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprintf("%v", res.InsertedID), nil
}

// InsertMany inserts the documents into the named collection.
func (s *Store) InsertMany(ctx context.Context, col string, docs []interface{}) error {
	if !s.Available() {
		return ErrUnavailable
	}
	_, err := s.db.Collection(col).InsertMany(ctx, docs)
	return err
}
