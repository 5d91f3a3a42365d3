package database

import (
	"context"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var (
	client      *mongo.Client
	connectOnce sync.Once
	connectErr  error
)

// Connect establishes the MongoDB connection on first use and returns the
// shared client afterwards. Concurrent first callers share a single
// connection attempt; if that attempt fails, every caller sees the error.
func Connect(uri string) (*mongo.Client, error) {
	connectOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		c, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
		if err != nil {
			connectErr = fmt.Errorf("failed to connect to MongoDB: %w", err)
			return
		}
		if err := c.Ping(ctx, nil); err != nil {
			connectErr = fmt.Errorf("failed to ping MongoDB: %w", err)
			return
		}
		client = c
	})
	return client, connectErr
}

// Disconnect tears down the shared client on shutdown.
func Disconnect(ctx context.Context) error {
	if client == nil {
		return nil
	}
	return client.Disconnect(ctx)
}
