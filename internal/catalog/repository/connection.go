package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ConnConfig carries the tunables the catalog service exposes through
// its environment; zero values fall back to the defaults below.
type ConnConfig struct {
	URI         string
	Database    string
	MaxPoolSize uint64
	MinPoolSize uint64
}

const (
	defaultMaxPoolSize      = 50
	defaultConnectTimeout   = 10 * time.Second
	defaultSelectionTimeout = 5 * time.Second
)

func ConnectMongoDB(ctx context.Context, cfg ConnConfig) (*mongo.Database, error) {
	maxPool := cfg.MaxPoolSize
	if maxPool == 0 {
		maxPool = defaultMaxPoolSize
	}

	clientOpts := options.Client().
		ApplyURI(cfg.URI).
		SetConnectTimeout(defaultConnectTimeout).
		SetServerSelectionTimeout(defaultSelectionTimeout).
		SetMaxPoolSize(maxPool).
		SetMinPoolSize(cfg.MinPoolSize)

	client, err := mongo.Connect(ctx, clientOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to MongoDB: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping MongoDB: %w", err)
	}

	return client.Database(cfg.Database), nil
}
