package db

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/yigit/courseapproval/internal/config"
	"github.com/yigit/courseapproval/internal/pkg/logger"
)

// MongoDB owns the driver client for the lifetime of the server. The driver reconnects on its own;
// callers only acquire it at startup and release it with Close on shutdown.
type MongoDB struct {
	Client   *mongo.Client
	Database *mongo.Database
}

// NewMongoDB connects to MongoDB and verifies the connection with a ping against the primary.
func NewMongoDB(ctx context.Context, cfg *config.Config) (*MongoDB, error) {
	connectTimeout := cfg.ConnectTimeout()
	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	opts := options.Client().
		ApplyURI(cfg.Database.URI).
		SetAppName("courseapproval").
		SetConnectTimeout(connectTimeout).
		SetServerSelectionTimeout(connectTimeout).
		SetRetryWrites(true).
		SetRetryReads(true)
	if cfg.Database.MaxPoolSize > 0 {
		opts.SetMaxPoolSize(uint64(cfg.Database.MaxPoolSize))
	}

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create mongo client: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		// Release the half-open client before reporting.
		if dErr := client.Disconnect(context.Background()); dErr != nil {
			logger.Warn().Err(dErr).Msg("Failed to disconnect mongo client after ping failure")
		}
		return nil, fmt.Errorf("failed to establish database connection: %w", err)
	}

	return &MongoDB{
		Client:   client,
		Database: client.Database(cfg.Database.Name),
	}, nil
}

// Collection returns a handle to a collection of the configured database
func (db *MongoDB) Collection(name string) *mongo.Collection {
	return db.Database.Collection(name)
}

// Close disconnects the client, waiting at most 5 seconds for in-flight operations.
func (db *MongoDB) Close(ctx context.Context) error {
	if db == nil || db.Client == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return db.Client.Disconnect(ctx)
}
