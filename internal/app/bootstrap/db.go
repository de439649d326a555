// internal/app/bootstrap/db.go
package bootstrap

import (
	"context"
	"fmt"
	"time"

	"github.com/dalemusser/labelhub/internal/app/system/indexes"
	"github.com/dalemusser/waffle/config"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

// ConnectDB establishes the MongoDB connection and verifies it with a
// ping before the rest of startup proceeds.
func ConnectDB(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, logger *zap.Logger) (DBDeps, error) {
	opts := options.Client().
		ApplyURI(appCfg.MongoURI).
		SetMaxPoolSize(appCfg.MongoMaxPoolSize).
		SetMinPoolSize(appCfg.MongoMinPoolSize)

	connectCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()

	client, err := mongo.Connect(connectCtx, opts)
	if err != nil {
		return DBDeps{}, fmt.Errorf("mongo connect: %w", err)
	}
	if err := client.Ping(connectCtx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return DBDeps{}, fmt.Errorf("mongo ping: %w", err)
	}

	logger.Info("connected to MongoDB",
		zap.String("database", appCfg.MongoDatabase))

	return DBDeps{
		MongoClient:   client,
		MongoDatabase: client.Database(appCfg.MongoDatabase),
	}, nil
}

// EnsureSchema creates the indexes the membership invariants depend on,
// including the partial unique index that keeps at most one active
// membership per (org, user).
func EnsureSchema(ctx context.Context, coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) error {
	return indexes.EnsureAll(ctx, deps.MongoDatabase, logger)
}
