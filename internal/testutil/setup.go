// internal/testutil/setup.go

// Package testutil provides shared helpers for integration and handler
// tests: a disposable Mongo database per test, data fixtures, and HTTP
// request plumbing.
package testutil

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/dalemusser/labelhub/internal/app/system/indexes"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
	"go.uber.org/zap"
)

const envTestMongoURI = "LABELHUB_TEST_MONGO_URI"

// SetupTestDB connects to the test MongoDB instance and returns a
// uniquely named database that is dropped when the test finishes. Tests
// calling this skip when no instance is reachable, so the pure-logic
// suite still runs anywhere.
//
// Set LABELHUB_TEST_MONGO_URI to point somewhere other than
// mongodb://localhost:27017.
func SetupTestDB(t *testing.T) *mongo.Database {
	t.Helper()

	uri := os.Getenv(envTestMongoURI)
	if uri == "" {
		uri = "mongodb://localhost:27017"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		t.Skipf("mongo not available at %s: %v", uri, err)
	}
	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		t.Skipf("mongo not reachable at %s: %v", uri, err)
	}

	name := fmt.Sprintf("labelhub_test_%d", time.Now().UnixNano())
	db := client.Database(name)

	// The membership invariants live in the indexes; tests need them too.
	if err := indexes.EnsureAll(ctx, db, zap.NewNop()); err != nil {
		_ = client.Disconnect(context.Background())
		t.Fatalf("ensure indexes: %v", err)
	}

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := db.Drop(ctx); err != nil {
			t.Logf("drop test db %s: %v", name, err)
		}
		_ = client.Disconnect(ctx)
	})

	return db
}

// TestContext returns a context with a deadline generous enough for any
// single test operation.
func TestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 30*time.Second)
}
