// internal/app/system/txn/txn.go

// Package txn runs multi-write units as MongoDB transactions.
//
// Organization creation (org + owner membership) and destruction (org +
// cascades) must be all-or-nothing. On topologies without transaction
// support (standalone mongod, some emulators) Run degrades to calling fn
// directly, which keeps local development working; production deployments
// are expected to run a replica set.
package txn

import (
	"context"
	"errors"
	"strings"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// Run executes fn inside a session transaction on db's client. If the
// server rejects sessions or transactions outright, fn is re-run without
// a session.
func Run(ctx context.Context, db *mongo.Database, logger *zap.Logger, fn func(ctx context.Context) error) error {
	sess, err := db.Client().StartSession()
	if err != nil {
		if IsNotSupported(err) {
			logger.Debug("sessions unsupported; running writes without a transaction")
			return fn(ctx)
		}
		return err
	}
	defer sess.EndSession(ctx)

	_, err = sess.WithTransaction(ctx, func(sc mongo.SessionContext) (interface{}, error) {
		return nil, fn(sc)
	})
	if err != nil && IsNotSupported(err) {
		logger.Debug("transactions unsupported by topology; running writes without a transaction")
		return fn(ctx)
	}
	return err
}

// IsNotSupported reports whether err indicates the server topology cannot
// run transactions (as opposed to a transaction that failed and rolled
// back). Matches the well-known command error codes plus the message
// shapes various Mongo-compatible servers emit.
func IsNotSupported(err error) bool {
	if err == nil {
		return false
	}

	var ce mongo.CommandError
	if errors.As(err, &ce) {
		switch ce.Code {
		case 20, 51, 263: // IllegalOperation / OperationNotSupportedInTransaction
			return true
		}
	}

	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "illegal operation"):
		return true
	case strings.Contains(msg, "transaction") && strings.Contains(msg, "replica set"):
		return true
	case strings.Contains(msg, "transaction") && strings.Contains(msg, "session"):
		return true
	case strings.Contains(msg, "session") && strings.Contains(msg, "not supported"):
		return true
	}
	return false
}
