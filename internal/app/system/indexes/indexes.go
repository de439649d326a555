// internal/app/system/indexes/indexes.go
package indexes

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

/*
EnsureAll is called at startup (EnsureSchema hook). Each ensure* function
is idempotent. Errors are aggregated so every problem is visible and
startup can fail fast.
*/
func EnsureAll(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	var problems []string

	if err := ensureUsers(ctx, db, logger); err != nil {
		problems = append(problems, "users: "+err.Error())
	}
	if err := ensureOrganizations(ctx, db, logger); err != nil {
		problems = append(problems, "organizations: "+err.Error())
	}
	if err := ensureMemberships(ctx, db, logger); err != nil {
		problems = append(problems, "memberships: "+err.Error())
	}
	if err := ensureProjects(ctx, db, logger); err != nil {
		problems = append(problems, "projects: "+err.Error())
	}
	if err := ensureSSOBindings(ctx, db, logger); err != nil {
		problems = append(problems, "sso_bindings: "+err.Error())
	}

	if len(problems) > 0 {
		return errors.New(strings.Join(problems, "; "))
	}
	return nil
}

func ensureUsers(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	return ensureIndexSet(ctx, db.Collection("users"), logger, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_user_email"),
		},
		{
			Keys:    bson.D{{Key: "username_ci", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_user_username_ci"),
		},
	})
}

func ensureOrganizations(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	return ensureIndexSet(ctx, db.Collection("organizations"), logger, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "title_ci", Value: 1}},
			Options: options.Index().SetName("org_title_ci"),
		},
		{
			Keys:    bson.D{{Key: "token", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_org_token"),
		},
	})
}

func ensureMemberships(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	return ensureIndexSet(ctx, db.Collection("memberships"), logger, []mongo.IndexModel{
		// Uniqueness among *active* rows only: soft-deleted tombstones may
		// pile up for the same (org, user), but at most one live membership
		// exists per pair. This is what makes concurrent AddMember safe.
		{
			Keys: bson.D{{Key: "org_id", Value: 1}, {Key: "user_id", Value: 1}},
			Options: options.Index().
				SetUnique(true).
				SetName("uniq_membership_org_user_active").
				SetPartialFilterExpression(bson.D{
					{Key: "deleted_at", Value: bson.D{{Key: "$type", Value: "null"}}},
				}),
		},
		{
			Keys:    bson.D{{Key: "user_id", Value: 1}, {Key: "deleted_at", Value: 1}},
			Options: options.Index().SetName("membership_user_deleted"),
		},
		{
			Keys:    bson.D{{Key: "org_id", Value: 1}, {Key: "deleted_at", Value: 1}},
			Options: options.Index().SetName("membership_org_deleted"),
		},
	})
}

func ensureProjects(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	return ensureIndexSet(ctx, db.Collection("projects"), logger, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "org_id", Value: 1}},
			Options: options.Index().SetName("project_org"),
		},
	})
}

func ensureSSOBindings(ctx context.Context, db *mongo.Database, logger *zap.Logger) error {
	return ensureIndexSet(ctx, db.Collection("sso_bindings"), logger, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "org_id", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_sso_org"),
		},
	})
}

/* -------------------------------------------------------------------------- */
/* Helper: ensure a set of desired indexes for one collection                 */
/* -------------------------------------------------------------------------- */

func ensureIndexSet(ctx context.Context, coll *mongo.Collection, logger *zap.Logger, models []mongo.IndexModel) error {
	var errs []string

	for _, m := range models {
		name := ""
		if m.Options != nil && m.Options.Name != nil {
			name = *m.Options.Name
		}

		if _, err := coll.Indexes().CreateOne(ctx, m); err != nil {
			// An index with the same keys but different options/name exists.
			// Drop by name and retry once; if that fails, report it.
			if isOptionsConflictErr(err) && name != "" {
				logger.Info("recreating conflicting index",
					zap.String("collection", coll.Name()),
					zap.String("name", name))
				if _, dropErr := coll.Indexes().DropOne(ctx, name); dropErr == nil {
					if _, err2 := coll.Indexes().CreateOne(ctx, m); err2 == nil {
						continue
					}
				}
			}
			if isDuplicateKeyErr(err) {
				errs = append(errs, fmt.Sprintf("%s(%s): cannot create unique index, duplicates present", coll.Name(), name))
				continue
			}
			errs = append(errs, fmt.Sprintf("%s(%s): %v", coll.Name(), name, err))
		}
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

func isDuplicateKeyErr(err error) bool {
	if err == nil {
		return false
	}
	var we mongo.WriteException
	if errors.As(err, &we) {
		for _, e := range we.WriteErrors {
			if e.Code == 11000 { // E11000 duplicate key error index
				return true
			}
		}
	}
	var ce mongo.CommandError
	if errors.As(err, &ce) && ce.Code == 11000 {
		return true
	}
	s := err.Error()
	return strings.Contains(s, "E11000") || strings.Contains(strings.ToLower(s), "duplicate key")
}

// Mongo/DocDB sometimes returns IndexOptionsConflict when an index with
// the same keys already exists under a different name or options.
func isOptionsConflictErr(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "IndexOptionsConflict") ||
		strings.Contains(err.Error(), "IndexKeySpecsConflict")
}
