// internal/app/store/queries/orgmembers/orgmembers.go
package orgmembers

import (
	"context"

	"github.com/dalemusser/labelhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Member joins a membership row with its directory user for listing.
// ContributedProjects is populated only when Options.WithContributions is
// set; it stays null otherwise.
type Member struct {
	Membership          models.Membership `bson:"membership" json:"membership"`
	User                models.User       `bson:"user" json:"user"`
	ContributedProjects *int64            `bson:"contributed_projects,omitempty" json:"contributed_to_projects,omitempty"`
}

const defaultPageSize = 20

// UnlimitedPageSize is the escape value callers pass for a full export.
const UnlimitedPageSize = -1

// Options controls filtering and paging for the member list.
type Options struct {
	// ActiveOnly hides soft-deleted memberships.
	ActiveOnly bool
	// ActiveUsersOnly additionally hides directory-deactivated accounts.
	ActiveUsersOnly bool
	// Page is 1-based. Zero means first page.
	Page int
	// PageSize of 0 uses the default; UnlimitedPageSize returns everything.
	PageSize int
	// WithContributions counts each member's projects in the org.
	WithContributions bool
}

// List returns an organization's members joined with their user records,
// ordered by username ascending (folded), then _id for a stable tiebreak.
// Historical tombstoned rows are included unless ActiveOnly is set.
func List(ctx context.Context, db *mongo.Database, orgID primitive.ObjectID, opts Options) ([]Member, error) {
	match := bson.M{"org_id": orgID}
	if opts.ActiveOnly {
		match["deleted_at"] = nil
	}

	pipe := mongo.Pipeline{
		bson.D{{Key: "$match", Value: match}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "users",
			"localField":   "user_id",
			"foreignField": "_id",
			"as":           "user",
		}}},
		bson.D{{Key: "$unwind", Value: "$user"}},
	}

	if opts.ActiveUsersOnly {
		pipe = append(pipe, bson.D{{Key: "$match", Value: bson.M{"user.active": true}}})
	}

	pipe = append(pipe,
		bson.D{{Key: "$sort", Value: bson.D{
			{Key: "user.username_ci", Value: 1},
			{Key: "user._id", Value: 1},
		}}},
	)

	if opts.PageSize != UnlimitedPageSize {
		size := opts.PageSize
		if size <= 0 {
			size = defaultPageSize
		}
		page := opts.Page
		if page < 1 {
			page = 1
		}
		if skip := (page - 1) * size; skip > 0 {
			pipe = append(pipe, bson.D{{Key: "$skip", Value: skip}})
		}
		pipe = append(pipe, bson.D{{Key: "$limit", Value: size}})
	}

	proj := bson.M{
		"membership": "$$ROOT",
		"user":       "$user",
	}
	if opts.WithContributions {
		// Per-member project count within the org, joined after paging so
		// the extra lookup only runs for the rows being returned.
		pipe = append(pipe, bson.D{{Key: "$lookup", Value: bson.M{
			"from": "projects",
			"let":  bson.M{"uid": "$user_id", "oid": "$org_id"},
			"pipeline": mongo.Pipeline{
				bson.D{{Key: "$match", Value: bson.M{"$expr": bson.M{"$and": bson.A{
					bson.M{"$eq": bson.A{"$org_id", "$$oid"}},
					bson.M{"$eq": bson.A{"$created_by", "$$uid"}},
				}}}}},
				bson.D{{Key: "$count", Value: "n"}},
			},
			"as": "contributed",
		}}})
		proj["contributed_projects"] = bson.M{"$ifNull": bson.A{
			bson.M{"$arrayElemAt": bson.A{"$contributed.n", 0}}, 0,
		}}
	}
	pipe = append(pipe, bson.D{{Key: "$project", Value: proj}})

	cur, err := db.Collection("memberships").Aggregate(ctx, pipe)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []Member
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}
