// internal/app/store/queries/userorgs/userorgs.go
package userorgs

import (
	"context"

	"github.com/dalemusser/labelhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// List returns the organizations where the user holds a live (non-deleted)
// membership, ordered by folded title.
func List(ctx context.Context, db *mongo.Database, userID primitive.ObjectID) ([]models.Organization, error) {
	pipe := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"user_id": userID, "deleted_at": nil}}},
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         "organizations",
			"localField":   "org_id",
			"foreignField": "_id",
			"as":           "org",
		}}},
		bson.D{{Key: "$unwind", Value: "$org"}},
		bson.D{{Key: "$replaceRoot", Value: bson.M{"newRoot": "$org"}}},
		bson.D{{Key: "$sort", Value: bson.D{
			{Key: "title_ci", Value: 1},
			{Key: "_id", Value: 1},
		}}},
	}

	cur, err := db.Collection("memberships").Aggregate(ctx, pipe)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var orgs []models.Organization
	if err := cur.All(ctx, &orgs); err != nil {
		return nil, err
	}
	return orgs, nil
}
