// internal/app/store/memberships/membershipstore.go
package membershipstore

import (
	"context"
	"errors"
	"time"

	"github.com/dalemusser/labelhub/internal/domain/models"
	wafflemongo "github.com/dalemusser/waffle/pantry/mongo"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("memberships")}
}

// ErrDuplicateMembership surfaces the partial unique index on
// (org_id, user_id) among active rows. Callers treat it as the losing
// side of a concurrent add.
var ErrDuplicateMembership = errors.New("user is already a member of this organization")

// Insert writes a new membership row. Timestamps and ID are filled here;
// DeletedAt starts nil (active).
func (s *Store) Insert(ctx context.Context, m models.Membership) (models.Membership, error) {
	now := time.Now().UTC()
	m.ID = primitive.NewObjectID()
	m.DeletedAt = nil
	m.CreatedAt = now
	m.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, m); err != nil {
		if wafflemongo.IsDup(err) {
			return models.Membership{}, ErrDuplicateMembership
		}
		return models.Membership{}, err
	}
	return m, nil
}

// GetActive loads the live membership for (orgID, userID). Soft-deleted
// tombstones are invisible here; mongo.ErrNoDocuments covers both "never
// a member" and "already removed".
func (s *Store) GetActive(ctx context.Context, orgID, userID primitive.ObjectID) (models.Membership, error) {
	var m models.Membership
	err := s.c.FindOne(ctx, bson.M{
		"org_id":     orgID,
		"user_id":    userID,
		"deleted_at": nil,
	}).Decode(&m)
	if err != nil {
		return models.Membership{}, err
	}
	return m, nil
}

// SoftDelete tombstones the active membership for (orgID, userID) with a
// compare-and-swap on deleted_at so a racing remove/promote resolves
// deterministically. Returns false when no active row matched.
func (s *Store) SoftDelete(ctx context.Context, orgID, userID primitive.ObjectID) (bool, error) {
	now := time.Now().UTC()
	res, err := s.c.UpdateOne(ctx,
		bson.M{"org_id": orgID, "user_id": userID, "deleted_at": nil},
		bson.M{"$set": bson.M{"deleted_at": now, "updated_at": now}},
	)
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

// SetAdmin flips the admin flag on the active membership. The owner flag
// is immutable and never touched by this path. Returns false when no
// active row matched (absent or already soft deleted).
func (s *Store) SetAdmin(ctx context.Context, orgID, userID primitive.ObjectID, admin bool) (bool, error) {
	res, err := s.c.UpdateOne(ctx,
		bson.M{"org_id": orgID, "user_id": userID, "deleted_at": nil},
		bson.M{"$set": bson.M{"admin": admin, "updated_at": time.Now().UTC()}},
	)
	if err != nil {
		return false, err
	}
	return res.MatchedCount > 0, nil
}

// DeleteByOrg hard-deletes every membership row of an organization,
// tombstones included. Bulk path for organization destruction: one
// DeleteMany, no per-row side effects. Returns the number deleted.
func (s *Store) DeleteByOrg(ctx context.Context, orgID primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteMany(ctx, bson.M{"org_id": orgID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// ActiveOrgIDsForUser returns the IDs of organizations where the user
// holds a live membership.
func (s *Store) ActiveOrgIDsForUser(ctx context.Context, userID primitive.ObjectID) ([]primitive.ObjectID, error) {
	cur, err := s.c.Find(ctx,
		bson.M{"user_id": userID, "deleted_at": nil},
		options.Find().SetProjection(bson.M{"org_id": 1}),
	)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var rows []struct {
		OrgID primitive.ObjectID `bson:"org_id"`
	}
	if err := cur.All(ctx, &rows); err != nil {
		return nil, err
	}
	ids := make([]primitive.ObjectID, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.OrgID)
	}
	return ids, nil
}

// CountActiveByOrg returns the number of live memberships in an org.
func (s *Store) CountActiveByOrg(ctx context.Context, orgID primitive.ObjectID) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{"org_id": orgID, "deleted_at": nil})
}
