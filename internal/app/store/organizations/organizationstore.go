// internal/app/store/organizations/organizationstore.go
package organizationstore

import (
	"context"
	"strings"
	"time"

	"github.com/dalemusser/labelhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("organizations")}
}

// Create inserts the organization. ID, folded title, invite token, and
// timestamps are filled in here so callers only supply domain fields.
func (s *Store) Create(ctx context.Context, org models.Organization) (models.Organization, error) {
	now := time.Now().UTC()
	org.ID = primitive.NewObjectID()
	org.TitleCI = text.Fold(org.Title)
	if org.Token == "" {
		org.Token = uuid.NewString()
	}
	org.CreatedAt = now
	org.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, org); err != nil {
		return models.Organization{}, err
	}
	return org, nil
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.Organization, error) {
	var org models.Organization
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&org); err != nil {
		return models.Organization{}, err
	}
	return org, nil
}

// UpdateInfo modifies the mutable fields and refreshes UpdatedAt. Title is
// only replaced when non-blank; contact info may be cleared.
func (s *Store) UpdateInfo(ctx context.Context, id primitive.ObjectID, title, contactInfo string) (models.Organization, error) {
	set := bson.M{
		"contact_info": contactInfo,
		"updated_at":   time.Now().UTC(),
	}
	if strings.TrimSpace(title) != "" {
		set["title"] = title
		set["title_ci"] = text.Fold(title)
	}
	var org models.Organization
	err := s.c.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&org)
	if err != nil {
		return models.Organization{}, err
	}
	return org, nil
}

// ResetToken rotates the invite token and returns the new value.
func (s *Store) ResetToken(ctx context.Context, id primitive.ObjectID) (string, error) {
	token := uuid.NewString()
	res, err := s.c.UpdateByID(ctx, id, bson.M{"$set": bson.M{
		"token":      token,
		"updated_at": time.Now().UTC(),
	}})
	if err != nil {
		return "", err
	}
	if res.MatchedCount == 0 {
		return "", mongo.ErrNoDocuments
	}
	return token, nil
}

// Delete removes an organization by ID. Returns the number of documents
// deleted (0 or 1). Cascades are the authority's job, not the store's.
func (s *Store) Delete(ctx context.Context, id primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
