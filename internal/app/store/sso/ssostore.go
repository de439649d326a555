// internal/app/store/sso/ssostore.go
package ssostore

import (
	"context"
	"time"

	"github.com/dalemusser/labelhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("sso_bindings")}
}

func (s *Store) Create(ctx context.Context, b models.SSOBinding) (models.SSOBinding, error) {
	now := time.Now().UTC()
	b.ID = primitive.NewObjectID()
	b.CreatedAt = now
	b.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, b); err != nil {
		return models.SSOBinding{}, err
	}
	return b, nil
}

func (s *Store) GetByOrg(ctx context.Context, orgID primitive.ObjectID) (models.SSOBinding, error) {
	var b models.SSOBinding
	if err := s.c.FindOne(ctx, bson.M{"org_id": orgID}).Decode(&b); err != nil {
		return models.SSOBinding{}, err
	}
	return b, nil
}

// DeleteByOrg removes the organization's SSO binding if one exists.
// Returns the number of documents deleted (0 or 1).
func (s *Store) DeleteByOrg(ctx context.Context, orgID primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteMany(ctx, bson.M{"org_id": orgID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
