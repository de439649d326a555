// internal/app/store/projects/projectstore.go
package projectstore

import (
	"context"
	"time"

	"github.com/dalemusser/labelhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Store covers the slice of project persistence this service owns: the
// org → project ownership edge. Project content APIs live in another
// service.
type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("projects")}
}

func (s *Store) Create(ctx context.Context, p models.Project) (models.Project, error) {
	now := time.Now().UTC()
	p.ID = primitive.NewObjectID()
	p.CreatedAt = now
	p.UpdatedAt = now
	if _, err := s.c.InsertOne(ctx, p); err != nil {
		return models.Project{}, err
	}
	return p, nil
}

// DeleteByOrg removes all projects belonging to an organization in one
// bulk write. Returns the number of documents deleted.
func (s *Store) DeleteByOrg(ctx context.Context, orgID primitive.ObjectID) (int64, error) {
	res, err := s.c.DeleteMany(ctx, bson.M{"org_id": orgID})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}

// CountByOrg returns the number of projects in an organization.
func (s *Store) CountByOrg(ctx context.Context, orgID primitive.ObjectID) (int64, error) {
	return s.c.CountDocuments(ctx, bson.M{"org_id": orgID})
}
