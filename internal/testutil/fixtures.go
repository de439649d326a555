// internal/testutil/fixtures.go
package testutil

import (
	"context"
	"testing"
	"time"

	"github.com/dalemusser/labelhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

// Fixtures provides helper methods for creating test data.
type Fixtures struct {
	db *mongo.Database
	t  *testing.T
}

// NewFixtures creates a Fixtures instance for the given test database.
func NewFixtures(t *testing.T, db *mongo.Database) *Fixtures {
	t.Helper()
	return &Fixtures{db: db, t: t}
}

// DB returns the underlying database for direct access in tests.
func (f *Fixtures) DB() *mongo.Database {
	return f.db
}

// CreateUser inserts an active directory user.
func (f *Fixtures) CreateUser(ctx context.Context, username, email string) models.User {
	f.t.Helper()
	return f.insertUser(ctx, username, email, "", false)
}

// CreateSuperuser inserts a directory user carrying the superuser flag.
func (f *Fixtures) CreateSuperuser(ctx context.Context, username, email string) models.User {
	f.t.Helper()
	return f.insertUser(ctx, username, email, "", true)
}

// CreateUserWithPassword inserts an active user able to log in with the
// given password.
func (f *Fixtures) CreateUserWithPassword(ctx context.Context, username, email, password string) models.User {
	f.t.Helper()
	return f.insertUser(ctx, username, email, password, false)
}

func (f *Fixtures) insertUser(ctx context.Context, username, email, password string, superuser bool) models.User {
	f.t.Helper()

	now := time.Now().UTC()
	u := models.User{
		ID:         primitive.NewObjectID(),
		Username:   username,
		UsernameCI: text.Fold(username),
		Email:      email,
		Superuser:  superuser,
		Active:     true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
		if err != nil {
			f.t.Fatalf("hash test password: %v", err)
		}
		u.PasswordHash = string(hash)
	}

	if _, err := f.db.Collection("users").InsertOne(ctx, u); err != nil {
		f.t.Fatalf("create test user: %v", err)
	}
	return u
}

// CreateOrganization inserts an organization without any memberships.
// Use the authority's CreateOrganization when the owner membership
// matters to the test.
func (f *Fixtures) CreateOrganization(ctx context.Context, title string, createdBy primitive.ObjectID) models.Organization {
	f.t.Helper()

	now := time.Now().UTC()
	org := models.Organization{
		ID:        primitive.NewObjectID(),
		Title:     title,
		TitleCI:   text.Fold(title),
		Token:     uuid.NewString(),
		CreatedBy: &createdBy,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := f.db.Collection("organizations").InsertOne(ctx, org); err != nil {
		f.t.Fatalf("create test organization: %v", err)
	}
	return org
}

// CreateProject inserts a project owned by the organization.
func (f *Fixtures) CreateProject(ctx context.Context, orgID, createdBy primitive.ObjectID, title string) models.Project {
	f.t.Helper()

	now := time.Now().UTC()
	p := models.Project{
		ID:        primitive.NewObjectID(),
		OrgID:     orgID,
		Title:     title,
		CreatedBy: createdBy,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := f.db.Collection("projects").InsertOne(ctx, p); err != nil {
		f.t.Fatalf("create test project: %v", err)
	}
	return p
}

// CreateMembership inserts an active membership row directly.
func (f *Fixtures) CreateMembership(ctx context.Context, orgID, userID primitive.ObjectID, owner, admin bool) models.Membership {
	f.t.Helper()

	now := time.Now().UTC()
	m := models.Membership{
		ID:        primitive.NewObjectID(),
		OrgID:     orgID,
		UserID:    userID,
		Owner:     owner,
		Admin:     admin,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err := f.db.Collection("memberships").InsertOne(ctx, m); err != nil {
		f.t.Fatalf("create test membership: %v", err)
	}
	return m
}
