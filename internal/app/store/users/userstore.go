// internal/app/store/users/userstore.go
package userstore

// The user directory is an external collaborator: the membership core
// reads it for existence, the superuser flag, and login verification, but
// never writes accounts. Account provisioning lives elsewhere.

import (
	"context"
	"time"

	"github.com/dalemusser/labelhub/internal/domain/models"
	"github.com/dalemusser/waffle/pantry/text"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

type Store struct {
	c *mongo.Collection
}

func New(db *mongo.Database) *Store {
	return &Store{c: db.Collection("users")}
}

func (s *Store) GetByID(ctx context.Context, id primitive.ObjectID) (models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&u); err != nil {
		return models.User{}, err
	}
	return u, nil
}

func (s *Store) GetByEmail(ctx context.Context, email string) (models.User, error) {
	var u models.User
	if err := s.c.FindOne(ctx, bson.M{"email": email}).Decode(&u); err != nil {
		return models.User{}, err
	}
	return u, nil
}

// Exists checks whether a directory record is present for id.
func (s *Store) Exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// IsSuperuser reports the directory-level override flag. Absent users are
// simply not superusers.
func (s *Store) IsSuperuser(ctx context.Context, id primitive.ObjectID) (bool, error) {
	var row struct {
		Superuser bool `bson:"superuser"`
	}
	err := s.c.FindOne(ctx, bson.M{"_id": id}).Decode(&row)
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return row.Superuser, nil
}

// VerifyPassword checks the supplied password against the stored bcrypt
// hash. Returns false on any mismatch without distinguishing causes.
func (s *Store) VerifyPassword(ctx context.Context, email, password string) (models.User, bool, error) {
	u, err := s.GetByEmail(ctx, email)
	if err == mongo.ErrNoDocuments {
		return models.User{}, false, nil
	}
	if err != nil {
		return models.User{}, false, err
	}
	if !u.Active || u.PasswordHash == "" {
		return models.User{}, false, nil
	}
	if bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)) != nil {
		return models.User{}, false, nil
	}
	return u, true, nil
}

// Create inserts a directory record. Only tests and seed tooling use
// this; the running service treats the directory as read-only.
func (s *Store) Create(ctx context.Context, u models.User, password string) (models.User, error) {
	now := time.Now().UTC()
	u.ID = primitive.NewObjectID()
	u.UsernameCI = text.Fold(u.Username)
	u.Active = true
	u.CreatedAt = now
	u.UpdatedAt = now
	if password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return models.User{}, err
		}
		u.PasswordHash = string(hash)
	}
	if _, err := s.c.InsertOne(ctx, u); err != nil {
		return models.User{}, err
	}
	return u, nil
}
