// internal/domain/models/user.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User is the directory record for an account. The directory is an
// external collaborator as far as the membership core is concerned; the
// core only reads it (existence, superuser flag, username for ordering).
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Username     string             `bson:"username" json:"username"`
	UsernameCI   string             `bson:"username_ci" json:"-"` // lowercase, diacritics-stripped
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"password_hash,omitempty" json:"-"`

	// Superuser bypasses per-organization admin checks.
	Superuser bool `bson:"superuser,omitempty" json:"superuser,omitempty"`

	// Active is false for deactivated accounts; listing with the active
	// filter excludes those members even when their membership is live.
	Active bool `bson:"active" json:"active"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
