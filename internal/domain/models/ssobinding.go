// internal/domain/models/ssobinding.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SSOBinding attaches a single-sign-on configuration to an organization.
// At most one binding per org; it is deleted when the org is destroyed.
type SSOBinding struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OrgID    primitive.ObjectID `bson:"org_id" json:"organization"`
	Provider string             `bson:"provider" json:"provider"`
	IssuerID string             `bson:"issuer_id" json:"issuer_id"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
