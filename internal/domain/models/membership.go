// internal/domain/models/membership.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Membership is the authoritative join between users and organizations.
// At most one document per (org_id, user_id) has a null deleted_at; the
// partial unique index in system/indexes enforces that.
//
// Owner is set once when the organization is created and never changes.
// Admin may toggle, but an owner is effectively admin no matter what the
// stored flag says — always go through EffectiveAdmin.
type Membership struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OrgID  primitive.ObjectID `bson:"org_id" json:"organization"`
	UserID primitive.ObjectID `bson:"user_id" json:"user"`

	Owner bool `bson:"owner" json:"owner"`
	Admin bool `bson:"admin" json:"admin"`

	// DeletedAt is the soft-delete tombstone. Nil means active; a removed
	// membership keeps its row for history and audit.
	DeletedAt *time.Time `bson:"deleted_at" json:"deleted_at"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}

// Active reports whether the membership has not been soft deleted.
func (m Membership) Active() bool {
	return m.DeletedAt == nil
}

// EffectiveAdmin reports whether the member can manage other memberships.
// Owners are always admins regardless of the stored flag.
func (m Membership) EffectiveAdmin() bool {
	return m.Owner || m.Admin
}
