// internal/domain/models/organization.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Organization is the tenant boundary for the labeling platform.
//
// NOTE:
//   - Membership is not embedded on Organization.
//     All membership is stored in the memberships collection.
//   - The creator's owner relationship is captured by the owner
//     membership written alongside the organization, not by CreatedBy
//     (which goes nil if that user is ever deleted from the directory).
type Organization struct {
	ID          primitive.ObjectID  `bson:"_id" json:"id"`
	Title       string              `bson:"title" json:"title"`
	TitleCI     string              `bson:"title_ci" json:"-"` // lowercase, diacritics-stripped
	ContactInfo string              `bson:"contact_info,omitempty" json:"contact_info,omitempty"`
	Token       string              `bson:"token" json:"token"` // invite token, rotatable
	CreatedBy   *primitive.ObjectID `bson:"created_by,omitempty" json:"created_by,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
