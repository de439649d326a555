// internal/domain/models/project.go
package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Project is a labeling project owned by an organization. Only the
// ownership edge matters here: destroying an organization cascades to its
// projects. Project content lives outside this service.
type Project struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	OrgID     primitive.ObjectID `bson:"org_id" json:"organization"`
	Title     string             `bson:"title" json:"title"`
	CreatedBy primitive.ObjectID `bson:"created_by,omitempty" json:"created_by,omitempty"`

	CreatedAt time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time `bson:"updated_at" json:"updated_at"`
}
