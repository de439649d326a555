// internal/app/system/authz/authz.go

// Package authz extracts identity facts from the request context.
// Per-organization capability checks live in the authority package; this
// package only answers "who is calling" questions for handlers.
package authz

import (
	"net/http"

	"github.com/dalemusser/labelhub/internal/app/system/auth"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserID returns the caller's directory ObjectID and a found flag. A
// malformed ID in the session fails closed: ok=false.
func UserID(r *http.Request) (primitive.ObjectID, bool) {
	u, ok := auth.CurrentUser(r)
	if !ok {
		return primitive.NilObjectID, false
	}
	oid, err := primitive.ObjectIDFromHex(u.ID)
	if err != nil {
		return primitive.NilObjectID, false
	}
	return oid, true
}
