// internal/app/features/organizations/params.go
package organizations

import (
	"net/http"

	apierrors "github.com/dalemusser/labelhub/internal/app/features/errors"
	"github.com/dalemusser/labelhub/internal/app/system/authz"
	"github.com/go-chi/chi/v5"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// requester pulls the signed-in caller's ObjectID. RequireSignedIn runs
// before every handler here, so a miss means a stale or mangled session;
// fail closed with a 401.
func requester(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	id, ok := authz.UserID(r)
	if !ok {
		apierrors.WriteError(w, http.StatusUnauthorized, "authentication required")
		return primitive.NilObjectID, false
	}
	return id, true
}

// orgIDParam parses the {id} path segment. A malformed hex ID can never
// name an organization, so it reads as 404 rather than 400.
func orgIDParam(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "id"))
	if err != nil {
		apierrors.WriteError(w, http.StatusNotFound, "organization not found")
		return primitive.NilObjectID, false
	}
	return oid, true
}

// userIDParam parses the {userID} path segment, same 404 convention.
func userIDParam(w http.ResponseWriter, r *http.Request) (primitive.ObjectID, bool) {
	oid, err := primitive.ObjectIDFromHex(chi.URLParam(r, "userID"))
	if err != nil {
		apierrors.WriteError(w, http.StatusNotFound, "member not found")
		return primitive.NilObjectID, false
	}
	return oid, true
}
