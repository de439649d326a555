// internal/app/authority/authorizer.go
package authority

import (
	"context"

	membershipstore "github.com/dalemusser/labelhub/internal/app/store/memberships"
	userstore "github.com/dalemusser/labelhub/internal/app/store/users"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// Authorizer is the single capability gate shared by every mutating
// operation. Implementations are chosen statically and injected at
// construction; there is no runtime lookup of permission strategies.
type Authorizer interface {
	// Authorize returns nil iff userID may manage memberships in orgID.
	// A denial is a KindPermissionDenied error; anything else is an
	// infrastructure failure.
	Authorize(ctx context.Context, userID, orgID primitive.ObjectID) error
}

// adminAuthorizer grants management to active effective admins of the
// organization (admin flag or owner) and to directory superusers.
type adminAuthorizer struct {
	members *membershipstore.Store
	users   *userstore.Store
}

// NewAdminAuthorizer is the production Authorizer.
func NewAdminAuthorizer(db *mongo.Database) Authorizer {
	return &adminAuthorizer{
		members: membershipstore.New(db),
		users:   userstore.New(db),
	}
}

func (a *adminAuthorizer) Authorize(ctx context.Context, userID, orgID primitive.ObjectID) error {
	m, err := a.members.GetActive(ctx, orgID, userID)
	switch {
	case err == nil:
		if m.EffectiveAdmin() {
			return nil
		}
	case err != mongo.ErrNoDocuments:
		return err
	}

	// Not an active admin of this org; the directory override still applies.
	super, err := a.users.IsSuperuser(ctx, userID)
	if err != nil {
		return err
	}
	if super {
		return nil
	}
	return permissionDenied("you must be an admin of this organization")
}
