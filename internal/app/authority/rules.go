// internal/app/authority/rules.go
package authority

// Pure transition rules for the membership state machine. These take
// already-loaded records and never touch storage, so every invariant is
// unit-testable on its own.

import (
	"errors"
	"strings"

	"github.com/dalemusser/labelhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// checkTitle validates an organization title.
func checkTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return validation("organization title must not be empty")
	}
	return nil
}

// checkRemoval enforces the soft-delete rules: a member may never remove
// themself through this path, whatever their role.
func checkRemoval(requesterID primitive.ObjectID, target models.Membership) error {
	if target.UserID == requesterID {
		return invalidTransition("user cannot soft delete self")
	}
	return nil
}

// promoteIsNoop reports whether promoting target changes nothing. Owners
// are implicitly admin, so setting their admin flag is a silent success.
func promoteIsNoop(target models.Membership) bool {
	return target.Owner
}

// resolveDuplicateAdd maps the losing side of a concurrent add. existing
// is the active row read back after the unique index rejected the insert.
// When that read misses, a racing remove tombstoned the row between our
// insert and the read; the add already converged on "was a member", so it
// stays a no-op rather than surfacing the raw driver miss.
func resolveDuplicateAdd(existing models.Membership, readErr error) (models.Membership, error) {
	switch {
	case readErr == nil:
		return existing, nil
	case errors.Is(readErr, mongo.ErrNoDocuments):
		return models.Membership{}, nil
	default:
		return models.Membership{}, readErr
	}
}

// checkDemotion enforces the owner floor: the owner's admin capability is
// structurally tied to ownership and cannot be revoked by anyone,
// themselves included. Non-owner admins may be demoted freely — including
// a non-owner admin demoting themself.
func checkDemotion(requesterID primitive.ObjectID, target models.Membership) error {
	if !target.Owner {
		return nil
	}
	if target.UserID == requesterID {
		return invalidTransition("cannot remove self as admin")
	}
	return invalidTransition("cannot demote an owner")
}
