// internal/app/authority/rules_test.go
package authority

import (
	"errors"
	"testing"

	"github.com/dalemusser/labelhub/internal/domain/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestCheckTitle(t *testing.T) {
	if err := checkTitle("Acme Labeling"); err != nil {
		t.Errorf("valid title rejected: %v", err)
	}
	for _, title := range []string{"", "   ", "\t\n"} {
		err := checkTitle(title)
		if !errors.Is(err, ErrValidation) {
			t.Errorf("checkTitle(%q): got %v, want validation error", title, err)
		}
	}
}

func TestCheckRemoval_SelfRefused(t *testing.T) {
	me := primitive.NewObjectID()
	err := checkRemoval(me, models.Membership{UserID: me})
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("removing self: got %v, want invalid transition", err)
	}
	if err.Error() != "user cannot soft delete self" {
		t.Errorf("message: got %q", err.Error())
	}
}

func TestCheckRemoval_OtherAllowed(t *testing.T) {
	if err := checkRemoval(primitive.NewObjectID(), models.Membership{UserID: primitive.NewObjectID()}); err != nil {
		t.Errorf("removing another member: got %v, want nil", err)
	}
}

func TestPromoteIsNoop(t *testing.T) {
	if !promoteIsNoop(models.Membership{Owner: true}) {
		t.Error("promoting an owner should be a no-op")
	}
	if promoteIsNoop(models.Membership{Admin: true}) {
		t.Error("promoting a plain admin is not a no-op")
	}
	if promoteIsNoop(models.Membership{}) {
		t.Error("promoting a plain member is not a no-op")
	}
}

func TestCheckDemotion(t *testing.T) {
	owner := primitive.NewObjectID()
	other := primitive.NewObjectID()

	// Owner demoting themself gets the self-flavored refusal.
	err := checkDemotion(owner, models.Membership{UserID: owner, Owner: true, Admin: true})
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("owner self-demote: got %v, want invalid transition", err)
	}
	if err.Error() != "cannot remove self as admin" {
		t.Errorf("owner self-demote message: got %q", err.Error())
	}

	// Nobody can demote an owner.
	err = checkDemotion(other, models.Membership{UserID: owner, Owner: true, Admin: true})
	if !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("demote owner: got %v, want invalid transition", err)
	}

	// A non-owner admin can be demoted by anyone with the capability,
	// themself included.
	if err := checkDemotion(other, models.Membership{UserID: other, Admin: true}); err != nil {
		t.Errorf("non-owner self-demote: got %v, want nil", err)
	}
	if err := checkDemotion(owner, models.Membership{UserID: other, Admin: true}); err != nil {
		t.Errorf("demote non-owner admin: got %v, want nil", err)
	}
}

func TestResolveDuplicateAdd(t *testing.T) {
	existing := models.Membership{ID: primitive.NewObjectID()}

	// The common case: the duplicate row is still live, return it.
	got, err := resolveDuplicateAdd(existing, nil)
	if err != nil || got.ID != existing.ID {
		t.Errorf("live duplicate: got (%v, %v), want existing row", got.ID.Hex(), err)
	}

	// The row was tombstoned between the rejected insert and the read
	// back; the add stays an idempotent no-op instead of bubbling the
	// driver miss.
	got, err = resolveDuplicateAdd(models.Membership{}, mongo.ErrNoDocuments)
	if err != nil {
		t.Errorf("vanished duplicate: got %v, want nil", err)
	}
	if !got.ID.IsZero() {
		t.Errorf("vanished duplicate: got row %s, want zero", got.ID.Hex())
	}

	// Infrastructure failures still surface.
	boom := errors.New("connection reset")
	if _, err := resolveDuplicateAdd(models.Membership{}, boom); !errors.Is(err, boom) {
		t.Errorf("read failure: got %v, want %v", err, boom)
	}
}

func TestEffectiveAdmin(t *testing.T) {
	cases := []struct {
		name string
		m    models.Membership
		want bool
	}{
		{"owner with admin flag off", models.Membership{Owner: true}, true},
		{"plain admin", models.Membership{Admin: true}, true},
		{"plain member", models.Membership{}, false},
	}
	for _, tc := range cases {
		if got := tc.m.EffectiveAdmin(); got != tc.want {
			t.Errorf("%s: EffectiveAdmin() = %v, want %v", tc.name, got, tc.want)
		}
	}
}

func TestErrorKindMatching(t *testing.T) {
	if !errors.Is(notFound("organization not found"), ErrNotFound) {
		t.Error("notFound should match ErrNotFound")
	}
	if errors.Is(notFound("organization not found"), ErrPermissionDenied) {
		t.Error("notFound should not match ErrPermissionDenied")
	}
	if !errors.Is(permissionDenied("nope"), ErrPermissionDenied) {
		t.Error("permissionDenied should match ErrPermissionDenied")
	}
}
