// internal/app/store/queries/orgmembers/orgmembers_test.go
package orgmembers_test

import (
	"testing"

	"github.com/dalemusser/labelhub/internal/app/store/queries/orgmembers"
	"github.com/dalemusser/labelhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestList_ActiveUsersOnly(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	owner := fx.CreateUser(ctx, "alice", "alice@example.com")
	ghost := fx.CreateUser(ctx, "ghost", "ghost@example.com")
	org := fx.CreateOrganization(ctx, "Acme", owner.ID)
	fx.CreateMembership(ctx, org.ID, owner.ID, true, true)
	fx.CreateMembership(ctx, org.ID, ghost.ID, false, false)

	// Deactivate ghost in the directory; the membership itself stays live.
	if _, err := db.Collection("users").UpdateByID(ctx, ghost.ID,
		bson.M{"$set": bson.M{"active": false}}); err != nil {
		t.Fatalf("deactivate ghost: %v", err)
	}

	all, err := orgmembers.List(ctx, db, org.ID, orgmembers.Options{
		PageSize: orgmembers.UnlimitedPageSize,
	})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("unfiltered: got %d members, want 2", len(all))
	}

	active, err := orgmembers.List(ctx, db, org.ID, orgmembers.Options{
		ActiveUsersOnly: true,
		PageSize:        orgmembers.UnlimitedPageSize,
	})
	if err != nil {
		t.Fatalf("list active users: %v", err)
	}
	if len(active) != 1 || active[0].User.ID != owner.ID {
		t.Errorf("active users filter: got %d members", len(active))
	}
}

func TestList_WithContributions(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	alice := fx.CreateUser(ctx, "alice", "alice@example.com")
	bob := fx.CreateUser(ctx, "bob", "bob@example.com")
	org := fx.CreateOrganization(ctx, "Acme", alice.ID)
	other := fx.CreateOrganization(ctx, "Beta", alice.ID)
	fx.CreateMembership(ctx, org.ID, alice.ID, true, true)
	fx.CreateMembership(ctx, org.ID, bob.ID, false, false)

	fx.CreateProject(ctx, org.ID, alice.ID, "cats")
	fx.CreateProject(ctx, org.ID, alice.ID, "dogs")
	// Projects outside the org do not count.
	fx.CreateProject(ctx, other.ID, alice.ID, "birds")

	members, err := orgmembers.List(ctx, db, org.ID, orgmembers.Options{
		WithContributions: true,
		PageSize:          orgmembers.UnlimitedPageSize,
	})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(members) != 2 {
		t.Fatalf("got %d members, want 2", len(members))
	}
	// alice before bob by username.
	if members[0].ContributedProjects == nil || *members[0].ContributedProjects != 2 {
		t.Errorf("alice contributions: got %v, want 2", members[0].ContributedProjects)
	}
	if members[1].ContributedProjects == nil || *members[1].ContributedProjects != 0 {
		t.Errorf("bob contributions: got %v, want 0", members[1].ContributedProjects)
	}

	// Without the option the field stays unset.
	plain, err := orgmembers.List(ctx, db, org.ID, orgmembers.Options{
		PageSize: orgmembers.UnlimitedPageSize,
	})
	if err != nil {
		t.Fatalf("list without contributions: %v", err)
	}
	if plain[0].ContributedProjects != nil {
		t.Errorf("contributions without the option: got %v, want nil", *plain[0].ContributedProjects)
	}
}

func TestList_MembershipWithoutUserDropped(t *testing.T) {
	db := testutil.SetupTestDB(t)
	fx := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	owner := fx.CreateUser(ctx, "alice", "alice@example.com")
	org := fx.CreateOrganization(ctx, "Acme", owner.ID)
	fx.CreateMembership(ctx, org.ID, owner.ID, true, true)
	// Membership pointing at a user the directory no longer has.
	fx.CreateMembership(ctx, org.ID, primitive.NewObjectID(), false, false)

	members, err := orgmembers.List(ctx, db, org.ID, orgmembers.Options{
		PageSize: orgmembers.UnlimitedPageSize,
	})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(members) != 1 {
		t.Errorf("orphan membership should not surface: got %d members", len(members))
	}
}
