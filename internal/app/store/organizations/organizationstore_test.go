// internal/app/store/organizations/organizationstore_test.go
package organizationstore_test

import (
	"testing"

	organizationstore "github.com/dalemusser/labelhub/internal/app/store/organizations"
	"github.com/dalemusser/labelhub/internal/domain/models"
	"github.com/dalemusser/labelhub/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

func TestCreate_FoldsTitleAndMintsToken(t *testing.T) {
	db := testutil.SetupTestDB(t)
	s := organizationstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	org, err := s.Create(ctx, models.Organization{Title: "Acmé Labeling"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if org.ID.IsZero() {
		t.Error("expected a generated ID")
	}
	if org.TitleCI != "acme labeling" {
		t.Errorf("title_ci: got %q, want %q", org.TitleCI, "acme labeling")
	}
	if org.Token == "" {
		t.Error("expected a generated invite token")
	}

	loaded, err := s.GetByID(ctx, org.ID)
	if err != nil {
		t.Fatalf("get by id: %v", err)
	}
	if loaded.Title != "Acmé Labeling" {
		t.Errorf("round trip title: got %q", loaded.Title)
	}
}

func TestUpdateInfo_BlankTitleKeepsCurrent(t *testing.T) {
	db := testutil.SetupTestDB(t)
	s := organizationstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	org, err := s.Create(ctx, models.Organization{Title: "Acme", ContactInfo: "old@acme.test"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	updated, err := s.UpdateInfo(ctx, org.ID, "", "new@acme.test")
	if err != nil {
		t.Fatalf("update info: %v", err)
	}
	if updated.Title != "Acme" {
		t.Errorf("title changed on blank update: %q", updated.Title)
	}
	if updated.ContactInfo != "new@acme.test" {
		t.Errorf("contact info: got %q", updated.ContactInfo)
	}

	renamed, err := s.UpdateInfo(ctx, org.ID, "Acme Labs", "")
	if err != nil {
		t.Fatalf("rename: %v", err)
	}
	if renamed.Title != "Acme Labs" || renamed.TitleCI != "acme labs" {
		t.Errorf("rename: title=%q title_ci=%q", renamed.Title, renamed.TitleCI)
	}
}

func TestResetToken(t *testing.T) {
	db := testutil.SetupTestDB(t)
	s := organizationstore.New(db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	org, err := s.Create(ctx, models.Organization{Title: "Acme"})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	token, err := s.ResetToken(ctx, org.ID)
	if err != nil {
		t.Fatalf("reset token: %v", err)
	}
	if token == "" || token == org.Token {
		t.Errorf("token not rotated: %q", token)
	}

	if _, err := s.ResetToken(ctx, primitive.NewObjectID()); err != mongo.ErrNoDocuments {
		t.Errorf("reset token on unknown org: got %v, want ErrNoDocuments", err)
	}
}
