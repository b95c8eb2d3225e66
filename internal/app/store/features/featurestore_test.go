package featurestore_test

import (
	"errors"
	"testing"

	"github.com/openforgehq/openforge/internal/app/store/features"
	"github.com/openforgehq/openforge/internal/app/system/moderation"
	"github.com/openforgehq/openforge/internal/domain/models"
	"github.com/openforgehq/openforge/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestStore_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := featurestore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	project := fixtures.CreateProject(ctx, "Widgets")

	feat := models.ProjectFeature{
		Title:       "Dark mode",
		Description: "A dark color scheme for night use",
		Submitter:   testutil.TestSubmitter(),
		ProjectID:   project.ID,
		ProjectName: project.Title,
	}

	created, err := store.Create(ctx, feat)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if created.ID == primitive.NilObjectID {
		t.Error("expected ID to be assigned")
	}
	if created.Status != string(moderation.Pending) {
		t.Errorf("status = %q, want pending", created.Status)
	}
}

func TestStore_ListByProject(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := featurestore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	project := fixtures.CreateProject(ctx, "Widgets")
	other := fixtures.CreateProject(ctx, "Gadgets")

	fixtures.CreateFeature(ctx, project, "Approved Feature", "approved")
	fixtures.CreateFeature(ctx, project, "Pending Feature", "pending")
	fixtures.CreateFeature(ctx, other, "Other Project Feature", "approved")

	approved, err := store.ListByProject(ctx, project.ID, moderation.Approved)
	if err != nil {
		t.Fatalf("ListByProject failed: %v", err)
	}
	if len(approved) != 1 {
		t.Fatalf("len = %d, want 1", len(approved))
	}
	if approved[0].Title != "Approved Feature" {
		t.Errorf("title = %q", approved[0].Title)
	}

	all, err := store.ListByProject(ctx, project.ID, "")
	if err != nil {
		t.Fatalf("ListByProject(all) failed: %v", err)
	}
	if len(all) != 2 {
		t.Errorf("all = %d, want 2", len(all))
	}
}

func TestStore_SetStatus(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := featurestore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	project := fixtures.CreateProject(ctx, "Widgets")
	feat := fixtures.CreateFeature(ctx, project, "Pending", "pending")

	if err := store.SetStatus(ctx, feat.ID, moderation.Approved); err != nil {
		t.Fatalf("approve failed: %v", err)
	}

	err := store.SetStatus(ctx, feat.ID, moderation.Rejected)
	if !errors.Is(err, moderation.ErrIllegalTransition) {
		t.Errorf("expected ErrIllegalTransition after approval, got %v", err)
	}
}
