package contributionstore_test

import (
	"errors"
	"testing"

	"github.com/openforgehq/openforge/internal/app/store/contributions"
	"github.com/openforgehq/openforge/internal/app/system/moderation"
	"github.com/openforgehq/openforge/internal/domain/models"
	"github.com/openforgehq/openforge/internal/testutil"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestStore_Create(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := contributionstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	project := fixtures.CreateProject(ctx, "Widgets")

	con := models.ProjectContribution{
		Title:            "Fix pagination off-by-one",
		Description:      "Last page repeats the final row",
		ContributionType: "Bug Fix",
		PRLink:           "https://github.com/acme/widgets/pull/42",
		Submitter:        testutil.TestSubmitter(),
		ProjectID:        project.ID,
		ProjectName:      project.Title,
		Status:           "approved", // must be ignored
	}

	created, err := store.Create(ctx, con)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if created.ID == primitive.NilObjectID {
		t.Error("expected ID to be assigned")
	}
	if created.Status != string(moderation.Pending) {
		t.Errorf("status = %q, want pending", created.Status)
	}
	if created.ProjectName != "Widgets" {
		t.Errorf("ProjectName = %q", created.ProjectName)
	}
	if created.CreatedAt.IsZero() {
		t.Error("expected CreatedAt to be set")
	}
}

func TestStore_ListByProject_ApprovedOnly(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := contributionstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	project := fixtures.CreateProject(ctx, "Widgets")
	other := fixtures.CreateProject(ctx, "Gadgets")

	fixtures.CreateContribution(ctx, project, "Approved A", "approved")
	fixtures.CreateContribution(ctx, project, "Pending B", "pending")
	fixtures.CreateContribution(ctx, project, "Rejected C", "rejected")
	fixtures.CreateContribution(ctx, other, "Approved Elsewhere", "approved")

	cons, err := store.ListByProject(ctx, project.ID, moderation.Approved)
	if err != nil {
		t.Fatalf("ListByProject failed: %v", err)
	}
	if len(cons) != 1 {
		t.Fatalf("len = %d, want 1", len(cons))
	}
	if cons[0].Title != "Approved A" {
		t.Errorf("title = %q", cons[0].Title)
	}
}

func TestStore_List_StatusFilter(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := contributionstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	project := fixtures.CreateProject(ctx, "Widgets")
	fixtures.CreateContribution(ctx, project, "P1", "pending")
	fixtures.CreateContribution(ctx, project, "P2", "pending")
	fixtures.CreateContribution(ctx, project, "A1", "approved")

	pending, err := store.List(ctx, moderation.Pending)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(pending) != 2 {
		t.Errorf("pending = %d, want 2", len(pending))
	}

	all, err := store.List(ctx, "")
	if err != nil {
		t.Fatalf("List(all) failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("all = %d, want 3", len(all))
	}
}

func TestStore_SetStatus_Transitions(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := contributionstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	project := fixtures.CreateProject(ctx, "Widgets")
	con := fixtures.CreateContribution(ctx, project, "Pending", "pending")

	if err := store.SetStatus(ctx, con.ID, moderation.Rejected); err != nil {
		t.Fatalf("reject failed: %v", err)
	}

	// Rejected is terminal.
	err := store.SetStatus(ctx, con.ID, moderation.Approved)
	if !errors.Is(err, moderation.ErrIllegalTransition) {
		t.Errorf("expected ErrIllegalTransition, got %v", err)
	}

	// Unknown id.
	err = store.SetStatus(ctx, primitive.NewObjectID(), moderation.Approved)
	if !errors.Is(err, contributionstore.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestStore_Delete(t *testing.T) {
	db := testutil.SetupTestDB(t)
	store := contributionstore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	project := fixtures.CreateProject(ctx, "Widgets")
	con := fixtures.CreateContribution(ctx, project, "Doomed", "pending")

	n, err := store.Delete(ctx, con.ID)
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if n != 1 {
		t.Errorf("deleted = %d, want 1", n)
	}
}
