package admin_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/openforgehq/openforge/internal/app/features/admin"
	uierrors "github.com/openforgehq/openforge/internal/app/features/errors"
	ideastore "github.com/openforgehq/openforge/internal/app/store/ideas"
	votestore "github.com/openforgehq/openforge/internal/app/store/votes"
	"github.com/openforgehq/openforge/internal/app/system/auth"
	"github.com/openforgehq/openforge/internal/testutil"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"

	// Template sets rendered by these handlers.
	_ "github.com/openforgehq/openforge/internal/app/features/admin/views"
	_ "github.com/openforgehq/openforge/internal/app/features/errors/views"
)

func newTestHandler(t *testing.T) (*admin.Handler, *mongo.Database) {
	t.Helper()
	testutil.BootTemplates(t)
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	return admin.NewHandler(db, uierrors.NewErrorLogger(logger), logger), db
}

func adminPost(target, id string) *http.Request {
	req := testutil.NewRequest("POST", target)
	req = testutil.WithUser(req, testutil.AdminUser())
	return testutil.WithChiURLParam(req, "id", id)
}

func TestApproveIdea(t *testing.T) {
	h, db := newTestHandler(t)
	store := ideastore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	idea := fixtures.CreateIdea(ctx, "Pending Idea", "pending")

	rec := httptest.NewRecorder()
	h.ApproveIdea(rec, adminPost("/admin/ideas/"+idea.ID.Hex()+"/approve", idea.ID.Hex()))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}

	found, err := store.GetByID(ctx, idea.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if found.Status != "approved" {
		t.Errorf("status = %q, want approved", found.Status)
	}
}

func TestRejectIdea_ThenApproveIsRefused(t *testing.T) {
	h, db := newTestHandler(t)
	store := ideastore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	idea := fixtures.CreateIdea(ctx, "Pending Idea", "pending")

	rec := httptest.NewRecorder()
	h.RejectIdea(rec, adminPost("/admin/ideas/"+idea.ID.Hex()+"/reject", idea.ID.Hex()))
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("reject status = %d, want 303", rec.Code)
	}

	// Terminal state is locked: approving now must not succeed.
	rec = httptest.NewRecorder()
	h.ApproveIdea(rec, adminPost("/admin/ideas/"+idea.ID.Hex()+"/approve", idea.ID.Hex()))
	if rec.Code != http.StatusBadRequest {
		t.Errorf("approve after reject status = %d, want 400", rec.Code)
	}

	found, _ := store.GetByID(ctx, idea.ID)
	if found.Status != "rejected" {
		t.Errorf("status = %q, must stay rejected", found.Status)
	}
}

func TestApproveIdea_RepeatIsNoOp(t *testing.T) {
	h, db := newTestHandler(t)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	idea := fixtures.CreateIdea(ctx, "Pending Idea", "pending")

	h.ApproveIdea(httptest.NewRecorder(), adminPost("/admin/ideas/"+idea.ID.Hex()+"/approve", idea.ID.Hex()))

	rec := httptest.NewRecorder()
	h.ApproveIdea(rec, adminPost("/admin/ideas/"+idea.ID.Hex()+"/approve", idea.ID.Hex()))
	if rec.Code != http.StatusSeeOther {
		t.Errorf("repeat approve status = %d, want 303 no-op", rec.Code)
	}
}

func TestDeleteIdea_CascadesVotes(t *testing.T) {
	h, db := newTestHandler(t)
	ideas := ideastore.New(db)
	votes := votestore.New(db)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	idea := fixtures.CreateIdea(ctx, "Doomed Idea", "approved")
	fixtures.CreateVote(ctx, idea.ID, "u1")
	fixtures.CreateVote(ctx, idea.ID, "u2")

	rec := httptest.NewRecorder()
	h.DeleteIdea(rec, adminPost("/admin/ideas/"+idea.ID.Hex()+"/delete", idea.ID.Hex()))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	if n, _ := ideas.Count(ctx, ""); n != 0 {
		t.Errorf("ideas = %d, want 0", n)
	}
	if n, _ := votes.Count(ctx, idea.ID); n != 0 {
		t.Errorf("votes = %d, want 0 after cascade", n)
	}
}

func TestDeleteIdea_MissingIsNoOp(t *testing.T) {
	h, db := newTestHandler(t)
	fixtures := testutil.NewFixtures(t, db)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	idea := fixtures.CreateIdea(ctx, "Doomed Idea", "pending")

	h.DeleteIdea(httptest.NewRecorder(), adminPost("/admin/ideas/"+idea.ID.Hex()+"/delete", idea.ID.Hex()))

	// Second delete of the same idea still redirects.
	rec := httptest.NewRecorder()
	h.DeleteIdea(rec, adminPost("/admin/ideas/"+idea.ID.Hex()+"/delete", idea.ID.Hex()))
	if rec.Code != http.StatusSeeOther {
		t.Errorf("repeat delete status = %d, want 303", rec.Code)
	}
}

func TestRoutes_RequireAdmin(t *testing.T) {
	h, _ := newTestHandler(t)
	router := admin.Routes(h)

	// Anonymous requests get bounced toward login.
	req := testutil.NewRequest("GET", "/")
	req.Header.Set("Accept", "text/html")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusSeeOther {
		t.Errorf("anonymous status = %d, want 303 to login", rec.Code)
	}

	// Signed-in non-admins are forbidden.
	req = testutil.NewRequest("GET", "/")
	req.Header.Set("Accept", "text/html")
	req = auth.WithTestUser(req, &auth.SessionUser{ID: "u1", Role: "member"})
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusSeeOther {
		t.Fatalf("member status = %d, want 303 to /forbidden", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/forbidden" {
		t.Errorf("Location = %q, want /forbidden", loc)
	}
}
