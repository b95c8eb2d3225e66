package suggestions_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	uierrors "github.com/openforgehq/openforge/internal/app/features/errors"
	"github.com/openforgehq/openforge/internal/app/features/suggestions"
	featurestore "github.com/openforgehq/openforge/internal/app/store/features"
	"github.com/openforgehq/openforge/internal/domain/models"
	"github.com/openforgehq/openforge/internal/testutil"
	"go.uber.org/zap"

	// Template sets rendered by these handlers.
	_ "github.com/openforgehq/openforge/internal/app/features/errors/views"
	_ "github.com/openforgehq/openforge/internal/app/features/suggestions/views"
)

func newTestHandler(t *testing.T) (*suggestions.Handler, *testutil.Fixtures, *featurestore.Store) {
	t.Helper()
	testutil.BootTemplates(t)
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	h := suggestions.NewHandler(db, uierrors.NewErrorLogger(logger), logger)
	return h, testutil.NewFixtures(t, db), featurestore.New(db)
}

func postForm(target string, form url.Values) *http.Request {
	req := httptest.NewRequest("POST", target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func validForm(project models.Project) url.Values {
	return url.Values{
		"project_id":  {project.ID.Hex()},
		"title":       {"Dark mode"},
		"description": {"A dark color scheme for night use."},
		"name":        {"Ada Lovelace"},
		"email":       {"ada@example.com"},
		"github":      {"adalove"},
	}
}

func TestCreate_Valid(t *testing.T) {
	h, fixtures, store := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	project := fixtures.CreateProject(ctx, "Widgets")

	rec := httptest.NewRecorder()
	h.Create(rec, postForm("/suggestions", validForm(project)))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}

	list, err := store.ListByProject(ctx, project.ID, "")
	if err != nil {
		t.Fatalf("ListByProject failed: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("suggestions = %d, want 1", len(list))
	}
	if list[0].Status != "pending" {
		t.Errorf("status = %q, want pending", list[0].Status)
	}
	if list[0].ProjectName != "Widgets" {
		t.Errorf("ProjectName = %q", list[0].ProjectName)
	}
}

func TestCreate_MissingDescriptionRejected(t *testing.T) {
	h, fixtures, store := newTestHandler(t)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	project := fixtures.CreateProject(ctx, "Widgets")
	form := validForm(project)
	form.Set("description", "")

	rec := httptest.NewRecorder()
	h.Create(rec, postForm("/suggestions", form))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200 form re-render", rec.Code)
	}
	if n, _ := store.Count(ctx, ""); n != 0 {
		t.Errorf("suggestions = %d, want 0", n)
	}
}
