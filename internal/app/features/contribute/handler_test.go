package contribute_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/openforgehq/openforge/internal/app/features/contribute"
	uierrors "github.com/openforgehq/openforge/internal/app/features/errors"
	contributionstore "github.com/openforgehq/openforge/internal/app/store/contributions"
	"github.com/openforgehq/openforge/internal/app/system/notify"
	"github.com/openforgehq/openforge/internal/domain/models"
	"github.com/openforgehq/openforge/internal/testutil"
	"go.uber.org/zap"

	// Template sets rendered by these handlers.
	_ "github.com/openforgehq/openforge/internal/app/features/contribute/views"
	_ "github.com/openforgehq/openforge/internal/app/features/errors/views"
)

func newTestHandler(t *testing.T, endpoint string) (*contribute.Handler, *testutil.Fixtures, *contributionstore.Store) {
	t.Helper()
	testutil.BootTemplates(t)
	db := testutil.SetupTestDB(t)
	logger := zap.NewNop()
	h := contribute.NewHandler(db, notify.NewClient(endpoint, logger), uierrors.NewErrorLogger(logger), logger)
	return h, testutil.NewFixtures(t, db), contributionstore.New(db)
}

func postForm(target string, form url.Values) *http.Request {
	req := httptest.NewRequest("POST", target, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

func validForm(project models.Project) url.Values {
	return url.Values{
		"project_id":        {project.ID.Hex()},
		"title":             {"Fix pagination off-by-one"},
		"description":       {"The last page repeated the final row."},
		"contribution_type": {"Bug Fix"},
		"pr_link":           {"https://github.com/acme/widgets/pull/42"},
		"name":              {"Ada Lovelace"},
		"email":             {"ada@example.com"},
		"github":            {"adalove"},
	}
}

func TestCreate_Valid_SendsNotification(t *testing.T) {
	notified := make(chan map[string]any, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		var payload map[string]any
		_ = json.Unmarshal(body, &payload)
		notified <- payload
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	h, fixtures, store := newTestHandler(t, srv.URL)
	ctx, cancel := testutil.TestContext()
	defer cancel()

	project := fixtures.CreateProject(ctx, "Widgets")

	rec := httptest.NewRecorder()
	h.Create(rec, postForm("/contribute", validForm(project)))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}

	list, err := store.List(ctx, "")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("contributions = %d, want 1", len(list))
	}
	if list[0].Status != "pending" {
		t.Errorf("status = %q, want pending", list[0].Status)
	}
	if list[0].ProjectName != "Widgets" {
		t.Errorf("ProjectName = %q, want denormalized title", list[0].ProjectName)
	}

	select {
	case payload := <-notified:
		if payload["type"] != "submission" {
			t.Errorf("notification type = %v", payload["type"])
		}
		if payload["email"] != "ada@example.com" {
			t.Errorf("notification email = %v", payload["email"])
		}
	case <-time.After(3 * time.Second):
		t.Error("notification was never sent")
	}
}

func TestCreate_BadPRLinkRejected(t *testing.T) {
	h, fixtures, store := newTestHandler(t, "")
	ctx, cancel := testutil.TestContext()
	defer cancel()

	project := fixtures.CreateProject(ctx, "Widgets")

	for _, link := range []string{
		"https://github.com/acme/widgets",
		"https://gitlab.com/acme/widgets/pull/42",
		"not a url",
	} {
		form := validForm(project)
		form.Set("pr_link", link)
		rec := httptest.NewRecorder()
		h.Create(rec, postForm("/contribute", form))
		if rec.Code != http.StatusOK {
			t.Errorf("pr_link %q: status = %d, want 200 form re-render", link, rec.Code)
		}
		if !strings.Contains(rec.Body.String(), "pull request URL") {
			t.Errorf("pr_link %q: re-rendered form missing the PR link error", link)
		}
	}

	if n, _ := store.Count(ctx, ""); n != 0 {
		t.Errorf("contributions = %d, want 0 after bad PR links", n)
	}
}

func TestCreate_UnknownProjectRejected(t *testing.T) {
	h, fixtures, store := newTestHandler(t, "")
	ctx, cancel := testutil.TestContext()
	defer cancel()

	project := fixtures.CreateProject(ctx, "Widgets")
	form := validForm(project)
	form.Set("project_id", "64b000000000000000000000") // valid hex, no such project

	rec := httptest.NewRecorder()
	h.Create(rec, postForm("/contribute", form))

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200 form re-render", rec.Code)
	}
	if n, _ := store.Count(ctx, ""); n != 0 {
		t.Errorf("contributions = %d, want 0 for unknown project", n)
	}
}

func TestCreate_NotificationFailureDoesNotLoseData(t *testing.T) {
	// Unreachable notification endpoint: submission must still persist.
	h, fixtures, store := newTestHandler(t, "http://127.0.0.1:1/never")
	ctx, cancel := testutil.TestContext()
	defer cancel()

	project := fixtures.CreateProject(ctx, "Widgets")

	rec := httptest.NewRecorder()
	h.Create(rec, postForm("/contribute", validForm(project)))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	if n, _ := store.Count(ctx, ""); n != 1 {
		t.Errorf("contributions = %d, want 1", n)
	}
}
