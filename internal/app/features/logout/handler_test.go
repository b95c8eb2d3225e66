package logout_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/openforgehq/openforge/internal/app/features/logout"
	"github.com/openforgehq/openforge/internal/testutil"
	"go.uber.org/zap"
)

func TestServe_RedirectsHome(t *testing.T) {
	h := logout.NewHandler(zap.NewNop())

	rec := httptest.NewRecorder()
	h.Serve(rec, testutil.NewRequest("GET", "/logout"))

	if rec.Code != http.StatusSeeOther {
		t.Fatalf("status = %d, want 303", rec.Code)
	}
	if loc := rec.Header().Get("Location"); loc != "/" {
		t.Errorf("Location = %q, want /", loc)
	}
}

func TestServe_HTMXUsesHXRedirect(t *testing.T) {
	h := logout.NewHandler(zap.NewNop())

	req := testutil.NewRequest("GET", "/logout")
	req.Header.Set("HX-Request", "true")
	rec := httptest.NewRecorder()
	h.Serve(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if hx := rec.Header().Get("HX-Redirect"); hx != "/" {
		t.Errorf("HX-Redirect = %q, want /", hx)
	}
}
