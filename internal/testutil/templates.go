// internal/testutil/templates.go
package testutil

import (
	"sync"
	"testing"

	"github.com/dalemusser/waffle/pantry/templates"
	"go.uber.org/zap"
)

var (
	bootOnce sync.Once
	bootErr  error
)

// BootTemplates boots the shared template engine so handler tests can
// render real pages instead of swallowing render panics. Each test
// file blank-imports the view packages it renders so their sets are
// registered before the engine boots. Boot runs once per test binary.
func BootTemplates(t *testing.T) {
	t.Helper()
	bootOnce.Do(func() {
		eng := templates.New(false)
		logger := zap.NewNop()
		if bootErr = eng.Boot(logger); bootErr != nil {
			return
		}
		templates.UseEngine(eng, logger)
	})
	if bootErr != nil {
		t.Fatalf("template engine boot failed: %v", bootErr)
	}
}
