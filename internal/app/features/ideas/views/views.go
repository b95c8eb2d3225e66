// internal/app/features/ideas/views/views.go
package views

import (
	"embed"

	"github.com/dalemusser/waffle/pantry/templates"
)

//go:embed templates/*.gohtml
var FS embed.FS

func init() {
	templates.Register(templates.Set{
		Name:     "ideas",
		FS:       FS,
		Patterns: []string{"templates/*.gohtml"},
	})
}
