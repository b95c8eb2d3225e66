// Package htmlsanitize wraps a single shared bluemonday policy for
// user-submitted rich text (idea problem/solution, contribution and
// feature descriptions). The policy allows basic formatting and safe
// links and strips everything executable.
package htmlsanitize

import (
	"html/template"

	"github.com/microcosm-cc/bluemonday"
)

// policy is built once; bluemonday policies are safe for concurrent use.
var policy = buildPolicy()

func buildPolicy() *bluemonday.Policy {
	p := bluemonday.UGCPolicy()
	p.RequireNoFollowOnLinks(true)
	p.AllowAttrs("colspan", "rowspan").OnElements("td", "th")
	return p
}

// Sanitize returns s with unsafe HTML removed.
func Sanitize(s string) string {
	if s == "" {
		return ""
	}
	return policy.Sanitize(s)
}

// SanitizeHTML sanitizes s and returns it as template.HTML for direct
// rendering. Only use this for content that has no other path into a
// template.
func SanitizeHTML(s string) template.HTML {
	return template.HTML(Sanitize(s))
}
