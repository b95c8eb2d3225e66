// Package inputval provides field validators for the public submission
// forms. All validation is synchronous and local: the handlers run
// these checks before any store call, and a failing field never reaches
// the database.
package inputval

import (
	"regexp"
	"strings"
)

// emailRE is deliberately simple: one "@", no whitespace, at least one
// dot-separated label on each side of the "@", no leading/trailing or
// doubled dots.
var emailRE = regexp.MustCompile(`^[A-Za-z0-9!#$%&'*+/=?^_` + "`" + `{|}~-]+(\.[A-Za-z0-9!#$%&'*+/=?^_` + "`" + `{|}~-]+)*@[A-Za-z0-9]([A-Za-z0-9-]*[A-Za-z0-9])?(\.[A-Za-z0-9]([A-Za-z0-9-]*[A-Za-z0-9])?)*$`)

// prLinkRE matches a GitHub pull request URL:
// http(s)://(www.)github.com/<owner>/<repo>/pull/<number>, optionally
// with a trailing slash or query string.
var prLinkRE = regexp.MustCompile(`^https?://(www\.)?github\.com/[\w.-]+/[\w.-]+/pull/\d+/?(\?.*)?$`)

// httpURLRE requires an explicit http or https scheme and a host.
var httpURLRE = regexp.MustCompile(`^https?://[^\s/$.?#][^\s]*$`)

// objectIDRE matches a 24-character hex Mongo ObjectID.
var objectIDRE = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

// IsValidEmail reports whether s looks like a deliverable email
// address. Input is trimmed first.
func IsValidEmail(s string) bool {
	return emailRE.MatchString(strings.TrimSpace(s))
}

// IsValidPRLink reports whether s is a GitHub pull request URL.
// Links from other hosts, or GitHub links without the /pull/<number>
// suffix, fail.
func IsValidPRLink(s string) bool {
	return prLinkRE.MatchString(strings.TrimSpace(s))
}

// IsValidHTTPURL reports whether s is an absolute http(s) URL.
func IsValidHTTPURL(s string) bool {
	return httpURLRE.MatchString(strings.TrimSpace(s))
}

// IsValidObjectID reports whether s is a well-formed Mongo ObjectID hex
// string.
func IsValidObjectID(s string) bool {
	return objectIDRE.MatchString(strings.TrimSpace(s))
}

// Required reports whether s has any non-whitespace content.
func Required(s string) bool {
	return strings.TrimSpace(s) != ""
}
