// internal/app/features/errors/render.go
package errors

import (
	"net/http"

	"github.com/openforgehq/openforge/internal/app/system/viewdata"
	"github.com/dalemusser/waffle/pantry/templates"
)

// RenderUnauthorized shows a friendly "sign in required" page.
// If backURL is empty, it will default to /login.
func RenderUnauthorized(w http.ResponseWriter, r *http.Request, backURL string) {
	if backURL == "" {
		backURL = "/login"
	}
	w.WriteHeader(http.StatusUnauthorized)
	data := pageData{
		BaseVM:  viewdata.NewBaseVM(r, "Sign in required", backURL),
		Message: "Please sign in to continue.",
	}
	data.BackURL = backURL
	templates.Render(w, r, "error_forbidden", data)
}

// RenderForbidden shows a friendly access error page with a message.
func RenderForbidden(w http.ResponseWriter, r *http.Request, msg, backURL string) {
	if backURL == "" {
		backURL = "/"
	}
	w.WriteHeader(http.StatusForbidden)
	data := pageData{
		BaseVM:  viewdata.NewBaseVM(r, "Access denied", backURL),
		Message: msg,
	}
	templates.Render(w, r, "error_forbidden", data)
}

// RenderNotFound shows the 404 page with a custom message, used by
// detail pages when the requested entity doesn't exist (or isn't
// approved yet).
func RenderNotFound(w http.ResponseWriter, r *http.Request, msg string) {
	if msg == "" {
		msg = "The page you're looking for doesn't exist or has been removed."
	}
	w.WriteHeader(http.StatusNotFound)
	data := pageData{
		BaseVM:  viewdata.NewBaseVM(r, "Not found", "/"),
		Message: msg,
	}
	templates.Render(w, r, "error_notfound", data)
}

// RenderBadRequest shows a validation failure page with the message.
func RenderBadRequest(w http.ResponseWriter, r *http.Request, msg string) {
	w.WriteHeader(http.StatusBadRequest)
	data := pageData{
		BaseVM:  viewdata.NewBaseVM(r, "Invalid request", "/"),
		Message: msg,
	}
	templates.Render(w, r, "error_badrequest", data)
}

// renderServerError shows the generic 500 page. The logged error never
// reaches the client; userMsg should already be safe to display.
func renderServerError(w http.ResponseWriter, r *http.Request, userMsg, backURL string) {
	if userMsg == "" {
		userMsg = "Something went wrong on our end. Please try again."
	}
	if backURL == "" {
		backURL = "/"
	}
	w.WriteHeader(http.StatusInternalServerError)
	data := pageData{
		BaseVM:  viewdata.NewBaseVM(r, "Something went wrong", backURL),
		Message: userMsg,
	}
	data.BackURL = backURL
	templates.Render(w, r, "error_server", data)
}
