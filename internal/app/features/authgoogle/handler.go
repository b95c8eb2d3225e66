// internal/app/features/authgoogle/handler.go
package authgoogle

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	userstore "github.com/openforgehq/openforge/internal/app/store/users"
	"github.com/openforgehq/openforge/internal/app/system/auth"
	"github.com/openforgehq/openforge/internal/app/system/authz"
	"github.com/openforgehq/openforge/internal/app/system/normalize"
	"github.com/openforgehq/openforge/internal/app/system/timeouts"
	"github.com/openforgehq/openforge/internal/domain/models"

	"github.com/dalemusser/waffle/pantry/query"
	"github.com/dalemusser/waffle/pantry/urlutil"
	"github.com/google/uuid"
	"github.com/gorilla/securecookie"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

// Handler runs the Google OAuth flow. Google is the only identity
// provider; the admin capability comes from the static email allowlist,
// resolved exactly once per sign-in.
type Handler struct {
	Users  *userstore.Store
	Admins authz.Allowlist
	Log    *zap.Logger

	ClientID     string
	ClientSecret string
	RedirectURL  string // e.g. "https://openforge.dev/auth/google/callback"

	// sc signs the short-lived state cookie that ties the callback to
	// the browser that started the flow.
	sc *securecookie.SecureCookie
}

// NewHandler creates a Google OAuth handler. stateKey signs the state
// cookie; reusing the session key is fine.
func NewHandler(users *userstore.Store, admins authz.Allowlist, clientID, clientSecret, baseURL string, stateKey []byte, logger *zap.Logger) *Handler {
	return &Handler{
		Users:        users,
		Admins:       admins,
		Log:          logger,
		ClientID:     clientID,
		ClientSecret: clientSecret,
		RedirectURL:  baseURL + "/auth/google/callback",
		sc:           securecookie.New(stateKey, nil),
	}
}

// IsConfigured returns true if Google OAuth is configured.
func (h *Handler) IsConfigured() bool {
	return h.ClientID != "" && h.ClientSecret != ""
}

func (h *Handler) oauth2Config() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     h.ClientID,
		ClientSecret: h.ClientSecret,
		RedirectURL:  h.RedirectURL,
		Scopes: []string{
			"openid",
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}
}

/*─────────────────────────────────────────────────────────────────────────────*
| State cookie                                                                 |
*─────────────────────────────────────────────────────────────────────────────*/

const stateCookie = "openforge-oauth-state"

// statePayload travels in the signed state cookie so the callback can
// verify the state parameter and recover the return URL without a
// server-side store.
type statePayload struct {
	State  string `json:"state"`
	Return string `json:"return"`
}

func (h *Handler) setStateCookie(w http.ResponseWriter, p statePayload) error {
	encoded, err := h.sc.Encode(stateCookie, p)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     stateCookie,
		Value:    encoded,
		Path:     "/",
		MaxAge:   600, // the consent screen should not take ten minutes
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}

func (h *Handler) readStateCookie(r *http.Request) (statePayload, error) {
	var p statePayload
	c, err := r.Cookie(stateCookie)
	if err != nil {
		return p, err
	}
	if err := h.sc.Decode(stateCookie, c.Value, &p); err != nil {
		return p, err
	}
	return p, nil
}

func clearStateCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     stateCookie,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /auth/google                                                             |
| Starts the flow: mint a state token, stash it (plus the return URL) in a     |
| signed cookie, and send the browser to Google's consent screen.              |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) Start(w http.ResponseWriter, r *http.Request) {
	if !h.IsConfigured() {
		h.Log.Warn("Google OAuth not configured")
		http.Redirect(w, r, "/login?error=google_not_configured", http.StatusSeeOther)
		return
	}

	state := uuid.NewString()
	payload := statePayload{
		State:  state,
		Return: query.Get(r, "return"),
	}
	if err := h.setStateCookie(w, payload); err != nil {
		h.Log.Error("failed to write OAuth state cookie", zap.Error(err))
		http.Redirect(w, r, "/login?error=internal", http.StatusSeeOther)
		return
	}

	url := h.oauth2Config().AuthCodeURL(state)

	h.Log.Debug("initiating Google OAuth flow",
		zap.String("return_url", payload.Return))

	http.Redirect(w, r, url, http.StatusTemporaryRedirect)
}

/*─────────────────────────────────────────────────────────────────────────────*
| GET /auth/google/callback                                                    |
| Verifies state, exchanges the code, fetches the Google profile, upserts the  |
| account with its allowlist-resolved role, and signs the session in.          |
*─────────────────────────────────────────────────────────────────────────────*/

func (h *Handler) Callback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if errParam := r.URL.Query().Get("error"); errParam != "" {
		h.Log.Warn("Google OAuth error",
			zap.String("error", errParam),
			zap.String("description", r.URL.Query().Get("error_description")))
		http.Redirect(w, r, "/login?error=google_denied", http.StatusSeeOther)
		return
	}

	state := r.URL.Query().Get("state")
	payload, err := h.readStateCookie(r)
	clearStateCookie(w)
	if err != nil || state == "" || state != payload.State {
		h.Log.Warn("invalid or expired OAuth state", zap.Error(err))
		http.Redirect(w, r, "/login?error=invalid_state", http.StatusSeeOther)
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		h.Log.Warn("missing OAuth code parameter")
		http.Redirect(w, r, "/login?error=invalid_code", http.StatusSeeOther)
		return
	}

	token, err := h.oauth2Config().Exchange(ctx, code)
	if err != nil {
		h.Log.Error("failed to exchange OAuth code", zap.Error(err))
		http.Redirect(w, r, "/login?error=token_exchange", http.StatusSeeOther)
		return
	}

	googleUser, err := fetchGoogleUserInfo(ctx, token)
	if err != nil {
		h.Log.Error("failed to fetch Google user info", zap.Error(err))
		http.Redirect(w, r, "/login?error=user_info", http.StatusSeeOther)
		return
	}

	email := normalize.Email(googleUser.Email)

	// The allowlist is consulted here and only here; the result rides
	// on the session until the next sign-in.
	role := "member"
	isAdmin := h.Admins.Contains(email)
	if isAdmin {
		role = "admin"
	}

	ctxDB, cancel := context.WithTimeout(ctx, timeouts.Medium())
	defer cancel()

	user, err := h.Users.EnsureUser(ctxDB, models.User{
		ID:    googleUser.ID,
		Name:  googleUser.Name,
		Email: email,
		Role:  role,
	})
	if err != nil {
		h.Log.Error("failed to upsert user after sign-in",
			zap.Error(err),
			zap.String("google_id", googleUser.ID))
		http.Redirect(w, r, "/login?error=internal", http.StatusSeeOther)
		return
	}

	sessUser := &auth.SessionUser{
		ID:      user.ID,
		Name:    user.Name,
		Email:   user.Email,
		Role:    user.Role,
		IsAdmin: isAdmin,
		GitHub:  user.GitHub,
	}
	if err := auth.SignIn(w, r, sessUser); err != nil {
		h.Log.Error("save session failed", zap.Error(err), zap.String("user_id", user.ID))
		http.Redirect(w, r, "/login?error=session", http.StatusSeeOther)
		return
	}

	h.Log.Info("user signed in via Google OAuth",
		zap.String("user_id", user.ID),
		zap.String("role", user.Role))

	dest := urlutil.SafeReturn(payload.Return, "", "/")
	http.Redirect(w, r, dest, http.StatusSeeOther)
}

/*─────────────────────────────────────────────────────────────────────────────*
| Google userinfo                                                              |
*─────────────────────────────────────────────────────────────────────────────*/

// googleUserInfo is the subset of Google's userinfo response we use.
type googleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

func fetchGoogleUserInfo(ctx context.Context, token *oauth2.Token) (*googleUserInfo, error) {
	client := oauth2.NewClient(ctx, oauth2.StaticTokenSource(token))

	resp, err := client.Get("https://www.googleapis.com/oauth2/v2/userinfo")
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user info: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("failed to decode user info: %w", err)
	}
	if info.ID == "" {
		return nil, fmt.Errorf("user info missing id")
	}

	return &info, nil
}
