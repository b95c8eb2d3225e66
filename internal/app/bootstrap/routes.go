// internal/app/bootstrap/routes.go
package bootstrap

import (
	"net/http"

	adminfeature "github.com/openforgehq/openforge/internal/app/features/admin"
	authgooglefeature "github.com/openforgehq/openforge/internal/app/features/authgoogle"
	contributefeature "github.com/openforgehq/openforge/internal/app/features/contribute"
	errorsfeature "github.com/openforgehq/openforge/internal/app/features/errors"
	healthfeature "github.com/openforgehq/openforge/internal/app/features/health"
	homefeature "github.com/openforgehq/openforge/internal/app/features/home"
	ideasfeature "github.com/openforgehq/openforge/internal/app/features/ideas"
	loginfeature "github.com/openforgehq/openforge/internal/app/features/login"
	logoutfeature "github.com/openforgehq/openforge/internal/app/features/logout"
	projectsfeature "github.com/openforgehq/openforge/internal/app/features/projects"
	suggestionsfeature "github.com/openforgehq/openforge/internal/app/features/suggestions"
	userstore "github.com/openforgehq/openforge/internal/app/store/users"
	"github.com/openforgehq/openforge/internal/app/system/auth"
	"github.com/openforgehq/openforge/internal/app/system/authz"
	"github.com/openforgehq/openforge/internal/app/system/notify"

	// Each feature registers its template set from an init func; the
	// blank imports pull them all in before the engine boots.
	_ "github.com/openforgehq/openforge/internal/app/features/admin/views"
	_ "github.com/openforgehq/openforge/internal/app/features/contribute/views"
	_ "github.com/openforgehq/openforge/internal/app/features/errors/views"
	_ "github.com/openforgehq/openforge/internal/app/features/home/views"
	_ "github.com/openforgehq/openforge/internal/app/features/ideas/views"
	_ "github.com/openforgehq/openforge/internal/app/features/login/views"
	_ "github.com/openforgehq/openforge/internal/app/features/projects/views"
	_ "github.com/openforgehq/openforge/internal/app/features/suggestions/views"

	"github.com/dalemusser/waffle/config"
	"github.com/dalemusser/waffle/pantry/fileserver"
	"github.com/dalemusser/waffle/pantry/templates"
	"github.com/go-chi/chi/v5"
	"github.com/gorilla/csrf"
	"go.uber.org/zap"
)

// BuildHandler constructs the root HTTP handler (router) for this WAFFLE app.
//
// WAFFLE calls this after configuration, DB connections, schema setup, and
// any Startup hooks have completed.
//
// OpenForge initializes the session store and template engine, applies
// the session middleware, and mounts feature routers for all
// application areas: home, projects, ideas, contribute, suggestions,
// admin, and the Google sign-in flow.
func BuildHandler(coreCfg *config.CoreConfig, appCfg AppConfig, deps DBDeps, logger *zap.Logger) (http.Handler, error) {
	// Secure cookies are enabled in production mode.
	secure := coreCfg.Env == "prod"
	if err := auth.InitSessionStore(appCfg.SessionKey, appCfg.SessionName, appCfg.SessionDomain, secure, logger); err != nil {
		logger.Error("session store init failed", zap.Error(err))
		return nil, err
	}

	// Initialize and boot the template engine once at startup.
	// Dev mode enables template reloading for faster iteration.
	eng := templates.New(coreCfg.Env == "dev")
	if err := eng.Boot(logger); err != nil {
		logger.Error("template engine boot failed", zap.Error(err))
		return nil, err
	}
	templates.UseEngine(eng, logger)

	errLog := errorsfeature.NewErrorLogger(logger)
	notifier := notify.NewClient(appCfg.NotifyEmailURL, logger)
	admins := authz.ParseAllowlist(appCfg.AdminEmails)
	if n := len(admins); n > 0 {
		logger.Info("admin allowlist loaded", zap.Int("count", n))
	}

	r := chi.NewRouter()

	// CSRF protection for every state-changing route. Safe methods pass
	// through; unsafe methods must carry the token that NewBaseVM /
	// SetBase render into each form.
	r.Use(csrfProtect(appCfg.SessionKey, secure))

	// Global auth middleware: loads the SessionUser into context so
	// handlers can use auth.CurrentUser(r).
	r.Use(auth.LoadSessionUser)

	// Health check endpoint for load balancers and orchestrators
	healthHandler := healthfeature.NewHandler(deps.MongoClient, logger)
	r.Mount("/health", healthfeature.Routes(healthHandler))

	// Static assets with pre-compressed file support (gzip/brotli)
	r.Handle("/static/*", fileserver.Handler("/static", "public"))

	// Public pages
	homeHandler := homefeature.NewHandler(deps.MongoDatabase, errLog, logger)
	r.Mount("/", homefeature.Routes(homeHandler))

	projectsHandler := projectsfeature.NewHandler(deps.MongoDatabase, errLog, logger)
	r.Mount("/projects", projectsfeature.Routes(projectsHandler))

	ideasHandler := ideasfeature.NewHandler(deps.MongoDatabase, errLog, logger)
	r.Mount("/ideas", ideasfeature.Routes(ideasHandler))

	contributeHandler := contributefeature.NewHandler(deps.MongoDatabase, notifier, errLog, logger)
	r.Mount("/contribute", contributefeature.Routes(contributeHandler))

	suggestionsHandler := suggestionsfeature.NewHandler(deps.MongoDatabase, errLog, logger)
	r.Mount("/suggestions", suggestionsfeature.Routes(suggestionsHandler))

	// Authentication
	googleEnabled := appCfg.GoogleClientID != "" && appCfg.GoogleClientSecret != ""
	loginHandler := loginfeature.NewHandler(googleEnabled, logger)
	r.Mount("/login", loginfeature.Routes(loginHandler))

	logoutHandler := logoutfeature.NewHandler(logger)
	r.Mount("/logout", logoutfeature.Routes(logoutHandler))

	oauthHandler := authgooglefeature.NewHandler(
		userstore.New(deps.MongoDatabase), admins,
		appCfg.GoogleClientID, appCfg.GoogleClientSecret, appCfg.BaseURL,
		[]byte(appCfg.SessionKey), logger)
	r.Mount("/auth/google", authgooglefeature.Routes(oauthHandler))

	// Moderation (admin-only, enforced inside the feature router)
	adminHandler := adminfeature.NewHandler(deps.MongoDatabase, errLog, logger)
	r.Mount("/admin", adminfeature.Routes(adminHandler))

	// Error pages
	errorsHandler := errorsfeature.NewHandler()
	r.Get("/forbidden", errorsHandler.Forbidden)
	r.Get("/unauthorized", errorsHandler.Unauthorized)
	r.NotFound(errorsHandler.NotFound)

	return r, nil
}

// csrfProtect builds the CSRF middleware keyed off the session key.
// The cookie is only marked Secure in production so local HTTP
// development keeps working.
func csrfProtect(sessionKey string, secure bool) func(http.Handler) http.Handler {
	return csrf.Protect([]byte(sessionKey),
		csrf.Secure(secure),
		csrf.Path("/"))
}
