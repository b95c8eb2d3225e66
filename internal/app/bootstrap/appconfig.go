// internal/app/bootstrap/appconfig.go
package bootstrap

// AppConfig holds service-specific configuration for this WAFFLE app.
//
// WAFFLE's CoreConfig handles framework-level settings (ports, TLS,
// logging, CORS); AppConfig is everything specific to OpenForge. The
// struct is passed to most lifecycle hooks, so any configuration needed
// during startup, request handling, or shutdown lives here.
type AppConfig struct {
	// MongoDB connection configuration
	MongoURI      string // MongoDB connection string (e.g., mongodb://localhost:27017)
	MongoDatabase string // Database name within MongoDB

	// Session management configuration
	SessionKey    string // Secret key for signing session cookies (must be strong in production)
	SessionName   string // Cookie name for sessions (default: openforge-session)
	SessionDomain string // Cookie domain (blank means current host)

	// Google OAuth configuration. Sign-in is disabled when the client
	// id/secret are blank; anonymous submission still works.
	GoogleClientID     string
	GoogleClientSecret string

	// AdminEmails is the comma-separated admin allowlist. Membership is
	// the only thing that grants moderation access.
	AdminEmails string

	// NotifyEmailURL is the endpoint that fans submission notifications
	// out to the admin inbox. Blank disables notification entirely.
	NotifyEmailURL string

	// Base URL used to build the OAuth callback, e.g.
	// "https://openforge.dev" or "http://localhost:8080".
	BaseURL string
}
